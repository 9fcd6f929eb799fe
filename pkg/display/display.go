// Package display renders document lines with their line numbers, wrapping
// long lines at a fixed display width.
package display

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"example.com/lineedit/pkg/buffer"
)

// DefaultWidth is the wrap width in display cells.
const DefaultWidth = 80

// Formatter writes numbered, word-wrapped lines.
type Formatter struct {
	Width int

	cond *runewidth.Condition
}

// New returns a Formatter wrapping at width cells. Non-positive widths fall
// back to DefaultWidth. Ambiguous-width runes count as one cell whatever the
// locale.
func New(width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Formatter{Width: width, cond: &runewidth.Condition{EastAsianWidth: false}}
}

// WriteRange writes lines begin through end of doc. The range must already
// be clamped to the document.
func (f *Formatter) WriteRange(w io.Writer, doc buffer.LineStorage, begin, end int) error {
	for pos := begin; pos <= end; pos++ {
		if err := f.WriteLine(w, pos, doc.Line(pos)); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes "N: " followed by line, broken into rows of at most Width
// cells. A row break prefers the last space inside the window, which is
// consumed; without one the row is cut at the window edge.
func (f *Formatter) WriteLine(w io.Writer, num int, line []byte) error {
	width := f.Width
	if width <= 0 {
		width = DefaultWidth
	}
	content := bytes.TrimSuffix(line, []byte{'\n'})
	if _, err := fmt.Fprintf(w, "%d: ", num); err != nil {
		return err
	}
	off := 0
	for {
		rest := content[off:]
		if f.cells(rest) <= width {
			if _, err := w.Write(rest); err != nil {
				return err
			}
			_, err := w.Write([]byte{'\n'})
			return err
		}
		limit := off + f.fit(rest, width)
		cut, next := limit, limit
		for i := limit; i > off; i-- {
			if i < len(content) && content[i] == ' ' {
				cut, next = i, i+1
				break
			}
		}
		if _, err := w.Write(content[off:cut]); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
		off = next
	}
}

// fit returns how many bytes of s fill at most width cells, never splitting
// a rune and always consuming at least one rune.
func (f *Formatter) fit(s []byte, width int) int {
	n, cells := 0, 0
	for n < len(s) {
		r, size := utf8.DecodeRune(s[n:])
		rw := f.runeWidth(r)
		if cells+rw > width {
			break
		}
		cells += rw
		n += size
	}
	if n == 0 && len(s) > 0 {
		_, n = utf8.DecodeRune(s)
	}
	return n
}

func (f *Formatter) cells(s []byte) int {
	total := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		total += f.runeWidth(r)
		s = s[size:]
	}
	return total
}

// runeWidth counts control characters, tabs included, as one cell each.
func (f *Formatter) runeWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 1
	}
	cond := f.cond
	if cond == nil {
		cond = &runewidth.Condition{EastAsianWidth: false}
		f.cond = cond
	}
	return cond.RuneWidth(r)
}
