package buffer

import (
	"bytes"
	"slices"
	"strings"
)

// Size limits of the persisted format.
const (
	MaxLineLength = 80    // bytes per line, excluding the terminator
	MaxFileSize   = 71680 // bytes per document
)

// Document is an ordered sequence of lines. Every line except possibly the
// last one ends with a single '\n'. Positions are 1-based.
//
// Mutations are all-or-nothing: when a method returns an error the line
// sequence and the byte count are unchanged.
type Document struct {
	lines [][]byte
	size  int
}

// New creates an empty Document.
func New() *Document {
	return &Document{}
}

// NewDocument creates a Document that takes ownership of lines. The caller
// is responsible for the terminator invariant; loaders split on '\n' so only
// the final line can be unterminated.
func NewDocument(lines [][]byte) *Document {
	d := &Document{lines: lines}
	for _, l := range lines {
		d.size += len(l)
	}
	return d
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Size returns the total number of bytes over all lines.
func (d *Document) Size() int { return d.size }

// Line returns the stored bytes of line pos, terminator included, or nil
// when pos names no line. The returned slice must not be modified.
func (d *Document) Line(pos int) []byte {
	if pos < 1 || pos > len(d.lines) {
		return nil
	}
	return d.lines[pos-1]
}

// Lines returns a deep copy of all lines.
func (d *Document) Lines() [][]byte {
	out := make([][]byte, len(d.lines))
	for i, l := range d.lines {
		out[i] = bytes.Clone(l)
	}
	return out
}

// Bytes returns the document content as it would be persisted.
func (d *Document) Bytes() []byte {
	out := make([]byte, 0, d.size)
	for _, l := range d.lines {
		out = append(out, l...)
	}
	return out
}

// String returns the document content; useful for debugging and tests.
func (d *Document) String() string {
	return string(d.Bytes())
}

// InsertAt inserts text as a new line before line pos. Position Len()+1
// appends. Text is normalized to end in exactly one newline.
func (d *Document) InsertAt(pos int, text string) error {
	line, err := normalize(text)
	if err != nil {
		return err
	}
	if pos < 1 || pos > len(d.lines)+1 {
		return ErrLineLimitExceeded
	}
	fix := 0
	if pos == len(d.lines)+1 && d.lastUnterminated() {
		fix = 1
	}
	if d.size+len(line)+fix > MaxFileSize {
		return ErrFileTooLarge
	}
	if fix > 0 {
		d.terminateLast()
	}
	d.lines = slices.Insert(d.lines, pos-1, line)
	d.size += len(line)
	return nil
}

// AppendLine adds text after the last line, first terminating the current
// last line if it lacks a newline.
func (d *Document) AppendLine(text string) error {
	return d.InsertAt(len(d.lines)+1, text)
}

// ReplaceAt overwrites the content of line pos.
func (d *Document) ReplaceAt(pos int, text string) error {
	line, err := normalize(text)
	if err != nil {
		return err
	}
	if pos < 1 || pos > len(d.lines) {
		return ErrLineNotFound
	}
	delta := len(line) - len(d.lines[pos-1])
	if d.size+delta > MaxFileSize {
		return ErrFileTooLarge
	}
	d.lines[pos-1] = line
	d.size += delta
	return nil
}

// RemoveRange deletes the lines in [begin, end] ∩ [1, Len()] and returns the
// clamped range that was removed.
func (d *Document) RemoveRange(begin, end int) (int, int, error) {
	begin, end, err := d.Clamp(begin, end)
	if err != nil {
		return 0, 0, err
	}
	for _, l := range d.lines[begin-1 : end] {
		d.size -= len(l)
	}
	d.lines = slices.Delete(d.lines, begin-1, end)
	return begin, end, nil
}

// DuplicateRange copies lines [begin, end] (clamped to the document) and
// splices the copies after line dest. dest 0 places them before the first
// line. It returns the number of lines copied.
func (d *Document) DuplicateRange(begin, end, dest int) (int, error) {
	begin, end, err := d.Clamp(begin, end)
	if err != nil {
		return 0, err
	}
	if dest < 0 || dest > len(d.lines) {
		return 0, ErrLineLimitExceeded
	}
	copies := make([][]byte, 0, end-begin+1)
	added := 0
	for _, l := range d.lines[begin-1 : end] {
		c := make([]byte, len(l), len(l)+1)
		copy(c, l)
		if !bytes.HasSuffix(c, []byte{'\n'}) {
			c = append(c, '\n')
		}
		copies = append(copies, c)
		added += len(c)
	}
	fix := 0
	if dest == len(d.lines) && d.lastUnterminated() {
		fix = 1
	}
	if d.size+added+fix > MaxFileSize {
		return 0, ErrFileTooLarge
	}
	if fix > 0 {
		d.terminateLast()
	}
	d.lines = slices.Insert(d.lines, dest, copies...)
	d.size += added
	return len(copies), nil
}

// Clamp limits [begin, end] to [1, Len()] and reports ErrInvalidRange when
// no line remains.
func (d *Document) Clamp(begin, end int) (int, int, error) {
	if begin < 1 {
		begin = 1
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if begin > end {
		return 0, 0, ErrInvalidRange
	}
	return begin, end, nil
}

func (d *Document) lastUnterminated() bool {
	n := len(d.lines)
	return n > 0 && !bytes.HasSuffix(d.lines[n-1], []byte{'\n'})
}

// terminateLast rebuilds the last line rather than appending in place, since
// loaded lines may share backing arrays.
func (d *Document) terminateLast() {
	n := len(d.lines)
	last := d.lines[n-1]
	l := make([]byte, len(last)+1)
	copy(l, last)
	l[len(last)] = '\n'
	d.lines[n-1] = l
	d.size++
}

func normalize(text string) ([]byte, error) {
	content := strings.TrimRight(text, "\n")
	if strings.IndexByte(content, '\n') >= 0 {
		return nil, ErrEmbeddedNewline
	}
	if len(content) > MaxLineLength {
		return nil, ErrLineTooLong
	}
	line := make([]byte, len(content)+1)
	copy(line, content)
	line[len(content)] = '\n'
	return line, nil
}
