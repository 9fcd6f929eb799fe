// Package address resolves line addresses of the form N or B:E into 1-based
// inclusive ranges. Negative numbers count back from the last line, so -1 is
// the last line. An empty left operand means line 1 and an empty right
// operand means "through the last line".
package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"example.com/lineedit/pkg/buffer"
)

// Open marks an end that extends through the last line. Clamp resolves it.
const Open = int(^uint(0) >> 1)

// ErrSyntax is returned for operands that are not integers.
var ErrSyntax = errors.New("malformed address")

// Range is a 1-based inclusive line span.
type Range struct {
	Begin int
	End   int
}

// Single reports whether the range names exactly one line.
func (r Range) Single() bool { return r.Begin == r.End }

// Count returns the number of lines in a clamped range.
func (r Range) Count() int { return r.End - r.Begin + 1 }

// Parse converts token into a Range, resolving negative operands against
// lineCount. It performs no bounds checking; the end may be Open.
func Parse(token string, lineCount int) (Range, error) {
	left, right, colon := strings.Cut(token, ":")
	if !colon {
		n, err := number(left, lineCount)
		if err != nil {
			return Range{}, err
		}
		return Range{Begin: n, End: n}, nil
	}
	r := Range{Begin: 1, End: Open}
	if left != "" {
		n, err := number(left, lineCount)
		if err != nil {
			return Range{}, err
		}
		r.Begin = n
	}
	if right != "" {
		n, err := number(right, lineCount)
		if err != nil {
			return Range{}, err
		}
		r.End = n
	}
	return r, nil
}

// Clamp resolves an Open end to lineCount and limits the range to
// [1, lineCount]. A range left with no lines fails buffer.ErrInvalidRange.
func (r Range) Clamp(lineCount int) (Range, error) {
	if r.End == Open || r.End > lineCount {
		r.End = lineCount
	}
	if r.Begin < 1 {
		r.Begin = 1
	}
	if r.Begin > r.End {
		return Range{}, buffer.ErrInvalidRange
	}
	return r, nil
}

// Resolve parses token and clamps it to a document of lineCount lines.
func Resolve(token string, lineCount int) (Range, error) {
	r, err := Parse(token, lineCount)
	if err != nil {
		return Range{}, err
	}
	return r.Clamp(lineCount)
}

// Line parses a single line position. Negative values count back from the
// last line. The result is not bounds checked.
func Line(token string, lineCount int) (int, error) {
	return number(token, lineCount)
}

func number(s string, lineCount int) (int, error) {
	if s == "" || s == "-" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if n < 0 {
		n = lineCount + n + 1
	}
	return n, nil
}
