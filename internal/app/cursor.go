package app

// cursor walks a command line token by token. Callers hold the value and
// pass it along, so the position is never kept between command lines.
type cursor struct {
	line string
	pos  int
}

func newCursor(line string) cursor {
	return cursor{line: line}
}

// next returns the next blank-delimited token, or "" at end of line.
func (c *cursor) next() string {
	for c.pos < len(c.line) && isBlank(c.line[c.pos]) {
		c.pos++
	}
	start := c.pos
	for c.pos < len(c.line) && !isBlank(c.line[c.pos]) {
		c.pos++
	}
	return c.line[start:c.pos]
}

// rest returns everything after the previous token as one field. Exactly one
// separating blank is skipped; further blanks belong to the field. ok is
// false when the line ends right after the previous token.
func (c *cursor) rest() (field string, ok bool) {
	if c.pos >= len(c.line) {
		return "", false
	}
	if isBlank(c.line[c.pos]) {
		c.pos++
	}
	field = c.line[c.pos:]
	c.pos = len(c.line)
	return field, true
}

// done reports whether only blanks remain.
func (c *cursor) done() bool {
	save := c.pos
	tok := c.next()
	c.pos = save
	return tok == ""
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}
