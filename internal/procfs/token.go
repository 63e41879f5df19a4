package procfs

import "strings"

// Cursor scans successive tokens out of a text buffer. Any byte in the
// delimiter set ends a token; runs of delimiters collapse into a single
// boundary, so empty tokens are never produced.
type Cursor struct {
	buf    string
	pos    int
	delims string
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf, delims string) *Cursor {
	return &Cursor{buf: buf, delims: delims}
}

// Next returns the next token and advances past the delimiter that
// ended it. Once the buffer is exhausted Next returns "", false and
// keeps doing so.
func (c *Cursor) Next() (string, bool) {
	for c.pos < len(c.buf) && c.isDelim(c.buf[c.pos]) {
		c.pos++
	}
	if c.pos >= len(c.buf) {
		return "", false
	}

	start := c.pos
	for c.pos < len(c.buf) && !c.isDelim(c.buf[c.pos]) {
		c.pos++
	}
	token := c.buf[start:c.pos]
	if c.pos < len(c.buf) {
		c.pos++
	}
	return token, true
}

// Skip discards up to n tokens and reports whether all n were present.
func (c *Cursor) Skip(n int) bool {
	for i := 0; i < n; i++ {
		if _, ok := c.Next(); !ok {
			return false
		}
	}
	return true
}

// Rest returns the unscanned remainder of the buffer.
func (c *Cursor) Rest() string {
	return c.buf[c.pos:]
}

// SetDelims switches the delimiter set for subsequent calls to Next.
// Status lines use a tab after the label and spaces inside the value,
// so one line is often scanned with two different sets.
func (c *Cursor) SetDelims(delims string) {
	c.delims = delims
}

func (c *Cursor) isDelim(b byte) bool {
	return strings.IndexByte(c.delims, b) >= 0
}

// FirstToken is shorthand for NewCursor(buf, delims).Next().
func FirstToken(buf, delims string) string {
	token, _ := NewCursor(buf, delims).Next()
	return token
}
