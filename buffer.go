// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// A cursor holds the immutable text of a document and the offset of the next
// unread byte. The offset only advances, and never exceeds the length of the
// text.
type cursor struct {
	src mem.RO
	pos int
}

func newCursor(src mem.RO) *cursor { return &cursor{src: src} }

// atEnd reports whether the input is exhausted.
func (c *cursor) atEnd() bool { return c.pos >= c.src.Len() }

// peek returns the current byte without consuming it, or reports false if the
// input is exhausted.
func (c *cursor) peek() (byte, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.src.At(c.pos), true
}

// is reports whether the current byte is ch.
func (c *cursor) is(ch byte) bool {
	b, ok := c.peek()
	return ok && b == ch
}

func (c *cursor) advance() { c.advanceN(1) }

func (c *cursor) advanceN(n int) { c.pos = min(c.pos+n, c.src.Len()) }

// slice returns a view of the input between offsets a and b.
func (c *cursor) slice(a, b int) mem.RO { return c.src.Slice(a, b) }

// hasPrefix reports whether the unread input begins with lit.
func (c *cursor) hasPrefix(lit string) bool {
	return mem.HasPrefix(c.src.SliceFrom(c.pos), mem.S(lit))
}

// skipSpace advances past any JSON whitespace.
func (c *cursor) skipSpace() {
	for !c.atEnd() && isSpace(c.src.At(c.pos)) {
		c.pos++
	}
}

// skipDigits advances past a run of decimal digits and reports how many there
// were.
func (c *cursor) skipDigits() int {
	start := c.pos
	for !c.atEnd() && isDigit(c.src.At(c.pos)) {
		c.pos++
	}
	return c.pos - start
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
