// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate reports the line and column of the given byte offset in text.
// Offsets past the end of text are clamped to the end.
func Locate(text string, offset int) LineCol { return locate(mem.S(text), offset) }

func locate(src mem.RO, offset int) LineCol {
	offset = min(max(offset, 0), src.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < offset; i++ {
		if src.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
