// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// unescape maps the byte following a backslash to its decoded value.
// A zero entry marks an escape the decoder does not recognize.
var unescape = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// ErrIncomplete is reported when the input ends with an unpaired backslash.
var ErrIncomplete = errors.New("incomplete escape sequence")

// An Error reports an unrecognized escape sequence.
type Error struct {
	Offset int  // offset of the backslash in the input
	Char   rune // the character following the backslash
}

func (e *Error) Error() string { return fmt.Sprintf("invalid escape %q", `\`+string(e.Char)) }

// Unquote decodes the body of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// The escapes \" \\ \/ \b \f \n \r \t are replaced with their unescaped
// equivalents. Unicode escapes (\uXXXX) are not decoded. If strict is false,
// any other escaped character stands for itself, so \q decodes as q and
// \u0041 as u0041. If strict is true, Unquote reports an *Error instead.
func Unquote(src mem.RO, strict bool) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}

	dec := make([]byte, 0, src.Len())
	base := 0 // offset of src in the original input
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 == src.Len() {
			return "", ErrIncomplete
		}
		if b := unescape[src.At(i+1)]; b != 0 {
			dec = append(dec, b)
			src = src.SliceFrom(i + 2)
			base += i + 2
		} else {
			r, n := mem.DecodeRune(src.SliceFrom(i + 1))
			if n == 0 {
				n++
			}
			if strict {
				return "", &Error{Offset: base + i, Char: r}
			}
			dec = mem.Append(dec, src.Slice(i+1, i+1+n))
			src = src.SliceFrom(i + 1 + n)
			base += i + 1 + n
		}
		i = mem.IndexByte(src, '\\')
	}
	return string(mem.Append(dec, src)), nil
}
