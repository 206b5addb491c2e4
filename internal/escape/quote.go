// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// escapeOf maps a byte to the letter of its short escape, if it has one.
var escapeOf = [utf8.RuneSelf]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigit = "0123456789abcdef"

// Quote returns src enclosed in double quotation marks, with quotes,
// backslashes, and control characters escaped so that the result is
// printable on a single line. Other control characters are shown as \xHH,
// which is not a JSON escape; for input without them, Unquote recovers src
// from the body of the result.
func Quote(src mem.RO) string {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		b := src.At(0)
		switch {
		case b < utf8.RuneSelf && escapeOf[b] != 0:
			buf = append(buf, '\\', escapeOf[b])
		case b < ' ' || b == 0x7f:
			buf = append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&15])
		default:
			buf = append(buf, b)
		}
		src = src.SliceFrom(1)
	}
	return string(append(buf, '"'))
}
