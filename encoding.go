// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"strings"

	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string literal.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents using
// the same rules as the parser: the character following an unrecognized
// backslash stands for itself, and \uXXXX is not decoded.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1:len(src)-1]), false)
}
