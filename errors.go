// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// ErrorKind classifies the grammar violation reported by a SyntaxError.
// An ErrorKind is itself an error, so it can be used as a target for
// errors.Is:
//
//	if errors.Is(err, jvalue.UnterminatedString) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	EndOfInput             ErrorKind = iota + 1 // input ended where a value was required
	UnexpectedCharacter                         // no grammar production matches
	ExpectedString                              // object key does not begin with a quote
	ExpectedColon                               // missing ":" after an object key
	ExpectedCommaOrBrace                        // missing "," or "}" after an object member
	ExpectedCommaOrBracket                      // missing "," or "]" after an array element
	UnterminatedObject                          // input ended inside an object
	UnterminatedArray                           // input ended inside an array
	UnterminatedString                          // input ended inside a string
	MalformedNumber                             // numeric text did not convert
	InvalidEscape                               // unknown escape sequence (strict mode only)
	DepthExceeded                               // nesting exceeds the configured depth limit
)

var kindStr = [...]string{
	0:                      "unknown error",
	EndOfInput:             "end of input",
	UnexpectedCharacter:    "unexpected character",
	ExpectedString:         "expected string",
	ExpectedColon:          "expected colon",
	ExpectedCommaOrBrace:   "expected comma or brace",
	ExpectedCommaOrBracket: "expected comma or bracket",
	UnterminatedObject:     "unterminated object",
	UnterminatedArray:      "unterminated array",
	UnterminatedString:     "unterminated string",
	MalformedNumber:        "malformed number",
	InvalidEscape:          "invalid escape",
	DepthExceeded:          "depth limit exceeded",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset   int       // byte offset of the violation, 0-based
	Location LineCol   // line and column corresponding to Offset
	Kind     ErrorKind // the class of violation
	Message  string    // what was expected and what was found

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s (offset %d): %s", s.Location, s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Is reports whether target is the ErrorKind of s.
func (s *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == s.Kind
}
