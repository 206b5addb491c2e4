// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options control the behavior of the parser. The zero value provides
// default settings.
type Options struct {
	// MaxDepth is the maximum nesting depth of values. A scalar at the top
	// level has depth 1. If zero, DefaultMaxDepth is used; if negative, depth
	// is not limited.
	MaxDepth int

	// StrictEscapes causes escape sequences other than \" \\ \/ \b \f \n \r \t
	// to be reported as errors. By default, the character following an
	// unrecognized backslash stands for itself.
	StrictEscapes bool
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse parses text as a single JSON value with default options.
func Parse(text string) (Value, error) { return Options{}.Parse(text) }

// ParseBytes parses data as a single JSON value with default options.
func ParseBytes(data []byte) (Value, error) { return Options{}.ParseBytes(data) }

// ParseOne parses a JSON value from the front of text with default options.
func ParseOne(text string) (Value, Span, error) { return Options{}.ParseOne(text) }

// MustParse parses text as a single JSON value with default options, and
// panics if parsing fails.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("jvalue: parse failed: %v", err))
	}
	return v
}

// Parse parses text as a single JSON value. Leading and trailing whitespace
// is permitted, but any other text after the value is an error. In case of
// error, the value is nil and the error has concrete type *SyntaxError.
func (o Options) Parse(text string) (Value, error) { return o.parseAll(mem.S(text)) }

// ParseBytes parses data as a single JSON value, as Parse. The value does
// not retain data.
func (o Options) ParseBytes(data []byte) (Value, error) { return o.parseAll(mem.B(data)) }

// ParseOne parses a JSON value from the front of text, ignoring anything that
// follows it. It returns the value along with its span in text; the End of the
// span is the offset just past the value. In case of error, the value is nil
// and the error has concrete type *SyntaxError.
func (o Options) ParseOne(text string) (Value, Span, error) {
	p := o.newParser(mem.S(text))
	p.cur.skipSpace()
	pos := p.cur.pos
	v, err := p.parseValue()
	if err != nil {
		return nil, Span{}, err
	}
	return v, Span{Pos: pos, End: p.cur.pos}, nil
}

func (o Options) parseAll(src mem.RO) (Value, error) {
	p := o.newParser(src)
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.cur.skipSpace()
	if ch, ok := p.cur.peek(); ok {
		return nil, p.errorf(UnexpectedCharacter, p.cur.pos, "unexpected %q after value", ch)
	}
	return v, nil
}

// A parser is a recursive-descent parser for a single JSON document.
// Each parse routine begins at the current offset of cur and leaves it
// just past the construct it consumed.
type parser struct {
	cur    *cursor
	strict bool
	limit  int // maximum depth, or < 0 for no limit
	depth  int // current depth
}

func (o Options) newParser(src mem.RO) *parser {
	return &parser{cur: newCursor(src), strict: o.StrictEscapes, limit: o.maxDepth()}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.limit >= 0 && p.depth > p.limit {
		return nil, p.errorf(DepthExceeded, p.cur.pos, "nesting depth exceeds %d", p.limit)
	}

	p.cur.skipSpace()
	ch, ok := p.cur.peek()
	switch {
	case !ok:
		return nil, p.errorf(EndOfInput, p.cur.pos, "unexpected end of input, expected value")
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case isNumStart(ch):
		return p.parseNumber()
	case p.cur.hasPrefix("true"):
		return p.consumeLiteral("true", Bool(true)), nil
	case p.cur.hasPrefix("false"):
		return p.consumeLiteral("false", Bool(false)), nil
	case p.cur.hasPrefix("null"):
		return p.consumeLiteral("null", Null{}), nil
	default:
		return nil, p.errorf(UnexpectedCharacter, p.cur.pos, "unexpected %q, expected value", ch)
	}
}

// parseObject consumes an object and its members.
// Precondition: current byte == '{'.
func (p *parser) parseObject() (Value, error) {
	start := p.cur.pos
	p.cur.advance() // skip '{'
	p.cur.skipSpace()

	obj := new(Object)
	if p.cur.is('}') {
		p.cur.advance()
		return obj, nil
	}
	for {
		// Parse a single member: "key": value
		p.cur.skipSpace()
		ch, ok := p.cur.peek()
		if !ok {
			return nil, p.unterminated(UnterminatedObject, start)
		} else if ch != '"' {
			return nil, p.errorf(ExpectedString, p.cur.pos, "unexpected %q, expected string key", ch)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.cur.skipSpace()
		ch, ok = p.cur.peek()
		if !ok {
			return nil, p.unterminated(UnterminatedObject, start)
		} else if ch != ':' {
			return nil, p.errorf(ExpectedColon, p.cur.pos, "unexpected %q, expected \":\" after key %q", ch, key)
		}
		p.cur.advance()

		v, err := p.parseValue()
		if errors.Is(err, EndOfInput) {
			return nil, p.unterminated(UnterminatedObject, start)
		} else if err != nil {
			return nil, err
		}
		obj.Set(key, v)

		// Check whether we have more members (",") or are done ("}").
		p.cur.skipSpace()
		ch, ok = p.cur.peek()
		if !ok {
			return nil, p.unterminated(UnterminatedObject, start)
		}
		p.cur.advance()
		switch ch {
		case '}':
			return obj, nil
		case ',':
			// continue with the next member
		default:
			return nil, p.errorf(ExpectedCommaOrBrace, p.cur.pos-1, "unexpected %q, expected \",\" or \"}\"", ch)
		}
	}
}

// parseArray consumes an array and its elements.
// Precondition: current byte == '['.
func (p *parser) parseArray() (Value, error) {
	start := p.cur.pos
	p.cur.advance() // skip '['
	p.cur.skipSpace()

	arr := Array{}
	if p.cur.is(']') {
		p.cur.advance()
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if errors.Is(err, EndOfInput) {
			return nil, p.unterminated(UnterminatedArray, start)
		} else if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.cur.skipSpace()
		ch, ok := p.cur.peek()
		if !ok {
			return nil, p.unterminated(UnterminatedArray, start)
		}
		p.cur.advance()
		switch ch {
		case ']':
			return arr, nil
		case ',':
			// continue with the next element
		default:
			return nil, p.errorf(ExpectedCommaOrBracket, p.cur.pos-1, "unexpected %q, expected \",\" or \"]\"", ch)
		}
	}
}

// parseString consumes a quoted string and returns its decoded contents.
// Precondition: current byte == '"'.
func (p *parser) parseString() (string, error) {
	start := p.cur.pos
	p.cur.advance() // skip '"'
	body := p.cur.pos

	var esc bool
	for {
		ch, ok := p.cur.peek()
		if !ok {
			return "", p.unterminated(UnterminatedString, start)
		}
		p.cur.advance()
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			break
		}
	}

	s, err := escape.Unquote(p.cur.slice(body, p.cur.pos-1), p.strict)
	if err != nil {
		var eerr *escape.Error
		if errors.As(err, &eerr) {
			return "", p.wrapf(InvalidEscape, body+eerr.Offset, err, "%v in string", err)
		}
		return "", p.wrapf(UnterminatedString, start, err, "%v in string", err)
	}
	return s, nil
}

// parseNumber consumes a number: an optional minus sign, one or more digits,
// and an optional fraction of a decimal point followed by one or more digits.
// Precondition: current byte is '-' or a digit.
func (p *parser) parseNumber() (Value, error) {
	start := p.cur.pos
	if p.cur.is('-') {
		p.cur.advance()
	}
	if p.cur.skipDigits() == 0 {
		return nil, p.malformed(start, "no digits in number")
	}
	if p.cur.is('.') {
		p.cur.advance()
		if p.cur.skipDigits() == 0 {
			return nil, p.malformed(start, "no digits after decimal point")
		}
	}

	text := p.cur.slice(start, p.cur.pos).StringCopy()
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, p.wrapf(MalformedNumber, start, err, "invalid number %q", text)
	}
	return Number(f), nil
}

// consumeLiteral advances past lit, which the caller has already matched,
// and returns v.
func (p *parser) consumeLiteral(lit string, v Value) Value {
	p.cur.advanceN(len(lit))
	return v
}

func (p *parser) malformed(start int, msg string) error {
	text := p.cur.slice(start, p.cur.pos).StringCopy()
	return p.errorf(MalformedNumber, start, "%s %q", msg, text)
}

func (p *parser) unterminated(kind ErrorKind, start int) error {
	return p.errorf(kind, p.cur.pos, "unexpected end of input, %v begun at offset %d", kind, start)
}

func (p *parser) errorf(kind ErrorKind, pos int, msg string, args ...any) error {
	return p.wrapf(kind, pos, nil, msg, args...)
}

func (p *parser) wrapf(kind ErrorKind, pos int, err error, msg string, args ...any) error {
	return &SyntaxError{
		Offset:   pos,
		Location: locate(p.cur.src, pos),
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}
