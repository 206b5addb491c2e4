// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a recursive-descent parser that converts JSON
// text into a tree of values.
//
// # Parsing
//
// Call Parse with the complete text of a document. Parse returns the value
// tree, or an error describing the first point at which the text deviates from
// the grammar:
//
//	v, err := jvalue.Parse(`{"name": "Alice", "tags": ["x", "y"]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a value from the front of a longer text, call ParseOne, which also
// reports where the value ends. To change the depth limit or reject unknown
// escape sequences, set fields of an Options value and call its methods.
//
// # Values
//
// A Value is one of the concrete types Null, Bool, Number, String, Array, or
// *Object. Use a type switch or the Kind method to distinguish them:
//
//	switch t := v.(type) {
//	case jvalue.String:
//	   log.Printf("string %q", t)
//	case *jvalue.Object:
//	   log.Printf("object with keys %q", t.Keys())
//	}
//
// Object members keep the order in which they occur in the input. If a key
// occurs more than once, the last value wins, but the member keeps the
// position of its first occurrence.
//
// # Errors
//
// In case of a syntax error, the concrete type of the error is *SyntaxError,
// which reports the byte offset and line and column of the violation. Its Kind
// field classifies the violation, and each ErrorKind is a valid target for
// errors.Is:
//
//	if errors.Is(err, jvalue.UnterminatedObject) {
//	   log.Print("missing close brace")
//	}
//
// # Limitations
//
// Numbers are restricted to an optional sign, integer digits, and an optional
// decimal fraction; exponents are not recognized. Unicode escapes (\uXXXX)
// are not decoded. Comments and trailing commas are rejected.
package jvalue
