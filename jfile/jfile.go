// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jfile loads JSON values from files.
//
// Load checks that the path names a .json file, reads it, and checks that
// its contents are valid UTF-8 before handing the text to the parser:
//
//	v, err := jfile.Load("config.json", jfile.Options{})
//	if err != nil {
//	   log.Fatalf("Load: %v", err)
//	}
//
// If HuJSON is set, comments and trailing commas are replaced with spaces
// before parsing, so byte offsets in syntax errors still refer to the file
// (after any leading byte-order mark).
package jfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jvalue"
	"github.com/tailscale/hujson"
)

var (
	// ErrNotJSONFile is reported for a path without a .json extension.
	ErrNotJSONFile = errors.New("not a .json file")

	// ErrInvalidUTF8 is reported for file contents that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

var bom = []byte("\ufeff")

// Options control how a file is loaded.
type Options struct {
	// Parse are the options passed to the parser.
	Parse jvalue.Options

	// HuJSON enables comments and trailing commas in the input.
	HuJSON bool
}

// Load reads and parses the JSON file at path.
func Load(path string, opts Options) (jvalue.Value, error) {
	data, err := Read(path, opts)
	if err != nil {
		return nil, err
	}
	v, err := opts.Parse.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Read reads the JSON file at path and returns the text to be parsed. A
// leading byte-order mark is removed, and if opts.HuJSON is set the text is
// standardized when it is valid HuJSON.
func Read(path string, opts Options) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty file path")
	} else if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("%s: %w", path, ErrNotJSONFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, bom)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	if opts.HuJSON {
		// If standardization fails, leave the text alone and let the parser
		// report where it goes wrong.
		if std, err := hujson.Standardize(data); err == nil {
			data = std
		}
	}
	return data, nil
}
