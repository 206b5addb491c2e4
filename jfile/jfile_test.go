// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/jfile"
	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	v, err := jfile.Load("testdata/person.json", jfile.Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	obj, ok := v.(*jvalue.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	want := []string{"name", "age", "languages", "isStudent", "address"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
}

func TestLoadBOM(t *testing.T) {
	v, err := jfile.Load("testdata/bom.json", jfile.Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := jvalue.Array{jvalue.Number(1), jvalue.Number(2)}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}

func TestLoadHuJSON(t *testing.T) {
	const path = "testdata/commented.json"

	_, err := jfile.Load(path, jfile.Options{})
	var serr *jvalue.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Load without HuJSON: got %v, want syntax error", err)
	} else if serr.Kind != jvalue.ExpectedString {
		t.Errorf("Load without HuJSON: got %v, want %v", serr.Kind, jvalue.ExpectedString)
	}
	t.Logf("Without HuJSON: %v", err)

	v, err := jfile.Load(path, jfile.Options{HuJSON: true})
	if err != nil {
		t.Fatalf("Load with HuJSON failed: %v", err)
	}
	want := jvalue.MustParse(`{"name": "Alice", "languages": ["English", "Spanish"]}`)
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		_, err := jfile.Load("testdata/notjson.txt", jfile.Options{})
		if !errors.Is(err, jfile.ErrNotJSONFile) {
			t.Errorf("Load: got %v, want %v", err, jfile.ErrNotJSONFile)
		}
	})
	t.Run("EmptyPath", func(t *testing.T) {
		if _, err := jfile.Load("", jfile.Options{}); err == nil {
			t.Error("Load: got nil error for empty path")
		}
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := jfile.Load(filepath.Join(t.TempDir(), "nonesuch.json"), jfile.Options{})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load: got %v, want %v", err, os.ErrNotExist)
		}
	})
	t.Run("UTF8", func(t *testing.T) {
		_, err := jfile.Load("testdata/latin1.json", jfile.Options{})
		if !errors.Is(err, jfile.ErrInvalidUTF8) {
			t.Errorf("Load: got %v, want %v", err, jfile.ErrInvalidUTF8)
		}
	})
	t.Run("Syntax", func(t *testing.T) {
		for _, hu := range []bool{false, true} {
			_, err := jfile.Load("testdata/broken.json", jfile.Options{HuJSON: hu})
			var serr *jvalue.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Load (HuJSON=%v): got %v, want syntax error", hu, err)
			}
			if serr.Kind != jvalue.UnterminatedObject {
				t.Errorf("Kind: got %v, want %v", serr.Kind, jvalue.UnterminatedObject)
			}
			if want := (jvalue.LineCol{Line: 4, Column: 0}); serr.Location != want {
				t.Errorf("Location: got %v, want %v", serr.Location, want)
			}
		}
	})
	t.Run("MaxDepth", func(t *testing.T) {
		opts := jfile.Options{Parse: jvalue.Options{MaxDepth: 2}}
		_, err := jfile.Load("testdata/person.json", opts)
		if !errors.Is(err, jvalue.DepthExceeded) {
			t.Errorf("Load: got %v, want %v", err, jvalue.DepthExceeded)
		}
	})
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upper.JSON")
	if err := os.WriteFile(path, []byte(`[true, /* x */ null,]`), 0600); err != nil {
		t.Fatalf("Write test file: %v", err)
	}
	data, err := jfile.Read(path, jfile.Options{HuJSON: true})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got, want := len(data), len(`[true, /* x */ null,]`); got != want {
		t.Errorf("Read: got %d bytes, want %d", got, want)
	}
	v, err := jvalue.ParseBytes(data)
	if err != nil {
		t.Fatalf("Parse standardized text: %v", err)
	}
	if diff := cmp.Diff(jvalue.Array{jvalue.Bool(true), jvalue.Null{}}, v); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}
