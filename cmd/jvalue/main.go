// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jvalue parses a JSON file and prints a listing of its values.
//
// Usage:
//
//	jvalue [flags] file.json
//
// Each leaf of the value is printed on one line, giving its path from the
// root, its kind, and its value:
//
//	$.name           string  "Alice"
//	$.languages[0]   string  "English"
//
// If parsing fails, the error is printed with its line and column, and the
// program exits with status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"text/tabwriter"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/internal/escape"
	"github.com/creachadair/jvalue/jfile"

	"go4.org/mem"
)

var (
	doHuJSON = flag.Bool("hujson", false, "Allow comments and trailing commas")
	doStrict = flag.Bool("strict", false, "Reject unknown escape sequences")
	maxDepth = flag.Int("max-depth", 0, "Maximum nesting depth (0 for default, <0 for none)")
	doCheck  = flag.Bool("check", false, "Check syntax only, do not print values")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %[1]s [flags] file.json

Parse a JSON file and print a listing of its values.

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jvalue: ")

	if flag.NArg() != 1 {
		log.Fatal("Please provide a file path")
	}
	path := flag.Arg(0)
	v, err := jfile.Load(path, jfile.Options{
		Parse: jvalue.Options{
			MaxDepth:      *maxDepth,
			StrictEscapes: *doStrict,
		},
		HuJSON: *doHuJSON,
	})
	if err != nil {
		log.Fatal(err)
	}
	if *doCheck {
		return
	}
	if err := list(os.Stdout, v); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
}

// list writes one line for each leaf of v to w.
func list(w io.Writer, v jvalue.Value) error {
	tw := tabwriter.NewWriter(w, 4, 8, 2, ' ', 0)
	walk("$", v, func(path string, v jvalue.Value) {
		fmt.Fprintf(tw, "%s\t%v\t%s\n", path, v.Kind(), display(v))
	})
	return tw.Flush()
}

// walk calls f for each leaf of v in order. Empty arrays and objects are
// treated as leaves.
func walk(path string, v jvalue.Value, f func(string, jvalue.Value)) {
	switch t := v.(type) {
	case jvalue.Array:
		if len(t) == 0 {
			f(path, v)
		}
		for i, elt := range t {
			walk(path+"["+strconv.Itoa(i)+"]", elt, f)
		}
	case *jvalue.Object:
		if t.Len() == 0 {
			f(path, v)
		}
		for _, m := range t.Members() {
			walk(path+selector(m.Key), m.Value, f)
		}
	default:
		f(path, v)
	}
}

var isWord = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func selector(key string) string {
	if isWord.MatchString(key) {
		return "." + key
	}
	return "[" + escape.Quote(mem.S(key)) + "]"
}

func display(v jvalue.Value) string {
	switch t := v.(type) {
	case jvalue.Null:
		return "null"
	case jvalue.Bool:
		return strconv.FormatBool(bool(t))
	case jvalue.Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case jvalue.String:
		return escape.Quote(mem.S(string(t)))
	case jvalue.Array:
		return "[]"
	case *jvalue.Object:
		return "{}"
	default:
		return fmt.Sprint(v)
	}
}
