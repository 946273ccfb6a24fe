/*
File    : skai/sloc/sloc.go
Package : sloc
*/

// Package sloc attaches source-location metadata (file, line, column)
// to tokens and AST nodes so that lex, parse, and evaluation errors can
// point back at the offending text.
package sloc

import "fmt"

// Location identifies a single point in a source file.
type Location struct {
	File   string // name passed to the interpreter (a path, or "argv" for -e sources)
	Line   int    // 1-indexed
	Column int    // 1-indexed
}

// String renders the location as "file:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsZero reports whether the location carries no position information.
func (l Location) IsZero() bool {
	return l.Line == 0 && l.Column == 0
}
