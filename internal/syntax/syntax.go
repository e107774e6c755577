// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syntax maps file names to the comment syntax used to write
// copyright headers into them.
package syntax

import "strings"

// Kind is the shape of a comment syntax.
type Kind int

const (
	// None means the file has no known comment syntax.
	None Kind = iota
	// Line comments start every line with a prefix, like "# ".
	Line
	// Block comments are enclosed in an open and close delimiter, like "/*"
	// and "*/".
	Block
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Block:
		return "block"
	default:
		return "none"
	}
}

// Style describes how comments are written in a family of files.
// A Style is immutable once resolved.
type Style struct {
	// Name identifies the family, like "java" or "shell".
	Name string
	Kind Kind

	// Prefix starts every line of a line comment.
	Prefix string

	// Open and Close delimit a block comment. Line is an optional marker
	// written at the start of each line inside a rendered block comment.
	Open  string
	Line  string
	Close string

	// FirstLine, if set, is the prefix of a line that must stay first in
	// the file (like "#!" for shell scripts).
	FirstLine string
}

// Marker returns the text that identifies a comment line: the prefix of a
// line style without surrounding spaces.
func (s Style) Marker() string {
	if s.Kind == Block {
		return strings.TrimSpace(s.Line)
	}
	return strings.TrimSpace(s.Prefix)
}

// Styles used by the built-in registry.
var (
	Java = Style{Name: "java", Kind: Block, Open: "/*", Line: " *", Close: " */"}
	XML  = Style{Name: "xml", Kind: Block, Open: "<!--", Close: "-->", FirstLine: "<?xml"}
	HTML = Style{Name: "html", Kind: Block, Open: "<!--", Close: "-->"}
	JSP  = Style{Name: "jsp", Kind: Block, Open: "<%--", Close: "--%>"}

	JavaLine    = Style{Name: "java-line", Kind: Line, Prefix: "// "}
	Scheme      = Style{Name: "scheme", Kind: Line, Prefix: "; "}
	ShellScript = Style{Name: "shell-script", Kind: Line, Prefix: "# ", FirstLine: "#!"}
	Shell       = Style{Name: "shell", Kind: Line, Prefix: "# "}

	NoComments = Style{Name: "none", Kind: None}
)
