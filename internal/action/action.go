// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package action checks and fixes the copyright headers of parsed files.
//
// A [Validator] reports what is wrong with a file's headers. A [Modifier]
// fixes the same problems in place and writes the file back.
package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/block"
	"github.com/sumauppa/glassfish-license-tool/logger"
)

// Action runs on one parsed file at a time.
type Action interface {
	Run(ctx context.Context, f *block.File) Outcome
}

// Kind is a kind of header violation.
type Kind int

// Violation kinds.
const (
	MissingHeader Kind = iota + 1
	DuplicateHeader
	MisplacedHeader
	MismatchedHeader
	EmptyComment
)

var kinds = map[Kind]struct{ name, msg string }{
	MissingHeader:    {"missing-header", "no copyright header"},
	DuplicateHeader:  {"duplicate-header", "more than one copyright header"},
	MisplacedHeader:  {"misplaced-header", "copyright header is not the first comment"},
	MismatchedHeader: {"mismatched-header", "copyright header does not match the template"},
	EmptyComment:     {"empty-comment", "empty comment"},
}

func (k Kind) String() string {
	if d, ok := kinds[k]; ok {
		return d.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Message returns a human-readable description of k.
func (k Kind) Message() string {
	if d, ok := kinds[k]; ok {
		return d.msg
	}
	return k.String()
}

// Violation is a problem found in a file.
type Violation struct {
	Kind Kind
	Path string
	// Block is the text of the offending comment. It is empty for
	// MissingHeader.
	Block string
}

func (v Violation) Error() string {
	return v.Path + ": " + v.Kind.Message()
}

// Op is a change made by a [Modifier].
type Op string

// Changes made by a Modifier.
const (
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpMove    Op = "move"
	OpInsert  Op = "insert"
)

// Edit records one change and the violation that caused it.
type Edit struct {
	Op   Op
	Kind Kind
}

// Outcome is the result of running an action on a file.
type Outcome struct {
	Path       string
	Violations []Violation
	Edits      []Edit
	// Changed is set when the modified text differs from the original.
	Changed bool
	// Written is set when the modified text was written back.
	Written bool
	// Warnings are configuration problems that did not stop processing,
	// like a missing start year.
	Warnings []error
	// Err is set when processing the file failed.
	Err error
}

// Failed reports whether processing the file failed.
func (o *Outcome) Failed() bool { return o.Err != nil }

func (o *Outcome) violate(ctx context.Context, k Kind, c *block.Comment) {
	v := Violation{Kind: k, Path: o.Path}
	if c != nil {
		v.Block = c.Content
	}
	o.Violations = append(o.Violations, v)
	logger.Warn(ctx, k.Message())
}

func (o *Outcome) edit(ctx context.Context, op Op, k Kind) {
	o.Edits = append(o.Edits, Edit{Op: op, Kind: k})
	logger.Debug(ctx, string(op), slog.String("reason", k.Message()))
}

func (o *Outcome) warn(ctx context.Context, err error) {
	o.Warnings = append(o.Warnings, err)
	logger.Warn(ctx, "cannot compute header", logger.Err(err))
}

// withPath returns ctx with a logger that names the file of f.
func withPath(ctx context.Context, f *block.File) context.Context {
	return logger.With(ctx, slog.String("path", f.Path))
}

func isOwnHeader(c *block.Comment) bool {
	return c.Tags.HasAll(block.TagOwn, block.TagCopyright)
}

func isEmpty(c *block.Comment) bool {
	return strings.TrimSpace(c.Body()) == ""
}
