// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package block splits source files into comment and plain text blocks,
// and classifies comment blocks that carry copyright notices.
package block

import (
	"slices"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/copyright"
	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
)

// Block is a contiguous run of a file's text. It is either a [*Plain] or a
// [*Comment].
type Block interface {
	// Text returns the block's literal content.
	Text() string

	isBlock()
}

// Plain is text without special meaning.
type Plain struct {
	Content string
	// Pinned is set for a required first line (like "#!/bin/sh") that must
	// stay at the top of the file.
	Pinned bool
}

func (p *Plain) Text() string { return p.Content }

func (*Plain) isBlock() {}

// Comment is a single contiguous comment, including its delimiters.
type Comment struct {
	Content string
	Style   syntax.Style
	Tags    TagSet

	notice *copyright.Copyright
	parsed bool
}

func (c *Comment) Text() string { return c.Content }

func (*Comment) isBlock() {}

// Copyright returns the copyright notice carried by the comment, or nil.
// The comment is parsed on first use.
func (c *Comment) Copyright() *copyright.Copyright {
	if !c.parsed {
		c.notice = copyright.Parse(c.Body())
		c.parsed = true
	}
	return c.notice
}

// Body returns the comment text without delimiters or line markers.
func (c *Comment) Body() string { return Body(c.Content, c.Style) }

// Find reports whether the comment text contains s.
func (c *Comment) Find(s string) bool { return strings.Contains(c.Content, s) }

// Tag is a classification attached to a comment block.
type Tag string

// Known tags.
const (
	TagFirst     Tag = "first-comment-in-file"
	TagCopyright Tag = "is-a-copyright-block"
	TagOwn       Tag = "is-our-own-copyright"
	TagCDDL      Tag = "uses-CDDL-license"
)

// TagSet is an unordered set of tags. The zero value is an empty set ready
// to use through [TagSet.Add].
type TagSet map[Tag]struct{}

// Add adds tags to the set, allocating it if needed.
func (s *TagSet) Add(tags ...Tag) {
	if *s == nil {
		*s = make(TagSet, len(tags))
	}
	for _, t := range tags {
		(*s)[t] = struct{}{}
	}
}

// Has reports whether the set contains t.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// HasAll reports whether the set contains every one of tags.
func (s TagSet) HasAll(tags ...Tag) bool {
	for _, t := range tags {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	tags := make([]Tag, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Join concatenates the text of blocks in order.
func Join(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Text())
	}
	return sb.String()
}
