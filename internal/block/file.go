// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package block

import (
	"slices"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
)

// File is a source file split into blocks.
//
// Concatenating the blocks reproduces the file. Blocks may be removed and
// headers inserted; the File owns its blocks exclusively.
type File struct {
	Path    string
	Style   syntax.Style
	LineSep string
	Blocks  []Block
}

// Parse splits text, the content of the file at path, into a File.
// sep is the line separator used for inserted text.
func Parse(path, text string, style syntax.Style, sep string) *File {
	if sep == "" {
		sep = "\n"
	}
	return &File{
		Path:    path,
		Style:   style,
		LineSep: sep,
		Blocks:  Split(text, style),
	}
}

// Comments returns the comment blocks in file order. The returned slice is
// a snapshot: removing or inserting blocks does not change it.
func (f *File) Comments() []*Comment {
	var comments []*Comment
	for _, b := range f.Blocks {
		if c, ok := b.(*Comment); ok {
			comments = append(comments, c)
		}
	}
	return comments
}

// Remove removes b from the file. It reports whether b was found.
func (f *File) Remove(b Block) bool {
	i := slices.Index(f.Blocks, b)
	if i < 0 {
		return false
	}
	f.Blocks = slices.Delete(f.Blocks, i, i+1)
	return true
}

// HeaderIndex returns the position where a header is inserted: after a
// pinned first line, or at the start of the file.
func (f *File) HeaderIndex() int {
	if len(f.Blocks) > 0 {
		if p, ok := f.Blocks[0].(*Plain); ok && p.Pinned {
			return 1
		}
	}
	return 0
}

// InsertHeader renders body as a comment in the file's style and inserts
// it at [File.HeaderIndex].
//
// The header is followed by an empty line when the text after it does not
// start with one, so that it stays a separate comment when the file is
// split again.
func (f *File) InsertHeader(body string) *Comment {
	return f.insert(Render(body, f.Style, f.LineSep))
}

// InsertComment inserts an already rendered comment at [File.HeaderIndex].
func (f *File) InsertComment(content string) *Comment {
	return f.insert(content)
}

func (f *File) insert(content string) *Comment {
	pos := f.HeaderIndex()
	if pos > 0 {
		if p, ok := f.Blocks[pos-1].(*Plain); ok && !endsWithLineBreak(p.Content) {
			p.Content += f.LineSep
		}
	}
	if !endsWithLineBreak(content) {
		content += f.LineSep
	}
	if pos < len(f.Blocks) && !startsWithLineBreak(f.Blocks[pos].Text()) {
		content += f.LineSep
	}
	c := &Comment{Content: content, Style: f.Style}
	f.Blocks = slices.Insert(f.Blocks, pos, Block(c))
	return c
}

// String returns the text of the file.
func (f *File) String() string { return Join(f.Blocks) }

func endsWithLineBreak(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}

func startsWithLineBreak(s string) bool {
	s = strings.TrimLeft(s, " \t")
	return strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\r")
}
