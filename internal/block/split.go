// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package block

import (
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
)

// Split splits text into blocks according to style.
//
// Splitting is lossless: [Join] of the result always equals text.
// Nested block comments are not recognized; the first close delimiter ends
// a comment. The line break right after a close delimiter belongs to the
// comment.
func Split(text string, style syntax.Style) []Block {
	var blocks []Block
	if style.FirstLine != "" && strings.HasPrefix(text, style.FirstLine) {
		line, rest := cutLine(text)
		blocks = append(blocks, &Plain{Content: line, Pinned: true})
		text = rest
	}

	switch style.Kind {
	case syntax.Block:
		return splitBlocks(blocks, text, style)
	case syntax.Line:
		return splitLines(blocks, text, style)
	default:
		if text != "" {
			blocks = append(blocks, &Plain{Content: text})
		}
		return blocks
	}
}

func splitBlocks(blocks []Block, text string, style syntax.Style) []Block {
	closing := strings.TrimSpace(style.Close)
	for text != "" {
		i := strings.Index(text, style.Open)
		if i < 0 {
			return append(blocks, &Plain{Content: text})
		}
		if i > 0 {
			blocks = append(blocks, &Plain{Content: text[:i]})
			text = text[i:]
		}

		j := strings.Index(text[len(style.Open):], closing)
		if j < 0 {
			// Unterminated comment.
			return append(blocks, &Plain{Content: text})
		}
		end := len(style.Open) + j + len(closing)
		end += lineBreak(text[end:])
		blocks = append(blocks, &Comment{Content: text[:end], Style: style})
		text = text[end:]
	}
	return blocks
}

func splitLines(blocks []Block, text string, style syntax.Style) []Block {
	marker := style.Marker()
	var (
		run       strings.Builder
		inComment bool
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inComment {
			blocks = append(blocks, &Comment{Content: run.String(), Style: style})
		} else {
			blocks = append(blocks, &Plain{Content: run.String()})
		}
		run.Reset()
	}

	for line := range strings.Lines(text) {
		isComment := marker != "" && strings.HasPrefix(strings.TrimLeft(line, " \t"), marker)
		if isComment != inComment {
			flush()
			inComment = isComment
		}
		run.WriteString(line)
	}
	flush()
	return blocks
}

// cutLine splits text after its first line break.
func cutLine(text string) (line, rest string) {
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return text, ""
	}
	return text[:i+1], text[i+1:]
}

// lineBreak returns the length of the optional spaces and line break that
// start s, or 0 if s does not start with a line break.
func lineBreak(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	switch {
	case strings.HasPrefix(s[i:], "\r\n"):
		return i + 2
	case strings.HasPrefix(s[i:], "\n"), strings.HasPrefix(s[i:], "\r"):
		return i + 1
	default:
		return 0
	}
}
