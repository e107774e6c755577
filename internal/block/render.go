// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package block

import (
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
)

// Body strips comment syntax from content, a comment written in style.
// Every line of the result ends with "\n", whatever the line separator of
// content was.
//
// Body is the inverse of [Render]: Body(Render(body, style, sep), style)
// equals body for any body made of "\n"-terminated lines.
func Body(content string, style syntax.Style) string {
	marker := style.Marker()
	var sb strings.Builder
	write := func(line string) {
		if marker != "" {
			if t := strings.TrimLeft(line, " \t"); strings.HasPrefix(t, marker) {
				line = strings.TrimPrefix(t[len(marker):], " ")
			}
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	switch style.Kind {
	case syntax.Line:
		for line := range strings.Lines(content) {
			write(strings.TrimRight(line, "\r\n"))
		}
	case syntax.Block:
		s := strings.TrimRight(content, " \t\r\n")
		s = strings.TrimPrefix(s, style.Open)
		s = strings.TrimSuffix(s, strings.TrimSpace(style.Close))
		lines := strings.Split(s, "\n")
		for i := range lines {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
		// The rest of the opening line, like the second star of "/**".
		if isBlank(strings.TrimLeft(lines[0], " \t"+marker)) {
			lines = lines[1:]
		}
		if n := len(lines); n > 0 && isBlank(lines[n-1]) {
			lines = lines[:n-1]
		}
		for _, line := range lines {
			write(line)
		}
	default:
		return content
	}
	return sb.String()
}

// Render writes body as a comment in style, using sep as the line
// separator. The result ends with sep.
func Render(body string, style syntax.Style, sep string) string {
	var sb strings.Builder
	switch style.Kind {
	case syntax.Line:
		for line := range strings.Lines(body) {
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				sb.WriteString(style.Marker())
			} else {
				sb.WriteString(style.Prefix + line)
			}
			sb.WriteString(sep)
		}
	case syntax.Block:
		sb.WriteString(style.Open + sep)
		for line := range strings.Lines(body) {
			line = strings.TrimRight(line, "\r\n")
			switch {
			case style.Line == "":
				sb.WriteString(line)
			case line == "":
				sb.WriteString(style.Line)
			default:
				sb.WriteString(style.Line + " " + line)
			}
			sb.WriteString(sep)
		}
		sb.WriteString(style.Close + sep)
	default:
		return body
	}
	return sb.String()
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
