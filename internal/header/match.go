// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"strings"
)

const (
	yearPattern     = `[0-9]{4}(-[0-9]{4})? `
	yearListPattern = `([0-9]{4}, )+`
)

// Matcher returns a pattern matching the instances of tmpl: the template
// text with each placeholder replaced by any valid years. Everything else,
// including whitespace and line breaks, must match exactly.
func Matcher(tmpl string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`\A`)
	for line := range strings.Lines(tmpl) {
		switch {
		case strings.Contains(line, Year):
			sb.WriteString(quoteAround(line, Year, yearPattern))
		case strings.Contains(line, YearList):
			sb.WriteString(quoteAround(line, YearList, yearListPattern))
		default:
			sb.WriteString(regexp.QuoteMeta(line))
		}
	}
	sb.WriteString(`\z`)
	return regexp.MustCompile(sb.String())
}

// Matches reports whether text is an instance of tmpl.
func Matches(tmpl, text string) bool {
	return Matcher(tmpl).MatchString(text)
}

func quoteAround(line, placeholder, pattern string) string {
	parts := strings.Split(line, placeholder)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, pattern)
}
