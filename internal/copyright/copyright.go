// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package copyright extracts copyright notices from comment text.
//
// Parsing is a literal text search, not a grammar: it looks for the word
// "Copyright", the years that follow it and the rest of that line, which
// names the licensor.
package copyright

import (
	"strings"
	"unicode"
)

// Keyword starts every copyright notice. It is matched case-sensitively.
const Keyword = "Copyright"

// DefaultLicensors identify our own copyright notices when no other
// licensors are configured.
var DefaultLicensors = []string{"Sun", "Oracle"}

// Copyright is a parsed copyright notice.
//
// Years are kept as text. Start is never empty for a parsed notice; End is
// empty when the notice names a single year. Start <= End is expected, but
// not enforced.
type Copyright struct {
	Licensor string
	Start    string
	End      string
}

// Parse finds the first copyright notice in text. It returns nil if text
// has no "Copyright" followed by a year.
func Parse(text string) *Copyright {
	i := strings.Index(text, Keyword)
	if i < 0 {
		return nil
	}
	rest := skipSigns(text[i+len(Keyword):])

	start, rest := digits(rest)
	if start == "" {
		return nil
	}
	c := &Copyright{Start: start}

	if r := trimBlank(rest); strings.HasPrefix(r, "-") {
		// Range form: 1997-2011.
		if end, after := digits(trimBlank(r[1:])); end != "" {
			c.End, rest = end, after
		}
	} else {
		// List form: 1997, 2003, 2011.
		for {
			r := trimBlank(rest)
			if !strings.HasPrefix(r, ",") {
				break
			}
			year, after := digits(trimBlank(r[1:]))
			if year == "" {
				break
			}
			c.End, rest = year, after
		}
	}

	line, _, _ := strings.Cut(rest, "\n")
	c.Licensor = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), ","))
	return c
}

// Years returns the notice's years as they would be written in a header,
// like "1997-2011" or "2005".
func (c *Copyright) Years() string {
	if c.End == "" || c.End == c.Start {
		return c.Start
	}
	return c.Start + "-" + c.End
}

// OwnedBy reports whether the licensor contains any of the given
// identifiers.
func (c *Copyright) OwnedBy(licensors []string) bool {
	if c == nil || c.Licensor == "" {
		return false
	}
	for _, l := range licensors {
		if l != "" && strings.Contains(c.Licensor, l) {
			return true
		}
	}
	return false
}

var signs = []string{"(c)", "(C)", "©"}

// skipSigns drops whitespace and copyright signs between the keyword and
// the first year.
func skipSigns(s string) string {
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		trimmed := false
		for _, sign := range signs {
			if strings.HasPrefix(s, sign) {
				s = s[len(sign):]
				trimmed = true
			}
		}
		if !trimmed {
			return s
		}
	}
}

func digits(s string) (run, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func trimBlank(s string) string { return strings.TrimLeft(s, " \t") }
