// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header computes copyright headers from a template.
//
// A template is plain header text, without comment delimiters, in which
// the year placeholders [Year] and [YearList] mark where years go. For
// example:
//
//	Copyright (c) YYYY Oracle and/or its affiliates. All rights reserved.
//
// [Reconcile] fills in the placeholders, merging the years of an existing
// header, and [Matcher] turns a template into a pattern that accepts any
// header Reconcile could have produced from it.
package header

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/internal/copyright"
)

// Year placeholders.
const (
	// Year is replaced with "2001 " or "2001-2010 ".
	Year = "YYYY "
	// YearList is replaced with "2001, " or "2001, 2010, ".
	YearList = "YYYY, "
)

var (
	// ErrNoStartYear means that no start year could be found: there was no
	// existing header and no default start year is configured.
	ErrNoStartYear = errors.New("no start year")
	// ErrNoPlaceholder is returned by [New] for templates without a year
	// placeholder.
	ErrNoPlaceholder = errors.New("template has no year placeholder")
)

// YearError reports a year that is not four digits.
type YearError struct {
	Which string // "start" or "end"
	Year  string
}

func (e *YearError) Error() string {
	return fmt.Sprintf("invalid %s year %q: want four digits", e.Which, e.Year)
}

// Template is a normalized header template with its matcher.
type Template struct {
	text    string
	matcher *regexp.Regexp
}

// New normalizes text with [Normalize] and returns it as a Template.
func New(text string) (*Template, error) {
	text = Normalize(text)
	if !HasPlaceholder(text) {
		return nil, ErrNoPlaceholder
	}
	return &Template{text: text, matcher: Matcher(text)}, nil
}

// MustNew is like [New], but panics on error.
func MustNew(text string) *Template {
	t, err := New(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Text returns the normalized template text.
func (t *Template) Text() string { return t.text }

// Matches reports whether body, the text of a comment without its
// delimiters, is an instance of the template.
func (t *Template) Matches(body string) bool { return t.matcher.MatchString(body) }

// Reconcile calls [Reconcile] with the template text.
func (t *Template) Reconcile(existing *copyright.Copyright, defStart, defEnd, lastModified string) (string, error) {
	return Reconcile(t.text, existing, defStart, defEnd, lastModified)
}

// Normalize converts line breaks in text to "\n" and makes sure it ends
// with one.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// HasPlaceholder reports whether text contains a year placeholder.
func HasPlaceholder(text string) bool {
	return strings.Contains(text, Year) || strings.Contains(text, YearList)
}

// Years merges the years a header should carry.
//
// The default years apply only when there is no existing header. The end
// year is raised to lastModified if that is later, and both are then
// widened to cover the years of the existing header. Years are compared
// as strings. An empty string means the year is unset.
func Years(existing *copyright.Copyright, defStart, defEnd, lastModified string) (start, end string) {
	if existing == nil {
		start, end = defStart, defEnd
	}
	if end == "" || (lastModified != "" && lastModified > end) {
		end = lastModified
	}
	if existing != nil {
		if start == "" || (existing.Start != "" && existing.Start < start) {
			start = existing.Start
		}
		if end == "" || (existing.End != "" && existing.End > end) {
			end = existing.End
		}
	}
	return start, end
}

// Reconcile returns the header for tmpl with its year placeholders
// replaced by the years computed by [Years].
//
// Lines containing [Year] get "start-end " when the end year is later than
// the start year, and "start " otherwise. Lines containing [YearList] get
// "start, " followed by "end, " when the end year is later. Other lines are
// copied unchanged.
//
// If no start year is known, Reconcile returns tmpl with its placeholders
// in place together with [ErrNoStartYear]. If a year is not four digits,
// it returns an empty string and a [*YearError].
func Reconcile(tmpl string, existing *copyright.Copyright, defStart, defEnd, lastModified string) (string, error) {
	start, end := Years(existing, defStart, defEnd, lastModified)
	if start == "" {
		return tmpl, ErrNoStartYear
	}
	if !isYear(start) {
		return "", &YearError{Which: "start", Year: start}
	}
	if end != "" && !isYear(end) {
		return "", &YearError{Which: "end", Year: end}
	}
	ranged := end != "" && end > start

	var sb strings.Builder
	sb.Grow(len(tmpl))
	for line := range strings.Lines(tmpl) {
		switch {
		case strings.Contains(line, Year):
			years := start + " "
			if ranged {
				years = start + "-" + end + " "
			}
			line = strings.ReplaceAll(line, Year, years)
		case strings.Contains(line, YearList):
			years := start + ", "
			if ranged {
				years += end + ", "
			}
			line = strings.ReplaceAll(line, YearList, years)
		}
		sb.WriteString(line)
	}
	return sb.String(), nil
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
