// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package report summarizes the results of a run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sumauppa/glassfish-license-tool/internal/runner"
)

// Summary counts the results of a run.
type Summary struct {
	Files      int // processed files
	Skipped    int
	Violations int // violations in all files
	Invalid    int // files with violations
	Changed    int
	Written    int
	Warnings   int
	Failed     int
}

// Summarize counts results.
func Summarize(results []runner.Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Skipped != "" {
			s.Skipped++
			continue
		}
		s.Files++
		s.Violations += len(r.Violations)
		if len(r.Violations) > 0 {
			s.Invalid++
		}
		if r.Changed {
			s.Changed++
		}
		if r.Written {
			s.Written++
		}
		s.Warnings += len(r.Warnings)
		if r.Failed() {
			s.Failed++
		}
	}
	return s
}

// OK reports whether the run succeeded: no file failed and, when
// validating, no file had violations.
func (s Summary) OK(validate bool) bool {
	if s.Failed > 0 {
		return false
	}
	return !validate || s.Violations == 0
}

// Line returns a one-line description of s.
func (s Summary) Line(validate bool) string {
	parts := []string{fmt.Sprintf("%s files checked", humanize.Comma(int64(s.Files)))}
	if validate {
		parts = append(parts, fmt.Sprintf("%s violations in %s files", humanize.Comma(int64(s.Violations)), humanize.Comma(int64(s.Invalid))))
	} else {
		parts = append(parts, fmt.Sprintf("%s files changed", humanize.Comma(int64(s.Changed))))
		if s.Written < s.Changed {
			parts = append(parts, fmt.Sprintf("%s written", humanize.Comma(int64(s.Written))))
		}
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%s skipped", humanize.Comma(int64(s.Skipped))))
	}
	if s.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%s warnings", humanize.Comma(int64(s.Warnings))))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%s failed", humanize.Comma(int64(s.Failed))))
	}
	return strings.Join(parts, ", ")
}

// Text writes a plain text report of results to w: one line per
// violation, change, warning or failure, followed by the summary.
func Text(w io.Writer, results []runner.Result, validate bool) error {
	var b strings.Builder
	for _, r := range results {
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "%s: %s\n", r.Path, v.Kind.Message())
		}
		if !validate && r.Changed {
			verb := "updated"
			if !r.Written {
				verb = "would update"
			}
			fmt.Fprintf(&b, "%s: %s (%s)\n", r.Path, verb, edits(r))
		}
		for _, err := range r.Warnings {
			fmt.Fprintf(&b, "%s: warning: %v\n", r.Path, err)
		}
		if r.Failed() {
			fmt.Fprintf(&b, "%s: error: %v\n", r.Path, r.Err)
		}
	}
	b.WriteString(Summarize(results).Line(validate))
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func edits(r runner.Result) string {
	ops := make([]string, len(r.Edits))
	for i, e := range r.Edits {
		ops[i] = string(e.Op)
	}
	return strings.Join(ops, ", ")
}
