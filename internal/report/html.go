// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package report

//go:generate go tool templ generate

import (
	"github.com/a-h/templ"

	"github.com/sumauppa/glassfish-license-tool/internal/runner"
)

// HTML returns a page listing results that need attention: files with
// violations, changes, warnings or failures.
func HTML(title string, results []runner.Result, validate bool) templ.Component {
	var rows []row
	for _, r := range results {
		rows = append(rows, problems(r, validate)...)
	}
	return page(title, Summarize(results).Line(validate), rows)
}

// row is one problem in a file. block is the offending comment, if any.
type row struct {
	path  string
	text  string
	block string
}

func problems(r runner.Result, validate bool) []row {
	var rows []row
	add := func(text, block string) {
		rows = append(rows, row{path: r.Path, text: text, block: block})
	}
	for _, v := range r.Violations {
		add(v.Kind.Message(), v.Block)
	}
	if !validate && r.Changed {
		add("changed: "+edits(r), "")
	}
	for _, err := range r.Warnings {
		add("warning: "+err.Error(), "")
	}
	if r.Failed() {
		add("error: "+r.Err.Error(), "")
	}
	return rows
}
