// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sumauppa/glassfish-license-tool/internal/block"
	"github.com/sumauppa/glassfish-license-tool/internal/copyright"
	"github.com/sumauppa/glassfish-license-tool/internal/header"
	"github.com/sumauppa/glassfish-license-tool/internal/vcs"
	"github.com/sumauppa/glassfish-license-tool/logger"
)

// Modifier fixes header violations and writes changed files back.
type Modifier struct {
	Template  *header.Template
	Licensors []string
	// CheckEmpty removes empty comments.
	CheckEmpty bool
	// StartYear and EndYear are the years of headers added to files that
	// had none.
	StartYear, EndYear string
	// LastModified, if set, extends the end year of computed headers to
	// the year the file was last changed.
	LastModified vcs.LastModifier
	// Writer replaces the contents of the file at path.
	Writer func(path, text string) error
	// DryRun logs changed files instead of writing them.
	DryRun bool
}

// Run implements [Action].
func (m *Modifier) Run(ctx context.Context, f *block.File) Outcome {
	ctx = withPath(ctx, f)
	out := Outcome{Path: f.Path}
	original := f.String()
	hadOwn := block.Classify(f, m.Licensors)

	var (
		lastModified string
		looked       bool
	)
	reconcile := func(existing *copyright.Copyright) (string, bool) {
		if !looked && m.LastModified != nil {
			lastModified, _ = m.LastModified.LastModifiedYear(ctx, f.Path)
			looked = true
		}
		text, err := m.Template.Reconcile(existing, m.StartYear, m.EndYear, lastModified)
		if err != nil {
			out.warn(ctx, err)
		}
		// Without usable years the file keeps its comments.
		var yerr *header.YearError
		return text, !errors.As(err, &yerr) && !errors.Is(err, header.ErrNoStartYear)
	}

	var own int
	for _, c := range f.Comments() {
		if !isOwnHeader(c) {
			if m.CheckEmpty && isEmpty(c) {
				out.edit(ctx, OpRemove, EmptyComment)
				f.Remove(c)
			}
			continue
		}
		own++
		switch {
		case own > 1:
			out.edit(ctx, OpRemove, DuplicateHeader)
			f.Remove(c)
		case c.Tags.Has(block.TagFirst):
			if m.Template.Matches(c.Body()) {
				continue
			}
			if text, ok := reconcile(c.Copyright()); ok {
				out.edit(ctx, OpReplace, MismatchedHeader)
				f.Remove(c)
				f.InsertHeader(text)
			}
		default:
			if m.Template.Matches(c.Body()) {
				out.edit(ctx, OpMove, MisplacedHeader)
				f.Remove(c)
				f.InsertComment(c.Content)
				continue
			}
			if text, ok := reconcile(c.Copyright()); ok {
				out.edit(ctx, OpReplace, MisplacedHeader)
				f.Remove(c)
				f.InsertHeader(text)
			}
		}
	}
	if !hadOwn {
		if text, ok := reconcile(nil); ok {
			out.edit(ctx, OpInsert, MissingHeader)
			f.InsertHeader(text)
		}
	}

	text := f.String()
	if text == original {
		return out
	}
	out.Changed = true
	if m.DryRun {
		logger.Info(ctx, "would update", slog.Int("edits", len(out.Edits)))
		return out
	}
	if err := m.Writer(f.Path, text); err != nil {
		out.Err = fmt.Errorf("writing %s: %w", f.Path, err)
		logger.Error(ctx, "write failed", logger.Err(err))
		return out
	}
	out.Written = true
	logger.Info(ctx, "updated")
	return out
}
