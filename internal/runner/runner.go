// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package runner runs an action over many files.
package runner

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"

	"github.com/sumauppa/glassfish-license-tool/internal/action"
	"github.com/sumauppa/glassfish-license-tool/internal/block"
	"github.com/sumauppa/glassfish-license-tool/internal/fileio"
	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
	"github.com/sumauppa/glassfish-license-tool/logger"
	"github.com/sumauppa/glassfish-license-tool/syncx"
)

// Reasons for skipping a file.
const (
	SkipUnknown = "unknown file type"
	SkipBinary  = "binary content"
)

// Result is the result of processing one file.
type Result struct {
	action.Outcome
	// Skipped is the reason the file was not processed, if it was not.
	Skipped string
	// Style is the name of the comment syntax of the file.
	Style string
}

// Runner processes files with an action.
type Runner struct {
	Registry *syntax.Registry
	Action   action.Action
	// Jobs is the number of files processed at once. Values below one
	// mean one.
	Jobs int
	// Read returns the content of a file. If nil, [fileio.Read] is used.
	Read func(path string) (string, error)
}

// Run processes paths and returns a result for each, sorted by path. A
// failure in one file does not stop the others.
//
// Once ctx is done, files not yet started fail with the context's error.
func (r *Runner) Run(ctx context.Context, paths []string) []Result {
	var (
		results = syncx.Protect(&[]Result{})
		lwg     = syncx.NewLimitedWaitGroup(max(r.Jobs, 1))
	)
	add := func(res Result) {
		results.WriteAccess(func(rs *[]Result) { *rs = append(*rs, res) })
	}
	for _, path := range paths {
		started := lwg.GoContext(ctx, func() { add(r.process(ctx, path)) })
		if !started {
			add(Result{Outcome: action.Outcome{Path: path, Err: ctx.Err()}})
		}
	}
	lwg.Wait()

	var out []Result
	results.ReadAccess(func(rs *[]Result) { out = *rs })
	slices.SortFunc(out, func(a, b Result) int { return cmp.Compare(a.Path, b.Path) })
	return out
}

func (r *Runner) process(ctx context.Context, path string) (res Result) {
	defer func() {
		if v := recover(); v != nil {
			res = Result{Outcome: action.Outcome{Path: path, Err: fmt.Errorf("panic: %v", v)}}
			logger.Error(ctx, "panic while processing file",
				slog.String("path", path),
				slog.Any("panic", v),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	style, ok := r.Registry.Lookup(path)
	if !ok {
		logger.Debug(ctx, "skipping", slog.String("path", path), slog.String("reason", SkipUnknown))
		return Result{Outcome: action.Outcome{Path: path}, Skipped: SkipUnknown}
	}
	res.Style = style.Name

	read := r.Read
	if read == nil {
		read = fileio.Read
	}
	text, err := read(path)
	if err != nil {
		logger.Error(ctx, "read failed", slog.String("path", path), logger.Err(err))
		res.Outcome = action.Outcome{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
		return res
	}
	if syntax.IsBinary([]byte(text)) {
		logger.Debug(ctx, "skipping", slog.String("path", path), slog.String("reason", SkipBinary))
		res.Outcome = action.Outcome{Path: path}
		res.Skipped = SkipBinary
		return res
	}

	f := block.Parse(path, text, style, fileio.LineSeparator(text))
	res.Outcome = r.Action.Run(ctx, f)
	return res
}
