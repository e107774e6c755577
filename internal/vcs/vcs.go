// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package vcs looks up when files were last changed in version control.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sumauppa/glassfish-license-tool/logger"
	"github.com/sumauppa/glassfish-license-tool/syncx"
)

// LastModifier looks up the year a file was last changed.
//
// An absent year is not an error: files that are not tracked, or a missing
// VCS binary, simply report false.
type LastModifier interface {
	LastModifiedYear(ctx context.Context, path string) (year string, ok bool)
}

// ErrUnsupported is returned by [New] for unknown version control systems.
var ErrUnsupported = errors.New("unsupported version control system")

// Runner runs a VCS command in dir and returns its standard output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Exec runs commands with [os/exec].
func Exec(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out, nil
}

// System is a version control system queried through its command-line
// tool.
type System struct {
	// Name is the name of the system and of its binary, like "git".
	Name string
	// Args returns the arguments that print the year file was last changed.
	Args func(file string) []string
	// Run runs commands. If nil, [Exec] runs the binary found in PATH.
	Run Runner

	cache *lru.Cache[string, string]
	bin   syncx.Lazy[string]
}

// CacheSize is the number of files whose years a [System] remembers.
const CacheSize = 4096

var systems = map[string]func(file string) []string{
	"git": func(file string) []string {
		return []string{"log", "-1", "--format=%cd", "--date=format:%Y", "--", file}
	},
	"hg": func(file string) []string {
		return []string{"log", "--limit", "1", "--template", `{date(date, "%Y")}`, file}
	},
}

// New returns the lookup for the named system. An empty name returns nil.
func New(name string) (*System, error) {
	if name == "" {
		return nil, nil
	}
	args, ok := systems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	cache, err := lru.New[string, string](CacheSize)
	if err != nil {
		return nil, err
	}
	return &System{Name: name, Args: args, cache: cache}, nil
}

// LastModifiedYear implements [LastModifier].
func (s *System) LastModifiedYear(ctx context.Context, path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if s.cache != nil {
		if year, ok := s.cache.Get(abs); ok {
			return year, year != ""
		}
	}

	name, run := s.Name, s.Run
	if run == nil {
		bin, err := s.bin.GetErr(func() (string, error) {
			bin, err := exec.LookPath(s.Name)
			if err != nil {
				logger.Warn(ctx, "version control binary not found", slog.String("name", s.Name), logger.Err(err))
			}
			return bin, err
		})
		if err != nil {
			return "", false
		}
		name, run = bin, Exec
	}
	var year string
	out, err := run(ctx, filepath.Dir(abs), name, s.Args(filepath.Base(abs))...)
	if err == nil {
		if y := strings.TrimSpace(string(out)); isYear(y) {
			year = y
		}
	}
	if s.cache != nil {
		s.cache.Add(abs, year)
	}
	return year, year != ""
}

// Detect returns the name of the version control system managing path, a
// file or directory, or an empty string. It looks for metadata directories
// next to path and in its parents.
func Detect(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	for {
		for _, meta := range []struct{ dir, name string }{{".git", "git"}, {".hg", "hg"}} {
			if _, err := os.Stat(filepath.Join(abs, meta.dir)); err == nil {
				return meta.name
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
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
