// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package scan lists the files to process.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// metaDirs are version control directories, never scanned.
var metaDirs = []string{".git", ".hg", ".svn"}

// Walk returns the regular files under roots, sorted and without
// duplicates. A root may be a file or a directory.
//
// Directories whose base name is a version control metadata directory, or
// for which skip returns true, are not entered. skip may be nil.
func Walk(roots []string, skip func(name string) bool) ([]string, error) {
	var files []string
	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				if slices.Contains(metaDirs, name) || (skip != nil && skip(name)) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// SkipNames returns a skip predicate matching any of names.
func SkipNames(names []string) func(string) bool {
	return func(name string) bool { return slices.Contains(names, name) }
}
