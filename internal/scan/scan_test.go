// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/sumauppa/glassfish-license-tool/testutil"
)

const tree = `
-- src/b/B.java --
-- src/a/A.java --
-- src/a/build/Generated.java --
-- src/.git/config --
-- src/.svn/entries --
-- README --
`

func TestWalk(t *testing.T) {
	dir := t.TempDir()
	testutil.ExtractTxtar(t, txtar.Parse([]byte(tree)), dir)

	rel := func(files []string) []string {
		var got []string
		for _, f := range files {
			r, err := filepath.Rel(dir, f)
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, filepath.ToSlash(r))
		}
		return got
	}

	cases := map[string]struct {
		roots []string
		skip  func(string) bool
		want  []string
	}{
		"everything": {
			roots: []string{dir},
			want:  []string{"README", "src/a/A.java", "src/a/build/Generated.java", "src/b/B.java"},
		},
		"skip dirs": {
			roots: []string{dir},
			skip:  SkipNames([]string{"build", "b"}),
			want:  []string{"README", "src/a/A.java"},
		},
		"file root and duplicates": {
			roots: []string{filepath.Join(dir, "src", "b"), filepath.Join(dir, "README"), filepath.Join(dir, "src", "b", "B.java")},
			want:  []string{"README", "src/b/B.java"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			files, err := Walk(tc.roots, tc.skip)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, rel(files), tc.want)
		})
	}
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk([]string{filepath.Join(t.TempDir(), "missing")}, nil)
	if !os.IsNotExist(err) {
		t.Fatalf("Walk() error = %v, want not exist", err)
	}
}
