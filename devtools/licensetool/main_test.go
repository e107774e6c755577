// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/sumauppa/glassfish-license-tool/cli"
	"github.com/sumauppa/glassfish-license-tool/cli/clitest"
	"github.com/sumauppa/glassfish-license-tool/internal/config"
	"github.com/sumauppa/glassfish-license-tool/internal/vcs"
	"github.com/sumauppa/glassfish-license-tool/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

const oracle = "Copyright (c) YYYY Oracle and/or its affiliates. All rights reserved.\n"

// tree extracts the archive in src into a new directory.
func tree(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.ExtractTxtar(t, txtar.Parse([]byte(src)), dir)
	return dir
}

func TestGolden(t *testing.T) {
	testutil.RunGolden(t, "testdata/*.txtar", func(t *testing.T, match string) []byte {
		ar, err := txtar.ParseFile(match)
		if err != nil {
			t.Fatal(err)
		}
		dir := t.TempDir()
		testutil.ExtractTxtar(t, ar, dir)

		args := []string{"-template", filepath.Join(dir, "template.txt")}
		args = append(args, strings.Fields(string(ar.Comment))...)
		args = append(args, filepath.Join(dir, "src"))

		var stdout, stderr bytes.Buffer
		env := &cli.Env{
			Args:   args,
			Getenv: func(string) string { return "" },
			Stdin:  strings.NewReader(""),
			Stdout: &stdout,
			Stderr: &stderr,
		}
		if err := cli.Run(cli.WithEnv(context.Background(), env), new(app)); err != nil {
			t.Fatalf("run failed: %v\nstdout:\n%s\nstderr:\n%s", err, stdout.String(), stderr.String())
		}
		return testutil.BuildTxtar(t, dir)
	}, *update)
}

func TestRun(t *testing.T) {
	const files = `
-- good/Good.java --
/*
 * Copyright (c) 1997-2010 Oracle and/or its affiliates. All rights reserved.
 */
class Good {}
-- bad/Bad.java --
/* Copyright 2003 Oracle */
/* Copyright 2004 Oracle */
class Bad {}
`
	dir := tree(t, files)
	tmpl := filepath.Join(t.TempDir(), "template.txt")
	if err := os.WriteFile(tmpl, []byte(oracle), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good")
	bad := filepath.Join(dir, "bad")
	html := filepath.Join(t.TempDir(), "report.html")

	archive := filepath.Join(t.TempDir(), "config.txtar")
	if err := os.WriteFile(archive, txtar.Format(&txtar.Archive{Files: []txtar.File{
		{Name: "template.txt", Data: []byte(oracle)},
		{Name: "options.json", Data: []byte(`{"skipdirs": ["bad"]}`)},
	}}), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := map[string]clitest.Case[*app]{
		"valid": {
			Args:         []string{"-template", tmpl, good},
			WantInStdout: "1 files checked, 0 violations in 0 files\n",
		},
		"violations": {
			Args:         []string{"-template", tmpl, bad},
			WantErr:      errProblems,
			WantInStdout: "Bad.java: more than one copyright header\n",
		},
		"violations are logged": {
			Args:         []string{"-template", tmpl, bad},
			WantErr:      errProblems,
			WantInStderr: "WRN copyright header does not match the template",
		},
		"no template": {
			Args:    []string{good},
			WantErr: config.ErrNoTemplate,
		},
		"invalid year": {
			Args:    []string{"-template", tmpl, "-startyear", "97", good},
			WantErr: cli.ErrInvalidArgs,
		},
		"unknown option": {
			Args:    []string{"-template", tmpl, "-options", "rewrite", good},
			WantErr: cli.ErrInvalidArgs,
		},
		"template from environment": {
			Args:         []string{good},
			Env:          map[string]string{"LICENSETOOL_TEMPLATE": tmpl},
			WantInStdout: "1 files checked",
		},
		"config archive": {
			Args:         []string{"-config", archive, dir},
			WantInStdout: "1 files checked, 0 violations in 0 files\n",
		},
		"flags override the environment": {
			Args: []string{"-startyear", "1997", good},
			Env:  map[string]string{"LICENSETOOL_TEMPLATE": tmpl, "LICENSETOOL_STARTYEAR": "x"},
		},
		"unsupported vcs": {
			Args:    []string{"-template", tmpl, "-modify", "-uselastmodified", "-vcs", "cvs", good},
			WantErr: vcs.ErrUnsupported,
		},
		"html report": {
			Args:    []string{"-template", tmpl, "-html", html, bad},
			WantErr: errProblems,
			CheckFunc: func(t *testing.T, _ *app) {
				b, err := os.ReadFile(html)
				if err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(string(b), "<td>more than one copyright header</td>") {
					t.Errorf("HTML report does not list the violation:\n%s", b)
				}
			},
		},
		"missing root": {
			Args:    []string{"-template", tmpl, filepath.Join(dir, "missing")},
			WantErr: os.ErrNotExist,
		},
	}

	clitest.Run(t, func(*testing.T) *app { return new(app) }, cases)
}

func TestModifyFixesViolations(t *testing.T) {
	dir := tree(t, `
-- Bad.java --
/* Copyright 2003 Oracle */
/* Copyright 2004 Oracle */
class Bad {}
-- template.txt --
`+oracle)
	tmpl := filepath.Join(dir, "template.txt")
	src := filepath.Join(dir, "Bad.java")
	setup := func(*testing.T) *app { return new(app) }

	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"modify": {
			Args:         []string{"-template", tmpl, "-modify", src},
			WantInStdout: "Bad.java: updated (replace, remove)\n",
		},
	})
	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(b), "/*\n * Copyright (c) 2003 Oracle and/or its affiliates. All rights reserved.\n */\n\nclass Bad {}\n")

	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"validate after modify": {
			Args:         []string{"-template", tmpl, src},
			WantInStdout: "1 files checked, 0 violations in 0 files\n",
		},
	})
}
