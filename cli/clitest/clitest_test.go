// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package clitest_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/sumauppa/glassfish-license-tool/cli"
	"github.com/sumauppa/glassfish-license-tool/cli/clitest"
	"github.com/sumauppa/glassfish-license-tool/internal/copyright"
	"github.com/sumauppa/glassfish-license-tool/logger"
)

var errNoNotice = errors.New("no copyright notice")

// foreignError is returned for notices of other licensors.
type foreignError struct{ licensor string }

func (e *foreignError) Error() string { return "copyright of " + e.licensor }

// noticeApp reads text from standard input and prints the years of its
// copyright notice.
type noticeApp struct {
	licensors []string
	quiet     bool

	found *copyright.Copyright
}

func (a *noticeApp) Flags(fs *flag.FlagSet) {
	fs.Func("licensor", "Add an own `licensor`.", func(s string) error {
		a.licensors = append(a.licensors, s)
		return nil
	})
	fs.BoolVar(&a.quiet, "q", false, "Print nothing.")
}

func (a *noticeApp) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if l := env.Getenv("LICENSETOOL_LICENSORS"); l != "" {
		a.licensors = append(a.licensors, strings.Split(l, ",")...)
	}

	text, err := io.ReadAll(env.Stdin)
	if err != nil {
		return err
	}
	a.found = copyright.Parse(string(text))
	if a.found == nil {
		logger.Warn(ctx, "no copyright header")
		return errNoNotice
	}
	if !a.found.OwnedBy(slices.Concat(copyright.DefaultLicensors, a.licensors)) {
		return &foreignError{licensor: a.found.Licensor}
	}
	if !a.quiet {
		fmt.Fprintln(env.Stdout, a.found.Years(), a.found.Licensor)
	}
	return nil
}

func TestRun(t *testing.T) {
	setup := func(t *testing.T) *noticeApp {
		return &noticeApp{}
	}

	cases := map[string]clitest.Case[*noticeApp]{
		"own notice": {
			Stdin:        strings.NewReader("/* Copyright (c) 1997-2011 Oracle and/or its affiliates. */\n"),
			WantInStdout: "1997-2011 Oracle and/or its affiliates. */\n",
		},
		"quiet": {
			Args:               []string{"-q"},
			Stdin:              strings.NewReader("# Copyright 2005 Sun Microsystems, Inc.\n"),
			WantNothingPrinted: true,
		},
		"no notice is logged": {
			Stdin:        strings.NewReader("package foo;\n"),
			WantErr:      errNoNotice,
			WantInStderr: "WRN no copyright header",
		},
		"no input": {
			WantErr: errNoNotice,
		},
		"foreign notice": {
			Stdin:       strings.NewReader("Copyright 2003 The Apache Software Foundation\n"),
			WantErrType: &foreignError{},
		},
		"licensor flag": {
			Args:         []string{"-licensor", "Example"},
			Stdin:        strings.NewReader("Copyright 2001, 2004 Example Corp.\n"),
			WantInStdout: "2001-2004 Example Corp.\n",
		},
		"licensor from environment": {
			Stdin:        strings.NewReader("Copyright 2001 Example Corp.\n"),
			Env:          map[string]string{"LICENSETOOL_LICENSORS": "Acme,Example"},
			WantInStdout: "2001 Example Corp.\n",
		},
		"help": {
			Args:         []string{"-help"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "Add an own licensor.",
		},
		"CheckFunc": {
			Stdin: strings.NewReader("Copyright 2010 Oracle\n"),
			CheckFunc: func(t *testing.T, a *noticeApp) {
				if a.found == nil || a.found.Start != "2010" {
					t.Errorf("found = %+v, want a notice from 2010", a.found)
				}
			},
		},
	}

	clitest.Run(t, setup, cases)
}
