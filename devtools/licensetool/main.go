// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/cli"
	"github.com/sumauppa/glassfish-license-tool/internal/action"
	"github.com/sumauppa/glassfish-license-tool/internal/config"
	"github.com/sumauppa/glassfish-license-tool/internal/fileio"
	"github.com/sumauppa/glassfish-license-tool/internal/header"
	"github.com/sumauppa/glassfish-license-tool/internal/report"
	"github.com/sumauppa/glassfish-license-tool/internal/runner"
	"github.com/sumauppa/glassfish-license-tool/internal/scan"
	"github.com/sumauppa/glassfish-license-tool/internal/syntax"
	"github.com/sumauppa/glassfish-license-tool/internal/vcs"
	"github.com/sumauppa/glassfish-license-tool/logger"
)

func main() { cli.Main(new(app)) }

// errProblems is returned when files have violations or failed.
var errProblems = errors.New("some files have copyright header problems")

type app struct {
	configFile string
	html       string
	// overrides apply flags on top of the loaded configuration.
	overrides []func(c *config.Config) error
}

func (a *app) set(f func(c *config.Config) error) {
	a.overrides = append(a.overrides, f)
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.configFile, "config", "", "Read configuration from txtar `file` (default "+config.ArchiveFile+").")
	fs.StringVar(&a.html, "html", "", "Write an HTML report to `file`.")
	fs.Func("template", "Read the header template from `file`.", func(s string) error {
		a.set(func(c *config.Config) error { return c.LoadTemplate(s) })
		return nil
	})
	fs.Func("startyear", "Start `year` of new headers (default 1997).", func(s string) error {
		a.set(func(c *config.Config) error { c.StartYear = s; return nil })
		return nil
	})
	fs.Func("endyear", "End `year` of new headers.", func(s string) error {
		a.set(func(c *config.Config) error { c.EndYear = s; return nil })
		return nil
	})
	fs.Func("skipdirs", "Comma-separated `names` of directories to skip.", func(s string) error {
		a.set(func(c *config.Config) error { c.SkipDirs = append(c.SkipDirs, config.SplitList(s)...); return nil })
		return nil
	})
	fs.Func("options", "Comma-separated `options`: checkEmpty, licensor:<name>.", func(s string) error {
		a.set(func(c *config.Config) error { return c.ApplyOptions(config.SplitList(s)) })
		return nil
	})
	fs.Func("vcs", "Version control `system` (git or hg; default detected).", func(s string) error {
		a.set(func(c *config.Config) error { c.VCS = s; return nil })
		return nil
	})
	fs.Func("jobs", "Process `n` files at once.", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		a.set(func(c *config.Config) error { c.Jobs = n; return nil })
		return nil
	})
	a.boolFlag(fs, "modify", "Fix headers instead of validating them.", func(c *config.Config, v bool) { c.Validate = !v })
	a.boolFlag(fs, "dryrun", "With -modify, report changes without writing files.", func(c *config.Config, v bool) { c.DryRun = v })
	a.boolFlag(fs, "uselastmodified", "Extend header years to the last change in version control.", func(c *config.Config, v bool) { c.UseLastModified = v })
	a.boolFlag(fs, "detect", "Detect the language of files with unknown names.", func(c *config.Config, v bool) { c.Detect = v })
}

func (a *app) boolFlag(fs *flag.FlagSet, name, usage string, apply func(c *config.Config, v bool)) {
	fs.BoolFunc(name, usage, func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		a.set(func(c *config.Config) error { apply(c, v); return nil })
		return nil
	})
}

func (a *app) loadConfig(env *cli.Env) (*config.Config, error) {
	c := config.Default()
	var err error
	if a.configFile != "" {
		err = c.LoadArchive(a.configFile)
	} else {
		err = c.LoadDefaultArchive(config.ArchiveFile)
	}
	if err != nil {
		return nil, err
	}
	if err := c.LoadEnv(config.EnvFile, env.Getenv); err != nil {
		return nil, err
	}
	for _, set := range a.overrides {
		if err := set(c); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
	}
	if len(env.Args) > 0 {
		c.Roots = env.Args
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	return c, nil
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	c, err := a.loadConfig(env)
	if err != nil {
		return err
	}
	tmpl, err := header.New(c.Template)
	if err != nil {
		return err
	}

	files, err := scan.Walk(c.Roots, scan.SkipNames(c.SkipDirs))
	if err != nil {
		return err
	}
	logger.Debug(ctx, "scanned", slog.Int("files", len(files)), slog.String("roots", strings.Join(c.Roots, ",")))

	act, err := newAction(ctx, c, tmpl)
	if err != nil {
		return err
	}
	r := &runner.Runner{
		Registry: &syntax.Registry{Detect: c.Detect},
		Action:   act,
		Jobs:     c.Jobs,
	}
	results := r.Run(ctx, files)

	if err := report.Text(env.Stdout, results, c.Validate); err != nil {
		return err
	}
	if a.html != "" {
		var sb strings.Builder
		if err := report.HTML("License headers", results, c.Validate).Render(ctx, &sb); err != nil {
			return err
		}
		if err := fileio.Write(a.html, sb.String()); err != nil {
			return err
		}
	}

	if !report.Summarize(results).OK(c.Validate) {
		return errProblems
	}
	return nil
}

func newAction(ctx context.Context, c *config.Config, tmpl *header.Template) (action.Action, error) {
	if c.Validate {
		return &action.Validator{
			Template:   tmpl,
			Licensors:  c.Owners(),
			CheckEmpty: c.CheckEmpty,
		}, nil
	}

	m := &action.Modifier{
		Template:   tmpl,
		Licensors:  c.Owners(),
		CheckEmpty: c.CheckEmpty,
		StartYear:  c.StartYear,
		EndYear:    c.EndYear,
		Writer:     fileio.Write,
		DryRun:     c.DryRun,
	}
	if c.UseLastModified {
		name := c.VCS
		if name == "" {
			name = vcs.Detect(c.Roots[0])
		}
		sys, err := vcs.New(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
		if sys != nil {
			m.LastModified = sys
		} else {
			logger.Warn(ctx, "no version control system found, last modified years are not used")
		}
	}
	return m, nil
}
