// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads licensetool configuration.
//
// Settings come from, lowest precedence first: [Default], a txtar archive
// (see [Config.LoadArchive]), a .env file and the process environment
// (see [Config.LoadEnv]), and finally command-line flags set by the caller.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/tools/txtar"

	"github.com/sumauppa/glassfish-license-tool/internal/copyright"
	"github.com/sumauppa/glassfish-license-tool/internal/header"
)

// Default file names.
const (
	ArchiveFile = ".licensetool.txtar"
	EnvFile     = ".env"
)

// Names of the files in a configuration archive.
const (
	templateName = "template.txt"
	optionsName  = "options.json"
)

// EnvPrefix prefixes the environment variables read by [Config.LoadEnv].
const EnvPrefix = "LICENSETOOL_"

// Option strings accepted by [Config.ApplyOptions].
const (
	OptCheckEmpty = "checkEmpty"
	OptLicensor   = "licensor:"
)

// ErrNoTemplate is returned by [Config.Check] when no template is set.
var ErrNoTemplate = errors.New("no copyright template")

// Config is the configuration of a run.
type Config struct {
	// Template is the header template, normalized by [header.Normalize].
	Template string
	// Licensors are own licensors in addition to
	// [copyright.DefaultLicensors].
	Licensors []string
	// SkipDirs are names of directories not to scan.
	SkipDirs []string
	// Roots are the files and directories to process.
	Roots []string
	// StartYear and EndYear are the years of new headers.
	StartYear, EndYear string
	// CheckEmpty reports or removes empty comments.
	CheckEmpty bool
	// Validate selects validation; otherwise files are modified.
	Validate bool
	// DryRun computes modifications without writing them.
	DryRun bool
	// UseLastModified extends header years to the year files were last
	// changed in version control.
	UseLastModified bool
	// Detect enables language detection for unknown file names.
	Detect bool
	// VCS names the version control system. Empty means detect it.
	VCS string
	// Jobs is the number of files processed at once.
	Jobs int
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Roots:     []string{"."},
		StartYear: "1997",
		Validate:  true,
		Jobs:      runtime.GOMAXPROCS(0),
	}
}

// Owners returns every own licensor.
func (c *Config) Owners() []string {
	return slices.Concat(copyright.DefaultLicensors, c.Licensors)
}

// SetTemplate normalizes and sets the template.
func (c *Config) SetTemplate(text string) {
	c.Template = header.Normalize(text)
}

// LoadTemplate sets the template from the file at path.
func (c *Config) LoadTemplate(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	c.SetTemplate(string(b))
	return nil
}

// options mirrors options.json. Absent fields leave settings unchanged.
type options struct {
	Licensors       []string `json:"licensors"`
	SkipDirs        []string `json:"skipdirs"`
	Roots           []string `json:"roots"`
	StartYear       *string  `json:"startyear"`
	EndYear         *string  `json:"endyear"`
	Options         []string `json:"options"`
	Validate        *bool    `json:"validate"`
	DryRun          *bool    `json:"dryrun"`
	UseLastModified *bool    `json:"uselastmodified"`
	Detect          *bool    `json:"detect"`
	VCS             *string  `json:"vcs"`
	Jobs            *int     `json:"jobs"`
}

// LoadArchive applies the configuration archive at path. The archive may
// hold a template.txt file with the template and an options.json file with
// settings.
//
// A missing archive is reported with an error wrapping [fs.ErrNotExist].
func (c *Config) LoadArchive(path string) error {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case templateName:
			c.SetTemplate(string(f.Data))
		case optionsName:
			var o options
			if err := json.Unmarshal(f.Data, &o); err != nil {
				return fmt.Errorf("%s: %s: %w", path, optionsName, err)
			}
			if err := c.apply(&o); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		default:
			return fmt.Errorf("%s: unknown file %q", path, f.Name)
		}
	}
	return nil
}

// LoadDefaultArchive is like [Config.LoadArchive], but ignores a missing
// archive.
func (c *Config) LoadDefaultArchive(path string) error {
	if err := c.LoadArchive(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *Config) apply(o *options) error {
	c.Licensors = append(c.Licensors, o.Licensors...)
	c.SkipDirs = append(c.SkipDirs, o.SkipDirs...)
	if len(o.Roots) > 0 {
		c.Roots = o.Roots
	}
	setIf(&c.StartYear, o.StartYear)
	setIf(&c.EndYear, o.EndYear)
	setIf(&c.Validate, o.Validate)
	setIf(&c.DryRun, o.DryRun)
	setIf(&c.UseLastModified, o.UseLastModified)
	setIf(&c.Detect, o.Detect)
	setIf(&c.VCS, o.VCS)
	setIf(&c.Jobs, o.Jobs)
	return c.ApplyOptions(o.Options)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ApplyOptions applies option strings: "checkEmpty" enables
// [Config.CheckEmpty], and "licensor:<name>" adds an own licensor.
func (c *Config) ApplyOptions(opts []string) error {
	for _, opt := range opts {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == OptCheckEmpty:
			c.CheckEmpty = true
		case strings.HasPrefix(opt, OptLicensor):
			name := strings.TrimSpace(strings.TrimPrefix(opt, OptLicensor))
			if name == "" {
				return fmt.Errorf("option %q: empty licensor", opt)
			}
			c.Licensors = append(c.Licensors, name)
		default:
			return fmt.Errorf("unknown option %q", opt)
		}
	}
	return nil
}

// LoadEnv applies settings from the .env file at dotenv, if it exists, and
// from variables returned by getenv, which take precedence. Variable names
// are [EnvPrefix] followed by TEMPLATE (a template file path), LICENSORS,
// SKIPDIRS, ROOTS, OPTIONS (comma-separated lists), STARTYEAR, ENDYEAR,
// VCS, JOBS, VALIDATE, DRYRUN, USELASTMODIFIED and DETECT.
func (c *Config) LoadEnv(dotenv string, getenv func(string) string) error {
	vars := make(map[string]string)
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", dotenv, err)
		}
		for k, v := range m {
			if name, ok := strings.CutPrefix(k, EnvPrefix); ok {
				vars[name] = v
			}
		}
	}
	if getenv != nil {
		for _, name := range envNames {
			if v := getenv(EnvPrefix + name); v != "" {
				vars[name] = v
			}
		}
	}

	for _, name := range envNames {
		v, ok := vars[name]
		if !ok {
			continue
		}
		if err := c.setEnv(name, v); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
	}
	return nil
}

var envNames = []string{
	"TEMPLATE", "LICENSORS", "SKIPDIRS", "ROOTS", "OPTIONS", "STARTYEAR", "ENDYEAR",
	"VCS", "JOBS", "VALIDATE", "DRYRUN", "USELASTMODIFIED", "DETECT",
}

func (c *Config) setEnv(name, v string) error {
	switch name {
	case "TEMPLATE":
		return c.LoadTemplate(v)
	case "LICENSORS":
		c.Licensors = append(c.Licensors, SplitList(v)...)
	case "SKIPDIRS":
		c.SkipDirs = append(c.SkipDirs, SplitList(v)...)
	case "ROOTS":
		c.Roots = SplitList(v)
	case "OPTIONS":
		return c.ApplyOptions(SplitList(v))
	case "STARTYEAR":
		c.StartYear = v
	case "ENDYEAR":
		c.EndYear = v
	case "VCS":
		c.VCS = v
	case "JOBS":
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Jobs = n
	case "VALIDATE":
		return parseBool(v, &c.Validate)
	case "DRYRUN":
		return parseBool(v, &c.DryRun)
	case "USELASTMODIFIED":
		return parseBool(v, &c.UseLastModified)
	case "DETECT":
		return parseBool(v, &c.Detect)
	}
	return nil
}

func parseBool(s string, dst *bool) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Check reports configuration errors.
func (c *Config) Check() error {
	if c.Template == "" {
		return ErrNoTemplate
	}
	if !header.HasPlaceholder(c.Template) {
		return header.ErrNoPlaceholder
	}
	for _, y := range []struct{ which, year string }{{"start", c.StartYear}, {"end", c.EndYear}} {
		if y.year != "" && !isYear(y.year) {
			return &header.YearError{Which: y.which, Year: y.year}
		}
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	if len(c.Roots) == 0 {
		return errors.New("nothing to process")
	}
	return nil
}

func isYear(s string) bool {
	_, err := strconv.Atoi(s)
	return len(s) == 4 && err == nil && s[0] != '+' && s[0] != '-'
}
