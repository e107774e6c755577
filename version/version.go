// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the name and build information of the running
// program.
package version

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sumauppa/glassfish-license-tool/syncx"
)

// Info describes a build.
type Info struct {
	Name    string // command name
	Version string // module version, or "devel"
	Commit  string // VCS revision, if known
	Dirty   bool   // built from a modified working tree
	Go      string // Go version
}

// String returns a one-line description of i, ending with a newline.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Name + " " + i.Version)
	if i.Commit != "" {
		sb.WriteString(" (" + i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	sb.WriteString(" built with " + i.Go + "\n")
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns the build information of the running program.
func Version() Info { return info.Get(read) }

// CmdName returns the name of the running command.
func CmdName() string { return Version().Name }

func read() Info {
	i := Info{
		Name:    strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe"),
		Version: "devel",
		Go:      runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Path != "" {
		i.Name = path.Base(bi.Path)
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
			if len(i.Commit) > 12 {
				i.Commit = i.Commit[:12]
			}
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}
