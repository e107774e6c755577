// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licensetool checks and fixes copyright headers in source files.

	licensetool [flags] [path...]

It walks the given files and directories (by default, the current
directory) and finds the copyright header of each file it knows the comment
syntax of. A header is ours when its copyright notice names one of the own
licensors: Sun, Oracle and those added with the licensor: option.

By default the headers are validated. A file violates the rules when it has
no header, more than one header, a header that is not its first comment, a
header that does not match the template or, with the checkEmpty option, an
empty comment. Licensetool exits with a non-zero status if any file has
violations.

With -modify, the violations are fixed and the files rewritten: extra
headers are removed, misplaced headers are moved to the top, and outdated
or missing headers are replaced with the template. The years of a new
header cover the years of the header it replaces, or -startyear and
-endyear for files that had none. With -uselastmodified, the end year is
extended to the year the file was last changed in version control.

The template is plain text without comment delimiters. "YYYY " in it is
replaced with a year or a range of years ("1997-2011 "), and "YYYY, " with
a list of years ("1997, 2011, "). Headers are written in the comment syntax
of each file, keeping a "#!" or "<?xml" first line in place.

Configuration is read from a .licensetool.txtar archive in the current
directory (or the -config file). The archive can contain these files:

  - template.txt: the header template.
  - options.json: a JSON object with any of the keys licensors, skipdirs,
    roots (lists of strings), startyear, endyear, vcs (strings), options
    (list of option strings), validate, dryrun, uselastmodified, detect
    (booleans) and jobs (number).

Settings from the archive are overridden by LICENSETOOL_* variables from a
.env file and the environment (LICENSETOOL_TEMPLATE names a template file),
and those by flags.
*/
package main

import (
	_ "embed"

	"github.com/sumauppa/glassfish-license-tool/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
