// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syntax

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/go4org/hashtriemap"
)

var families = []struct {
	style    Style
	suffixes []string
}{
	{Java, []string{"c", "h", "java", "sjava", "idl"}},
	{XML, []string{"xml", "dtd", "rng", "xsd"}},
	{HTML, []string{"htm", "html"}},
	{JSP, []string{"jsp"}},
	{JavaLine, []string{"tdesc", "policy", "secure"}},
	{Scheme, []string{"mc", "mcd", "scm", "vthought"}},
	// Shell scripts must always start with #!, others need not.
	{ShellScript, []string{"ksh", "sh"}},
	{Shell, []string{"classlist", "config", "jmk", "properties", "prp", "xjmk", "set", "data", "txt", "text"}},
}

// Files with these names use the shell comment style regardless of suffix.
var makefileNames = []string{"Makefile.corba", "Makefile.example", "ExampleMakefile", "Makefile"}

var binarySuffixes = []string{
	"sxc", "sxi", "sxw", "odp", "gif", "png", "jar", "zip", "jpg", "pom",
	"pdf", "doc", "mif", "fm", "book", "zargo", "zuml", "cvsignore",
	"hgignore", "list", "old", "orig", "rej", "swp", "swo", "class", "o",
	"javaref", "idlref", "css", "DS_Store", "jj", "sxd", "vsd",
}

var ignoredNames = []string{
	"NORENAME", "errorfile", "sed_pattern_file.version",
	"default", "AnnotationProcessorFactory", "Plugin",
}

// Languages recognized by the detection fallback.
var languageStyles = map[string]Style{
	"C":          Java,
	"C++":        Java,
	"C#":         Java,
	"Go":         JavaLine,
	"Groovy":     Java,
	"Java":       Java,
	"JavaScript": Java,
	"Kotlin":     Java,
	"Rust":       JavaLine,
	"Scala":      Java,
	"TypeScript": Java,
	"Makefile":   Shell,
	"Perl":       Shell,
	"Python":     Shell,
	"Ruby":       Shell,
	"Shell":      ShellScript,
	"YAML":       Shell,
	"TOML":       Shell,
	"Scheme":     Scheme,
	"HTML":       HTML,
	"XML":        XML,
}

// Registry resolves comment styles by file name.
//
// The zero value is ready to use and only knows the built-in families.
// A Registry is safe for concurrent use once configured.
type Registry struct {
	// Detect enables a fallback that guesses the language of files with
	// unknown names from their extension or well-known file name.
	Detect bool

	cache hashtriemap.HashTrieMap[string, lookup]
}

type lookup struct {
	style Style
	ok    bool
}

// Lookup returns the comment style for the file at path. It reports false
// for binary, ignored and unknown files, which callers should skip.
func (r *Registry) Lookup(path string) (Style, bool) {
	name := filepath.Base(path)
	if l, ok := r.cache.Load(name); ok {
		return l.style, l.ok
	}
	style, ok := r.resolve(name)
	l, _ := r.cache.LoadOrStore(name, lookup{style: style, ok: ok})
	return l.style, l.ok
}

func (r *Registry) resolve(name string) (Style, bool) {
	if slices.Contains(makefileNames, name) {
		return Shell, true
	}
	if slices.Contains(ignoredNames, name) {
		return NoComments, false
	}

	suffix := Suffix(name)
	if suffix != "" {
		if slices.Contains(binarySuffixes, suffix) {
			return NoComments, false
		}
		for _, f := range families {
			if slices.Contains(f.suffixes, suffix) {
				return f.style, true
			}
		}
	}

	if !r.Detect {
		return NoComments, false
	}
	return detect(name)
}

func detect(name string) (Style, bool) {
	lang, _ := enry.GetLanguageByFilename(name)
	if lang == "" {
		lang, _ = enry.GetLanguageByExtension(name)
	}
	if lang == "" {
		return NoComments, false
	}
	style, ok := languageStyles[lang]
	if !ok {
		return NoComments, false
	}
	return style, true
}

// Suffix returns the part of name after its last dot, or an empty string.
func Suffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// IsBinary reports whether content looks like binary data.
func IsBinary(content []byte) bool { return enry.IsBinary(content) }
