// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package fileio reads and replaces whole files.
package fileio

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Read returns the content of the file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Write replaces the content of the file at path with text. The file is
// either fully replaced or left untouched.
func Write(path, text string) error {
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// LineSeparator returns the line terminator of the first line of text:
// "\r\n", "\n" or "\r". Text without line breaks gets "\n".
func LineSeparator(text string) string {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return "\n"
	case text[i] == '\n':
		return "\n"
	case strings.HasPrefix(text[i:], "\r\n"):
		return "\r\n"
	default:
		return "\r"
	}
}
