// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package action

import (
	"context"

	"github.com/sumauppa/glassfish-license-tool/internal/block"
	"github.com/sumauppa/glassfish-license-tool/internal/header"
)

// Validator reports header violations without changing files.
type Validator struct {
	Template  *header.Template
	Licensors []string
	// CheckEmpty reports empty comments.
	CheckEmpty bool
}

// Run implements [Action]. It reports every violation in f rather than
// stopping at the first.
func (v *Validator) Run(ctx context.Context, f *block.File) Outcome {
	ctx = withPath(ctx, f)
	out := Outcome{Path: f.Path}
	if !block.Classify(f, v.Licensors) {
		out.violate(ctx, MissingHeader, nil)
	}

	var own int
	for _, c := range f.Comments() {
		if !isOwnHeader(c) {
			if v.CheckEmpty && isEmpty(c) {
				out.violate(ctx, EmptyComment, c)
			}
			continue
		}
		own++
		if own > 1 {
			out.violate(ctx, DuplicateHeader, c)
			continue
		}
		if !c.Tags.Has(block.TagFirst) {
			out.violate(ctx, MisplacedHeader, c)
		}
		if !v.Template.Matches(c.Body()) {
			out.violate(ctx, MismatchedHeader, c)
		}
	}
	return out
}
