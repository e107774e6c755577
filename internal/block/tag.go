// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package block

// CDDL marks comments that carry the CDDL license text.
const CDDL = "CDDL"

// Classify tags the comments of f and reports whether any of them is a
// copyright notice of one of the licensors.
//
// Tags accumulate: tagging the same blocks again does not change them.
func Classify(f *File, licensors []string) (hadOwn bool) {
	for i, c := range f.Comments() {
		if i == 0 {
			c.Tags.Add(TagFirst)
		}
		cr := c.Copyright()
		if cr != nil {
			c.Tags.Add(TagCopyright)
		}
		if c.Find(CDDL) {
			c.Tags.Add(TagCDDL)
		}
		if cr.OwnedBy(licensors) {
			c.Tags.Add(TagOwn)
			hadOwn = true
		}
	}
	return hadOwn
}
