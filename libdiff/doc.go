// Package libdiff provides diff computation for JSON documents.
//
// # Usage
//
//	// Compute a line diff between two value trees
//	out := libdiff.Text(oldNode, newNode)
//
// Diffs are computed over canonical renderings, so two documents differing
// only in object member order diff as equal.
//
// # Related Packages
//
//   - github.com/minijson-format/go-minijson/ir - value representation
//   - github.com/minijson-format/go-minijson/encode - canonical rendering
package libdiff
