// Package diff3 is the façade over this module's two algorithmic
// cores — pkg/myers (the Myers shortest-edit-script Differ) and
// pkg/merge3 (the three-way Merger built on top of it) — plus the
// line-splitting string convenience wrappers in pkg/linediff. It
// re-exports the module's four public entry points under one import
// path, the way the teacher repository's pkg/diff sits in front of its
// lower-level algorithm package.
package diff3

import (
	"github.com/odvcencio/diff3merge/pkg/linediff"
	"github.com/odvcencio/diff3merge/pkg/merge3"
	"github.com/odvcencio/diff3merge/pkg/myers"
)

// Change is a single atom in an edit script, re-exported from pkg/myers.
type Change[E comparable] = myers.Change[E]

// ChangeType classifies a Change, re-exported from pkg/myers.
type ChangeType = myers.ChangeType

const (
	Equal  = myers.Equal
	Delete = myers.Delete
	Insert = myers.Insert
)

// MergeResult is the outcome of a three-way merge, re-exported from
// pkg/merge3.
type MergeResult[E comparable] = merge3.MergeResult[E]

// ConflictRegion describes one conflicting interval of a three-way
// merge, re-exported from pkg/merge3.
type ConflictRegion[E comparable] = merge3.ConflictRegion[E]

// Diff computes the shortest edit script transforming original into
// modified. See pkg/myers.Diff for the full contract.
func Diff[E comparable](original, modified []E) []Change[E] {
	return myers.Diff(original, modified)
}

// ThreeWay performs a three-way merge of base against ours and theirs.
// See pkg/merge3.Merge for the full contract.
func ThreeWay[E comparable](base, ours, theirs []E) MergeResult[E] {
	return merge3.Merge(base, ours, theirs)
}

// DiffLines is the line-splitting string wrapper over Diff. sep is
// optional and defaults to "\n"; trailing empty segments are kept, so
// Join(DiffLines-style split, sep) round-trips.
func DiffLines(original, modified string, sep ...string) []Change[string] {
	return linediff.Diff(original, modified, sep...)
}

// MergeLines is the line-splitting string wrapper over ThreeWay. sep
// is optional and defaults to "\n".
func MergeLines(base, ours, theirs string, sep ...string) linediff.MergeResult {
	return linediff.Merge(base, ours, theirs, sep...)
}
