// Package linediff wraps pkg/myers and pkg/merge3 with a line-splitting
// convenience layer for callers that hold plain strings rather than
// pre-split sequences. It is a collaborator, not part of the core
// algorithms: it only splits, delegates, and joins.
package linediff

import (
	"strings"

	"github.com/odvcencio/diff3merge/pkg/merge3"
	"github.com/odvcencio/diff3merge/pkg/myers"
)

// DefaultSeparator is used when no separator is supplied.
const DefaultSeparator = "\n"

// ConflictRegion mirrors merge3.ConflictRegion with its three sides
// joined back into strings, plus StartLine, the line offset in Partial
// at which the conflict begins.
type ConflictRegion struct {
	Base, Ours, Theirs string
	StartLine          int
}

// MergeResult mirrors merge3.MergeResult with sequences joined back
// into strings.
type MergeResult struct {
	Conflicted bool
	Merged     string // valid when !Conflicted
	Partial    string // valid when Conflicted
	Conflicts  []ConflictRegion
}

// Success reports whether the merge completed without conflicts.
func (r MergeResult) Success() bool { return !r.Conflicted }

func separator(sep []string) string {
	if len(sep) == 0 || sep[0] == "" {
		return DefaultSeparator
	}
	return sep[0]
}

// split splits s on sep, keeping empty trailing segments, so that
// Join(split(s, sep), sep) == s for every s.
func split(s, sep string) []string {
	return strings.Split(s, sep)
}

// Diff splits original and modified on sep (default "\n") and runs
// myers.Diff over the resulting line sequences. sep is optional and
// defaults to "\n".
func Diff(original, modified string, sep ...string) []myers.Change[string] {
	s := separator(sep)
	return myers.Diff(split(original, s), split(modified, s))
}

// Join joins lines back into a single string with sep (default "\n").
func Join(lines []string, sep ...string) string {
	return strings.Join(lines, separator(sep))
}

// Merge splits base, ours, and theirs on sep (default "\n"), runs
// merge3.Merge over the resulting line sequences, and joins the result
// (or, on conflict, the partial result and each conflicting region's
// three sides) back into strings. sep is optional and defaults to
// "\n".
func Merge(base, ours, theirs string, sep ...string) MergeResult {
	s := separator(sep)
	r := merge3.Merge(split(base, s), split(ours, s), split(theirs, s))

	if r.Success() {
		return MergeResult{Merged: Join(r.Sequence, s)}
	}

	conflicts := make([]ConflictRegion, len(r.Conflicts))
	for i, c := range r.Conflicts {
		conflicts[i] = ConflictRegion{
			Base:      Join(c.Base, s),
			Ours:      Join(c.Ours, s),
			Theirs:    Join(c.Theirs, s),
			StartLine: c.StartIndex,
		}
	}
	return MergeResult{
		Conflicted: true,
		Partial:    Join(r.Partial, s),
		Conflicts:  conflicts,
	}
}
