// Package merge3 performs a three-way merge of two divergent sequences
// against a common ancestor, built on top of pkg/myers.
package merge3

import "github.com/odvcencio/diff3merge/pkg/myers"

// ConflictRegion describes a maximal interval of base on which ours and
// theirs propose incompatible replacements.
type ConflictRegion[E comparable] struct {
	Base       []E
	Ours       []E
	Theirs     []E
	StartIndex int // offset in the partial result at which the conflict begins
}

// MergeResult is the outcome of a three-way merge: either a clean
// Success sequence, or a Conflict carrying the partial merge and the
// ordered list of conflicting regions.
type MergeResult[E comparable] struct {
	Conflicted bool
	Sequence   []E               // valid when !Conflicted
	Partial    []E               // valid when Conflicted: walk output with conflicts omitted
	Conflicts  []ConflictRegion[E] // valid when Conflicted, ordered by StartIndex
}

// Success reports whether the merge completed without conflicts.
func (r MergeResult[E]) Success() bool { return !r.Conflicted }

// editRange is a contiguous slice of base indices [BaseStart,
// BaseStart+BaseCount) replaced by Replacement.
type editRange[E comparable] struct {
	BaseStart   int
	BaseCount   int
	Replacement []E
}

func (e editRange[E]) end() int { return e.BaseStart + e.BaseCount }

// Merge computes the three-way merge of base against the two divergent
// sequences ours and theirs.
func Merge[E comparable](base, ours, theirs []E) MergeResult[E] {
	if equalSeq(base, ours) && equalSeq(base, theirs) {
		return MergeResult[E]{Sequence: cloneSeq(base)}
	}
	if equalSeq(base, ours) {
		return MergeResult[E]{Sequence: cloneSeq(theirs)}
	}
	if equalSeq(base, theirs) {
		return MergeResult[E]{Sequence: cloneSeq(ours)}
	}
	if equalSeq(ours, theirs) {
		return MergeResult[E]{Sequence: cloneSeq(ours)}
	}

	oursEdits := groupEdits(myers.Diff(base, ours))
	theirsEdits := groupEdits(myers.Diff(base, theirs))

	return walk(base, oursEdits, theirsEdits)
}

func equalSeq[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneSeq[E comparable](s []E) []E {
	out := make([]E, len(s))
	copy(out, s)
	return out
}

// groupEdits converts an ordered edit script into an ordered,
// non-overlapping list of edit ranges anchored in base indices. A
// maximal contiguous run of Delete/Insert atoms (without an
// intervening Equal) is fused into a single replace range; a pure
// insertion becomes a zero-width range anchored at the current base
// position.
func groupEdits[E comparable](changes []myers.Change[E]) []editRange[E] {
	var ranges []editRange[E]
	basePos := 0

	i := 0
	for i < len(changes) {
		c := changes[i]
		if c.Type == myers.Equal {
			basePos = c.Index + 1
			i++
			continue
		}

		var deleteIndices []int
		var insertElements []E
		for i < len(changes) && changes[i].Type != myers.Equal {
			switch changes[i].Type {
			case myers.Delete:
				deleteIndices = append(deleteIndices, changes[i].Index)
			case myers.Insert:
				insertElements = append(insertElements, changes[i].Element)
			}
			i++
		}

		start := basePos
		count := 0
		if len(deleteIndices) > 0 {
			start = deleteIndices[0]
			count = len(deleteIndices)
			basePos = deleteIndices[len(deleteIndices)-1] + 1
		}
		ranges = append(ranges, editRange[E]{BaseStart: start, BaseCount: count, Replacement: insertElements})
	}

	return ranges
}

// walk merges base left-to-right, consulting oursEdits and theirsEdits
// in lockstep, and accumulates any conflicting regions.
func walk[E comparable](base []E, oursEdits, theirsEdits []editRange[E]) MergeResult[E] {
	var result []E
	var conflicts []ConflictRegion[E]

	oi, ti := 0, 0
	basePos := 0
	n := len(base)

	for oi < len(oursEdits) || ti < len(theirsEdits) || basePos < n {
		var o, t *editRange[E]
		if oi < len(oursEdits) {
			o = &oursEdits[oi]
		}
		if ti < len(theirsEdits) {
			t = &theirsEdits[ti]
		}

		switch {
		case o != nil && t != nil:
			if o.BaseStart < basePos {
				oi++
				continue
			}
			if t.BaseStart < basePos {
				ti++
				continue
			}

			cut := min(o.BaseStart, t.BaseStart)
			result = append(result, base[basePos:cut]...)
			basePos = cut

			oEnd, tEnd := o.end(), t.end()
			// A zero-width range (pure insertion) never satisfies the
			// strict interval-overlap inequality against another range
			// anchored at the same base position, even though the two
			// edits compete for the same spot. Every edit range carries
			// either a positive BaseCount or a non-empty Replacement (by
			// construction of groupEdits), so equal anchors always mean
			// competing edits.
			overlap := (o.BaseStart < tEnd && t.BaseStart < oEnd) || o.BaseStart == t.BaseStart

			if overlap {
				if o.BaseStart == t.BaseStart && o.BaseCount == t.BaseCount && equalSeq(o.Replacement, t.Replacement) {
					result = append(result, o.Replacement...)
					basePos = max(oEnd, tEnd)
					oi++
					ti++
					continue
				}

				regionStart := min(o.BaseStart, t.BaseStart)
				regionEnd := min(max(oEnd, tEnd), n)
				conflicts = append(conflicts, ConflictRegion[E]{
					Base:       cloneSeq(base[regionStart:regionEnd]),
					Ours:       cloneSeq(o.Replacement),
					Theirs:     cloneSeq(t.Replacement),
					StartIndex: len(result),
				})
				basePos = max(oEnd, tEnd)
				oi++
				ti++
				continue
			}

			if o.BaseStart < t.BaseStart {
				result = append(result, o.Replacement...)
				basePos = oEnd
				oi++
			} else {
				result = append(result, t.Replacement...)
				basePos = tEnd
				ti++
			}

		case o != nil:
			if o.BaseStart < basePos {
				oi++
				continue
			}
			result = append(result, base[basePos:o.BaseStart]...)
			result = append(result, o.Replacement...)
			basePos = o.end()
			oi++

		case t != nil:
			if t.BaseStart < basePos {
				ti++
				continue
			}
			result = append(result, base[basePos:t.BaseStart]...)
			result = append(result, t.Replacement...)
			basePos = t.end()
			ti++

		default:
			result = append(result, base[basePos:n]...)
			basePos = n
		}
	}

	if len(conflicts) == 0 {
		return MergeResult[E]{Sequence: result}
	}
	return MergeResult[E]{Conflicted: true, Partial: result, Conflicts: conflicts}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
