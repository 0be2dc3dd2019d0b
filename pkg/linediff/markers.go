package linediff

import "strings"

// MarkerLabels names the three sides shown in a conflict-marker block.
// The zero value uses Git's conventional labels.
type MarkerLabels struct {
	Ours, Base, Theirs string
}

// DefaultMarkerLabels are Git's conventional side labels.
var DefaultMarkerLabels = MarkerLabels{Ours: "ours", Base: "base", Theirs: "theirs"}

// FormatConflictMarkers renders a ConflictRegion as a Git-style
// conflict-marker block:
//
//	<<<<<<< ours
//	...ours lines...
//	||||||| base
//	...base lines...
//	=======
//	...theirs lines...
//	>>>>>>> theirs
//
// This is a decorative presentation helper: it is not part of the core
// merge contract, and callers that only need MergeResult never call it.
func FormatConflictMarkers(c ConflictRegion, labels ...MarkerLabels) string {
	l := DefaultMarkerLabels
	if len(labels) > 0 && labels[0] != (MarkerLabels{}) {
		l = labels[0]
	}

	var b strings.Builder
	b.WriteString("<<<<<<< ")
	b.WriteString(l.Ours)
	b.WriteByte('\n')
	writeNonEmpty(&b, c.Ours)
	b.WriteString("||||||| ")
	b.WriteString(l.Base)
	b.WriteByte('\n')
	writeNonEmpty(&b, c.Base)
	b.WriteString("=======\n")
	writeNonEmpty(&b, c.Theirs)
	b.WriteString(">>>>>>> ")
	b.WriteString(l.Theirs)
	b.WriteByte('\n')
	return b.String()
}

func writeNonEmpty(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

// FormatMerge renders a full MergeResult as text: the clean case is the
// merged string unchanged; the conflicted case splices conflict-marker
// blocks into the partial result at each region's StartLine. sep must
// be the same separator passed to Merge to produce r, so that Partial
// splits back into the same lines StartLine was measured against.
func FormatMerge(r MergeResult, sep string, labels ...MarkerLabels) string {
	if r.Success() {
		return r.Merged
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	lines := split(r.Partial, sep)
	var b strings.Builder
	prev := 0
	for _, c := range r.Conflicts {
		for i := prev; i < c.StartLine && i < len(lines); i++ {
			b.WriteString(lines[i])
			b.WriteByte('\n')
		}
		b.WriteString(FormatConflictMarkers(c, labels...))
		prev = c.StartLine
	}
	for i := prev; i < len(lines); i++ {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}
