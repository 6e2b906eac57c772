package udiff

import (
	"bytes"

	"github.com/odvcencio/textdiff/pkg/myers"
)

// ConflictStyle selects how conflict regions are rendered.
type ConflictStyle uint8

const (
	// Diff3 brackets each conflict with the ours, ancestor, and theirs
	// variants, in that order.
	Diff3 ConflictStyle = iota
	// TwoWay omits the ancestor variant.
	TwoWay
)

// MergeOptions adjusts three-way merging. The zero value is not useful;
// start from NewMergeOptions.
type MergeOptions struct {
	// The four bracket lines around a conflict region, without
	// terminators.
	MarkerOurs      string
	MarkerAncestor  string
	MarkerSeparator string
	MarkerTheirs    string

	Style ConflictStyle

	// Canon, when set, maps a line to the key used for equality, exactly
	// as in DiffOptions. Unset means strict byte equality.
	Canon func(string) string
}

// NewMergeOptions returns diff3-style defaults with the conventional
// marker lines.
func NewMergeOptions() *MergeOptions {
	return &MergeOptions{
		MarkerOurs:      "<<<<<<< ours",
		MarkerAncestor:  "||||||| original",
		MarkerSeparator: "=======",
		MarkerTheirs:    ">>>>>>> theirs",
		Style:           Diff3,
	}
}

// Merge three-way merges ours and theirs against their common ancestor
// and reports whether any conflict region was emitted.
//
// Regions where only one side diverges from the ancestor take that side;
// identical changes on both sides collapse; overlapping differing changes
// become a conflict bracketed by the configured markers. Conflicts never
// split a line, and if either side equals the ancestor the result is
// byte-identical to the other side.
func Merge[T Text](ancestor, ours, theirs T, opts *MergeOptions) (T, bool) {
	if opts == nil {
		opts = NewMergeOptions()
	}

	c := newClassifier(opts.Canon)
	baseLines, baseIDs := classifyLines(c, ancestor)
	oursLines, oursIDs := classifyLines(c, ours)
	theirsLines, theirsIDs := classifyLines(c, theirs)

	oursChunks := buildChunks(baseIDs, oursIDs, oursLines)
	theirsChunks := buildChunks(baseIDs, theirsIDs, theirsLines)

	return mergeChunks(opts, baseLines, oursChunks, theirsChunks)
}

// chunk is a contiguous region of one side's diff against the ancestor:
// the ancestor lines [baseStart, baseEnd) are either kept (changed false)
// or replaced by lines (changed true). Equal regions are emitted one line
// per chunk so that the two sides align trivially; changed regions are
// maximal runs, insertions among them carrying an empty base range.
type chunk[T Text] struct {
	baseStart, baseEnd int
	lines              []T
	changed            bool
}

func buildChunks[T Text](baseIDs, sideIDs []uint64, sideLines []T) []chunk[T] {
	script := myers.Compact(myers.Diff(baseIDs, sideIDs), baseIDs, sideIDs)

	var chunks []chunk[T]
	appendChanged := func(c chunk[T]) {
		if n := len(chunks); n > 0 && chunks[n-1].changed && chunks[n-1].baseEnd == c.baseStart {
			chunks[n-1].baseEnd = c.baseEnd
			chunks[n-1].lines = append(chunks[n-1].lines, c.lines...)
			return
		}
		chunks = append(chunks, c)
	}

	for _, r := range script {
		switch r.Kind {
		case myers.Equal:
			for i := 0; i < r.Old.Len(); i++ {
				chunks = append(chunks, chunk[T]{
					baseStart: r.Old.Start + i,
					baseEnd:   r.Old.Start + i + 1,
					lines:     sideLines[r.New.Start+i : r.New.Start+i+1],
				})
			}
		case myers.Delete:
			appendChanged(chunk[T]{
				baseStart: r.Old.Start,
				baseEnd:   r.Old.End,
				changed:   true,
			})
		case myers.Insert:
			appendChanged(chunk[T]{
				baseStart: r.Old.Start,
				baseEnd:   r.Old.Start,
				lines:     sideLines[r.New.Start:r.New.End:r.New.End],
				changed:   true,
			})
		}
	}
	return chunks
}

// mergeChunks walks the two chunk sequences in parallel, aligned by
// ancestor positions, emitting each region from whichever side changed
// it and bracketing regions both sides changed differently.
func mergeChunks[T Text](opts *MergeOptions, baseLines []T, oursChunks, theirsChunks []chunk[T]) (T, bool) {
	var out bytes.Buffer
	conflicts := false

	oi, ti := 0, 0
	for oi < len(oursChunks) || ti < len(theirsChunks) {
		var oc, tc *chunk[T]
		if oi < len(oursChunks) {
			oc = &oursChunks[oi]
		}
		if ti < len(theirsChunks) {
			tc = &theirsChunks[ti]
		}

		if oc == nil {
			writeLines(&out, tc.lines)
			ti++
			continue
		}
		if tc == nil {
			writeLines(&out, oc.lines)
			oi++
			continue
		}

		if oc.baseStart == tc.baseStart && oc.baseEnd == tc.baseEnd {
			// Aligned regions.
			switch {
			case !tc.changed:
				writeLines(&out, oc.lines)
			case !oc.changed:
				writeLines(&out, tc.lines)
			case chunkLinesEqual(oc.lines, tc.lines):
				writeLines(&out, oc.lines)
			default:
				conflicts = true
				writeConflict(&out, opts, oc.lines, baseLines[oc.baseStart:oc.baseEnd], tc.lines)
			}
			oi++
			ti++
			continue
		}

		// Misaligned: one side's changed run spans several of the other
		// side's chunks. Gather everything overlapping the region from
		// both sides, growing the region until it stabilizes.
		regionStart := min(oc.baseStart, tc.baseStart)
		regionEnd := max(oc.baseEnd, tc.baseEnd)
		var oursRegion, theirsRegion []chunk[T]
		for grew := true; grew; {
			grew = false
			for oi < len(oursChunks) && oursChunks[oi].baseStart < regionEnd {
				if oursChunks[oi].baseEnd > regionEnd {
					regionEnd = oursChunks[oi].baseEnd
				}
				oursRegion = append(oursRegion, oursChunks[oi])
				oi++
				grew = true
			}
			for ti < len(theirsChunks) && theirsChunks[ti].baseStart < regionEnd {
				if theirsChunks[ti].baseEnd > regionEnd {
					regionEnd = theirsChunks[ti].baseEnd
				}
				theirsRegion = append(theirsRegion, theirsChunks[ti])
				ti++
				grew = true
			}
		}

		oursOut := assembleRegion(oursRegion)
		theirsOut := assembleRegion(theirsRegion)
		baseRegion := baseLines[regionStart:regionEnd]

		switch {
		case !anyChanged(theirsRegion):
			writeLines(&out, oursOut)
		case !anyChanged(oursRegion):
			writeLines(&out, theirsOut)
		case chunkLinesEqual(oursOut, theirsOut):
			writeLines(&out, oursOut)
		default:
			conflicts = true
			writeConflict(&out, opts, oursOut, baseRegion, theirsOut)
		}
	}

	return T(out.Bytes()), conflicts
}

func writeLines[T Text](out *bytes.Buffer, lines []T) {
	for _, l := range lines {
		out.Write([]byte(l))
	}
}

// writeMarker emits a conflict bracket line, forcing a terminator onto
// any preceding unterminated content so the marker stays on its own line.
func writeMarker(out *bytes.Buffer, marker string) {
	if b := out.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		out.WriteByte('\n')
	}
	out.WriteString(marker)
	out.WriteByte('\n')
}

func writeConflict[T Text](out *bytes.Buffer, opts *MergeOptions, ours, base, theirs []T) {
	writeMarker(out, opts.MarkerOurs)
	writeLines(out, ours)
	if opts.Style == Diff3 {
		writeMarker(out, opts.MarkerAncestor)
		writeLines(out, base)
	}
	writeMarker(out, opts.MarkerSeparator)
	writeLines(out, theirs)
	writeMarker(out, opts.MarkerTheirs)
}

func chunkLinesEqual[T Text](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !textEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func assembleRegion[T Text](chunks []chunk[T]) []T {
	var lines []T
	for _, c := range chunks {
		lines = append(lines, c.lines...)
	}
	return lines
}

func anyChanged[T Text](chunks []chunk[T]) bool {
	for _, c := range chunks {
		if c.changed {
			return true
		}
	}
	return false
}
