package udiff

import "github.com/odvcencio/textdiff/pkg/myers"

// DiffOptions adjusts how edit scripts and patches are computed. The zero
// value is not useful; start from NewDiffOptions.
type DiffOptions struct {
	// ContextLen is the number of unchanged lines kept around each change
	// run when assembling hunks.
	ContextLen int

	// Compact enables the cleanup pass that slides change runs through
	// neighboring equal content to fuse runs split only by shiftable
	// lines.
	Compact bool

	// Canon, when set, maps a line (terminator included) to the key used
	// for equality during the diff. Unset means strict byte equality.
	// Lines that compare equal under a lossy Canon may still differ in
	// content; emitted context then comes from the modified side.
	Canon func(string) string

	// OriginalFilename and ModifiedFilename become the patch headers.
	OriginalFilename string
	ModifiedFilename string
}

// NewDiffOptions returns the defaults: three lines of context, compaction
// on, strict byte equality, and the conventional "original"/"modified"
// header names.
func NewDiffOptions() *DiffOptions {
	return &DiffOptions{
		ContextLen:       3,
		Compact:          true,
		OriginalFilename: "original",
		ModifiedFilename: "modified",
	}
}

// EditKind classifies a line of an edit script.
type EditKind uint8

const (
	EditEqual  EditKind = iota // Line present in both inputs.
	EditDelete                 // Line present in the original only.
	EditInsert                 // Line present in the modified only.
)

// Edit is a single line of a line-level edit script.
type Edit[T Text] struct {
	Kind EditKind
	Text T
}

// Diff computes a minimal line-level edit script transforming original
// into modified. Lines keep their terminators. A nil opts means
// NewDiffOptions.
func Diff[T Text](original, modified T, opts *DiffOptions) []Edit[T] {
	if opts == nil {
		opts = NewDiffOptions()
	}
	oldLines, newLines, script := diffLines(original, modified, opts)

	var edits []Edit[T]
	for _, r := range script {
		switch r.Kind {
		case myers.Equal:
			for i := r.Old.Start; i < r.Old.End; i++ {
				edits = append(edits, Edit[T]{EditEqual, oldLines[i]})
			}
		case myers.Delete:
			for i := r.Old.Start; i < r.Old.End; i++ {
				edits = append(edits, Edit[T]{EditDelete, oldLines[i]})
			}
		case myers.Insert:
			for i := r.New.Start; i < r.New.End; i++ {
				edits = append(edits, Edit[T]{EditInsert, newLines[i]})
			}
		}
	}
	return edits
}

// CreatePatch diffs original against modified and assembles the result
// into a unified-format patch. The patch's hunk lines reference the input
// buffers; use Clone if the patch must outlive them. A nil opts means
// NewDiffOptions.
func CreatePatch[T Text](original, modified T, opts *DiffOptions) *Patch[T] {
	if opts == nil {
		opts = NewDiffOptions()
	}
	oldLines, newLines, script := diffLines(original, modified, opts)

	orig := T(opts.OriginalFilename)
	mod := T(opts.ModifiedFilename)
	return &Patch[T]{
		Original: &orig,
		Modified: &mod,
		Hunks:    buildHunks(oldLines, newLines, script, opts.ContextLen),
	}
}

func diffLines[T Text](original, modified T, opts *DiffOptions) ([]T, []T, []myers.Range) {
	c := newClassifier(opts.Canon)
	oldLines, oldIDs := classifyLines(c, original)
	newLines, newIDs := classifyLines(c, modified)

	script := myers.Diff(oldIDs, newIDs)
	if opts.Compact {
		script = myers.Compact(script, oldIDs, newIDs)
	}
	return oldLines, newLines, script
}

// editRun is a maximal run of consecutive non-equal script ranges,
// expressed as the old and new index ranges it spans.
type editRun struct {
	old myers.Span
	new myers.Span
}

func buildEditRuns(script []myers.Range) []editRun {
	var runs []editRun
	open := false
	var cur editRun
	for _, r := range script {
		switch r.Kind {
		case myers.Equal:
			if open {
				runs = append(runs, cur)
				open = false
			}
		case myers.Delete:
			if !open {
				cur = editRun{old: r.Old, new: myers.Span{Start: r.New.Start, End: r.New.Start}}
				open = true
			} else {
				cur.old.End = r.Old.End
			}
		case myers.Insert:
			if !open {
				cur = editRun{old: myers.Span{Start: r.Old.Start, End: r.Old.Start}, new: r.New}
				open = true
			} else {
				cur.new.End = r.New.End
			}
		}
	}
	if open {
		runs = append(runs, cur)
	}
	return runs
}

// buildHunks converts an edit script into context-bearing hunks. Change
// runs whose context regions touch or overlap are merged into a single
// hunk, so no two emitted hunks could be re-merged under the same context
// radius.
func buildHunks[T Text](lines1, lines2 []T, script []myers.Range, contextLen int) []Hunk[T] {
	runs := buildEditRuns(script)

	var hunks []Hunk[T]
	for idx := 0; idx < len(runs); idx++ {
		run := runs[idx]

		start1 := max(run.old.Start-contextLen, 0)
		start2 := max(run.new.Start-contextLen, 0)
		end1, end2 := calcEnd(contextLen, len(lines1), len(lines2), run.old.End, run.new.End)

		var body []Line[T]

		// Leading context, taken from the modified side.
		for i := start2; i < run.new.Start; i++ {
			body = append(body, Line[T]{LineContext, lines2[i]})
		}

		for {
			for i := run.old.Start; i < run.old.End; i++ {
				body = append(body, Line[T]{LineDelete, lines1[i]})
			}
			for i := run.new.Start; i < run.new.End; i++ {
				body = append(body, Line[T]{LineInsert, lines2[i]})
			}

			if idx+1 < len(runs) {
				next := runs[idx+1]
				start1Next := max(min(next.old.Start, len(lines1)-1)-contextLen, 0)
				if start1Next <= end1 {
					// The gap fits within the combined context: absorb the
					// next run into this hunk.
					for i1, i2 := run.old.End, run.new.End; i1 < next.old.Start && i2 < next.new.Start; i1, i2 = i1+1, i2+1 {
						body = append(body, Line[T]{LineContext, lines2[i2]})
					}
					end1, end2 = calcEnd(contextLen, len(lines1), len(lines2), next.old.End, next.new.End)
					run = next
					idx++
					continue
				}
			}
			break
		}

		// Trailing context.
		for i := run.new.End; i < end2; i++ {
			body = append(body, Line[T]{LineContext, lines2[i]})
		}

		len1 := end1 - start1
		oldStart := start1
		if len1 > 0 {
			oldStart = start1 + 1
		}
		len2 := end2 - start2
		newStart := start2
		if len2 > 0 {
			newStart = start2 + 1
		}

		hunks = append(hunks, Hunk[T]{
			OldRange: HunkRange{Start: oldStart, Len: len1},
			NewRange: HunkRange{Start: newStart, Len: len2},
			Lines:    body,
		})
	}
	return hunks
}

// calcEnd clamps the trailing context so it never reads past either side.
func calcEnd(contextLen, len1, len2, scriptEnd1, scriptEnd2 int) (int, int) {
	post := min(contextLen, min(len1-scriptEnd1, len2-scriptEnd2))
	return scriptEnd1 + post, scriptEnd2 + post
}
