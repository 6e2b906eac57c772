// Package udiff computes, formats, parses, applies, and three-way merges
// line-oriented diffs in the unified format produced and consumed by GNU
// diff and patch.
//
// The core is purely computational: it never touches the filesystem and
// keeps no global state. All types are generic over the element type, so
// the same machinery serves UTF-8 text (string) and arbitrary byte
// buffers ([]byte).
package udiff

import "strconv"

// LineKind classifies a hunk body line.
type LineKind uint8

const (
	LineContext LineKind = iota // Present on both sides.
	LineDelete                  // Present on the old side only.
	LineInsert                  // Present on the new side only.
)

// Line is a single hunk body line. Text keeps the line's terminator; a
// line without one is the final line of a side that does not end in a
// newline, which the formatter marks with the no-newline sentinel.
type Line[T Text] struct {
	Kind LineKind
	Text T
}

// HunkRange addresses a run of lines on one side of a hunk. Start is
// 1-origin. A zero-length range's Start names the line immediately before
// the change on that side, which is 0 for an insertion at the start of
// the file.
type HunkRange struct {
	Start int
	Len   int
}

// End returns the first line number after the range.
func (r HunkRange) End() int { return r.Start + r.Len }

// String renders the range the way unified hunk headers do: "start,len",
// with ",len" omitted for single-line ranges.
func (r HunkRange) String() string {
	if r.Len == 1 {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "," + strconv.Itoa(r.Len)
}

// Hunk is one contiguous change region with its surrounding context.
type Hunk[T Text] struct {
	OldRange HunkRange
	NewRange HunkRange

	// FuncCtx is the trailing hunk-header function context, without the
	// separating space. Empty when absent.
	FuncCtx T

	Lines []Line[T]
}

// lineCounts tallies how many body lines belong to each side.
func lineCounts[T Text](lines []Line[T]) (oldN, newN int) {
	for _, l := range lines {
		switch l.Kind {
		case LineContext:
			oldN++
			newN++
		case LineDelete:
			oldN++
		case LineInsert:
			newN++
		}
	}
	return oldN, newN
}

// Patch is a computed or parsed unified diff: optional filenames and an
// ordered list of hunks. A nil filename means the corresponding header
// side was absent (or /dev/null).
//
// Hunk lines may share storage with the buffers the patch was computed or
// parsed from; Clone copies them into patch-owned storage when the patch
// must outlive its inputs.
type Patch[T Text] struct {
	Original *T
	Modified *T
	Hunks    []Hunk[T]
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch[T]) IsEmpty() bool { return len(p.Hunks) == 0 }

// String formats the patch with default options.
func (p *Patch[T]) String() string {
	return string(FormatPatch(p, nil))
}

// Clone returns a deep copy of the patch whose lines and filenames are
// backed by fresh storage, severing any ties to the buffers the patch was
// computed or parsed from.
func (p *Patch[T]) Clone() *Patch[T] {
	q := &Patch[T]{}
	if p.Original != nil {
		o := cloneText(*p.Original)
		q.Original = &o
	}
	if p.Modified != nil {
		m := cloneText(*p.Modified)
		q.Modified = &m
	}
	q.Hunks = make([]Hunk[T], len(p.Hunks))
	for i, h := range p.Hunks {
		ch := Hunk[T]{
			OldRange: h.OldRange,
			NewRange: h.NewRange,
			FuncCtx:  cloneText(h.FuncCtx),
			Lines:    make([]Line[T], len(h.Lines)),
		}
		for j, l := range h.Lines {
			ch.Lines[j] = Line[T]{Kind: l.Kind, Text: cloneText(l.Text)}
		}
		q.Hunks[i] = ch
	}
	return q
}

// Reverse returns a patch that undoes p: the old and new sides swap
// roles, so applying the result to the modified text restores the
// original. Within each change run deletions are reordered before
// insertions to keep the conventional unified layout.
func (p *Patch[T]) Reverse() *Patch[T] {
	q := &Patch[T]{Original: p.Modified, Modified: p.Original}
	q.Hunks = make([]Hunk[T], len(p.Hunks))
	for i, h := range p.Hunks {
		rh := Hunk[T]{
			OldRange: h.NewRange,
			NewRange: h.OldRange,
			FuncCtx:  h.FuncCtx,
		}
		rh.Lines = make([]Line[T], 0, len(h.Lines))
		var deletes, inserts []Line[T]
		flush := func() {
			rh.Lines = append(rh.Lines, deletes...)
			rh.Lines = append(rh.Lines, inserts...)
			deletes, inserts = deletes[:0:0], inserts[:0:0]
		}
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				flush()
				rh.Lines = append(rh.Lines, l)
			case LineDelete:
				inserts = append(inserts, Line[T]{Kind: LineInsert, Text: l.Text})
			case LineInsert:
				deletes = append(deletes, Line[T]{Kind: LineDelete, Text: l.Text})
			}
		}
		flush()
		q.Hunks[i] = rh
	}
	return q
}
