package udiff

import (
	"bytes"
	"fmt"
)

// ApplyOptions adjusts patch application.
type ApplyOptions struct {
	// MaxFuzz caps how many lines a hunk may be displaced from its
	// declared position before application gives up. Zero or negative
	// means the whole file; the search is always bounded by the file
	// length regardless of what the hunk header declares.
	MaxFuzz int
}

// ApplyError reports the first hunk that could not be placed.
type ApplyError struct {
	// HunkIndex is the zero-based index of the failing hunk.
	HunkIndex int
	// Tried lists the candidate line offsets that were checked, in the
	// order they were tried.
	Tried []int
	// Partial is the output assembled before the failure, useful for
	// surfacing a conflict to the user.
	Partial []byte
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply patch: hunk %d found no matching position (%d offsets tried)",
		e.HunkIndex, len(e.Tried))
}

// Apply applies p to base and returns the patched text. Each hunk is
// anchored at its declared position first; when the base has drifted, the
// nearest offset where the hunk's context and deletions still match is
// used instead, preferring the smallest displacement and, between equal
// displacements, the earlier position. A hunk whose best match lies
// before the end of the previously applied hunk, or that matches nowhere
// within the fuzz bound, aborts with an *ApplyError.
func Apply[T Text](base T, p *Patch[T], opts *ApplyOptions) (T, error) {
	if opts == nil {
		opts = &ApplyOptions{}
	}
	baseLines, _ := SplitLines(base)

	var out bytes.Buffer
	cursor := 0 // first base line not yet consumed

	for hi := range p.Hunks {
		h := &p.Hunks[hi]
		target := targetLines(h)

		pos, tried, ok := findPos(baseLines, target, declaredPos(h), opts.MaxFuzz)
		if !ok || pos < cursor {
			return *new(T), &ApplyError{
				HunkIndex: hi,
				Tried:     tried,
				Partial:   append([]byte(nil), out.Bytes()...),
			}
		}

		for i := cursor; i < pos; i++ {
			out.Write([]byte(baseLines[i]))
		}
		for _, ln := range h.Lines {
			if ln.Kind != LineDelete {
				out.Write([]byte(ln.Text))
			}
		}
		cursor = pos + len(target)
	}

	for i := cursor; i < len(baseLines); i++ {
		out.Write([]byte(baseLines[i]))
	}
	return T(out.Bytes()), nil
}

// targetLines projects the hunk onto the old side: the lines that must be
// present in the base for the hunk to apply.
func targetLines[T Text](h *Hunk[T]) []T {
	target := make([]T, 0, len(h.Lines))
	for _, ln := range h.Lines {
		if ln.Kind != LineInsert {
			target = append(target, ln.Text)
		}
	}
	return target
}

// declaredPos converts the hunk's 1-origin old range into the 0-based
// line index where its target should start. A zero-length old range names
// the line before the insertion point.
func declaredPos[T Text](h *Hunk[T]) int {
	if h.OldRange.Len > 0 {
		return h.OldRange.Start - 1
	}
	return h.OldRange.Start
}

// findPos searches for the offset where target matches base, radiating
// outward from want. Displacement is capped at maxFuzz when positive and
// at the file length always, which keeps application linear in the file
// size no matter what the hunk header declares.
func findPos[T Text](base, target []T, want, maxFuzz int) (int, []int, bool) {
	n := len(base)
	if want < 0 {
		want = 0
	}
	if want > n {
		want = n
	}
	limit := maxFuzz
	if limit <= 0 || limit > n {
		limit = n
	}

	var tried []int
	probe := func(pos int) bool {
		if pos < 0 || pos+len(target) > n {
			return false
		}
		tried = append(tried, pos)
		return matchAt(base, target, pos)
	}
	if probe(want) {
		return want, tried, true
	}
	for d := 1; d <= limit; d++ {
		if probe(want - d) {
			return want - d, tried, true
		}
		if probe(want + d) {
			return want + d, tried, true
		}
	}
	return 0, tried, false
}

func matchAt[T Text](base, target []T, pos int) bool {
	for i, t := range target {
		if !textEqual(base[pos+i], t) {
			return false
		}
	}
	return true
}
