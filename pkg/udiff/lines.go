package udiff

// Text constrains the element type a patch carries: UTF-8 text as a
// string, or raw bytes with no encoding assumption.
type Text interface {
	~string | ~[]byte
}

// SplitLines splits t on LF into lines, each keeping its terminator. The
// final line carries no terminator when t does not end in one, which the
// second result reports. Empty input yields no lines. CR bytes are not
// stripped, so CRLF input produces lines ending in CRLF.
func SplitLines[T Text](t T) ([]T, bool) {
	var lines []T
	for len(t) > 0 {
		end := indexByte(t, '\n')
		if end < 0 {
			lines = append(lines, t)
			return lines, true
		}
		lines = append(lines, t[:end+1])
		t = t[end+1:]
	}
	return lines, false
}

func indexByte[T Text](t T, c byte) int {
	for i := 0; i < len(t); i++ {
		if t[i] == c {
			return i
		}
	}
	return -1
}

// classifier interns lines so the edit-script engine compares dense
// integer ids instead of line content.
type classifier struct {
	ids   map[string]uint64
	canon func(string) string
}

func newClassifier(canon func(string) string) *classifier {
	return &classifier{ids: make(map[string]uint64), canon: canon}
}

func (c *classifier) classify(line string) uint64 {
	if c.canon != nil {
		line = c.canon(line)
	}
	id, ok := c.ids[line]
	if !ok {
		id = uint64(len(c.ids))
		c.ids[line] = id
	}
	return id
}

// classifyLines splits t and interns every line through c. Lines interned
// through the same classifier are comparable across calls.
func classifyLines[T Text](c *classifier, t T) ([]T, []uint64) {
	lines, _ := SplitLines(t)
	ids := make([]uint64, len(lines))
	for i, l := range lines {
		ids[i] = c.classify(string(l))
	}
	return lines, ids
}

// cloneText returns a copy of t backed by fresh storage.
func cloneText[T Text](t T) T {
	return T(append([]byte(nil), []byte(t)...))
}

func textEqual[T Text](a, b T) bool {
	return string(a) == string(b)
}

// endsInNewline reports whether the final byte of t is LF. Empty input
// counts as terminated; it produces no unterminated line.
func endsInNewline[T Text](t T) bool {
	return len(t) == 0 || t[len(t)-1] == '\n'
}
