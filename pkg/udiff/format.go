package udiff

import (
	"bytes"
	"fmt"
	"strings"
)

// NoNewlineMessage is the sentinel emitted after a line that ends a file
// without a terminator.
const NoNewlineMessage = `\ No newline at end of file`

// devNull is how an absent patch side is rendered when the other side is
// named.
const devNull = "/dev/null"

// FormatOptions adjusts patch serialization. The zero value formats with
// GNU-compatible defaults and no color.
type FormatOptions struct {
	// Color wraps each token in its Styles entry.
	Color bool

	// Styles supplies the palette used when Color is set; nil means
	// DefaultStyles.
	Styles *Styles

	// SuppressBlankEmpty emits context lines that are entirely empty as a
	// bare terminator with no leading space, matching GNU diff's
	// suppress-blank-empty behavior.
	SuppressBlankEmpty bool

	// NoNewlineMessage overrides the no-newline sentinel text; empty
	// means NoNewlineMessage. OmitNoNewline suppresses the sentinel
	// entirely.
	NoNewlineMessage string
	OmitNoNewline    bool
}

// FormatPatch serializes p as unified-diff text. With default options the
// output parses back to an equal patch, byte for byte.
func FormatPatch[T Text](p *Patch[T], opts *FormatOptions) T {
	if opts == nil {
		opts = &FormatOptions{}
	}
	styles := opts.Styles
	if styles == nil {
		d := DefaultStyles()
		styles = &d
	}
	sentinel := opts.NoNewlineMessage
	if sentinel == "" {
		sentinel = NoNewlineMessage
	}

	var buf bytes.Buffer

	if p.Original != nil || p.Modified != nil {
		writeHeader(&buf, opts, styles, "--- ", p.Original)
		writeHeader(&buf, opts, styles, "+++ ", p.Modified)
	}

	for i := range p.Hunks {
		writeHunk(&buf, opts, styles, sentinel, &p.Hunks[i])
	}

	return T(buf.Bytes())
}

func writeHeader[T Text](buf *bytes.Buffer, opts *FormatOptions, styles *Styles, prefix string, name *T) {
	text := devNull
	if name != nil {
		text = quoteFilename(string(*name))
	}
	buf.WriteString(render(opts.Color, styles.PatchHeader, prefix+text))
	buf.WriteByte('\n')
}

func writeHunk[T Text](buf *bytes.Buffer, opts *FormatOptions, styles *Styles, sentinel string, h *Hunk[T]) {
	header := "@@ -" + h.OldRange.String() + " +" + h.NewRange.String() + " @@"
	buf.WriteString(render(opts.Color, styles.HunkHeader, header))
	if len(h.FuncCtx) > 0 {
		buf.WriteByte(' ')
		buf.WriteString(render(opts.Color, styles.FuncCtx, string(h.FuncCtx)))
	}
	buf.WriteByte('\n')

	for _, line := range h.Lines {
		writeLine(buf, opts, styles, sentinel, line)
	}
}

func writeLine[T Text](buf *bytes.Buffer, opts *FormatOptions, styles *Styles, sentinel string, line Line[T]) {
	var sign byte
	var style = styles.Context
	switch line.Kind {
	case LineContext:
		sign = ' '
	case LineDelete:
		sign, style = '-', styles.Delete
	case LineInsert:
		sign, style = '+', styles.Insert
	}

	content := string(line.Text)
	terminated := strings.HasSuffix(content, "\n")
	if terminated {
		content = content[:len(content)-1]
	}

	if sign == ' ' && content == "" && opts.SuppressBlankEmpty {
		buf.WriteByte('\n')
	} else {
		buf.WriteString(render(opts.Color, style, string(sign)+content))
		buf.WriteByte('\n')
	}

	if !terminated && !opts.OmitNoNewline {
		buf.WriteString(sentinel)
		buf.WriteByte('\n')
	}
}

// quoteFilename wraps name in C-style quotes when it contains bytes that
// would be ambiguous in a header line, escaping them the way GNU diff
// does. Clean names pass through untouched.
func quoteFilename(name string) string {
	needs := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 || c == 0x7f || c == ' ' || c == '\\' || c == '"' {
			needs = true
			break
		}
	}
	if !needs {
		return name
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			// A following octal digit would glue onto a bare \0 when the
			// name is parsed back, so spell the NUL out in that case.
			if i+1 < len(name) && name[i+1] >= '0' && name[i+1] <= '7' {
				b.WriteString(`\x00`)
			} else {
				b.WriteString(`\0`)
			}
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
