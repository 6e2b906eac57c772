package udiff

import (
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func TestFormatPatch_NoHeaders(t *testing.T) {
	p := CreatePatch("a\n", "b\n", nil)
	p.Original, p.Modified = nil, nil

	got := string(FormatPatch(p, nil))
	if strings.Contains(got, "---") || strings.Contains(got, "+++") {
		t.Fatalf("headerless patch must not emit headers:\n%s", got)
	}
	if !strings.HasPrefix(got, "@@ -1 +1 @@\n") {
		t.Fatalf("expected bare hunk, got:\n%s", got)
	}
}

func TestFormatPatch_DevNullForMissingSide(t *testing.T) {
	p := CreatePatch("", "x\n", nil)
	p.Original = nil
	p.Modified = strptr("b/new.txt")

	got := string(FormatPatch(p, nil))
	if !strings.HasPrefix(got, "--- /dev/null\n+++ b/new.txt\n") {
		t.Fatalf("missing side must render as /dev/null:\n%s", got)
	}
}

func TestFormatPatch_QuotedFilenames(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"with space.txt", `"with space.txt"`},
		{"tab\there", `"tab\there"`},
		{"new\nline", `"new\nline"`},
		{`back\slash`, `"back\\slash"`},
		{`quo"te`, `"quo\"te"`},
		{"bell\x07", `"bell\x07"`},
		{"del\x7f", `"del\x7f"`},
		{"nul\x00end", `"nul\0end"`},
		{"nul\x005", `"nul\x005"`},
	}

	for _, c := range cases {
		if got := quoteFilename(c.name); got != c.want {
			t.Errorf("quoteFilename(%q) = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestFormatPatch_SuppressBlankEmpty(t *testing.T) {
	p := CreatePatch("a\n\nb\n", "a\n\nc\n", nil)

	plain := string(FormatPatch(p, nil))
	if !strings.Contains(plain, "\n \n") {
		t.Fatalf("default formatting keeps the space on blank context:\n%q", plain)
	}

	suppressed := string(FormatPatch(p, &FormatOptions{SuppressBlankEmpty: true}))
	if strings.Contains(suppressed, "\n \n") {
		t.Fatalf("suppressed formatting must drop the space:\n%q", suppressed)
	}

	// Both spellings parse back to the same patch.
	p2, err := Parse(suppressed)
	if err != nil {
		t.Fatalf("parse suppressed: %v", err)
	}
	if got := string(FormatPatch(p2, nil)); got != plain {
		t.Fatalf("suppressed form reparsed to:\n%q\nwant:\n%q", got, plain)
	}
}

func TestFormatPatch_SentinelOverride(t *testing.T) {
	p := CreatePatch("a", "b", nil)

	got := string(FormatPatch(p, &FormatOptions{NoNewlineMessage: `\ kein Zeilenumbruch`}))
	if !strings.Contains(got, "\\ kein Zeilenumbruch\n") {
		t.Fatalf("sentinel override ignored:\n%q", got)
	}
	if strings.Contains(got, NoNewlineMessage) {
		t.Fatalf("default sentinel still present:\n%q", got)
	}
}

func TestFormatPatch_OmitSentinel(t *testing.T) {
	p := CreatePatch("a", "b", nil)

	got := string(FormatPatch(p, &FormatOptions{OmitNoNewline: true}))
	if strings.Contains(got, `\ `) {
		t.Fatalf("sentinel must be omitted:\n%q", got)
	}
	if !strings.Contains(got, "-a\n") || !strings.Contains(got, "+b\n") {
		t.Fatalf("body lines missing:\n%q", got)
	}
}

func TestFormatPatch_ColorIdentity(t *testing.T) {
	p := CreatePatch("a\nb\n", "a\nc\n", nil)

	plain := string(FormatPatch(p, &FormatOptions{}))
	uncolored := string(FormatPatch(p, &FormatOptions{Color: false, Styles: &Styles{}}))
	if plain != uncolored {
		t.Fatalf("color off must be byte-identical:\n%q\nvs\n%q", plain, uncolored)
	}
}

func TestHunkRange_String(t *testing.T) {
	cases := []struct {
		r    HunkRange
		want string
	}{
		{HunkRange{1, 3}, "1,3"},
		{HunkRange{5, 1}, "5"},
		{HunkRange{0, 0}, "0,0"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.r, got, c.want)
		}
	}
}
