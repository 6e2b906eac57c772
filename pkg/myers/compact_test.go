package myers

import (
	"math/rand"
	"testing"
)

func TestCompact_MergesAdjacent(t *testing.T) {
	a := []string{"a", "b"}
	b := []string{}

	script := []Range{
		{Kind: Delete, Old: Span{0, 1}, New: Span{0, 0}},
		{Kind: Delete, Old: Span{1, 2}, New: Span{0, 0}},
	}

	got := Compact(script, a, b)
	if len(got) != 1 || got[0].Kind != Delete || got[0].Old.Len() != 2 {
		t.Fatalf("expected one Delete of 2, got %v", got)
	}
}

func TestCompact_SlideFusesRuns(t *testing.T) {
	// Two delete runs split by an equal "a" that also ends the second
	// delete. Sliding the second delete up over the equal fuses the runs:
	// delete x,a,b and keep the trailing a instead.
	a := []string{"x", "a", "b", "a"}
	b := []string{"a"}

	script := []Range{
		{Kind: Delete, Old: Span{0, 1}, New: Span{0, 0}},
		{Kind: Equal, Old: Span{1, 2}, New: Span{0, 1}},
		{Kind: Delete, Old: Span{2, 4}, New: Span{1, 1}},
	}
	checkScript(t, a, b, script)

	got := Compact(script, a, b)
	checkScript(t, a, b, got)

	want := []Range{
		{Kind: Delete, Old: Span{0, 3}, New: Span{0, 0}},
		{Kind: Equal, Old: Span{3, 4}, New: Span{0, 1}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompact_PreservesTransformation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 300; iter++ {
		a := randSeq(rng, rng.Intn(30), 3)
		b := randSeq(rng, rng.Intn(30), 3)

		script := Compact(Diff(a, b), a, b)
		checkScript(t, a, b, script)

		want := len(a) + len(b) - 2*lcsLen(a, b)
		if got := Distance(script); got != want {
			t.Fatalf("iter %d: distance %d, want %d (a=%v b=%v)", iter, got, want, a, b)
		}
	}
}
