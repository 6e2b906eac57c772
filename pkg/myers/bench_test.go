package myers

import (
	"math/rand"
	"testing"
)

func benchSeqs(n int) ([]int, []int) {
	rng := rand.New(rand.NewSource(42))
	a := randSeq(rng, n, 16)
	b := make([]int, 0, n)
	// b is a mutated copy of a: ~10% of elements dropped, ~10% inserted.
	for _, e := range a {
		switch rng.Intn(10) {
		case 0:
			// drop
		case 1:
			b = append(b, e, rng.Intn(16))
		default:
			b = append(b, e)
		}
	}
	return a, b
}

func BenchmarkDiff1K(b *testing.B) {
	x, y := benchSeqs(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(x, y)
	}
}

func BenchmarkDiff10K(b *testing.B) {
	x, y := benchSeqs(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(x, y)
	}
}

func BenchmarkCompact1K(b *testing.B) {
	x, y := benchSeqs(1000)
	script := Diff(x, y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp := make([]Range, len(script))
		copy(cp, script)
		Compact(cp, x, y)
	}
}
