package fdpool

import (
	"testing"

	"sysfuzz/rng"
	"sysfuzz/scratch"
)

func TestGeneratePathname_MostlyUnmangled(t *testing.T) {
	idx := &Index{entries: []Entry{{Path: "/dev/null", Flag: ReadWrite}}}
	var page scratch.Page
	page.Regenerate(rng.New(1))
	r := rng.New(2)

	unmangled := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		name := GeneratePathname(idx, &page, r)
		if name == "/dev/null" {
			unmangled++
		}
	}

	// Expect roughly 90%, allow generous slack for PRNG variance.
	if unmangled < trials*70/100 {
		t.Errorf("unmangled rate too low: %d/%d", unmangled, trials)
	}
	if unmangled > trials*98/100 {
		t.Errorf("unmangled rate too high, mangled path never produced: %d/%d", unmangled, trials)
	}
}

func TestGeneratePathname_EmptyIndexFallsBack(t *testing.T) {
	idx := &Index{}
	var page scratch.Page
	page.Regenerate(rng.New(1))
	r := rng.New(3)

	name := GeneratePathname(idx, &page, r)
	if name == "" {
		t.Error("expected a non-empty fallback path")
	}
}
