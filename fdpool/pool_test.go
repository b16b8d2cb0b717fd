package fdpool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sysfuzz/rng"
)

func buildTestIndex(t *testing.T, n int) *Index {
	t.Helper()
	dir := t.TempDir()
	idx := &Index{}
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, "f")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		idx.entries = append(idx.entries, Entry{Path: path, Flag: ReadOnly})
	}
	return idx
}

func TestPool_Open_PopulatesUpToBound(t *testing.T) {
	idx := buildTestIndex(t, 3)
	var p Pool
	defer p.Close()

	if err := p.Open(context.Background(), idx, rng.New(1)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.Len() == 0 {
		t.Fatal("expected at least one open fd")
	}
	if p.Len() > NR_FILE_FDS {
		t.Fatalf("pool exceeded NR_FILE_FDS: %d", p.Len())
	}
}

func TestPool_Open_EmptyIndex(t *testing.T) {
	var p Pool
	defer p.Close()

	if err := p.Open(context.Background(), &Index{}, rng.New(1)); err == nil {
		t.Error("expected error opening from an empty index")
	}
}

func TestPool_Random(t *testing.T) {
	idx := buildTestIndex(t, 2)
	var p Pool
	defer p.Close()

	if err := p.Open(context.Background(), idx, rng.New(1)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	f := p.Random(rng.New(1))
	if f == nil {
		t.Fatal("Random returned nil with a non-empty pool")
	}
}

func TestPool_Close(t *testing.T) {
	idx := buildTestIndex(t, 1)
	var p Pool
	if err := p.Open(context.Background(), idx, rng.New(1)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	p.Close()
	if p.Len() != 0 {
		t.Error("Close should empty the pool")
	}
}
