package argsynth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sysfuzz/fdpool"
	"sysfuzz/rng"
	"sysfuzz/scratch"
	"sysfuzz/synscall"
)

func newTestContext(t *testing.T) *WorkerContext {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := fdpool.BuildIndex(context.Background(), nil, dir)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	var pool fdpool.Pool
	t.Cleanup(pool.Close)
	if err := pool.Open(context.Background(), idx, rng.New(1)); err != nil {
		t.Fatalf("Pool.Open: %v", err)
	}

	var page scratch.Page
	page.Regenerate(rng.New(2))

	return &WorkerContext{
		RNG:   rng.New(3),
		Pool:  &pool,
		Page:  &page,
		Arena: &Arena{},
		Index: idx,
	}
}

func TestSynthesise_FillsOnlyDeclaredArgs(t *testing.T) {
	wc := newTestContext(t)
	d := synscall.Descriptor{
		Name:    "read",
		NumArgs: 3,
		ArgTypes: [6]synscall.ArgType{
			synscall.ArgFd, synscall.ArgAddress, synscall.ArgLen,
		},
	}

	args := Synthesise(d, wc)
	for i := 3; i < 6; i++ {
		if args[i] != 0 {
			t.Errorf("arg %d should be untouched, got %d", i, args[i])
		}
	}
}

func TestSynthesise_AddressIsNonZero(t *testing.T) {
	wc := newTestContext(t)
	d := synscall.Descriptor{
		Name:    "mmap",
		NumArgs: 1,
		ArgTypes: [6]synscall.ArgType{synscall.ArgAddress},
	}

	args := Synthesise(d, wc)
	if args[0] == 0 {
		t.Error("expected a non-zero pointer for ArgAddress")
	}
}

func TestSynthesise_RunsSanitiserWhenTagged(t *testing.T) {
	wc := newTestContext(t)
	d := synscall.Descriptor{
		Name:    "ioctl",
		NumArgs: 3,
		ArgTypes: [6]synscall.ArgType{
			synscall.ArgFd, synscall.ArgMode, synscall.ArgMode,
		},
		Sanitiser: synscall.SanitiserIoctl,
	}

	// Run many times; the sanitiser is probabilistic, so just confirm it
	// doesn't panic and always produces a usable tuple.
	for i := 0; i < 20; i++ {
		_ = Synthesise(d, wc)
	}
}

func TestSynthesise_SockaddrUnknownFamilyIsZero(t *testing.T) {
	wc := newTestContext(t)
	d := synscall.Descriptor{
		Name:    "connect",
		NumArgs: 2,
		ArgTypes: [6]synscall.ArgType{
			synscall.ArgFd, synscall.ArgSockaddr,
		},
		PFHint: 9999,
	}

	args := Synthesise(d, wc)
	if args[1] != 0 {
		t.Error("expected zero pointer for an unimplemented protocol family")
	}
}

func TestSynthesise_SockaddrUnhintedPicksRandomFamily(t *testing.T) {
	wc := newTestContext(t)
	d := synscall.Descriptor{
		Name:    "bind",
		NumArgs: 2,
		ArgTypes: [6]synscall.ArgType{
			synscall.ArgFd, synscall.ArgSockaddr,
		},
	}

	args := Synthesise(d, wc)
	if args[1] == 0 {
		t.Error("expected a non-zero sockaddr pointer when no family is hinted")
	}
}

func TestArgFd_UsesPoolWhenAvailable(t *testing.T) {
	wc := newTestContext(t)
	if wc.Pool.Len() == 0 {
		t.Skip("pool did not open any fds in this environment")
	}
	fd := argFd(wc)
	if fd == 0 {
		t.Error("expected a plausible fd value")
	}
}
