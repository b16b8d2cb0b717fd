// Package argsynth turns a syscall descriptor into a concrete argument
// tuple: open file descriptors from the fd pool, pathnames built on top of
// the file index, scratch-backed pointers, and protocol-specific sockaddr
// buffers, finished off by a per-syscall sanitiser pass.
package argsynth

import (
	"os"
	"unsafe"

	"sysfuzz/argsynth/sanitiser"
	"sysfuzz/argsynth/sockaddr"
	"sysfuzz/fdpool"
	"sysfuzz/rng"
	"sysfuzz/scratch"
	"sysfuzz/synscall"
)

// WorkerContext bundles everything a single worker needs to synthesise
// arguments for one syscall attempt: its own PRNG, its open file pool, the
// process-wide scratch page, and a reset-per-iteration arena backing the
// buffers handed out as pointer arguments.
type WorkerContext struct {
	RNG   *rng.Source
	Pool  *fdpool.Pool
	Page  *scratch.Page
	Arena *Arena
	Index *fdpool.Index
}

// Synthesise builds the six-word argument tuple for d, dispatching each
// slot per its ArgType and running d's sanitiser, if any, over the result
// before returning it.
func Synthesise(d synscall.Descriptor, wc *WorkerContext) [6]uint64 {
	var args [6]uint64
	for i := 0; i < d.NumArgs; i++ {
		args[i] = synthOne(d.ArgTypes[i], d.PFHint, wc)
	}

	switch d.Sanitiser {
	case synscall.SanitiserIoctl:
		sanitiser.SanitiseIoctl(&args, wc.Page, wc.Arena.Alloc, wc.RNG)
	}

	return args
}

func synthOne(t synscall.ArgType, pfHint int, wc *WorkerContext) uint64 {
	switch t {
	case synscall.ArgFd:
		return argFd(wc)
	case synscall.ArgLen:
		return argLen(wc)
	case synscall.ArgAddress:
		return argAddress(wc)
	case synscall.ArgPid:
		return argPid(wc)
	case synscall.ArgMode:
		return argMode(wc)
	case synscall.ArgIovec:
		return argIovec(wc)
	case synscall.ArgSockaddr:
		return argSockaddr(pfHint, wc)
	default:
		return 0
	}
}

// argFd picks an already-open descriptor from the pool when one is
// available, and otherwise hands back a random int below 64, which may or
// may not name a descriptor this process has open; when it does not, the
// kernel's rejection path gets exercised instead.
func argFd(wc *WorkerContext) uint64 {
	if wc.Pool.Len() > 0 {
		return uint64(wc.Pool.Random(wc.RNG).Fd())
	}
	return uint64(wc.RNG.Range(64))
}

// argLen returns either a curated boundary-condition length or a small
// uniformly random one, split 50/50.
func argLen(wc *WorkerContext) uint64 {
	if wc.RNG.Chance(50) {
		return wc.RNG.Interesting64()
	}
	return uint64(wc.RNG.Range(4096))
}

// argAddress returns a pointer into a fresh arena-owned page-sized buffer,
// pre-filled with scratch bytes so reads through it see nonzero data.
func argAddress(wc *WorkerContext) uint64 {
	buf := wc.Arena.Alloc(scratch.PageSize)
	copy(buf, wc.Page.Bytes())
	return bufAddr(buf)
}

// argPid returns either this process's own pid, a curated boundary value,
// or a small random one.
func argPid(wc *WorkerContext) uint64 {
	switch wc.RNG.Range(3) {
	case 0:
		return uint64(wc.RNG.InterestingUint32())
	case 1:
		return uint64(wc.RNG.Range(65536))
	default:
		return uint64(os.Getpid())
	}
}

// argMode returns either a curated boundary value or a uniformly random
// 32-bit mask.
func argMode(wc *WorkerContext) uint64 {
	if wc.RNG.Chance(30) {
		return uint64(wc.RNG.InterestingUint32())
	}
	return uint64(wc.RNG.Uint32())
}

// argIovec manufactures a small iovec array in the arena: each entry points
// into a scratch-backed buffer of its own.
func argIovec(wc *WorkerContext) uint64 {
	const n = 2
	type iovec struct {
		base uint64
		len  uint64
	}
	iov := make([]iovec, n)
	for i := range iov {
		buf := wc.Arena.Alloc(64)
		copy(buf, wc.Page.Bytes())
		iov[i] = iovec{base: bufAddr(buf), len: uint64(len(buf))}
	}
	raw := wc.Arena.Alloc(int(unsafe.Sizeof(iovec{})) * n)
	copy(raw, unsafe.Slice((*byte)(unsafe.Pointer(&iov[0])), len(raw)))
	return bufAddr(raw)
}

// argSockaddr builds a sockaddr buffer for the descriptor's protocol family
// hint, or a random implemented family when the descriptor carries none,
// and returns a pointer to it.
func argSockaddr(pfHint int, wc *WorkerContext) uint64 {
	if pfHint == 0 {
		pfHint = sockaddr.RandomFamily(wc.RNG)
	}
	sa := sockaddr.Generate(pfHint, wc.RNG)
	if len(sa) == 0 {
		return 0
	}
	buf := wc.Arena.Alloc(len(sa))
	copy(buf, sa)
	return bufAddr(buf)
}

// bufAddr returns buf's backing array address as a raw syscall argument
// word. The caller owns buf for the lifetime of the arena it came from.
func bufAddr(buf []byte) uint64 {
	if len(buf) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(&buf[0])))
}
