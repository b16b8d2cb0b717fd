package argsynth

// Arena is a per-worker, per-iteration scratch allocator for byte buffers
// built during argument synthesis (pathnames, manufactured structs). Go's
// garbage collector makes a leak impossible, but reusing one slab avoids
// reallocating a fresh buffer on every syscall attempt the way the
// synthesiser's C ancestor was documented to leak one.
type Arena struct {
	bufs [][]byte
}

// Reset discards all buffers handed out since the last Reset, retaining
// their backing capacity for reuse.
func (a *Arena) Reset() {
	for i := range a.bufs {
		a.bufs[i] = a.bufs[i][:0]
	}
	a.bufs = a.bufs[:0]
}

// Alloc returns a zeroed buffer of length n, owned by the arena until the
// next Reset. It reuses a buffer retained by the last Reset when that
// buffer's capacity is large enough.
func (a *Arena) Alloc(n int) []byte {
	if i := len(a.bufs); i < cap(a.bufs) {
		if buf := a.bufs[:i+1][i]; cap(buf) >= n {
			buf = buf[:n]
			for j := range buf {
				buf[j] = 0
			}
			a.bufs = append(a.bufs, buf)
			return buf
		}
	}
	buf := make([]byte, n)
	a.bufs = append(a.bufs, buf)
	return buf
}

// AllocString copies s into an arena-owned buffer and returns it.
func (a *Arena) AllocString(s string) []byte {
	buf := a.Alloc(len(s))
	copy(buf, s)
	return buf
}
