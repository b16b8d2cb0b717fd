package fdpool

import (
	"context"
	"os"

	"sysfuzz/errors"
	"sysfuzz/rng"
)

// flagToOS maps an indexed OpenFlag to the os.OpenFile flag it was derived
// from, always adding O_NONBLOCK so opening a FIFO or device node can never
// block a worker indefinitely.
func flagToOS(f OpenFlag) int {
	switch f {
	case WriteOnly:
		return os.O_WRONLY | os.O_NONBLOCK
	case ReadWrite:
		return os.O_RDWR | os.O_NONBLOCK
	default:
		return os.O_RDONLY | os.O_NONBLOCK
	}
}

// Pool holds a bounded set of open file descriptors drawn from an Index.
// It is owned by a single worker process; it is not safe for concurrent
// use.
type Pool struct {
	files []*os.File
}

// Open lazily opens up to NR_FILE_FDS files chosen randomly from idx,
// retrying with a different random entry on open failure. It stops once
// the pool is full or the index cannot produce any more openable entries
// within a bounded number of attempts.
func (p *Pool) Open(ctx context.Context, idx *Index, r *rng.Source) error {
	if idx.Len() == 0 {
		return errors.ErrFileIndexEmpty
	}

	const maxAttemptsPerSlot = 8
	for len(p.files) < NR_FILE_FDS {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var f *os.File
		for attempt := 0; attempt < maxAttemptsPerSlot; attempt++ {
			entry, err := idx.RandomEntry(r)
			if err != nil {
				return err
			}
			opened, err := os.OpenFile(entry.Path, flagToOS(entry.Flag), 0)
			if err == nil {
				f = opened
				break
			}
		}
		if f == nil {
			break
		}
		p.files = append(p.files, f)
	}

	if len(p.files) == 0 {
		return errors.ErrNoOpenFds
	}
	return nil
}

// Len returns the number of currently open fds in the pool.
func (p *Pool) Len() int {
	return len(p.files)
}

// Random returns a uniformly chosen open file from the pool. Callers must
// check Len() > 0 first.
func (p *Pool) Random(r *rng.Source) *os.File {
	return p.files[r.Range(uint32(len(p.files)))]
}

// Close closes every open file in the pool and empties it.
func (p *Pool) Close() {
	for _, f := range p.files {
		f.Close()
	}
	p.files = nil
}
