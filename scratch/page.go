// Package scratch provides the process-wide scratch page: a page-sized
// buffer of regenerable random bytes used as a convenient backing store for
// pointer-typed syscall arguments and bogus pathname construction.
package scratch

import "sysfuzz/rng"

// PageSize matches the common Linux page size. The exact value has no
// correctness dependency — it only bounds how much junk data is available
// per regeneration.
const PageSize = 4096

// Page is a reusable buffer of pseudorandom bytes.
type Page struct {
	buf [PageSize]byte
}

// Regenerate refills the page with fresh pseudorandom bytes.
func (p *Page) Regenerate(r *rng.Source) {
	r.Fill(p.buf[:])
}

// Bytes returns the page's current contents. Callers must not retain the
// slice past the next Regenerate call.
func (p *Page) Bytes() []byte {
	return p.buf[:]
}

// Byte returns the byte at the given offset, wrapping around the page.
func (p *Page) Byte(offset int) byte {
	return p.buf[offset%PageSize]
}
