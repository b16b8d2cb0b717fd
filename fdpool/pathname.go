package fdpool

import (
	"strings"

	"sysfuzz/rng"
	"sysfuzz/scratch"
)

// GeneratePathname returns, with 90% probability, an unmangled path from
// idx. The remaining 10% of the time it builds a bogus path out of the
// scratch page's bytes, in one of four shapes: pure junk, a real path
// prefixed to junk, a "./"-prefixed junk path, or a real path with its
// slashes replaced by scratch bytes. A trailing "/" is appended with 50%
// probability in the bogus cases, matching the documented probability mix
// rather than blindly reproducing the original's branch ordering.
func GeneratePathname(idx *Index, page *scratch.Page, r *rng.Source) string {
	real, err := idx.RandomName(r)
	if err != nil {
		real = "/"
	}

	if r.Chance(90) {
		return real
	}

	junk := junkString(page, r, 8+int(r.Range(24)))

	var path string
	switch r.Range(4) {
	case 0:
		path = junk
	case 1:
		path = real + junk
	case 2:
		path = "./" + junk
	default:
		sep := page.Byte(int(r.Uint32()))%26 + 'a'
		path = strings.ReplaceAll(real, "/", string([]byte{sep}))
	}

	if r.Chance(50) {
		path += "/"
	}
	return path
}

// junkString builds an n-byte printable-ish string from the scratch page,
// starting at a pseudorandom offset.
func junkString(page *scratch.Page, r *rng.Source, n int) string {
	start := int(r.Range(scratch.PageSize))
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b := page.Byte(start + i)
		if b == 0 {
			b = 'x'
		}
		buf[i] = b
	}
	return string(buf)
}
