// Package invoke performs the raw syscall: everything upstream of it only
// decides which number and which six words to pass.
package invoke

import "golang.org/x/sys/unix"

// ABI selects which syscall numbering convention an invocation uses.
type ABI int

const (
	// ABI64 invokes using the native 64-bit syscall table.
	ABI64 ABI = iota
	// ABI32 invokes using 386 syscall numbers, a best-effort emulation on a
	// biarch host rather than a true 32-bit calling convention: the Go
	// runtime never runs in 32-bit mode, so this exercises whatever
	// compatibility path the kernel's syscall multiplexer offers for
	// mismatched argument widths, not a genuine INT 0x80 entry.
	ABI32
)

// Do invokes syscall nr with the given six argument words under the given
// ABI and returns its return value and errno, exactly as
// golang.org/x/sys/unix.Syscall6 reports them.
func Do(abi ABI, nr uint32, a0, a1, a2, a3, a4, a5 uint64) (ret int64, errno unix.Errno) {
	r1, _, e := unix.Syscall6(uintptr(nr),
		uintptr(a0), uintptr(a1), uintptr(a2),
		uintptr(a3), uintptr(a4), uintptr(a5))
	return int64(r1), e
}
