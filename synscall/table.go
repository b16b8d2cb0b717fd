// Package synscall holds the syscall table registry: static, read-only
// descriptors, each carrying its syscall number, the data the fuzzing engine
// consumes to pick and shape calls. Named synscall (not syscall) to avoid
// colliding with the standard library package of the same name.
package synscall

import "sysfuzz/rng"

// ArgType tags how an argument word should be synthesised.
type ArgType int

const (
	// ArgNone means the slot is unused by this syscall.
	ArgNone ArgType = iota
	// ArgFd means the slot wants an open file descriptor.
	ArgFd
	// ArgLen means the slot wants a length/size value.
	ArgLen
	// ArgAddress means the slot wants a pointer to a buffer or struct.
	ArgAddress
	// ArgPid means the slot wants a process or thread ID.
	ArgPid
	// ArgMode means the slot wants a mode/flags bitmask.
	ArgMode
	// ArgIovec means the slot wants a pointer to an iovec array.
	ArgIovec
	// ArgSockaddr means the slot wants a pointer to a sockaddr buffer, built
	// for the protocol family named by the descriptor's PFHint.
	ArgSockaddr
)

// Flag is a bitset of per-descriptor eligibility and behavior flags.
type Flag uint32

const (
	// FlagActive marks a syscall as eligible for selection.
	FlagActive Flag = 1 << iota
	// FlagAvoid marks a syscall known to hang, crash the harness itself, or
	// otherwise not worth calling.
	FlagAvoid
	// FlagNI marks a syscall number with no implementation on this kernel
	// (sys_ni_syscall).
	FlagNI
	// FlagNeedsFD marks a syscall whose first argument must be a valid,
	// already-open file descriptor rather than an arbitrary int.
	FlagNeedsFD
)

// Sanitiser tags a descriptor with the argument-mangling routine the
// synthesiser should run after generating its argument tuple. Most
// descriptors leave this at SanitiserNone; the dispatch table lives in the
// argsynth package to keep this package free of synthesis logic and avoid
// an import cycle back from argsynth.
type Sanitiser int

const (
	// SanitiserNone means the synthesised arguments are used as-is.
	SanitiserNone Sanitiser = iota
	// SanitiserIoctl means the second and third arguments are an ioctl
	// command/argument pair that should be mangled per the ioctl sanitiser
	// contract.
	SanitiserIoctl
)

// Descriptor describes one syscall: its number, name, argument shape, and
// eligibility flags.
type Descriptor struct {
	Number   uint32
	Name     string
	NumArgs  int
	ArgTypes [6]ArgType
	// PFHint carries the protocol family to pass to the sockaddr generator
	// when one of ArgTypes is ArgSockaddr. Zero when not applicable.
	PFHint    int
	Flags     Flag
	Sanitiser Sanitiser
}

// Eligible reports whether a descriptor may be selected by a worker:
// active, not avoided, implemented, and taking at least one argument.
func Eligible(d Descriptor) bool {
	return d.Flags&FlagActive != 0 &&
		d.Flags&FlagAvoid == 0 &&
		d.Flags&FlagNI == 0 &&
		d.NumArgs > 0
}

// anyEligible reports whether a table has at least one eligible entry.
func anyEligible(table []Descriptor) bool {
	for _, d := range table {
		if Eligible(d) {
			return true
		}
	}
	return false
}

// ActiveTable implements the biarch selection policy: honor a forced ABI
// when requested and the corresponding table has eligible entries; when
// auto-selecting, use the random chance in favor of 64-bit with the
// configured 32-bit probability; and, regardless of preference, fall back
// to whichever table actually has eligible entries if the preferred one is
// empty.
func ActiveTable(biarch bool, preferred ABIChoice, probability32 int, r *rng.Source) (table []Descriptor, use32 bool) {
	has64 := anyEligible(Table64)
	has32 := biarch && anyEligible(Table32)

	want32 := false
	switch preferred {
	case ABIForce32:
		want32 = true
	case ABIForce64:
		want32 = false
	default:
		want32 = biarch && r.Chance(probability32)
	}

	if want32 && has32 {
		return Table32, true
	}
	if !want32 && has64 {
		return Table64, false
	}
	// Preferred table has nothing eligible: fall back to whichever table
	// does, biasing toward 64-bit since it is always present on this host.
	if has64 {
		return Table64, false
	}
	if has32 {
		return Table32, true
	}
	return nil, false
}

// ABIChoice mirrors config.ABIChoice without importing the config package,
// keeping the table-selection policy dependency-free of run configuration.
type ABIChoice int

const (
	ABIAuto ABIChoice = iota
	ABIForce32
	ABIForce64
)
