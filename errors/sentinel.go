// Package errors provides predefined sentinel errors for common failure cases.
package errors

// Configuration and validation errors.
var (
	// ErrNoVictimPath indicates the file index walk, of the victim path or of
	// the default roots (/dev, /proc, /sys), found no usable entries.
	ErrNoVictimPath = &FuzzError{
		Kind:   ErrConfig,
		Detail: "no usable victim path",
	}

	// ErrInvalidChildren indicates the requested child count is not positive.
	ErrInvalidChildren = &FuzzError{
		Kind:   ErrConfig,
		Detail: "children must be at least 1",
	}

	// ErrInvalidQuietLevel indicates a negative quiet level was requested.
	ErrInvalidQuietLevel = &FuzzError{
		Kind:   ErrConfig,
		Detail: "quiet level cannot be negative",
	}

	// ErrConflictingABI indicates both a forced 32-bit and a forced 64-bit ABI
	// were requested.
	ErrConflictingABI = &FuzzError{
		Kind:   ErrConfig,
		Detail: "cannot force both 32-bit and 64-bit ABI",
	}
)

// Shared control block errors.
var (
	// ErrShmMap indicates the shared control block could not be mapped.
	ErrShmMap = &FuzzError{
		Kind:   ErrShm,
		Detail: "failed to mmap shared control block",
	}

	// ErrShmCorrupt indicates the shared control block failed its sanity check.
	ErrShmCorrupt = &FuzzError{
		Kind:   ErrShm,
		Detail: "shared control block failed sanity check",
	}

	// ErrShmClosed indicates an operation was attempted on an unmapped block.
	ErrShmClosed = &FuzzError{
		Kind:   ErrShm,
		Detail: "shared control block already closed",
	}
)

// Child (worker) lifecycle errors.
var (
	// ErrChildSpawn indicates a worker process could not be spawned.
	ErrChildSpawn = &FuzzError{
		Kind:   ErrChild,
		Detail: "failed to spawn child",
	}

	// ErrChildStuck indicates a worker has not made progress within the watchdog's window.
	ErrChildStuck = &FuzzError{
		Kind:   ErrChild,
		Detail: "child appears stuck",
	}

	// ErrChildGone indicates a worker process vanished without a recorded exit.
	ErrChildGone = &FuzzError{
		Kind:   ErrChild,
		Detail: "child process no longer exists",
	}

	// ErrMainGone indicates the supervisor process is no longer reachable.
	ErrMainGone = &FuzzError{
		Kind:   ErrChild,
		Detail: "supervisor process no longer exists",
	}
)

// Syscall table registry errors.
var (
	// ErrTableEmpty indicates a syscall table has no eligible entries.
	ErrTableEmpty = &FuzzError{
		Kind:   ErrTable,
		Detail: "no eligible syscalls in table",
	}

	// ErrTableBothEmpty indicates neither the 64-bit nor 32-bit table has eligible entries.
	ErrTableBothEmpty = &FuzzError{
		Kind:   ErrTable,
		Detail: "no eligible syscalls in either table",
	}

	// ErrUnknownSyscall indicates a syscall number has no registry entry.
	ErrUnknownSyscall = &FuzzError{
		Kind:   ErrTable,
		Detail: "unknown syscall number",
	}
)

// Syscall invocation and argument synthesis errors.
var (
	// ErrFileIndexEmpty indicates the file descriptor pool's index has no entries.
	ErrFileIndexEmpty = &FuzzError{
		Kind:   ErrSyscall,
		Detail: "file index is empty",
	}

	// ErrNoOpenFds indicates the fd pool has no usable open file descriptors.
	ErrNoOpenFds = &FuzzError{
		Kind:   ErrSyscall,
		Detail: "no open file descriptors available",
	}

	// ErrUnsupportedFamily indicates a sockaddr family has no generator.
	ErrUnsupportedFamily = &FuzzError{
		Kind:   ErrSyscall,
		Detail: "unsupported protocol family",
	}
)

// Signal handling errors.
var (
	// ErrSignalRecovery indicates the signal-driven re-exec recovery path failed.
	ErrSignalRecovery = &FuzzError{
		Kind:   ErrSignal,
		Detail: "signal recovery re-exec failed",
	}

	// ErrSignalDeliver indicates a signal could not be delivered to a process.
	ErrSignalDeliver = &FuzzError{
		Kind:   ErrSignal,
		Detail: "failed to deliver signal",
	}
)
