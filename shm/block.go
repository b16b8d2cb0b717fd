// Package shm implements the fuzzer's shared control block: the one piece
// of state visible to the supervisor, every worker, and the watchdog, none
// of which are goroutines in the same process — each is a separate OS
// process produced by re-exec. Go has no cross-process channel, so the
// control block lives in a MAP_SHARED mapping and is addressed through a
// fixed-layout struct cast over the mapped bytes.
//
// The mapping is backed by a memfd rather than plain anonymous memory: an
// anonymous mapping only survives a fork, and every role here is spawned
// by a fresh re-exec (fork+execve), which replaces the address space
// entirely. A memfd's contents persist across exec as long as the
// descriptor itself isn't closed, so the supervisor hands its mapping's
// fd to the watchdog and every worker via exec.Cmd.ExtraFiles, and each
// re-attaches with Attach instead of creating its own block.
package shm

import (
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"sysfuzz/errors"
)

// MaxChildren bounds how many worker slots a control block can describe.
// The configured child count must fit within it.
const MaxChildren = 256

// ExitReason is the fuzzer's terminal-latch state machine. It starts at
// StillRunning and may transition exactly once to any other value.
type ExitReason uint32

const (
	StillRunning ExitReason = iota
	ReasonSIGINT
	ReasonReachedCount
	ReasonNoSyscallsEnabled
	ReasonMainDisappeared
	ReasonPidOutOfRange
	ReasonShmCorruption
	ReasonKernelTainted
)

func (r ExitReason) String() string {
	switch r {
	case StillRunning:
		return "still running"
	case ReasonSIGINT:
		return "interrupted"
	case ReasonReachedCount:
		return "reached syscall count"
	case ReasonNoSyscallsEnabled:
		return "no syscalls enabled"
	case ReasonMainDisappeared:
		return "supervisor disappeared"
	case ReasonPidOutOfRange:
		return "pid out of range"
	case ReasonShmCorruption:
		return "shared control block corrupted"
	case ReasonKernelTainted:
		return "kernel tainted"
	default:
		return "unknown exit reason"
	}
}

// ChildSlot is one worker's visible state: what it's doing and when it last
// proved it was alive. The owning worker writes its heartbeat, current
// syscall, arguments and seed; the supervisor writes Pid when it spawns a
// worker and Seed on a slot's first spawn; the watchdog clears Pid when a
// worker has vanished and rewrites LastHeartbeat when it looks implausible.
// Torn reads of the non-Pid fields are acceptable since every consumer
// treats them diagnostically.
type ChildSlot struct {
	Pid            int32
	Use32Bit       uint32
	LastHeartbeat  int64
	CurrentSyscall uint32
	Seed           uint32
	Arg            [6]uint64
}

// EmptyPid marks a slot with no worker currently assigned to it.
const EmptyPid int32 = 0

// layout is the fixed, C-compatible shape mapped into shared memory.
// 64-bit atomically-accessed fields are placed first so their alignment
// relative to the page-aligned mapping start never depends on what
// precedes them.
type layout struct {
	totalDone     uint64
	previousCount uint64
	failures      uint64
	successes     uint64

	exitReason    uint32
	running       uint32
	needReseed    uint32
	regenerating  uint32
	reseedCounter uint32
	seed          uint32
	watchdogPid   int32
	parentPid     int32

	slots [MaxChildren]ChildSlot
}

// Block is a handle onto the mapped control block.
type Block struct {
	mem []byte
	l   *layout
	n   int
	fd  *os.File
}

// New creates a memfd sized for n child slots, maps it, and zeroes it.
// The returned Block's Fd method exposes the descriptor so a supervisor
// can pass it down to re-exec'd children via exec.Cmd.ExtraFiles.
func New(n int) (*Block, error) {
	if n < 1 || n > MaxChildren {
		return nil, errors.Wrap(errors.ErrShmMap, errors.ErrShm, "shm.New")
	}

	memfd, err := unix.MemfdCreate("sysfuzz-shm", 0)
	if err != nil {
		return nil, errors.WrapWithDetail(errors.ErrShmMap, errors.ErrShm, "shm.New: memfd_create", err.Error())
	}
	f := os.NewFile(uintptr(memfd), "sysfuzz-shm")

	size := int(unsafe.Sizeof(layout{}))
	if err := unix.Ftruncate(memfd, int64(size)); err != nil {
		f.Close()
		return nil, errors.WrapWithDetail(errors.ErrShmMap, errors.ErrShm, "shm.New: ftruncate", err.Error())
	}

	return mapBlock(f, size, n)
}

// Attach re-maps an already-sized memfd inherited from a parent process,
// such as one passed through exec.Cmd.ExtraFiles.
func Attach(fd int, n int) (*Block, error) {
	if n < 1 || n > MaxChildren {
		return nil, errors.Wrap(errors.ErrShmMap, errors.ErrShm, "shm.Attach")
	}
	f := os.NewFile(uintptr(fd), "sysfuzz-shm")
	size := int(unsafe.Sizeof(layout{}))
	return mapBlock(f, size, n)
}

func mapBlock(f *os.File, size, n int) (*Block, error) {
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.WrapWithDetail(errors.ErrShmMap, errors.ErrShm, "shm.mapBlock", err.Error())
	}

	return &Block{
		mem: mem,
		l:   (*layout)(unsafe.Pointer(&mem[0])),
		n:   n,
		fd:  f,
	}, nil
}

// Fd returns the underlying memfd, for handing to a child process via
// exec.Cmd.ExtraFiles. The descriptor must not have O_CLOEXEC set for the
// child to inherit it, which os/exec's ExtraFiles plumbing guarantees.
func (b *Block) Fd() *os.File { return b.fd }

// Close unmaps the control block and closes its backing descriptor. It
// must not be called while any other process still holds a reference to
// the mapping.
func (b *Block) Close() error {
	err := unix.Munmap(b.mem)
	if cerr := b.fd.Close(); err == nil {
		err = cerr
	}
	return err
}

// Children returns the number of configured child slots.
func (b *Block) Children() int { return b.n }

// Slot returns the child slot for index i. The caller is responsible for
// bounds-checking i against Children().
func (b *Block) Slot(i int) *ChildSlot { return &b.l.slots[i] }

// ExitReason loads the current exit reason with acquire ordering.
func (b *Block) ExitReason() ExitReason {
	return ExitReason(atomic.LoadUint32(&b.l.exitReason))
}

// Latch attempts the one-way StillRunning→reason transition and reports
// whether this call won the race. Per invariant I6, only the first caller
// to observe a terminal condition should act on it.
func (b *Block) Latch(reason ExitReason) bool {
	return atomic.CompareAndSwapUint32(&b.l.exitReason, uint32(StillRunning), uint32(reason))
}

// Running returns the current count of occupied slots.
func (b *Block) Running() uint32 {
	return atomic.LoadUint32(&b.l.running)
}

// SetRunning overwrites the running count. The supervisor sets it once
// after the initial spawn; the watchdog lowers it when it clears the Pid of
// a vanished worker.
func (b *Block) SetRunning(n uint32) {
	atomic.StoreUint32(&b.l.running, n)
}

// TotalDone returns the number of completed syscall attempts across all
// workers.
func (b *Block) TotalDone() uint64 {
	return atomic.LoadUint64(&b.l.totalDone)
}

// IncTotalDone increments the completed-attempt counter and returns the new
// value. Called by a worker after every invocation, successful or not.
func (b *Block) IncTotalDone() uint64 {
	return atomic.AddUint64(&b.l.totalDone, 1)
}

// PreviousCount returns the total_done value recorded at the start of the
// current watchdog sampling window, used to detect forward progress.
func (b *Block) PreviousCount() uint64 {
	return atomic.LoadUint64(&b.l.previousCount)
}

// SetPreviousCount records the current TotalDone as the new sampling
// baseline.
func (b *Block) SetPreviousCount(v uint64) {
	atomic.StoreUint64(&b.l.previousCount, v)
}

// Successes returns the count of invocations that returned success.
func (b *Block) Successes() uint64 {
	return atomic.LoadUint64(&b.l.successes)
}

// IncSuccesses increments the success counter.
func (b *Block) IncSuccesses() uint64 {
	return atomic.AddUint64(&b.l.successes, 1)
}

// Failures returns the count of invocations that returned an error.
func (b *Block) Failures() uint64 {
	return atomic.LoadUint64(&b.l.failures)
}

// IncFailures increments the failure counter.
func (b *Block) IncFailures() uint64 {
	return atomic.AddUint64(&b.l.failures, 1)
}

// Seed returns the run's current base seed.
func (b *Block) Seed() uint32 {
	return atomic.LoadUint32(&b.l.seed)
}

// SetSeed overwrites the run's base seed, used when the supervisor
// reseeds between regeneration cycles.
func (b *Block) SetSeed(seed uint32) {
	atomic.StoreUint32(&b.l.seed, seed)
}

// ReseedCounter returns the current regeneration generation number.
func (b *Block) ReseedCounter() uint32 {
	return atomic.LoadUint32(&b.l.reseedCounter)
}

// IncReseedCounter advances the regeneration generation number and returns
// the new value.
func (b *Block) IncReseedCounter() uint32 {
	return atomic.AddUint32(&b.l.reseedCounter, 1)
}

// NeedReseed reports whether the supervisor has asked workers to reseed
// before their next iteration.
func (b *Block) NeedReseed() bool {
	return atomic.LoadUint32(&b.l.needReseed) != 0
}

// SetNeedReseed sets or clears the reseed request flag.
func (b *Block) SetNeedReseed(v bool) {
	atomic.StoreUint32(&b.l.needReseed, boolToUint32(v))
}

// Regenerating reports whether workers should be parked for a regeneration
// cycle.
func (b *Block) Regenerating() bool {
	return atomic.LoadUint32(&b.l.regenerating) != 0
}

// SetRegenerating sets or clears the regeneration-in-progress flag.
func (b *Block) SetRegenerating(v bool) {
	atomic.StoreUint32(&b.l.regenerating, boolToUint32(v))
}

// ParentPid returns the supervisor's pid, as recorded at block creation.
func (b *Block) ParentPid() int32 {
	return atomic.LoadInt32(&b.l.parentPid)
}

// SetParentPid records the supervisor's own pid once at startup.
func (b *Block) SetParentPid(pid int32) {
	atomic.StoreInt32(&b.l.parentPid, pid)
}

// WatchdogPid returns the watchdog's pid, or EmptyPid before it has
// started.
func (b *Block) WatchdogPid() int32 {
	return atomic.LoadInt32(&b.l.watchdogPid)
}

// SetWatchdogPid records the watchdog's pid once it has been spawned.
func (b *Block) SetWatchdogPid(pid int32) {
	atomic.StoreInt32(&b.l.watchdogPid, pid)
}

func boolToUint32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
