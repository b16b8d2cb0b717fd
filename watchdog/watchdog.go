// Package watchdog implements the fuzzer's independent integrity monitor:
// one re-exec'd process that watches the shared control block for
// corruption, a vanished supervisor, stuck workers, and kernel taint, and
// is the one to decide when a periodic reseed is due.
package watchdog

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"sysfuzz/config"
	"sysfuzz/logging"
	"sysfuzz/shm"
	"sysfuzz/signals"
	"sysfuzz/synscall"
)

// tick is the watchdog's polling interval. Everything in spec.md §4.8 is
// expressed per-tick; a 300-tick reseed trigger is therefore ~5 minutes.
const tick = 1 * time.Second

// reseedTicks is how many ticks without an external reseed request elapse
// before the watchdog triggers one itself.
const reseedTicks = 300

// stuckKillDiff is the heartbeat age, in seconds, at which the watchdog
// gives up waiting and SIGKILLs a worker.
const stuckKillDiff = 30

// stuckGiveUpDiff is the heartbeat age past which the watchdog stops
// trying anything finer-grained than logging.
const stuckGiveUpDiff = 60

// clockWrapSlack tolerates a heartbeat that appears to be briefly in the
// future, which happens if the watchdog's own clock read races a
// worker's.
const clockWrapSlack = 3

// nonsenseDiff bounds how stale a heartbeat can be before it's treated as
// garbage (a slot the watchdog itself hasn't looked at correctly yet)
// rather than a genuinely stuck worker.
const nonsenseDiff = 1000

const taintedPath = "/proc/sys/kernel/tainted"

// Run drives the watchdog loop until the control block reaches a terminal
// exit reason and every worker has been reaped.
func Run(block *shm.Block, cfg *config.Config) {
	setProcessName("sysfuzz-watchdog")
	// A worker recovers from a synthesis-time fault via recover(); the
	// watchdog itself installs no such handling and should die loudly if
	// it ever takes one, so its SIGSEGV disposition is left at default
	// rather than silently ignored.
	signal.Reset(syscall.SIGSEGV)

	log := logging.Default()
	block.SetWatchdogPid(int32(os.Getpid()))

	var lastLoggedCount uint64
	var reseedTick uint32

	for {
		if !block.Regenerating() {
			if reason := shmCorrupt(block, cfg, log); reason != shm.StillRunning {
				block.Latch(reason)
			}

			reapDeadKids(block, log)
			checkMain(block, log)
			checkChildren(block, log)

			if cfg.SyscallsTodo > 0 && block.TotalDone() >= cfg.SyscallsTodo {
				log.Info("reached syscall limit, telling children to exit")
				block.Latch(shm.ReasonReachedCount)
			}

			if done := block.TotalDone(); done > 1 && done-lastLoggedCount > 10000 {
				log.Info("watchdog progress", "done", done,
					"failures", block.Failures(), "successes", block.Successes())
				lastLoggedCount = done
			}
		}

		if !cfg.IgnoreTainted {
			if flags, err := readTainted(); err == nil && flags != 0 {
				log.Warn("kernel became tainted", "flags", flags, "seed", block.Seed())
				block.Latch(shm.ReasonKernelTainted)
			}
		}

		if !block.NeedReseed() {
			reseedTick++
			if reseedTick >= reseedTicks {
				log.Info("triggering periodic reseed")
				block.SetNeedReseed(true)
				reseedTick = 0
			}
		} else {
			reseedTick = 0
		}

		if block.ExitReason() != shm.StillRunning {
			time.Sleep(tick)
			if allSlotsEmpty(block) {
				return
			}
			killAllKids(block, log)
			if shmCorrupt(block, cfg, log) != shm.StillRunning {
				// The exit reason we'd latch here would stomp the real one;
				// just stop driving the teardown loop and let the
				// supervisor's own bounded wait finish the job.
				return
			}
			continue
		}

		time.Sleep(tick)
	}
}

// shmCorrupt implements spec.md §4.8's SHM sanity check: every occupied
// slot must hold a plausible pid, and total_done must not have jumped by
// more than the configured corruption threshold within one tick — a jump
// that large means the mapping itself is corrupted, not that workers are
// unusually fast. An invalid pid is reported as its own reason, distinct
// from general corruption, matching the original's EXIT_PID_OUT_OF_RANGE.
func shmCorrupt(block *shm.Block, cfg *config.Config, log *slog.Logger) shm.ExitReason {
	if block.Running() == 0 {
		return shm.StillRunning
	}

	for i := 0; i < block.Children(); i++ {
		pid := block.Slot(i).Pid
		if pid != shm.EmptyPid && pid < 1 {
			log.Warn("slot holds an out-of-range pid", "childno", i, "pid", pid)
			return shm.ReasonPidOutOfRange
		}
	}

	done := block.TotalDone()
	prev := block.PreviousCount()
	if done > prev && done-prev > uint64(cfg.CorruptionThreshold) {
		log.Warn("execution count increased dramatically", "old", prev, "new", done)
		return shm.ReasonShmCorruption
	}
	block.SetPreviousCount(done)
	return shm.StillRunning
}

// checkMain reports whether the supervisor process has disappeared.
func checkMain(block *shm.Block, log *slog.Logger) {
	pid := block.ParentPid()
	if pid == 0 {
		return
	}
	if err := unix.Kill(int(pid), 0); err != nil {
		if err == unix.ESRCH {
			log.Warn("supervisor has disappeared", "pid", pid)
			block.Latch(shm.ReasonMainDisappeared)
		}
	}
}

// reapDeadKids clears any slot whose worker no longer exists, decrementing
// the running count for each one found.
func reapDeadKids(block *shm.Block, log *slog.Logger) {
	reaped := uint32(0)
	for i := 0; i < block.Children(); i++ {
		slot := block.Slot(i)
		pid := slot.Pid
		if pid == shm.EmptyPid {
			continue
		}
		if err := unix.Kill(int(pid), 0); err != nil && err == unix.ESRCH {
			log.Warn("child disappeared, reaping", "pid", pid, "childno", i)
			slot.Pid = shm.EmptyPid
			reaped++
		}
	}
	if reaped > 0 {
		running := block.Running()
		if running >= reaped {
			block.SetRunning(running - reaped)
		} else {
			block.SetRunning(0)
		}
	}
}

// checkChildren implements spec.md §4.8's stuck-worker detection.
func checkChildren(block *shm.Block, log *slog.Logger) {
	now := time.Now().Unix()

	for i := 0; i < block.Children(); i++ {
		slot := block.Slot(i)
		if slot.Pid == shm.EmptyPid {
			continue
		}

		old := slot.LastHeartbeat
		if old == 0 {
			continue
		}

		if old > now+clockWrapSlack {
			slot.LastHeartbeat = now
			continue
		}

		diff := now - old
		if diff > nonsenseDiff {
			log.Warn("huge heartbeat delta, resetting", "childno", i, "pid", slot.Pid, "diff", diff)
			slot.LastHeartbeat = now
			continue
		}

		if diff == stuckKillDiff {
			log.Warn("child hasn't made progress, sending "+signals.Name(syscall.Signal(unix.SIGKILL)),
				"childno", i, "pid", slot.Pid, "diff", diff,
				"syscall", describeSyscall(slot))
			unix.Kill(int(slot.Pid), unix.SIGKILL)
			continue
		}

		if diff > stuckGiveUpDiff {
			log.Warn("child still stuck", "childno", i, "pid", slot.Pid, "diff", diff)
			slot.LastHeartbeat = now
		}
	}
}

// describeSyscall renders a stuck slot's current syscall name, including
// its fd argument when the first argument is fd-typed, for the stuck-child
// log line.
func describeSyscall(slot *shm.ChildSlot) string {
	table := synscall.Table64
	if slot.Use32Bit != 0 {
		table = synscall.Table32
	}

	d, ok := findDescriptor(table, slot.CurrentSyscall)
	if !ok {
		return fmt.Sprintf("#%d", slot.CurrentSyscall)
	}

	desc := d.Name
	if d.NumArgs > 0 && d.ArgTypes[0] == synscall.ArgFd {
		desc += fmt.Sprintf(" (fd = %d)", slot.Arg[0])
	}
	return desc
}

func findDescriptor(table []synscall.Descriptor, number uint32) (synscall.Descriptor, bool) {
	for _, d := range table {
		if d.Number == number {
			return d, true
		}
	}
	return synscall.Descriptor{}, false
}

// readTainted reads and parses /proc/sys/kernel/tainted.
func readTainted() (int, error) {
	data, err := os.ReadFile(taintedPath)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// allSlotsEmpty reports whether every worker slot has been reaped.
func allSlotsEmpty(block *shm.Block) bool {
	for i := 0; i < block.Children(); i++ {
		if block.Slot(i).Pid != shm.EmptyPid {
			return false
		}
	}
	return true
}

// killAllKids reaps whatever has already exited and sends SIGKILL to
// everything still alive, matching spec.md §4.8's termination loop.
func killAllKids(block *shm.Block, log *slog.Logger) {
	reapDeadKids(block, log)
	for i := 0; i < block.Children(); i++ {
		if pid := block.Slot(i).Pid; pid != shm.EmptyPid {
			unix.Kill(int(pid), unix.SIGKILL)
		}
	}
}

// setProcessName sets this process's name for diagnostics (visible in ps,
// /proc/<pid>/comm), matching the original's prctl(PR_SET_NAME, ...) call.
func setProcessName(name string) {
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&append([]byte(name), 0)[0])), 0, 0, 0)
}
