// Package worker implements a single fuzzing child: repeatedly picking a
// syscall, synthesising its arguments, invoking it, and recording the
// outcome, until the shared control block goes terminal or the run's
// configured syscall count is reached.
package worker

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"sysfuzz/argsynth"
	"sysfuzz/config"
	"sysfuzz/errors"
	"sysfuzz/fdpool"
	"sysfuzz/invoke"
	"sysfuzz/logging"
	"sysfuzz/rng"
	"sysfuzz/scratch"
	"sysfuzz/shm"
	"sysfuzz/synscall"
)

// regenSleep is how long a worker parks between checks while the
// supervisor is mid-regeneration.
const regenSleep = 50 * time.Millisecond

// maxPickAttempts bounds the syscall-selection retry loop; the Go
// rendition of the original's "pick again" goto returns ok=false instead
// of looping forever against an empty table.
const maxPickAttempts = 64

// Run drives one worker's fuzzing loop for slot childno until the shared
// control block's exit reason goes terminal, the completed-syscall count
// summed across all workers reaches cfg.SyscallsTodo, or its parent
// disappears.
func Run(block *shm.Block, idx *fdpool.Index, cfg *config.Config, childno int) error {
	log := logging.WithChild(logging.Default(), childno)
	slot := block.Slot(childno)

	seed := slot.Seed
	if seed == 0 {
		seed = rng.DeriveChildSeed(block.Seed(), childno)
	}

	wc := &argsynth.WorkerContext{
		RNG:   rng.New(seed),
		Pool:  &fdpool.Pool{},
		Page:  &scratch.Page{},
		Arena: &argsynth.Arena{},
		Index: idx,
	}
	defer wc.Pool.Close()

	if err := wc.Pool.Open(context.Background(), idx, wc.RNG); err != nil {
		log.Warn("starting with no open file descriptors", "error", err)
	}
	wc.Page.Regenerate(wc.RNG)

	// Go cannot siglongjmp out of a synchronous fault the way the original
	// recovery point does; debug.SetPanicOnFault converts a bad-pointer
	// dereference inside our own synthesis code into a recoverable panic
	// instead of a fatal runtime crash, which attempt() below catches.
	debug.SetPanicOnFault(true)

	for block.ExitReason() == shm.StillRunning {
		if !parentAlive(block.ParentPid()) {
			return errors.Wrap(errors.ErrMainGone, errors.ErrChild, "worker.Run")
		}

		if block.Regenerating() {
			time.Sleep(regenSleep)
			continue
		}

		if base := block.Seed(); rng.DeriveChildSeed(base, childno) != wc.RNG.Current() {
			childSeed := rng.DeriveChildSeed(base, childno)
			wc.RNG.Seed(childSeed)
			slot.Seed = childSeed
		}

		table, use32 := synscall.ActiveTable(biarch(), tableABI(cfg.ForceABI), cfg.Probability32Bit, wc.RNG)
		if len(table) == 0 {
			block.Latch(shm.ReasonNoSyscallsEnabled)
			return errors.Wrap(errors.ErrTableBothEmpty, errors.ErrTable, "worker.Run")
		}

		d, ok := pickEligible(table, wc.RNG)
		if !ok {
			continue
		}

		if cfg.SyscallsTodo > 0 && block.TotalDone() >= cfg.SyscallsTodo {
			block.Latch(shm.ReasonReachedCount)
			return nil
		}

		slot.CurrentSyscall = d.Number
		slot.Use32Bit = boolToUint32(use32)
		slot.LastHeartbeat = time.Now().Unix()

		args, ok := attempt(d, wc, log, childno)
		if !ok {
			// A fault was caught and recovered by re-exec; this line of
			// execution is already gone by the time we'd get here.
			continue
		}
		slot.Arg = args

		abi := invoke.ABI64
		if use32 {
			abi = invoke.ABI32
		}
		_, errno := invoke.Do(abi, d.Number, args[0], args[1], args[2], args[3], args[4], args[5])

		block.IncTotalDone()
		if errno != 0 {
			block.IncFailures()
		} else {
			block.IncSuccesses()
		}

		wc.Arena.Reset()
	}

	return nil
}

// attempt synthesises d's arguments, recovering from a synchronous memory
// fault by re-execing the process in place. ok is false only when a fault
// was caught; by the time attempt would return in that case the process
// image has already been replaced, so the false branch is unreachable in
// practice and exists only to satisfy the type checker.
func attempt(d synscall.Descriptor, wc *argsynth.WorkerContext, log *slog.Logger, childno int) (args [6]uint64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered fault during argument synthesis, re-execing",
				"syscall", d.Name, "fault", r)
			reexec()
		}
	}()
	return argsynth.Synthesise(d, wc), true
}

// reexec replaces the current process image with a fresh copy of itself,
// same argv and environment, so the supervisor sees no exit and need not
// respawn the slot. It does not return.
func reexec() {
	self, err := os.Executable()
	if err != nil {
		os.Exit(1)
	}
	_ = syscall.Exec(self, os.Args, os.Environ())
	os.Exit(1)
}

// parentAlive reports whether the supervisor pid still exists. A zero or
// negative pid means the block hasn't recorded one yet and is treated as
// alive.
func parentAlive(ppid int32) bool {
	if ppid <= 0 {
		return true
	}
	return unix.Kill(int(ppid), 0) == nil
}

// pickEligible draws a bounded number of random candidates from table and
// returns the first eligible one.
func pickEligible(table []synscall.Descriptor, r *rng.Source) (synscall.Descriptor, bool) {
	for i := 0; i < maxPickAttempts; i++ {
		d := table[r.Range(uint32(len(table)))]
		if synscall.Eligible(d) {
			return d, true
		}
	}
	return synscall.Descriptor{}, false
}

// biarch reports whether this host's kernel is expected to serve a 32-bit
// compatibility syscall table alongside the native one.
func biarch() bool {
	return runtime.GOARCH == "amd64"
}

// tableABI translates the configured ABI preference into the synscall
// package's own enum, keeping the two packages' choice types independent.
func tableABI(a config.ABIChoice) synscall.ABIChoice {
	switch a {
	case config.ABI32:
		return synscall.ABIForce32
	case config.ABI64:
		return synscall.ABIForce64
	default:
		return synscall.ABIAuto
	}
}

func boolToUint32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
