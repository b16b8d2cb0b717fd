// Package supervisor owns the fuzzer's top-level process lifecycle:
// mapping the shared control block, building the file index, re-execing
// itself into a watchdog and N workers, respawning workers that die
// while the run is still live, and driving the periodic reseed/regenerate
// cycle.
package supervisor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"sysfuzz/config"
	"sysfuzz/errors"
	"sysfuzz/fdpool"
	"sysfuzz/logging"
	"sysfuzz/rng"
	"sysfuzz/shm"
	"sysfuzz/status"
)

// regenSettleDelay is how long the supervisor waits after raising
// Regenerating for workers to observe it and park, before picking a new
// seed. Workers poll the flag once per loop iteration rather than
// blocking on a rendezvous, so a short fixed delay is simpler than wiring
// a syncutil.SyncPipe per worker for a condition that resolves in
// milliseconds in practice.
const regenSettleDelay = 200 * time.Millisecond

// teardownWait bounds how long the supervisor waits for children to exit
// on their own after a terminal exit reason before escalating to SIGKILL.
const teardownWait = 5 * time.Second

// Supervisor owns one fuzzing run's process tree.
type Supervisor struct {
	Cfg   *config.Config
	Block *shm.Block
	Index *fdpool.Index

	mu      sync.Mutex
	workers map[int]*exec.Cmd
	watcher *exec.Cmd
}

// Run creates the shared control block, builds the file index, spawns the
// watchdog and every worker slot, and blocks until the run reaches a
// terminal exit reason, tearing down the process tree before returning.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	block, err := shm.New(cfg.Children)
	if err != nil {
		return err
	}
	defer block.Close()

	idx, err := fdpool.BuildIndex(ctx, nil, cfg.Victim)
	if err != nil {
		return errors.Wrap(err, errors.ErrChild, "supervisor.Run: build index")
	}
	if idx.Len() == 0 {
		return errors.ErrNoVictimPath
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	block.SetSeed(seed)
	block.SetParentPid(int32(os.Getpid()))

	s := &Supervisor{
		Cfg:     cfg,
		Block:   block,
		Index:   idx,
		workers: make(map[int]*exec.Cmd),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.spawnWatchdog(); err != nil {
		return err
	}
	for i := 0; i < cfg.Children; i++ {
		if err := s.spawnWorker(i); err != nil {
			return err
		}
	}
	block.SetRunning(uint32(cfg.Children))

	stopStatus := make(chan struct{})
	go status.Run(block, cfg, stopStatus)
	defer close(stopStatus)

	return s.supervise(ctx)
}

// selfPath returns the path to re-exec for child roles.
func selfPath() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", errors.WrapWithDetail(errors.ErrChildSpawn, errors.ErrChild, "supervisor.selfPath", err.Error())
	}
	return self, nil
}

// shmArgs returns the flags a re-exec'd child needs to attach to this
// run's control block: the block is handed down as the process's first
// inherited extra file (always fd 3, since each child gets its own fresh
// exec.Cmd with a single ExtraFiles entry), alongside the child count the
// layout was sized for.
func (s *Supervisor) shmArgs() []string {
	return []string{"--shm-fd", "3", "--children", strconv.Itoa(s.Cfg.Children)}
}

func (s *Supervisor) spawnWatchdog() error {
	self, err := selfPath()
	if err != nil {
		return err
	}
	args := append([]string{"watchdog"}, s.shmArgs()...)
	args = append(args, cfgArgs(s.Cfg)...)
	cmd := exec.Command(self, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{s.Block.Fd()}
	if err := cmd.Start(); err != nil {
		return errors.WrapWithDetail(errors.ErrChildSpawn, errors.ErrChild, "spawn watchdog", err.Error())
	}
	s.Block.SetWatchdogPid(int32(cmd.Process.Pid))
	s.watcher = cmd
	go func() { _ = cmd.Wait() }()
	return nil
}

// spawnWorker starts (or respawns) the worker for slot i, recording its
// pid in the slot and keeping the slot's prior seed so a respawned worker
// resumes a similar search, per spec.md §4.7's respawn policy.
func (s *Supervisor) spawnWorker(i int) error {
	self, err := selfPath()
	if err != nil {
		return err
	}
	args := append([]string{"worker", "--childno", strconv.Itoa(i)}, s.shmArgs()...)
	args = append(args, cfgArgs(s.Cfg)...)
	cmd := exec.Command(self, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{s.Block.Fd()}

	slot := s.Block.Slot(i)
	ensureSlotSeeded(slot, s.Block.Seed(), i)

	if err := cmd.Start(); err != nil {
		return errors.WrapWithChild(err, errors.ErrChildSpawn, "spawn worker", fmt.Sprintf("child %d", i))
	}

	slot.Pid = int32(cmd.Process.Pid)

	s.mu.Lock()
	s.workers[i] = cmd
	s.mu.Unlock()

	go s.watchWorker(i, cmd)
	return nil
}

// ensureSlotSeeded assigns slot a seed distinct from every other slot's on
// its first spawn, so N workers sharing one base seed still each walk a
// different pseudorandom stream. A respawn after a crash leaves an
// already-seeded slot alone, per the respawn policy above.
func ensureSlotSeeded(slot *shm.ChildSlot, baseSeed uint32, childno int) {
	if slot.Seed == 0 {
		slot.Seed = rng.DeriveChildSeed(baseSeed, childno)
	}
}

// cfgArgs re-serializes the fields of cfg a re-exec'd worker or watchdog
// needs back into flags, mirroring the flag names cmd's run/worker/watchdog
// commands share.
func cfgArgs(cfg *config.Config) []string {
	args := []string{
		"--victim", cfg.Victim,
		"--corruption-threshold", strconv.Itoa(cfg.CorruptionThreshold),
		"--probability-32bit", strconv.Itoa(cfg.Probability32Bit),
		"--force-abi", strconv.Itoa(int(cfg.ForceABI)),
	}
	if cfg.SyscallsTodo > 0 {
		args = append(args, "--syscalls-todo", strconv.FormatUint(cfg.SyscallsTodo, 10))
	}
	if cfg.IgnoreTainted {
		args = append(args, "--ignore-tainted")
	}
	return args
}

// watchWorker blocks until the worker exits, then respawns it in the same
// slot so long as the run hasn't reached a terminal state.
func (s *Supervisor) watchWorker(i int, cmd *exec.Cmd) {
	_ = cmd.Wait()
	if s.Block.ExitReason() != shm.StillRunning {
		return
	}
	logging.Default().Warn("worker exited, respawning", "childno", i)
	if err := s.spawnWorker(i); err != nil {
		logging.Default().Error("failed to respawn worker", "childno", i, "error", err)
	}
}

// supervise blocks until the run reaches a terminal exit reason (latched by
// the watchdog or a worker, or ctx cancellation), reacting to the
// watchdog's periodic reseed requests meanwhile, then tears down the
// process tree.
func (s *Supervisor) supervise(ctx context.Context) error {
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Block.Latch(shm.ReasonSIGINT)
			s.teardown()
			return exitError(s.Block.ExitReason())
		case <-poll.C:
			if s.Block.ExitReason() != shm.StillRunning {
				s.teardown()
				return exitError(s.Block.ExitReason())
			}
			if s.Block.NeedReseed() {
				s.regenerate()
			}
		}
	}
}

// exitError maps a terminal exit reason to the process's exit status per
// spec.md §6: every reason exits 0 except the three that indicate the run
// itself can no longer be trusted, which exit 1.
func exitError(reason shm.ExitReason) error {
	switch reason {
	case shm.ReasonShmCorruption, shm.ReasonMainDisappeared, shm.ReasonPidOutOfRange:
		return errors.New(errors.ErrShm, "supervisor.supervise", reason.String())
	default:
		return nil
	}
}

// regenerate parks workers, picks a fresh seed, and releases them. The
// watchdog is the one that decides when a reseed is due (its own 300-tick
// counter); the supervisor only carries it out.
func (s *Supervisor) regenerate() {
	s.Block.SetRegenerating(true)
	time.Sleep(regenSettleDelay)

	newSeed := rng.New(uint32(time.Now().UnixNano())).Uint32()
	s.Block.SetSeed(newSeed)
	s.Block.IncReseedCounter()
	s.Block.SetNeedReseed(false)
	s.Block.SetRegenerating(false)
}

// teardown asks every remaining child to stop, gives them teardownWait to
// exit, then escalates to SIGKILL for whatever's left.
func (s *Supervisor) teardown() {
	s.mu.Lock()
	cmds := make([]*exec.Cmd, 0, len(s.workers))
	for _, cmd := range s.workers {
		cmds = append(cmds, cmd)
	}
	s.mu.Unlock()

	for _, cmd := range cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Signal(syscall.SIGTERM)
		}
	}
	if s.watcher != nil && s.watcher.Process != nil {
		_ = s.watcher.Process.Signal(syscall.SIGTERM)
	}

	deadline := time.After(teardownWait)
	done := make(chan struct{})
	go func() {
		for i := 0; i < s.Cfg.Children; i++ {
			if slot := s.Block.Slot(i); slot.Pid != shm.EmptyPid {
				for alive(slot.Pid) {
					time.Sleep(20 * time.Millisecond)
				}
			}
		}
		close(done)
	}()

	select {
	case <-done:
	case <-deadline:
		for _, cmd := range cmds {
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
		}
		if s.watcher != nil && s.watcher.Process != nil {
			_ = s.watcher.Process.Kill()
		}
	}
}

// alive reports whether pid still exists, via the kill(pid, 0) probe the
// watchdog also uses to reap dead slots.
func alive(pid int32) bool {
	return unix.Kill(int(pid), 0) == nil
}
