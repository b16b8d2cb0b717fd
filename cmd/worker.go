package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sysfuzz/config"
	"sysfuzz/fdpool"
	"sysfuzz/shm"
	"sysfuzz/worker"
)

var (
	workerCfg     = config.Default()
	workerShmFd   int
	workerN       int
	workerChildNo int
)

// workerCmd is the internal re-exec target the supervisor launches for
// each worker slot. It is not meant to be invoked directly.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Internal: run a single fuzzing worker",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
	bindCfgFlags(workerCmd, workerCfg)
	bindShmFlags(workerCmd, &workerShmFd, &workerN)
	workerCmd.Flags().IntVar(&workerChildNo, "childno", 0, "this worker's slot index")
}

func runWorker(cmd *cobra.Command, args []string) error {
	block, err := shm.Attach(workerShmFd, workerN)
	if err != nil {
		return fmt.Errorf("attach shm: %w", err)
	}
	defer block.Close()

	idx, err := fdpool.BuildIndex(context.Background(), nil, workerCfg.Victim)
	if err != nil {
		return fmt.Errorf("build file index: %w", err)
	}

	return worker.Run(block, idx, workerCfg, workerChildNo)
}

// bindShmFlags registers the flags a re-exec'd worker or watchdog needs to
// attach to the supervisor's control block.
func bindShmFlags(cmd *cobra.Command, fd, n *int) {
	cmd.Flags().IntVar(fd, "shm-fd", 3, "inherited file descriptor for the shared control block")
	cmd.Flags().IntVar(n, "children", 1, "number of worker slots the control block was sized for")
}
