package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sysfuzz/config"
	"sysfuzz/shm"
	"sysfuzz/watchdog"
)

var (
	watchdogCfg   = config.Default()
	watchdogShmFd int
	watchdogN     int
)

// watchdogCmd is the internal re-exec target the supervisor launches once
// per run to monitor the control block and the worker pool.
var watchdogCmd = &cobra.Command{
	Use:    "watchdog",
	Short:  "Internal: run the integrity watchdog",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runWatchdog,
}

func init() {
	rootCmd.AddCommand(watchdogCmd)
	bindCfgFlags(watchdogCmd, watchdogCfg)
	bindShmFlags(watchdogCmd, &watchdogShmFd, &watchdogN)
}

func runWatchdog(cmd *cobra.Command, args []string) error {
	block, err := shm.Attach(watchdogShmFd, watchdogN)
	if err != nil {
		return fmt.Errorf("attach shm: %w", err)
	}
	defer block.Close()

	watchdog.Run(block, watchdogCfg)
	return nil
}
