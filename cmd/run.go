package cmd

import (
	"github.com/spf13/cobra"

	"sysfuzz/config"
	"sysfuzz/supervisor"
)

var runCfg = config.Default()

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a fuzzing run",
	Long: `Start a fuzzing run: map the shared control block, spawn the watchdog
and every worker process, and block until the run reaches a terminal exit
reason.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	bindCfgFlags(runCmd, runCfg)
	runCmd.Flags().IntVar(&runCfg.Children, "children", 1, "number of worker processes to maintain")
	runCmd.Flags().IntVarP(&runCfg.QuietLevel, "quiet", "q", 0, "suppress increasingly verbose status output as it rises")
}

func runRun(cmd *cobra.Command, args []string) error {
	runCfg.LogFormat = globalLogFormat
	return supervisor.Run(GetContext(), runCfg)
}

// bindCfgFlags registers the Config flags shared by the run, worker, and
// watchdog commands.
func bindCfgFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Victim, "victim", "", "root path to walk for the file descriptor pool (default: /dev, /proc, /sys)")
	cmd.Flags().Uint64Var(&cfg.SyscallsTodo, "syscalls-todo", 0, "total number of syscalls across all workers after which the run ends (0 = unbounded)")
	cmd.Flags().Uint32Var(&cfg.Seed, "seed", 0, "base PRNG seed (0 = derive from startup entropy)")
	cmd.Flags().BoolVar(&cfg.IgnoreTainted, "ignore-tainted", false, "disable the watchdog's kernel-taint exit condition")
	cmd.Flags().IntVar((*int)(&cfg.ForceABI), "force-abi", int(config.ABIAuto), "override ABI selection: 0=auto, 1=32-bit, 2=64-bit")
	cmd.Flags().IntVar(&cfg.CorruptionThreshold, "corruption-threshold", cfg.CorruptionThreshold, "largest per-tick jump in the completed-syscall count before the watchdog declares shared-memory corruption")
	cmd.Flags().IntVar(&cfg.Probability32Bit, "probability-32bit", cfg.Probability32Bit, "percent chance of selecting the 32-bit table on a biarch host")
}
