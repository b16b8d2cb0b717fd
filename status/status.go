// Package status reports a running fuzzing campaign's progress: a single
// overwritten line when stdout is a terminal, or periodic slog lines
// otherwise. Grounded on the teacher's use of golang.org/x/term in
// container/exec.go for raw-mode console handling and terminal sizing,
// generalized here to read-only TTY detection and width discovery for a
// status line rather than raw-mode I/O.
package status

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"sysfuzz/config"
	"sysfuzz/logging"
	"sysfuzz/shm"
)

// interval is how often the status line or log line is refreshed.
const interval = 2 * time.Second

// defaultWidth is used when the terminal size can't be determined.
const defaultWidth = 80

// Run reports block's progress until stop is closed. QuietLevel gates the
// reporting: 0 reports normally, 1 drops the interactive line in favor of
// log lines at the same interval, 2 and above disables reporting entirely.
func Run(block *shm.Block, cfg *config.Config, stop <-chan struct{}) {
	if cfg.QuietLevel >= 2 {
		return
	}

	fd := int(os.Stdout.Fd())
	interactive := cfg.QuietLevel == 0 && term.IsTerminal(fd)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			if interactive {
				clearLine(fd)
			}
			return
		case <-ticker.C:
			if interactive {
				printLine(fd, block)
			} else {
				logLine(block)
			}
		}
	}
}

func printLine(fd int, block *shm.Block) {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = defaultWidth
	}

	line := fmt.Sprintf("\rrunning=%d done=%d ok=%d fail=%d reseeds=%d seed=%d",
		block.Running(), block.TotalDone(), block.Successes(), block.Failures(),
		block.ReseedCounter(), block.Seed())
	if len(line) > width {
		line = line[:width]
	}
	fmt.Fprint(os.Stdout, line)
}

func clearLine(fd int) {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", width))
}

func logLine(block *shm.Block) {
	logging.Default().Info("progress",
		"running", block.Running(), "done", block.TotalDone(),
		"successes", block.Successes(), "failures", block.Failures(),
		"reseeds", block.ReseedCounter())
}
