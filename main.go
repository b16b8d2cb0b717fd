// Command sysfuzz drives a pool of worker processes that synthesise and
// invoke Linux syscalls with pseudo-random arguments, watched by an
// independent watchdog for stuck or crashed workers and kernel taint.
package main

import (
	"fmt"
	"os"

	"sysfuzz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
