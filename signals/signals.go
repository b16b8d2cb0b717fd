// Package signals names and classifies the signals the supervisor and
// watchdog care about: what a worker died of, and which faults the worker
// loop itself treats as recoverable.
package signals

import (
	"strconv"
	"syscall"
)

// names maps the signal numbers the fuzzer ever logs to their conventional
// short names, trimmed from the full signal table down to the ones a
// worker or watchdog can actually observe.
var names = map[syscall.Signal]string{
	syscall.SIGHUP:  "SIGHUP",
	syscall.SIGINT:  "SIGINT",
	syscall.SIGQUIT: "SIGQUIT",
	syscall.SIGILL:  "SIGILL",
	syscall.SIGTRAP: "SIGTRAP",
	syscall.SIGABRT: "SIGABRT",
	syscall.SIGBUS:  "SIGBUS",
	syscall.SIGFPE:  "SIGFPE",
	syscall.SIGKILL: "SIGKILL",
	syscall.SIGSEGV: "SIGSEGV",
	syscall.SIGPIPE: "SIGPIPE",
	syscall.SIGALRM: "SIGALRM",
	syscall.SIGTERM: "SIGTERM",
	syscall.SIGCHLD: "SIGCHLD",
	syscall.SIGSYS:  "SIGSYS",
}

// Name returns a signal's conventional short name, or its raw number
// formatted as "signal N" if it isn't one the fuzzer names.
func Name(sig syscall.Signal) string {
	if n, ok := names[sig]; ok {
		return n
	}
	return "signal " + strconv.Itoa(int(sig))
}

// Recoverable reports whether a worker fault on this signal should trigger
// the narrow re-exec recovery path rather than letting the process die.
// SIGSEGV and SIGBUS are the faults a synthesised pointer argument can
// plausibly trigger; anything else (SIGKILL from the watchdog, SIGTERM
// from the supervisor) is an intentional teardown, not a recoverable bug.
func Recoverable(sig syscall.Signal) bool {
	return sig == syscall.SIGSEGV || sig == syscall.SIGBUS
}
