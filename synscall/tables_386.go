package synscall

// Table32 is the i386 syscall table, used when the 32-bit ABI is forced
// (--force-abi 1) or auto-selected on a biarch host. Numbering follows the kernel's x86 (not
// x86-64) syscall table, which diverges from Table64's numbering entirely.
var Table32 = []Descriptor{
	{Number: 1, Name: "exit", NumArgs: 1, ArgTypes: [6]ArgType{ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 2, Name: "fork", NumArgs: 0, Flags: FlagActive | FlagAvoid},
	{Number: 3, Name: "read", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 4, Name: "write", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 5, Name: "open", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 6, Name: "close", NumArgs: 1, ArgTypes: [6]ArgType{ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 9, Name: "link", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 10, Name: "unlink", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 11, Name: "execve", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 13, Name: "time", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 19, Name: "lseek", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgLen, ArgMode}, Flags: FlagActive | FlagNeedsFD},
	{Number: 20, Name: "getpid", NumArgs: 0, Flags: FlagActive},
	{Number: 33, Name: "access", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 37, Name: "kill", NumArgs: 2, ArgTypes: [6]ArgType{ArgPid, ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 39, Name: "mkdir", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 40, Name: "rmdir", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 41, Name: "dup", NumArgs: 1, ArgTypes: [6]ArgType{ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 42, Name: "pipe", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 54, Name: "ioctl", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgMode, ArgAddress}, Flags: FlagActive | FlagNeedsFD, Sanitiser: SanitiserIoctl},
	{Number: 63, Name: "dup2", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 78, Name: "gettimeofday", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 85, Name: "readlink", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 90, Name: "mmap", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 91, Name: "munmap", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 94, Name: "fchmod", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgMode}, Flags: FlagActive | FlagNeedsFD},
	{Number: 102, Name: "socketcall", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 114, Name: "wait4", NumArgs: 4, ArgTypes: [6]ArgType{ArgPid, ArgAddress, ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 120, Name: "clone", NumArgs: 5, ArgTypes: [6]ArgType{ArgMode, ArgAddress, ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 125, Name: "mprotect", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgLen, ArgMode}, Flags: FlagActive},
	{Number: 141, Name: "getdents", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 142, Name: "_newselect", NumArgs: 5, ArgTypes: [6]ArgType{ArgLen, ArgAddress, ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 145, Name: "readv", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgIovec, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 146, Name: "writev", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgIovec, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 183, Name: "getcwd", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 191, Name: "ugetrlimit", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 197, Name: "fstat64", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgAddress}, Flags: FlagActive | FlagNeedsFD},
	{Number: 221, Name: "fcntl64", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgMode, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 224, Name: "gettid", NumArgs: 0, Flags: FlagActive},
	{Number: 252, Name: "exit_group", NumArgs: 1, ArgTypes: [6]ArgType{ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 258, Name: "set_tid_address", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 265, Name: "clock_gettime", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 295, Name: "openat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 311, Name: "set_robust_list", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 320, Name: "utimensat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 325, Name: "eventfd2", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 328, Name: "pipe2", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 340, Name: "prlimit64", NumArgs: 4, ArgTypes: [6]ArgType{ArgPid, ArgMode, ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 383, Name: "statx", NumArgs: 5, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgMode, ArgMode, ArgAddress}, Flags: FlagActive},
}
