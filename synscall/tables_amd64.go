package synscall

// Table64 is the amd64 syscall table: number, name, argument shape, and
// eligibility flags for each entry the fuzzer knows about. This is a data
// table, not hand-tuned logic — entries are added by number, following the
// kernel's own x86-64 syscall numbering.
var Table64 = []Descriptor{
	{Number: 0, Name: "read", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 1, Name: "write", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 2, Name: "open", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 3, Name: "close", NumArgs: 1, ArgTypes: [6]ArgType{ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 4, Name: "stat", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 5, Name: "fstat", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgAddress}, Flags: FlagActive | FlagNeedsFD},
	{Number: 8, Name: "lseek", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgLen, ArgMode}, Flags: FlagActive | FlagNeedsFD},
	{Number: 9, Name: "mmap", NumArgs: 6, ArgTypes: [6]ArgType{ArgAddress, ArgLen, ArgMode, ArgMode, ArgFd, ArgLen}, Flags: FlagActive},
	{Number: 10, Name: "mprotect", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgLen, ArgMode}, Flags: FlagActive},
	{Number: 11, Name: "munmap", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 13, Name: "rt_sigaction", NumArgs: 4, ArgTypes: [6]ArgType{ArgMode, ArgAddress, ArgAddress, ArgLen}, Flags: FlagActive | FlagAvoid},
	{Number: 16, Name: "ioctl", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgMode, ArgAddress}, Flags: FlagActive | FlagNeedsFD, Sanitiser: SanitiserIoctl},
	{Number: 17, Name: "pread64", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 18, Name: "pwrite64", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 19, Name: "readv", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgIovec, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 20, Name: "writev", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgIovec, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 21, Name: "access", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 22, Name: "pipe", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 23, Name: "select", NumArgs: 5, ArgTypes: [6]ArgType{ArgLen, ArgAddress, ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 32, Name: "dup", NumArgs: 1, ArgTypes: [6]ArgType{ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 33, Name: "dup2", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 39, Name: "getpid", NumArgs: 0, Flags: FlagActive},
	{Number: 41, Name: "socket", NumArgs: 3, ArgTypes: [6]ArgType{ArgMode, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 42, Name: "connect", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgSockaddr, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 43, Name: "accept", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgSockaddr, ArgAddress}, Flags: FlagActive | FlagNeedsFD},
	{Number: 44, Name: "sendto", NumArgs: 6, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen, ArgMode, ArgSockaddr, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 45, Name: "recvfrom", NumArgs: 6, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen, ArgMode, ArgSockaddr, ArgAddress}, Flags: FlagActive | FlagNeedsFD},
	{Number: 49, Name: "bind", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgSockaddr, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 50, Name: "listen", NumArgs: 2, ArgTypes: [6]ArgType{ArgFd, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 56, Name: "clone", NumArgs: 5, ArgTypes: [6]ArgType{ArgMode, ArgAddress, ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 57, Name: "fork", NumArgs: 0, Flags: FlagActive | FlagAvoid},
	{Number: 59, Name: "execve", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgAddress, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 60, Name: "exit", NumArgs: 1, ArgTypes: [6]ArgType{ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 61, Name: "wait4", NumArgs: 4, ArgTypes: [6]ArgType{ArgPid, ArgAddress, ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 62, Name: "kill", NumArgs: 2, ArgTypes: [6]ArgType{ArgPid, ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 72, Name: "fcntl", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgMode, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 79, Name: "getcwd", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive},
	{Number: 82, Name: "rename", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 83, Name: "mkdir", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 84, Name: "rmdir", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 85, Name: "creat", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 86, Name: "link", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 87, Name: "unlink", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive},
	{Number: 90, Name: "chmod", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 92, Name: "chown", NumArgs: 3, ArgTypes: [6]ArgType{ArgAddress, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 95, Name: "umask", NumArgs: 1, ArgTypes: [6]ArgType{ArgMode}, Flags: FlagActive},
	{Number: 97, Name: "getrlimit", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 137, Name: "statfs", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 161, Name: "chroot", NumArgs: 1, ArgTypes: [6]ArgType{ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 165, Name: "mount", NumArgs: 5, ArgTypes: [6]ArgType{ArgAddress, ArgAddress, ArgAddress, ArgLen, ArgAddress}, Flags: FlagActive | FlagAvoid},
	{Number: 166, Name: "umount2", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive | FlagAvoid},
	{Number: 186, Name: "gettid", NumArgs: 0, Flags: FlagActive},
	{Number: 202, Name: "futex", NumArgs: 6, ArgTypes: [6]ArgType{ArgAddress, ArgMode, ArgMode, ArgAddress, ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 217, Name: "getdents64", NumArgs: 3, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgLen}, Flags: FlagActive | FlagNeedsFD},
	{Number: 257, Name: "openat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 262, Name: "newfstatat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 280, Name: "utimensat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 290, Name: "eventfd2", NumArgs: 2, ArgTypes: [6]ArgType{ArgMode, ArgMode}, Flags: FlagActive},
	{Number: 291, Name: "epoll_create1", NumArgs: 1, ArgTypes: [6]ArgType{ArgMode}, Flags: FlagActive},
	{Number: 293, Name: "pipe2", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 302, Name: "prlimit64", NumArgs: 4, ArgTypes: [6]ArgType{ArgPid, ArgMode, ArgAddress, ArgAddress}, Flags: FlagActive},
	{Number: 306, Name: "syncfs", NumArgs: 1, ArgTypes: [6]ArgType{ArgFd}, Flags: FlagActive | FlagNeedsFD},
	{Number: 319, Name: "memfd_create", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgMode}, Flags: FlagActive},
	{Number: 332, Name: "statx", NumArgs: 5, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgMode, ArgMode, ArgAddress}, Flags: FlagActive},
	{Number: 435, Name: "clone3", NumArgs: 2, ArgTypes: [6]ArgType{ArgAddress, ArgLen}, Flags: FlagActive | FlagAvoid},
	{Number: 451, Name: "cachestat", NumArgs: 4, ArgTypes: [6]ArgType{ArgFd, ArgAddress, ArgAddress, ArgMode}, Flags: FlagNI},
}
