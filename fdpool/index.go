// Package fdpool builds and serves the file descriptor pool workers draw
// fd-typed syscall arguments from: an immutable index of openable paths,
// built once by walking a set of root directories, and a bounded pool of
// fds lazily opened from it.
package fdpool

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"sysfuzz/errors"
	"sysfuzz/rng"
)

// NR_FILE_FDS bounds how many file descriptors a worker's Pool keeps open
// at once.
const NR_FILE_FDS = 16

// OpenFlag is the access mode a path was indexed with, derived from the
// fuzzer's effective permissions against the file at index-build time.
type OpenFlag int

const (
	ReadOnly OpenFlag = iota
	WriteOnly
	ReadWrite
)

// Entry is one indexed path and the access mode it was found eligible for.
type Entry struct {
	Path string
	Flag OpenFlag
}

// Index is the immutable, once-built set of openable paths.
type Index struct {
	entries []Entry
}

// defaultRoots are walked when no victim path is configured.
var defaultRoots = []string{"/dev", "/proc", "/sys"}

// ignoreExact lists basenames that are never safe to open: they can crash
// the host, trigger reboot/panic behavior, or spam the kernel log.
var ignoreExact = map[string]bool{
	".":                  true,
	"..":                 true,
	"sysrq-trigger":      true,
	"mem":                true,
	"kmem":                true,
	"kmsg":                true,
	"kcore":               true,
	"log":                 true,
}

// ignoreSuffix lists basenames that tend to produce noisy or destructive
// writes (adjusting OOM scores, forcing a fault injection, etc).
var ignoreSuffix = []string{
	"coredump_filter",
	"make-it-fail",
	"oom_adj",
	"oom_score_adj",
}

func ignored(base string) bool {
	if ignoreExact[base] {
		return true
	}
	for _, suffix := range ignoreSuffix {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return strings.HasPrefix(base, "tty")
}

// deriveFlag picks an open flag for a regular file or device node based on
// its permission bits against the process's effective uid/gid. Returns
// false if neither read nor write access is available.
func deriveFlag(info fs.FileInfo) (OpenFlag, bool) {
	mode := info.Mode()
	if mode.IsDir() {
		return ReadOnly, true
	}

	stat, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		// Can't determine ownership; assume world bits are all we get.
		perm := mode.Perm()
		canRead := perm&0o004 != 0
		canWrite := perm&0o002 != 0
		return flagFrom(canRead, canWrite)
	}

	euid := uint32(unix.Geteuid())
	egid := uint32(unix.Getegid())
	perm := mode.Perm()

	var canRead, canWrite bool
	switch {
	case stat.Uid == euid:
		canRead = perm&0o400 != 0
		canWrite = perm&0o200 != 0
	case stat.Gid == egid:
		canRead = perm&0o040 != 0
		canWrite = perm&0o020 != 0
	default:
		canRead = perm&0o004 != 0
		canWrite = perm&0o002 != 0
	}
	return flagFrom(canRead, canWrite)
}

func flagFrom(canRead, canWrite bool) (OpenFlag, bool) {
	switch {
	case canRead && canWrite:
		return ReadWrite, true
	case canRead:
		return ReadOnly, true
	case canWrite:
		return WriteOnly, true
	default:
		return 0, false
	}
}

// BuildIndex walks the given roots (or, if victim is non-empty, just that
// single path) and returns the resulting Index. The walk does not cross
// mount boundaries and does not follow symlinks, except when a single
// victim path was supplied, matching the semantics of a targeted run.
func BuildIndex(ctx context.Context, roots []string, victim string) (*Index, error) {
	followSymlinks := victim != ""
	if victim != "" {
		roots = []string{victim}
	} else if len(roots) == 0 {
		roots = defaultRoots
	}

	idx := &Index{}
	for _, root := range roots {
		rootDev, haveDev := mountDevice(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err != nil {
				return nil // skip unreadable entries, keep walking
			}
			if ignored(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return nil
			}

			if info.Mode()&fs.ModeSymlink != 0 {
				if !followSymlinks {
					return nil
				}
				resolved, err := os.Stat(path)
				if err != nil {
					return nil
				}
				info = resolved
			}

			if haveDev {
				if dev, ok := mountDevice(path); ok && dev != rootDev {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}

			flag, ok := deriveFlag(info)
			if !ok {
				return nil
			}
			idx.entries = append(idx.entries, Entry{Path: path, Flag: flag})
			return nil
		})
		if err != nil {
			return idx, err
		}
	}
	return idx, nil
}

// mountDevice returns the device number of the filesystem containing path,
// used to avoid crossing mount boundaries during the walk.
func mountDevice(path string) (uint64, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Dev), true
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// RandomName returns a uniformly chosen entry's path, or ErrFileIndexEmpty
// if the index has no entries.
func (idx *Index) RandomName(r *rng.Source) (string, error) {
	if len(idx.entries) == 0 {
		return "", errors.ErrFileIndexEmpty
	}
	e := idx.entries[r.Range(uint32(len(idx.entries)))]
	return e.Path, nil
}

// RandomEntry is like RandomName but returns the full Entry, including its
// derived open flag.
func (idx *Index) RandomEntry(r *rng.Source) (Entry, error) {
	if len(idx.entries) == 0 {
		return Entry{}, errors.ErrFileIndexEmpty
	}
	return idx.entries[r.Range(uint32(len(idx.entries)))], nil
}
