//go:build unix

package process_iter

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"procwalk/process"
)

// readDirBatch is how many directory entries are pulled from the kernel at a time.
const readDirBatch = 64

// cursor walks the scan root with an open directory descriptor.
type cursor struct {
	root string
	dir  *os.File
	buf  []os.DirEntry
}

func openCursor(cfg *config) (*cursor, error) {
	fd, err := unix.Open(cfg.root, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &SystemError{Op: "open", Path: cfg.root, Err: err}
	}
	return &cursor{
		root: cfg.root,
		dir:  os.NewFile(uintptr(fd), cfg.root),
	}, nil
}

// next fills e with the next numbered process directory. A read error ends the
// scan the same way io.EOF does.
func (c *cursor) next(e *Entry) bool {
	for {
		if len(c.buf) == 0 {
			entries, _ := c.dir.ReadDir(readDirBatch)
			if len(entries) == 0 {
				return false
			}
			c.buf = entries
		}

		d := c.buf[0]
		c.buf = c.buf[1:]

		pid, ok := c.accept(d)
		if !ok {
			continue
		}

		*e = Entry{
			pid: pid,
			dir: filepath.Join(c.root, d.Name()),
		}
		return true
	}
}

// accept applies the skip filter: only directories with an all-digit name are
// processes. Symlinks are followed before the directory test.
func (c *cursor) accept(d fs.DirEntry) (process.ProcessID, bool) {
	name := d.Name()
	if !isPIDName(name) {
		return 0, false
	}

	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(c.root, name))
		if err != nil || !info.IsDir() {
			return 0, false
		}
	} else if !d.IsDir() {
		return 0, false
	}

	pid, err := strconv.Atoi(name)
	if err != nil {
		// Out of range for an int.
		return 0, false
	}
	return process.ProcessID(pid), true
}

func (c *cursor) close() error {
	return c.dir.Close()
}

// samePosition compares directory cursor positions.
func samePosition(a, b *Iterator) bool {
	return a.ref.res == b.ref.res && a.step == b.step
}
