//go:build windows

package process_iter

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"procwalk/process"
)

// cursor walks a Toolhelp32 process snapshot. rec is reused for every record;
// its fields are copied into the Entry before it is published.
type cursor struct {
	snapshot windows.Handle
	rec      windows.ProcessEntry32
	started  bool
}

func openCursor(cfg *config) (*cursor, error) {
	h, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, &SystemError{Op: "CreateToolhelp32Snapshot", Err: err}
	}
	c := &cursor{snapshot: h}
	c.rec.Size = uint32(unsafe.Sizeof(c.rec))
	return c, nil
}

// next loads the following snapshot record. Every record is a process, so no
// filtering is needed. ERROR_NO_MORE_FILES, or any other error, ends the walk.
func (c *cursor) next(e *Entry) bool {
	var err error
	if !c.started {
		c.started = true
		err = windows.Process32First(c.snapshot, &c.rec)
	} else {
		err = windows.Process32Next(c.snapshot, &c.rec)
	}
	if err != nil {
		return false
	}

	*e = Entry{
		pid:     process.ProcessID(c.rec.ProcessID),
		name:    windows.UTF16ToString(c.rec.ExeFile[:]),
		ppid:    process.ProcessID(c.rec.ParentProcessID),
		threads: int(c.rec.Threads),
	}
	return true
}

func (c *cursor) close() error {
	return windows.CloseHandle(c.snapshot)
}

// samePosition compares the process identity of the current records.
func samePosition(a, b *Iterator) bool {
	return a.val.pid == b.val.pid
}
