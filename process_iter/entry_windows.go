//go:build windows

package process_iter

import (
	"errors"
	"slices"

	gopsprocess "github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"

	"procwalk/process"
)

var errNoEntry error = windows.ERROR_INVALID_PARAMETER

// resolveExe asks the process for the file name of its main module. When the
// caller may not read the process memory it falls back to the limited query
// right, which is enough for the image name.
func (e Entry) resolveExe() (string, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ, false, uint32(e.pid))
	if err != nil {
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			log.Debugln("Falling back to limited query for pid", e.pid)
			return e.resolveImageName()
		}
		return "", &SystemError{Op: "OpenProcess", PID: e.pid, Err: err}
	}
	defer windows.CloseHandle(h)

	path, err := growModuleFileName(func(buf []uint16) error {
		return windows.GetModuleFileNameEx(h, 0, &buf[0], uint32(len(buf)))
	})
	if err != nil {
		return "", &SystemError{Op: "GetModuleFileNameEx", PID: e.pid, Err: err}
	}
	return path, nil
}

// growModuleFileName calls query with buffers from MAX_PATH up to MAX_LONG_PATH.
// GetModuleFileNameEx truncates silently, so a result that fills the buffer is
// retried with a larger one.
func growModuleFileName(query func(buf []uint16) error) (string, error) {
	for size := windows.MAX_PATH; ; size *= 2 {
		size = min(size, windows.MAX_LONG_PATH)

		buf := make([]uint16, size)
		if err := query(buf); err != nil {
			return "", err
		}

		n := slices.Index(buf, 0)
		if n >= 0 && n < size-1 {
			return windows.UTF16ToString(buf[:n]), nil
		}
		if size == windows.MAX_LONG_PATH {
			return "", windows.ERROR_INSUFFICIENT_BUFFER
		}
	}
}

func (e Entry) resolveImageName() (string, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(e.pid))
	if err != nil {
		return "", &SystemError{Op: "OpenProcess", PID: e.pid, Err: err}
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", &SystemError{Op: "QueryFullProcessImageName", PID: e.pid, Err: err}
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func (e Entry) resolveName() string {
	return e.name
}

func (e Entry) resolveStat() (process.ProcessID, int) {
	return e.ppid, e.threads
}

// resolveCmdline reads the command line out of the target's PEB. That needs
// PROCESS_VM_READ, so it fails for most processes of other users.
func (e Entry) resolveCmdline() []string {
	p, err := gopsprocess.NewProcess(int32(e.pid))
	if err != nil {
		return nil
	}
	args, err := p.CmdlineSlice()
	if err != nil {
		return nil
	}
	return args
}
