package process_iter

import (
	"errors"
	"fmt"
	"syscall"

	"procwalk/process"
)

// SystemError reports a failed native call together with the code the operating
// system returned for it.
type SystemError struct {
	Op   string            // Native call that failed, e.g. "readlink" or "OpenProcess"
	PID  process.ProcessID // Process the call was made for, zero for enumeration errors
	Path string            // Filesystem path involved, if any
	Err  error             // Underlying error, normally a syscall.Errno
}

func (e *SystemError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s pid %d: %v", e.Op, e.PID, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// Code returns the native error code, or -1 when Err carries none.
func (e *SystemError) Code() int {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return int(errno)
	}
	return -1
}
