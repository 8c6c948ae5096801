package process_iter

import (
	"strconv"

	"procwalk/process"
)

// Entry is one discovered process. It is only produced by an Iterator; the zero
// Entry is what the end sentinel holds and resolves nothing.
type Entry struct {
	pid  process.ProcessID
	live bool

	dir string // Unix: numbered directory under the scan root

	// Windows: copied from the snapshot record.
	name    string
	ppid    process.ProcessID
	threads int
}

// PID returns the process identifier.
func (e Entry) PID() process.ProcessID {
	return e.pid
}

// Exe resolves the absolute path of the process image. On failure the path is
// empty and the error is a *SystemError carrying the native code.
func (e Entry) Exe() (string, error) {
	if !e.live {
		return "", &SystemError{Op: "exe", Err: errNoEntry}
	}
	return e.resolveExe()
}

// ExeTo is Exe with the error delivered through ec. *ec is cleared on success.
func (e Entry) ExeTo(ec *error) string {
	path, err := e.Exe()
	if ec != nil {
		*ec = err
	}
	return path
}

// MustExe is like Exe but panics with the *SystemError when the path cannot be resolved.
func (e Entry) MustExe() string {
	path, err := e.Exe()
	if err != nil {
		panic(err)
	}
	return path
}

// Name returns the image name of the process, or "" if it cannot be read.
func (e Entry) Name() string {
	if !e.live {
		return ""
	}
	return e.resolveName()
}

// PPID returns the parent process identifier, or 0 if it cannot be read.
func (e Entry) PPID() process.ProcessID {
	if !e.live {
		return 0
	}
	ppid, _ := e.resolveStat()
	return ppid
}

// Threads returns the number of threads in the process, or 0 if it cannot be read.
func (e Entry) Threads() int {
	if !e.live {
		return 0
	}
	_, threads := e.resolveStat()
	return threads
}

// Cmdline returns the command line arguments of the process. It is nil when
// they cannot be read.
func (e Entry) Cmdline() []string {
	if !e.live {
		return nil
	}
	return e.resolveCmdline()
}

func (e Entry) String() string {
	return strconv.Itoa(int(e.pid))
}
