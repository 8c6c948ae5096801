//go:build !unix && !windows

package process_iter

import (
	"procwalk/process"
)

var errNoEntry = process.ErrUnsupported

type cursor struct{}

func openCursor(cfg *config) (*cursor, error) {
	return nil, process.ErrUnsupported
}

func (c *cursor) next(e *Entry) bool {
	return false
}

func (c *cursor) close() error {
	return nil
}

func samePosition(a, b *Iterator) bool {
	return a.val.pid == b.val.pid
}

func (e Entry) resolveExe() (string, error) {
	return "", &SystemError{Op: "exe", PID: e.pid, Err: process.ErrUnsupported}
}

func (e Entry) resolveName() string {
	return ""
}

func (e Entry) resolveStat() (process.ProcessID, int) {
	return 0, 0
}

func (e Entry) resolveCmdline() []string {
	return nil
}
