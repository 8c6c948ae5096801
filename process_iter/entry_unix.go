//go:build unix

package process_iter

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"procwalk/process"
)

// maxLinkLen bounds the readlink buffer growth.
const maxLinkLen = 1 << 16

var errNoEntry error = unix.ESRCH

// resolveExe reads the exe link the kernel keeps in the process directory.
func (e Entry) resolveExe() (string, error) {
	link := filepath.Join(e.dir, "exe")

	for size := 256; size <= maxLinkLen; size *= 2 {
		buf := make([]byte, size)
		n, err := unix.Readlink(link, buf)
		if err != nil {
			return "", &SystemError{Op: "readlink", PID: e.pid, Path: link, Err: err}
		}
		if n < size {
			return string(buf[:n]), nil
		}
	}
	return "", &SystemError{Op: "readlink", PID: e.pid, Path: link, Err: unix.ENAMETOOLONG}
}

func (e Entry) resolveName() string {
	comm, err := os.ReadFile(filepath.Join(e.dir, "comm"))
	if err != nil {
		return ""
	}
	return string(bytesTrimNL(comm))
}

// resolveStat reads the parent pid (field 4) and thread count (field 20) from
// the stat file. The comm field may contain spaces and parentheses, so fields
// are counted from the last ')'.
func (e Entry) resolveStat() (process.ProcessID, int) {
	data, err := os.ReadFile(filepath.Join(e.dir, "stat"))
	if err != nil {
		return 0, 0
	}
	return parseStat(data)
}

func parseStat(data []byte) (process.ProcessID, int) {
	end := bytes.LastIndexByte(data, ')')
	if end < 0 {
		return 0, 0
	}
	// fields[0] is the state, field 3 of the file.
	fields := bytes.Fields(data[end+1:])

	var (
		ppid    process.ProcessID
		threads int
	)
	if len(fields) > 1 {
		if v, err := strconv.Atoi(string(fields[1])); err == nil {
			ppid = process.ProcessID(v)
		}
	}
	if len(fields) > 17 {
		if v, err := strconv.Atoi(string(fields[17])); err == nil {
			threads = v
		}
	}
	return ppid, threads
}

func (e Entry) resolveCmdline() []string {
	data, err := os.ReadFile(filepath.Join(e.dir, "cmdline"))
	if err != nil {
		return nil
	}
	return splitCmdline(data)
}

// splitCmdline splits the NUL-separated argument list. Zombies and kernel
// threads have an empty cmdline.
func splitCmdline(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	// Remove the trailing NULL byte
	if data[len(data)-1] == 0 {
		data = data[:len(data)-1]
	}

	var args []string
	for _, arg := range bytes.Split(data, []byte{0}) {
		args = append(args, string(arg))
	}
	return args
}

func bytesTrimNL(b []byte) []byte {
	// comm ends with a newline.
	for len(b) > 0 {
		switch b[len(b)-1] {
		case '\n', '\r', ' ', '\t':
			b = b[:len(b)-1]
		default:
			return b
		}
	}
	return b
}
