package process_find

import (
	"os"
	"path/filepath"

	"procwalk/process"
	"procwalk/process_iter"
)

// ListByName returns all processes whose name or exe basename equals name.
// name match is case-sensitive (like pidof). The calling process is skipped.
func (f *Finder) ListByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, process.ErrEmptyName
	}

	self := process.ProcessID(os.Getpid())
	var out []process.ProcessInfo

	for e := range process_iter.All(f.opts...) {
		if e.PID() == self {
			continue
		}

		if comm := e.Name(); comm == name {
			out = append(out, process.ProcessInfo{PID: e.PID(), Name: comm})
			continue
		}

		// Resolve the exe link; may fail if zombie or permission
		exe, _ := e.Exe()
		if exe != "" && filepath.Base(exe) == name {
			out = append(out, process.ProcessInfo{PID: e.PID(), Name: filepath.Base(exe), Exe: exe})
		}
	}

	return out, nil
}

// OneByName returns the first match for name (lowest PID), or os.ErrNotExist if none.
func (f *Finder) OneByName(name string) (*process.ProcessInfo, error) {
	ps, err := f.ListByName(name)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, os.ErrNotExist
	}
	// pick the lowest PID for determinism
	minIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i].PID < ps[minIdx].PID {
			minIdx = i
		}
	}
	return &ps[minIdx], nil
}
