// Package process_find looks processes up by pid or name on top of process_iter.
package process_find

import (
	"fmt"
	"path/filepath"
	"regexp"

	"procwalk/process"
	"procwalk/process_iter"
)

// Finder resolves process lookups by walking one enumeration pass per call.
type Finder struct {
	opts []process_iter.Option
}

// NewProcessFinder creates a Finder. opts are handed to every enumeration pass.
func NewProcessFinder(opts ...process_iter.Option) *Finder {
	return &Finder{opts: opts}
}

// FindProcessByPID finds a process by its PID
func (f *Finder) FindProcessByPID(pid process.ProcessID) (*process.ProcessInfo, error) {
	for e := range process_iter.All(f.opts...) {
		if e.PID() == pid {
			info := getProcessInfo(e)
			return &info, nil
		}
	}
	return nil, fmt.Errorf("pid %d: %w", pid, process.ErrProcessNotFound)
}

// FindProcessByName finds processes by their name (exact match)
func (f *Finder) FindProcessByName(name string) ([]process.ProcessInfo, error) {
	return f.findProcessesByNamePattern("^" + regexp.QuoteMeta(name) + "$")
}

// FindProcessByNamePattern finds processes by their name (pattern match)
func (f *Finder) FindProcessByNamePattern(pattern string) ([]process.ProcessInfo, error) {
	return f.findProcessesByNamePattern(pattern)
}

// FindAllProcesses returns information about all running processes
func (f *Finder) FindAllProcesses() ([]process.ProcessInfo, error) {
	it := process_iter.Begin(f.opts...)
	defer it.Close()
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	var results []process.ProcessInfo
	for ; !it.Done(); it.Next() {
		results = append(results, getProcessInfo(*it.Entry()))
	}
	return results, nil
}

// findProcessesByNamePattern matches against the process name and the base name
// of its executable.
func (f *Finder) findProcessesByNamePattern(pattern string) ([]process.ProcessInfo, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	var results []process.ProcessInfo
	for _, info := range all {
		if re.MatchString(info.Name) || (info.Exe != "" && re.MatchString(filepath.Base(info.Exe))) {
			results = append(results, info)
		}
	}
	return results, nil
}

// FindProcessByCommandLine finds processes that have a specific argument in their command line
func (f *Finder) FindProcessByCommandLine(arg string) ([]process.ProcessInfo, error) {
	return f.findProcessesByCommandLinePattern(regexp.QuoteMeta(arg))
}

// FindProcessByCommandLinePattern finds processes with command line arguments matching a pattern
func (f *Finder) FindProcessByCommandLinePattern(pattern string) ([]process.ProcessInfo, error) {
	return f.findProcessesByCommandLinePattern(pattern)
}

func (f *Finder) findProcessesByCommandLinePattern(pattern string) ([]process.ProcessInfo, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	var results []process.ProcessInfo
	for _, info := range all {
		for _, arg := range info.Cmdline {
			if re.MatchString(arg) {
				results = append(results, info)
				break
			}
		}
	}
	return results, nil
}

// getProcessInfo snapshots an entry. Some processes have no resolvable
// executable (kernel threads, foreign users); Exe is left empty for them.
func getProcessInfo(e process_iter.Entry) process.ProcessInfo {
	exe, _ := e.Exe()
	return process.ProcessInfo{
		PID:     e.PID(),
		PPID:    e.PPID(),
		Name:    e.Name(),
		Exe:     exe,
		Cmdline: e.Cmdline(),
		Threads: e.Threads(),
	}
}
