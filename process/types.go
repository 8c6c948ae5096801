package process

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessInfo contains basic information about a process
type ProcessInfo struct {
	PID     ProcessID `json:"pid" yaml:"pid"`                             // Process ID
	PPID    ProcessID `json:"ppid" yaml:"ppid"`                           // Parent Process ID
	Name    string    `json:"name" yaml:"name"`                           // Image name (comm on Unix, szExeFile on Windows)
	Exe     string    `json:"exe,omitempty" yaml:"exe,omitempty"`         // Path to the executable, empty when it cannot be resolved
	Cmdline []string  `json:"cmdline,omitempty" yaml:"cmdline,omitempty"` // Command line arguments
	Threads int       `json:"threads" yaml:"threads"`                     // Number of threads
}

// ProcessTreeNode represents a node in a process tree
type ProcessTreeNode struct {
	Process  ProcessInfo
	Children []*ProcessTreeNode
}
