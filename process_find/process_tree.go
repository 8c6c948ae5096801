package process_find

import (
	"fmt"

	"procwalk/process"
)

// FindChildProcesses finds all child processes of a given PID
func (f *Finder) FindChildProcesses(parentPID process.ProcessID) ([]process.ProcessInfo, error) {
	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	var children []process.ProcessInfo
	for _, info := range all {
		if info.PPID == parentPID && info.PID != parentPID {
			children = append(children, info)
		}
	}
	return children, nil
}

// FindDescendantProcesses finds all descendant processes (children, grandchildren, etc.) of a given PID
func (f *Finder) FindDescendantProcesses(rootPID process.ProcessID) ([]process.ProcessInfo, error) {
	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	childrenMap, processMap := indexProcesses(all)

	// Breadth-first; visited guards against pid reuse producing a cycle.
	var descendants []process.ProcessInfo
	queue := append([]process.ProcessID(nil), childrenMap[rootPID]...)
	visited := map[process.ProcessID]bool{rootPID: true}

	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]

		if visited[pid] {
			continue
		}
		visited[pid] = true

		if info, ok := processMap[pid]; ok {
			descendants = append(descendants, info)
			queue = append(queue, childrenMap[pid]...)
		}
	}
	return descendants, nil
}

// GetProcessTree returns a tree-like representation of processes starting from a root PID
func (f *Finder) GetProcessTree(rootPID process.ProcessID) (*process.ProcessTreeNode, error) {
	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	childrenMap, processMap := indexProcesses(all)

	root, ok := processMap[rootPID]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", rootPID, process.ErrProcessNotFound)
	}

	visited := make(map[process.ProcessID]bool)
	return buildProcessTree(root, childrenMap, processMap, visited), nil
}

// indexProcesses maps each parent pid to its children and each pid to its info.
// A process listed as its own parent (pid 0 on Windows) is not its own child.
func indexProcesses(all []process.ProcessInfo) (map[process.ProcessID][]process.ProcessID, map[process.ProcessID]process.ProcessInfo) {
	childrenMap := make(map[process.ProcessID][]process.ProcessID)
	processMap := make(map[process.ProcessID]process.ProcessInfo, len(all))

	for _, info := range all {
		processMap[info.PID] = info
		if info.PPID != info.PID {
			childrenMap[info.PPID] = append(childrenMap[info.PPID], info.PID)
		}
	}
	return childrenMap, processMap
}

func buildProcessTree(info process.ProcessInfo, childrenMap map[process.ProcessID][]process.ProcessID, processMap map[process.ProcessID]process.ProcessInfo, visited map[process.ProcessID]bool) *process.ProcessTreeNode {
	visited[info.PID] = true
	node := &process.ProcessTreeNode{
		Process:  info,
		Children: []*process.ProcessTreeNode{},
	}

	for _, childPID := range childrenMap[info.PID] {
		if visited[childPID] {
			continue
		}
		if child, ok := processMap[childPID]; ok {
			node.Children = append(node.Children, buildProcessTree(child, childrenMap, processMap, visited))
		}
	}
	return node
}
