// Package process_iter enumerates the processes visible to the caller one entry at
// a time, without building the full process list up front.
//
// Exactly one backend is compiled per target:
//
//   - Windows walks a Toolhelp32 process snapshot (CreateToolhelp32Snapshot,
//     Process32First, Process32Next).
//   - Unix scans the numbered subdirectories of the process-information root
//     (/proc by default), skipping every other directory entry.
//
// An Iterator is single-pass. Once advanced it cannot be rewound; call Begin
// again for a fresh pass. Reaching the end of the enumeration collapses the
// iterator into the end sentinel, which compares equal to End():
//
//	for it := process_iter.Begin(); !it.Equal(process_iter.End()); it.Next() {
//		fmt.Println(it.Entry())
//	}
//
// or, with range-over-func:
//
//	for e := range process_iter.All() {
//		exe, err := e.Exe()
//		...
//	}
//
// Entries are value snapshots taken when the iterator lands on them. A retained
// Entry never changes when its iterator moves on. Resolving an Entry's executable
// is a point-in-time query; the process may have exited by the time the path is used.
package process_iter
