package process_iter

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwalk/process"
)

func TestEndEqualsEnd(t *testing.T) {
	assert.True(t, End().Equal(End()))
	assert.True(t, End().Done())
	assert.NoError(t, End().Err())

	var nilIt *Iterator
	assert.True(t, nilIt.Equal(End()))
	assert.True(t, End().Equal(nilIt))
}

func TestEndOperationsAreNoops(t *testing.T) {
	it := End()

	assert.Same(t, it, it.Next())
	assert.True(t, it.Done())

	prev := it.Advance(3)
	assert.True(t, prev.Done())
	assert.True(t, it.Done())

	assert.NoError(t, it.Close())
	assert.NoError(t, it.Close())
}

func TestZeroEntryDoesNotResolve(t *testing.T) {
	e := End().Entry()

	path, err := e.Exe()
	assert.Empty(t, path)

	var sysErr *SystemError
	require.ErrorAs(t, err, &sysErr)
	assert.ErrorIs(t, err, errNoEntry)
	assert.Empty(t, e.Name())
	assert.Zero(t, e.PPID())
	assert.Zero(t, e.Threads())
	assert.Nil(t, e.Cmdline())
}

func TestExeToNilSlot(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, End().Entry().ExeTo(nil))
	})

	for e := range All() {
		assert.NotPanics(t, func() {
			e.ExeTo(nil)
		})
		break
	}
}

func TestIsPIDName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"1", true},
		{"42", true},
		{"0012", true},
		{"", false},
		{"abc", false},
		{"3.5", false},
		{"-1", false},
		{"12a", false},
		{"self", false},
		{"١٢", false}, // non-ASCII digits
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPIDName(tt.name))
		})
	}
}

func TestSystemError(t *testing.T) {
	err := &SystemError{Op: "readlink", PID: 7, Path: "/proc/7/exe", Err: os.ErrPermission}
	assert.Equal(t, "readlink /proc/7/exe: permission denied", err.Error())
	assert.Equal(t, -1, err.Code())
	assert.True(t, errors.Is(err, os.ErrPermission))

	err = &SystemError{Op: "OpenProcess", PID: 7, Err: os.ErrPermission}
	assert.Equal(t, "OpenProcess pid 7: permission denied", err.Error())
}

// TestBeginSystem walks the real process table of the host.
func TestBeginSystem(t *testing.T) {
	it := Begin()
	defer it.Close()
	if it.Err() != nil {
		t.Skipf("process enumeration unavailable: %v", it.Err())
	}

	require.False(t, it.Equal(End()), "at least the test binary must be visible")

	seen := make(map[process.ProcessID]int)
	self := process.ProcessID(os.Getpid())
	for ; !it.Equal(End()); it.Next() {
		seen[it.Entry().PID()]++
	}

	assert.Equal(t, 1, seen[self], "own pid must be enumerated exactly once")
	for pid, n := range seen {
		assert.Equal(t, 1, n, "pid %d enumerated more than once", pid)
	}
}

func TestExeOutcomesAreExclusive(t *testing.T) {
	checked := 0
	for e := range All() {
		path, err := e.Exe()
		if err != nil {
			assert.Empty(t, path, "pid %d", e.PID())
			var sysErr *SystemError
			assert.ErrorAs(t, err, &sysErr)
		} else {
			assert.NotEmpty(t, path, "pid %d", e.PID())
		}

		var ec error = errors.New("stale")
		slotPath := e.ExeTo(&ec)
		if ec == nil {
			assert.NotEmpty(t, slotPath)
		} else {
			assert.Empty(t, slotPath)
		}

		checked++
		if checked == 50 {
			break
		}
	}
}

func TestOwnExecutable(t *testing.T) {
	want, err := os.Executable()
	require.NoError(t, err)

	self := process.ProcessID(os.Getpid())
	for e := range All() {
		if e.PID() != self {
			continue
		}
		got, err := e.Exe()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want, e.MustExe())
		return
	}
	t.Skip("own process not enumerated on this platform")
}
