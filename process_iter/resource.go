package process_iter

import (
	"sync"
	"sync/atomic"

	"github.com/Moonlight-Companies/gologger/logger"
)

// resource is the enumeration cursor shared by an iterator and the copies
// Advance hands out. The cursor is closed when the last reference is dropped.
type resource struct {
	cur  *cursor
	log  *logger.Logger
	refs atomic.Int32
	pos  uint64 // advanced on every accepted entry

	once sync.Once
	err  error
}

func newResource(cur *cursor, l *logger.Logger) *resource {
	return &resource{cur: cur, log: l}
}

func (r *resource) retain() {
	r.refs.Add(1)
}

func (r *resource) release() error {
	if r.refs.Add(-1) > 0 {
		return nil
	}
	r.once.Do(func() {
		r.err = r.cur.close()
		if r.err != nil {
			r.log.Debugln("Failed to close enumeration resource:", r.err)
		}
	})
	return r.err
}

// ref is one iterator's hold on a resource. drop is safe to call more than once
// and from the cleanup goroutine.
type ref struct {
	res     *resource
	dropped atomic.Bool
}

func (r *ref) drop() error {
	if !r.dropped.CompareAndSwap(false, true) {
		return nil
	}
	return r.res.release()
}
