package process_iter

import (
	"iter"
	"runtime"
)

// Iterator is a forward-only, single-pass position in a process enumeration.
//
// An Iterator is not safe for concurrent use. Independent iterators obtained from
// separate Begin calls may be used from different goroutines.
type Iterator struct {
	ref  *ref
	val  Entry
	step uint64
	err  error
}

// Begin acquires the platform enumeration resource and positions on the first
// process. If the resource cannot be acquired, or there are no processes, the
// end sentinel is returned; Err tells the two cases apart.
func Begin(opts ...Option) *Iterator {
	cfg := newConfig(opts)

	cur, err := openCursor(cfg)
	if err != nil {
		cfg.log.Debugln("Process enumeration unavailable:", err)
		return &Iterator{err: err}
	}

	res := newResource(cur, cfg.log)
	it := &Iterator{}
	it.attach(res)
	it.load()
	return it
}

// End returns the end sentinel. It performs no platform call.
func End() *Iterator {
	return &Iterator{}
}

// All returns the processes of one enumeration pass as a sequence. The resource
// is released when the loop finishes or breaks.
func All(opts ...Option) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		it := Begin(opts...)
		defer it.Close()

		for ; !it.Done(); it.Next() {
			if !yield(it.val) {
				return
			}
		}
	}
}

// Entry returns the current entry. The pointer tracks the iterator; copy the
// Entry to keep it past the next advance. On the end sentinel the result is the
// zero Entry and must not be relied upon.
func (it *Iterator) Entry() *Entry {
	return &it.val
}

// Next moves to the next process, or collapses the iterator into the end
// sentinel when there is none. It never fails; calling it at end is a no-op.
func (it *Iterator) Next() *Iterator {
	if it.Done() {
		return it
	}
	it.load()
	return it
}

// Advance moves the iterator n entries forward and returns a new iterator left at
// the position it had before the call. n <= 0 leaves the receiver where it is.
//
// The returned iterator shares the enumeration resource. Advancing either one
// consumes entries the other will not see.
func (it *Iterator) Advance(n int) *Iterator {
	prev := &Iterator{
		val:  it.val,
		step: it.step,
		err:  it.err,
	}
	if it.ref != nil {
		prev.attach(it.ref.res)
	}

	for i := 0; i < n && !it.Done(); i++ {
		it.load()
	}
	return prev
}

// Equal reports whether both iterators are at the end, or both denote the same
// live position. A nil iterator counts as the end sentinel.
func (it *Iterator) Equal(other *Iterator) bool {
	if it.Done() || other.Done() {
		return it.Done() && other.Done()
	}
	return samePosition(it, other)
}

// Done reports whether the iterator is the end sentinel.
func (it *Iterator) Done() bool {
	return it == nil || it.ref == nil
}

// Err returns the error that prevented Begin from acquiring the enumeration
// resource, or nil.
func (it *Iterator) Err() error {
	if it == nil {
		return nil
	}
	return it.err
}

// Close releases the iterator's hold on the enumeration resource and turns it into
// the end sentinel. The resource itself is closed once no iterator refers to it.
// Close is idempotent.
func (it *Iterator) Close() error {
	if it.Done() {
		return nil
	}
	return it.collapse()
}

func (it *Iterator) attach(res *resource) {
	res.retain()
	it.ref = &ref{res: res}
	runtime.AddCleanup(it, func(r *ref) {
		r.drop()
	}, it.ref)
}

func (it *Iterator) load() {
	res := it.ref.res

	var e Entry
	if !res.cur.next(&e) {
		it.collapse()
		return
	}

	res.pos++
	e.live = true
	it.val = e
	it.step = res.pos
}

func (it *Iterator) collapse() error {
	err := it.ref.drop()
	it.ref = nil
	it.val = Entry{}
	it.step = 0
	return err
}
