package glapi

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Bindings are keyed by OS thread id. A thread id is stable only while the
// goroutine holds runtime.LockOSThread, so callers that bind a table must
// lock first, the same rule EGL and GLX impose on MakeCurrent. With does
// both.
var (
	bindings sync.Map // int64 -> *Table
	bound    atomic.Int64
)

// SetCurrent binds t to the calling thread, replacing any previous binding.
// A nil t, or the Noop table, removes the binding.
//
// The calling goroutine must be locked to its thread with
// runtime.LockOSThread for as long as the binding is in use, and must
// release the binding before it unlocks or exits. A goroutine that exits
// while locked takes its thread with it, but the binding stays registered
// under the dead thread id: BoundThreads never drops back, the table is kept
// alive, and a new thread that reuses the id inherits the binding. With
// releases the binding on every return path.
func SetCurrent(t *Table) {
	id := threadID()
	if t == nil || t == Noop() {
		if _, ok := bindings.LoadAndDelete(id); ok {
			bound.Add(-1)
		}
		return
	}
	if _, loaded := bindings.Swap(id, t); !loaded {
		bound.Add(1)
	}
}

// ReleaseCurrent removes the calling thread's binding.
func ReleaseCurrent() { SetCurrent(nil) }

// Current returns the table bound to the calling thread, or Noop if there is
// none. It never returns nil.
func Current() *Table {
	if bound.Load() == 0 {
		return Noop()
	}
	if v, ok := bindings.Load(threadID()); ok {
		return v.(*Table)
	}
	return Noop()
}

// With runs fn with t bound to the current goroutine's thread. The goroutine
// is locked to its thread for the duration and the previous binding is
// restored afterwards, also when fn panics.
func With(t *Table, fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := Current()
	SetCurrent(t)
	defer SetCurrent(prev)

	fn()
}

// BoundThreads returns the number of threads with a table bound.
func BoundThreads() int { return int(bound.Load()) }

// ThreadLocal reports whether bindings are per thread. On platforms without
// a thread id the registry holds a single process-wide binding.
func ThreadLocal() bool { return threadLocal }
