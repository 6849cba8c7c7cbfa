// Package parallel splits row ranges of a span buffer into bands and runs
// them on a fixed set of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// MinBandRows is the smallest band a Pool hands to a worker.
const MinBandRows = 16

// band is one slice of a Rows call.
type band struct {
	y0, y1 int
	fn     func(y0, y1 int)
	done   *sync.WaitGroup
}

// Pool runs row bands on a fixed set of workers. The calling goroutine runs
// one band itself, so a Pool of n workers splits a range into at most n
// bands and keeps n-1 workers busy plus the caller.
//
// A nil *Pool is valid and runs everything on the calling goroutine. Pool is
// safe for concurrent use.
type Pool struct {
	workers int
	bands   chan band
	wg      sync.WaitGroup

	mu     sync.RWMutex // held for reading while bands are queued
	closed bool
}

// NewPool starts a pool with the given number of workers. If workers is 0
// or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		bands:   make(chan band, workers),
	}
	p.wg.Add(workers - 1)
	for range workers - 1 {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for b := range p.bands {
		b.fn(b.y0, b.y1)
		b.done.Done()
	}
}

// Workers returns the number of goroutines a Rows call can use, the caller
// included. It is 1 for a nil or closed pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return 1
	}
	return p.workers
}

// bandCount returns how many bands a range of n rows is split into.
func (p *Pool) bandCount(n int) int {
	if p == nil || p.closed || n < 2*MinBandRows {
		return 1
	}
	return min(p.workers, n/MinBandRows)
}

// Rows calls fn for consecutive bands [y0, y1) covering [y, y+n) and
// returns when every band is done. Bands never overlap, so fn may write its
// rows without locking. Ranges too small to split, and calls on a nil or
// closed pool, run fn once on the calling goroutine.
func (p *Pool) Rows(y, n int, fn func(y0, y1 int)) {
	if n <= 0 {
		return
	}
	if p == nil {
		fn(y, y+n)
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	count := p.bandCount(n)
	if count < 2 {
		fn(y, y+n)
		return
	}

	var done sync.WaitGroup
	done.Add(count - 1)
	for i := 1; i < count; i++ {
		p.bands <- band{
			y0:   y + n*i/count,
			y1:   y + n*(i+1)/count,
			fn:   fn,
			done: &done,
		}
	}
	fn(y, y+n/count)
	done.Wait()
}

// Close stops the workers once the queued bands have run. Rows calls made
// after Close run on the caller. Close is safe to call more than once and
// on a nil pool.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.bands)
	p.mu.Unlock()
	p.wg.Wait()
}
