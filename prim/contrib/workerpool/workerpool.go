// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs row bands of an image on a persistent set of
// goroutines.
//
// A frame of h rows is cut into bands whose boundaries fall on multiples of
// an alignment (2 for 4:2:0 chroma pairs, 16 for AVC444 stripe blocks), so
// that each band maps onto whole chroma rows and touches disjoint
// destination rows. Workers claim bands from a shared counter.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	err := pool.Bands(height, 2, func(y0, y1 int) error {
//	    return convert(y0, y1)
//	})
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// MinBandRows is the smallest band handed to a worker. Frames shorter than
// two bands run on the calling goroutine.
const MinBandRows = 32

// Pool is a persistent worker pool. Workers are spawned once by New and
// reused by every call until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers. It is safe to call more than once; a closed pool
// runs every later call sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// BandSize returns the band height used for a frame of height rows: about
// four bands per worker, at least MinBandRows, rounded up to align.
func (p *Pool) BandSize(height, align int) int {
	if align <= 0 {
		align = 1
	}
	size := max(MinBandRows, height/(4*p.numWorkers))
	return (size + align - 1) / align * align
}

// Bands calls fn for consecutive row ranges [y0, y1) covering [0, height).
// Every y0 is a multiple of align; only the last band may end unaligned.
// Bands blocks until all bands finish and returns the errors of all failed
// bands joined.
func (p *Pool) Bands(height, align int, fn func(y0, y1 int) error) error {
	if height <= 0 {
		return nil
	}
	size := p.BandSize(height, align)
	numBands := (height + size - 1) / size
	workers := min(p.numWorkers, numBands)
	if workers <= 1 || p.closed.Load() {
		var errs []error
		for y0 := 0; y0 < height; y0 += size {
			errs = append(errs, fn(y0, min(y0+size, height)))
		}
		return errors.Join(errs...)
	}

	errs := make([]error, numBands)
	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					band := int(next.Add(1)) - 1
					if band >= numBands {
						return
					}
					y0 := band * size
					errs[band] = fn(y0, min(y0+size, height))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}
