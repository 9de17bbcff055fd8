// Package semaphore provides a bounded counting semaphore used to cap
// in-flight buffers and concurrent identifiers.
package semaphore

import "sync"

// Semaphore is a counting semaphore with a caller-chosen maximum.
// Acquire blocks while the current count is at or above that maximum;
// Release is a no-op when the count is already zero so that a stray
// extra release can never underflow it. Fairness among waiters is not
// guaranteed.
type Semaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
	max   int
}

// New builds a Semaphore admitting up to max concurrent holders.
func New(max int) *Semaphore {
	s := &Semaphore{max: max}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire blocks until a slot is free, then takes it.
func (s *Semaphore) Acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count >= s.max {
		s.cond.Wait()
	}
	s.count++
}

// Release frees one slot and wakes a single waiter, if any. Calling
// Release with no outstanding Acquire is a safe no-op.
func (s *Semaphore) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return
	}
	s.count--
	s.cond.Signal()
}
