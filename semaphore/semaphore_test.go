package semaphore

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAcquireBlocksAtMax(t *testing.T) {
	s := New(2)
	s.Acquire()
	s.Acquire()

	acquired := make(chan struct{})
	go func() {
		s.Acquire()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("third Acquire should have blocked while count == max")
	case <-time.After(20 * time.Millisecond):
	}

	s.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("Release should have unblocked the waiting Acquire")
	}
}

func TestReleaseWithoutAcquireDoesNotUnderflow(t *testing.T) {
	s := New(1)
	s.Release()
	s.Release()

	done := make(chan struct{})
	go func() {
		s.Acquire()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Acquire should succeed after a max-1 semaphore never exceeded its count")
	}
}

func TestBoundedConcurrency(t *testing.T) {
	const max = 3
	s := New(max)
	var active atomic.Int32
	var peak atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Acquire()
			defer s.Release()
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	if peak.Load() > max {
		t.Fatalf("observed %d concurrent holders, want at most %d", peak.Load(), max)
	}
}
