package tagpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSameTagRunsInOrder(t *testing.T) {
	p := New[string](4)
	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		p.Dispatch("tag", func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	wg.Wait()

	for i, v := range order {
		if v != i {
			t.Fatalf("jobs under the same tag ran out of order: %v", order)
		}
	}
}

func TestDistinctTagsRunConcurrently(t *testing.T) {
	p := New[int](8)
	var inflight atomic.Int32
	var peak atomic.Int32
	var wg sync.WaitGroup

	for tag := 0; tag < 6; tag++ {
		tag := tag
		wg.Add(1)
		p.Dispatch(tag, func() {
			defer wg.Done()
			n := inflight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inflight.Add(-1)
		})
	}
	wg.Wait()

	if peak.Load() < 2 {
		t.Fatalf("expected jobs under distinct tags to overlap, peak concurrency was %d", peak.Load())
	}
}

func TestFinishAllowsRestart(t *testing.T) {
	p := New[string](2)
	done := make(chan struct{})
	p.Dispatch("x", func() { close(done) })
	<-done
	p.Finish("x")

	restarted := make(chan struct{})
	p.Dispatch("x", func() { close(restarted) })
	select {
	case <-restarted:
	case <-time.After(time.Second):
		t.Fatal("dispatching under a finished tag should start a fresh executor")
	}
}

func TestFinishByMatchesPredicate(t *testing.T) {
	p := New[int](4)
	ran := make(chan int, 3)
	for _, tag := range []int{1, 2, 3} {
		tag := tag
		p.Dispatch(tag, func() { ran <- tag })
	}
	for i := 0; i < 3; i++ {
		<-ran
	}

	p.FinishBy(func(tag int) bool { return tag%2 == 1 })

	restarted := make(chan struct{})
	p.Dispatch(1, func() { close(restarted) })
	select {
	case <-restarted:
	case <-time.After(time.Second):
		t.Fatal("FinishBy should have retired tag 1's executor, allowing a fresh one to start")
	}
}
