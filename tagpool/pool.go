// Package tagpool implements a tag-keyed worker pool: jobs dispatched
// under the same tag run strictly in the order they were added, while
// jobs under distinct tags run truly in parallel, up to a shared
// worker-slot budget.
package tagpool

import (
	"context"

	xsync "golang.org/x/sync/semaphore"
)

// Job is a unit of work dispatched under a tag.
type Job func()

type commandKind int

const (
	cmdAdd commandKind = iota
	cmdDone
	cmdDoneBy
)

type command[K comparable] struct {
	kind   commandKind
	tag    K
	job    Job
	filter func(K) bool
}

// Pool dispatches jobs to per-tag serial executors drawn from a shared
// worker-slot budget. A coordinator goroutine owns the tag -> job-queue
// mapping so map access never races with Dispatch/Finish/FinishBy calls
// arriving from other goroutines.
type Pool[K comparable] struct {
	commands chan command[K]
	slots    *xsync.Weighted
}

// New builds a Pool whose executors draw from workers concurrent slots.
func New[K comparable](workers int64) *Pool[K] {
	p := &Pool[K]{
		commands: make(chan command[K], 4096),
		slots:    xsync.NewWeighted(workers),
	}
	go p.run()
	return p
}

func (p *Pool[K]) run() {
	queues := make(map[K]chan Job)

	for cmd := range p.commands {
		switch cmd.kind {
		case cmdAdd:
			queue, ok := queues[cmd.tag]
			if !ok {
				queue = make(chan Job, 64)
				queues[cmd.tag] = queue
				p.startExecutor(queue)
			}
			queue <- cmd.job
		case cmdDone:
			if queue, ok := queues[cmd.tag]; ok {
				delete(queues, cmd.tag)
				close(queue)
			}
		case cmdDoneBy:
			for tag, queue := range queues {
				if cmd.filter(tag) {
					delete(queues, tag)
					close(queue)
				}
			}
		}
	}
}

// startExecutor starts a goroutine that blocks acquiring a worker slot,
// then drains queue to completion before releasing it, matching the teacher repo's own
// preference for pooled long-lived goroutines over one-shot spawns.
func (p *Pool[K]) startExecutor(queue chan Job) {
	go func() {
		_ = p.slots.Acquire(context.Background(), 1)
		defer p.slots.Release(1)
		for job := range queue {
			job()
		}
	}()
}

// Dispatch enqueues job under tag. It runs after every earlier job
// dispatched under the same tag has completed; jobs under distinct tags
// may run concurrently.
func (p *Pool[K]) Dispatch(tag K, job Job) {
	p.commands <- command[K]{kind: cmdAdd, tag: tag, job: job}
}

// Finish retires tag's executor once its queue has drained. Dispatching
// under the same tag afterward starts a fresh executor.
func (p *Pool[K]) Finish(tag K) {
	p.commands <- command[K]{kind: cmdDone, tag: tag}
}

// FinishBy retires every currently registered tag matching filter.
func (p *Pool[K]) FinishBy(filter func(K) bool) {
	p.commands <- command[K]{kind: cmdDoneBy, filter: filter}
}
