package engine

import (
	"sync/atomic"

	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/semaphore"
)

// DataWrapper is one unit of work on the operation channel: a filled,
// shared buffer plus enough metadata for the engine to dispatch one job
// per registered hasher. The Rust original releases its block-semaphore
// permit from a Drop impl once the last Arc<DataWrapper> reference goes
// away; Go has no destructor, so refs is an explicit count seeded with
// the number of hashers the engine is about to dispatch jobs for, and
// release decrements it, freeing the permit only when it reaches zero.
type DataWrapper struct {
	Identifier      mhash.Identifier
	Buffer          []byte
	Length          int
	Last            bool
	TotalDataLength uint64
	SentDataLength  uint64

	semaphore *semaphore.Semaphore
	refs      atomic.Int32
}

// newDataWrapper builds a DataWrapper whose block-semaphore permit is
// already held by the caller; the permit is released once refs workers
// have each called release.
func newDataWrapper(id mhash.Identifier, buf []byte, length int, last bool, total, sent uint64, sem *semaphore.Semaphore) *DataWrapper {
	return &DataWrapper{
		Identifier:      id,
		Buffer:          buf,
		Length:          length,
		Last:            last,
		TotalDataLength: total,
		SentDataLength:  sent,
		semaphore:       sem,
	}
}

// addRefs arms the wrapper with n outstanding per-hasher references,
// one per job about to be dispatched for it.
func (d *DataWrapper) addRefs(n int) {
	d.refs.Store(int32(n))
}

// release drops one per-hasher reference; when the count reaches zero
// the underlying block-semaphore permit is returned to the producer.
func (d *DataWrapper) release() {
	if d.refs.Add(-1) == 0 {
		d.semaphore.Release()
	}
}

// discard releases this wrapper's block-semaphore permit immediately,
// for a Data op that will never be dispatched to any hasher because its
// identifier was already torn down by an earlier error. addRefs/release
// don't apply here: no jobs are being counted down, so the permit must
// be returned directly instead.
func (d *DataWrapper) discard() {
	d.semaphore.Release()
}
