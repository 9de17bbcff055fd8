package engine

import (
	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/semaphore"
	"github.com/maboroshinokiseki/mhash/tagpool"
)

// identifierTag is the composite (identifier, hasher-tag) routing key
// the tag-keyed pool serializes on, guaranteeing each hasher has at
// most one outstanding dispatched job regardless of how many of its
// identifier's blocks arrive concurrently.
type identifierTag struct {
	identifier mhash.Identifier
	tag        any
}

// Engine is the single-threaded consumer built by Builder.Build. It
// owns the identifier -> hasher-list map, a boolean end-of-input flag,
// and a freshly created tag-keyed worker pool; none of that state is
// touched outside Compute's own goroutine.
type Engine struct {
	identifierCount int
	blockCount      int
	blockSize       int

	onProgress ProgressFunc
	onResult   ResultFunc
	onError    ErrorFunc

	operations    *operationQueue
	identifierSem *semaphore.Semaphore
	pool          *tagpool.Pool[identifierTag]

	identifiers map[mhash.Identifier][]*HasherWrapper
	endOfList   bool
}

// BlockSize reports the configured per-buffer byte size.
func (e *Engine) BlockSize() int { return e.blockSize }

// DataSender returns a handle producers use to stream files or
// caller-pushed fragments into this engine; it is safe to call from any
// goroutine, including concurrently with Compute.
func (e *Engine) DataSender() *DataSender {
	return &DataSender{engine: e}
}

// Compute drains the operation channel on the calling goroutine,
// dispatching hasher jobs and invoking callbacks, until the producer
// side has signaled end-of-input and the identifier map has drained.
// It returns only on that natural termination or if the operation
// channel is closed early, which is treated as abnormal: any in-flight
// work is left undrained.
func (e *Engine) Compute() {
	for op := range e.operations.Out() {
		switch o := op.(type) {
		case opNewIdentifier:
			e.handleNewIdentifier(o)
		case opEndOfNewIdentifier:
			e.endOfList = true
		case opData:
			e.handleData(o.data)
		case opProgress:
			if e.onProgress != nil {
				e.onProgress(o.progress)
			}
		case opResult:
			e.handleResult(o)
		case opError:
			e.handleError(o)
		}

		if e.endOfList && len(e.identifiers) == 0 {
			return
		}
	}
}

func (e *Engine) handleNewIdentifier(o opNewIdentifier) {
	if e.endOfList {
		e.operations.Send(opError{
			identifier: o.identifier,
			hasTag:     false,
			err:        mhash.ErrDataEnded,
		})
		return
	}
	e.identifiers[o.identifier] = o.hashers
}

func (e *Engine) handleData(dw *DataWrapper) {
	hashers, ok := e.identifiers[dw.Identifier]
	if !ok {
		// An earlier error already tore this identifier down; this
		// Data op will never be dispatched to any hasher, so its
		// block-semaphore permit must still be returned here.
		dw.discard()
		return
	}

	dw.addRefs(len(hashers))
	for _, wrapper := range hashers {
		w := wrapper.shallowClone()
		tag := identifierTag{identifier: dw.Identifier, tag: w.Tag}
		e.pool.Dispatch(tag, func() {
			defer dw.release()
			e.runHasherJob(dw, w)
		})
	}
}

func (e *Engine) runHasherJob(dw *DataWrapper, w *HasherWrapper) {
	if !dw.Last {
		if err := w.Hasher.Update(dw.Buffer[:dw.Length]); err != nil {
			e.operations.Send(opError{
				identifier: dw.Identifier,
				tag:        w.Tag,
				hasTag:     true,
				err:        asMhashError(err),
			})
			return
		}
		e.operations.Send(opProgress{progress: Progress{
			Identifier:      dw.Identifier,
			Tag:             w.Tag,
			TotalDataLength: dw.TotalDataLength,
			SentDataLength:  dw.SentDataLength,
		}})
		return
	}

	full := dw.Length / w.Hasher.BlockSize() * w.Hasher.BlockSize()
	if err := w.Hasher.Update(dw.Buffer[:full]); err != nil {
		e.operations.Send(opError{
			identifier: dw.Identifier,
			tag:        w.Tag,
			hasTag:     true,
			err:        asMhashError(err),
		})
		return
	}
	if err := w.Hasher.UpdateLast(dw.Buffer[full:dw.Length]); err != nil {
		e.operations.Send(opError{
			identifier: dw.Identifier,
			tag:        w.Tag,
			hasTag:     true,
			err:        asMhashError(err),
		})
		return
	}
	e.operations.Send(opResult{identifier: dw.Identifier, wrapper: w})
}

func (e *Engine) handleResult(o opResult) {
	if e.onResult != nil {
		e.onResult(Result{Identifier: o.identifier, Tag: o.wrapper.Tag, Hasher: o.wrapper.Hasher})
	}
	e.removeHasher(o.identifier, o.wrapper.Tag)
	e.pool.Finish(identifierTag{identifier: o.identifier, tag: o.wrapper.Tag})
}

func (e *Engine) handleError(o opError) {
	if e.onError != nil {
		e.onError(HasherError{Identifier: o.identifier, Tag: o.tag, HasTag: o.hasTag, Err: o.err})
	}

	if o.hasTag {
		e.removeHasher(o.identifier, o.tag)
		e.pool.Finish(identifierTag{identifier: o.identifier, tag: o.tag})
		return
	}

	delete(e.identifiers, o.identifier)
	e.pool.FinishBy(func(t identifierTag) bool {
		return t.identifier == o.identifier
	})
}

func (e *Engine) removeHasher(id mhash.Identifier, tag any) {
	hashers, ok := e.identifiers[id]
	if !ok {
		return
	}
	for i, w := range hashers {
		if w.Tag == tag {
			hashers[i] = hashers[len(hashers)-1]
			hashers = hashers[:len(hashers)-1]
			break
		}
	}
	if len(hashers) == 0 {
		delete(e.identifiers, id)
		return
	}
	e.identifiers[id] = hashers
}

func asMhashError(err error) *mhash.Error {
	if me, ok := err.(*mhash.Error); ok {
		return me
	}
	return mhash.NewIOError(err)
}
