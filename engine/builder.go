package engine

import (
	"runtime"

	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/semaphore"
	"github.com/maboroshinokiseki/mhash/tagpool"
)

// BaseBlockSize is the fixed unit every configured block size must be a
// positive multiple of.
const BaseBlockSize = 128

const (
	defaultIdentifierCount = 1
	defaultBlockCount      = 2
)

// ApproximateBlockSize floors n to the nearest multiple of BaseBlockSize,
// never returning less than BaseBlockSize itself.
func ApproximateBlockSize(n int) int {
	if n < BaseBlockSize {
		return BaseBlockSize
	}
	return (n / BaseBlockSize) * BaseBlockSize
}

// ProgressFunc, ResultFunc and ErrorFunc are the optional callbacks a
// Builder may be given; all three run synchronously on the engine's own
// goroutine inside Compute.
type ProgressFunc func(Progress)
type ResultFunc func(Result)
type ErrorFunc func(HasherError)

// Builder accumulates validated configuration for an Engine. The zero
// value is not usable; construct one with NewBuilder.
type Builder struct {
	identifierCount int
	blockCount      int
	blockSize       int

	onProgress ProgressFunc
	onResult   ResultFunc
	onError    ErrorFunc
}

// NewBuilder returns a Builder pre-populated with the documented
// defaults: one concurrent identifier, two reusable buffers, block size
// equal to BaseBlockSize.
func NewBuilder() *Builder {
	return &Builder{
		identifierCount: defaultIdentifierCount,
		blockCount:      defaultBlockCount,
		blockSize:       BaseBlockSize,
	}
}

// IdentifierCount sets the maximum number of identifiers admitted
// concurrently by producers. Values below 1 are floored to 1.
func (b *Builder) IdentifierCount(n int) *Builder {
	if n < 1 {
		n = 1
	}
	b.identifierCount = n
	return b
}

// BlockCount sets the number of reusable buffers a file producer
// allocates. Values below 1 are floored to 1.
func (b *Builder) BlockCount(n int) *Builder {
	if n < 1 {
		n = 1
	}
	b.blockCount = n
	return b
}

// BlockSize sets the byte size of each reusable buffer. Build rejects a
// value that is not a positive multiple of BaseBlockSize.
func (b *Builder) BlockSize(n int) *Builder {
	b.blockSize = n
	return b
}

// OnProgress registers the progress callback.
func (b *Builder) OnProgress(fn ProgressFunc) *Builder {
	b.onProgress = fn
	return b
}

// OnResult registers the result callback.
func (b *Builder) OnResult(fn ResultFunc) *Builder {
	b.onResult = fn
	return b
}

// OnError registers the error callback.
func (b *Builder) OnError(fn ErrorFunc) *Builder {
	b.onError = fn
	return b
}

// Build validates the accumulated configuration and returns an Engine
// ready to hand out a DataSender and be driven by Compute.
func (b *Builder) Build() (*Engine, error) {
	if b.blockSize <= 0 || b.blockSize%BaseBlockSize != 0 {
		return nil, mhash.ErrIncorrectBlockSize
	}

	e := &Engine{
		identifierCount: b.identifierCount,
		blockCount:      b.blockCount,
		blockSize:       b.blockSize,
		onProgress:      b.onProgress,
		onResult:        b.onResult,
		onError:         b.onError,

		operations:    newOperationQueue(),
		identifiers:   make(map[mhash.Identifier][]*HasherWrapper),
		identifierSem: semaphore.New(b.identifierCount),
		pool:          tagpool.New[identifierTag](int64(defaultWorkerCount())),
	}
	return e, nil
}

// defaultWorkerCount sizes the shared tag-keyed worker pool; the spec
// leaves this implementation-chosen, typically #CPU.
func defaultWorkerCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
