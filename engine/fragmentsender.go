package engine

import (
	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/semaphore"
)

// FragmentSender lets a caller push pre-chunked data directly, without
// going through a file. Construct one via DataSender.FragmentSender.
type FragmentSender struct {
	engine    *Engine
	id        mhash.Identifier
	blockSize int
	blockSem  *semaphore.Semaphore

	totalLength uint64
	sentLength  uint64
	done        bool
}

// BlockSize reports the chunk length PushData requires.
func (s *FragmentSender) BlockSize() int { return s.blockSize }

// SetDataLength pre-declares the total length for progress reporting.
// It is advisory only: nothing checks it against bytes actually pushed.
func (s *FragmentSender) SetDataLength(n uint64) {
	s.totalLength = n
}

// PushData pushes one non-terminal chunk. buf must be exactly the
// configured block size; otherwise a DataLengthMismatched error is
// emitted (with no tag, since this is a producer-side failure) and buf
// is not sent.
func (s *FragmentSender) PushData(buf []byte) {
	if len(buf) != s.blockSize {
		s.engine.operations.Send(opError{
			identifier: s.id,
			hasTag:     false,
			err:        mhash.NewDataLengthMismatched(len(buf), s.blockSize),
		})
		return
	}
	s.pushInner(buf, false)
}

// PushLastData pushes the terminal chunk and releases this sender's
// identifier permit. buf must be at most the configured block size;
// otherwise a DataTooLarge error is emitted. Calling PushData or
// PushLastData again after this is a caller error.
func (s *FragmentSender) PushLastData(buf []byte) {
	defer s.finish()
	if len(buf) > s.blockSize {
		s.engine.operations.Send(opError{
			identifier: s.id,
			hasTag:     false,
			err:        mhash.NewDataTooLarge(len(buf), s.blockSize),
		})
		return
	}
	s.pushInner(buf, true)
}

func (s *FragmentSender) pushInner(buf []byte, last bool) {
	s.blockSem.Acquire()
	s.sentLength += uint64(len(buf))

	owned := make([]byte, len(buf))
	copy(owned, buf)

	dw := newDataWrapper(s.id, owned, len(owned), last, s.totalLength, s.sentLength, s.blockSem)
	s.engine.operations.Send(opData{data: dw})
}

// finish releases the identifier permit this sender has held since
// construction. It is idempotent.
func (s *FragmentSender) finish() {
	if s.done {
		return
	}
	s.done = true
	s.engine.identifierSem.Release()
}
