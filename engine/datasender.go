package engine

import (
	"io"
	"os"

	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/semaphore"
)

// DataSender is the handle producers use to stream bytes into an
// Engine's operation channel, from any goroutine. It is cheap to copy
// (a single pointer) and has no per-call state of its own; each
// PushFile spawns its own reader goroutine and per-file block
// semaphore.
type DataSender struct {
	engine *Engine
}

// PushFile streams path into the engine under one registered hasher set.
// If hashers is empty, PushFile does nothing. On open or stat failure it
// emits a source-wide error (no NewIdentifier is ever observed for id)
// and returns immediately; otherwise the read runs on its own goroutine,
// gated by the engine's identifier semaphore, and PushFile returns
// without waiting for it to finish.
func (s *DataSender) PushFile(id mhash.Identifier, path string, hashers []*HasherWrapper) {
	if len(hashers) == 0 {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.engine.operations.Send(opError{identifier: id, hasTag: false, err: mhash.NewIOError(err)})
		return
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		s.engine.operations.Send(opError{identifier: id, hasTag: false, err: mhash.NewIOError(err)})
		return
	}

	s.engine.operations.Send(opNewIdentifier{identifier: id, hashers: hashers})
	s.engine.identifierSem.Acquire()

	go s.readFile(id, f, uint64(info.Size()))
}

func (s *DataSender) readFile(id mhash.Identifier, f *os.File, totalLength uint64) {
	defer s.engine.identifierSem.Release()
	defer f.Close()

	blockSize := s.engine.blockSize
	blockCount := s.engine.blockCount

	buffers := make([][]byte, blockCount)
	for i := range buffers {
		buffers[i] = make([]byte, blockSize)
	}
	blockSem := semaphore.New(blockCount)

	var sent uint64
	next := 0
	for {
		blockSem.Acquire()
		buf := buffers[next]
		next = (next + 1) % blockCount

		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			blockSem.Release()
			s.engine.operations.Send(opError{identifier: id, hasTag: false, err: mhash.NewIOError(err)})
			return
		}

		sent += uint64(n)
		last := sent >= totalLength

		dw := newDataWrapper(id, buf, n, last, totalLength, sent, blockSem)
		s.engine.operations.Send(opData{data: dw})

		if last {
			return
		}
	}
}

// FragmentSender constructs a FragmentSender for id: it acquires one
// identifier permit immediately (released when the sender is done) and
// emits NewIdentifier right away.
func (s *DataSender) FragmentSender(id mhash.Identifier, hashers []*HasherWrapper) *FragmentSender {
	s.engine.identifierSem.Acquire()
	s.engine.operations.Send(opNewIdentifier{identifier: id, hashers: hashers})

	return &FragmentSender{
		engine:    s.engine,
		id:        id,
		blockSize: s.engine.blockSize,
		blockSem:  semaphore.New(s.engine.blockCount),
	}
}

// End signals that no further identifiers will be submitted; once every
// in-flight identifier has drained, Compute returns.
func (s *DataSender) End() {
	s.engine.operations.Send(opEndOfNewIdentifier{})
}
