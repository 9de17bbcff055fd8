package hash

import (
	"hash/crc32"

	"github.com/klauspost/cpuid/v2"
	"github.com/maboroshinokiseki/mhash"
)

// crc32Engine computes the running CRC for one polynomial. When
// klauspost/cpuid reports SSE4.2, it defers to the standard library's
// crc32.Update, which takes the hardware CRC32 instruction path for the
// Castagnoli polynomial on its own; on hardware without SSE4.2 it falls
// back to bitwiseCRC32Update, a plain bit-at-a-time computation that
// never assumes the instruction exists.
type crc32Engine struct {
	poly  uint32
	table *crc32.Table
}

func newCRC32Engine(poly uint32) *crc32Engine {
	return &crc32Engine{poly: poly, table: crc32.MakeTable(poly)}
}

func (e *crc32Engine) update(crc uint32, data []byte) uint32 {
	if cpuid.CPU.Supports(cpuid.SSE42) {
		return crc32.Update(crc, e.table, data)
	}
	return bitwiseCRC32Update(crc, e.poly, data)
}

// bitwiseCRC32Update computes the reflected CRC-32 algorithm one bit at
// a time. poly is already in its reflected form, matching crc32.IEEE
// and crc32.Castagnoli's own representation, so no bit-reversal of the
// polynomial is needed.
func bitwiseCRC32Update(crc uint32, poly uint32, data []byte) uint32 {
	crc = ^crc
	for _, b := range data {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}

// CRC32 computes the standard IEEE CRC-32 checksum. Its block size is
// 1: the algorithm has no internal block structure or finalize
// padding, so Update accepts any length and UpdateLast finalizes on 0
// or 1 trailing bytes.
type CRC32 struct {
	engine *crc32Engine
	crc    uint32
	done   bool
	digest [4]byte
}

// NewCRC32 constructs a CRC32 ready to accept Update calls.
func NewCRC32() *CRC32 { return &CRC32{engine: newCRC32Engine(crc32.IEEE)} }

func (h *CRC32) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	h.crc = h.engine.update(h.crc, data)
	return nil
}

func (h *CRC32) UpdateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.BlockSize() {
		return mhash.NewDataTooLarge(len(data), h.BlockSize())
	}
	h.crc = h.engine.update(h.crc, data)
	h.done = true
	b := beUint32(h.crc)
	copy(h.digest[:], b)
	return nil
}

func (h *CRC32) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 4)
	copy(out, h.digest[:])
	return out, nil
}

func (h *CRC32) Reset() { *h = CRC32{engine: newCRC32Engine(crc32.IEEE)} }

func (h *CRC32) BlockSize() int  { return 1 }
func (h *CRC32) DigestSize() int { return 4 }

// CRC32C computes the Castagnoli CRC-32C checksum, used by iSCSI and
// others in place of the IEEE polynomial.
type CRC32C struct {
	engine *crc32Engine
	crc    uint32
	done   bool
	digest [4]byte
}

// NewCRC32C constructs a CRC32C ready to accept Update calls.
func NewCRC32C() *CRC32C { return &CRC32C{engine: newCRC32Engine(crc32.Castagnoli)} }

func (h *CRC32C) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	h.crc = h.engine.update(h.crc, data)
	return nil
}

func (h *CRC32C) UpdateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.BlockSize() {
		return mhash.NewDataTooLarge(len(data), h.BlockSize())
	}
	h.crc = h.engine.update(h.crc, data)
	h.done = true
	b := beUint32(h.crc)
	copy(h.digest[:], b)
	return nil
}

func (h *CRC32C) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 4)
	copy(out, h.digest[:])
	return out, nil
}

func (h *CRC32C) Reset() { *h = CRC32C{engine: newCRC32Engine(crc32.Castagnoli)} }

func (h *CRC32C) BlockSize() int  { return 1 }
func (h *CRC32C) DigestSize() int { return 4 }
