package hash

import "github.com/maboroshinokiseki/mhash"

var md4Shift1 = [4]uint{3, 7, 11, 19}
var md4Shift2 = [4]uint{3, 5, 9, 13}
var md4Shift3 = [4]uint{3, 9, 11, 15}

var md4XIndex2 = [16]uint32{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var md4XIndex3 = [16]uint32{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

// MD4 computes the RFC 1320 MD4 digest: block 64 bytes, digest 16
// bytes, little-endian word interpretation, wrapping 64-bit bit-count.
type MD4 struct {
	state  [4]uint32
	count  wrappingByteCount
	done   bool
	digest [16]byte
}

// NewMD4 constructs an MD4 ready to accept Update calls, with the
// standard RFC 1320 initial state.
func NewMD4() *MD4 {
	h := &MD4{}
	h.Reset()
	return h
}

func (h *MD4) blockLE(block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = leBytesToUint32(block[i*4 : i*4+4])
	}

	a, b, c, d := h.state[0], h.state[1], h.state[2], h.state[3]
	aa, bb, cc, dd := a, b, c, d

	for i := uint(0); i < 16; i++ {
		s := md4Shift1[i%4]
		f := ((c ^ d) & b) ^ d
		a += f + x[i]
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}
	for i := uint(0); i < 16; i++ {
		xi := md4XIndex2[i]
		s := md4Shift2[i%4]
		g := (b & c) | (b & d) | (c & d)
		a += g + x[xi] + 0x5a827999
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}
	for i := uint(0); i < 16; i++ {
		xi := md4XIndex3[i]
		s := md4Shift3[i%4]
		hh := b ^ c ^ d
		a += hh + x[xi] + 0x6ed9eba1
		a = a<<s | a>>(32-s)
		a, b, c, d = d, a, b, c
	}

	h.state[0] = aa + a
	h.state[1] = bb + b
	h.state[2] = cc + c
	h.state[3] = dd + d
}

func (h *MD4) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data)%h.BlockSize() != 0 {
		return mhash.NewDataLengthMismatched(len(data), h.BlockSize())
	}
	for i := 0; i < len(data); i += h.BlockSize() {
		h.blockLE(data[i : i+h.BlockSize()])
	}
	h.count.add(len(data))
	return nil
}

func (h *MD4) UpdateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.BlockSize() {
		return mhash.NewDataTooLarge(len(data), h.BlockSize())
	}
	h.count.add(len(data))
	for _, block := range padBlocks(data, h.BlockSize(), h.count.bitLengthLE()) {
		h.blockLE(block)
	}

	for i, w := range h.state {
		copy(h.digest[i*4:i*4+4], leUint32(w))
	}
	h.done = true
	return nil
}

func (h *MD4) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 16)
	copy(out, h.digest[:])
	return out, nil
}

func (h *MD4) Reset() {
	*h = MD4{state: [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}}
}

func (h *MD4) BlockSize() int  { return 64 }
func (h *MD4) DigestSize() int { return 16 }
