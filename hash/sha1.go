package hash

import "github.com/maboroshinokiseki/mhash"

// SHA1 computes the FIPS 180-4 SHA-1 digest: block 64 bytes, digest 20
// bytes, big-endian word interpretation, checked 64-bit bit-count.
type SHA1 struct {
	state  [5]uint32
	count  checkedByteCount64
	done   bool
	digest [20]byte
}

// NewSHA1 constructs a SHA1 ready to accept Update calls.
func NewSHA1() *SHA1 {
	h := &SHA1{}
	h.Reset()
	return h
}

func sha1Rotl(x uint32, s uint32) uint32 { return x<<s | x>>(32-s) }

func (h *SHA1) blockBE(blk []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = beBytesToUint32(blk[i*4 : i*4+4])
	}
	for t := 16; t < 80; t++ {
		w[t] = sha1Rotl(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := h.state[0], h.state[1], h.state[2], h.state[3], h.state[4]

	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f = (b & c) | (^b & d)
			k = 0x5a827999
		case t < 40:
			f = b ^ c ^ d
			k = 0x6ed9eba1
		case t < 60:
			f = (b & c) | (b & d) | (c & d)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ d
			k = 0xca62c1d6
		}
		temp := sha1Rotl(a, 5) + f + e + k + w[t]
		e = d
		d = c
		c = sha1Rotl(b, 30)
		b = a
		a = temp
	}

	h.state[0] += a
	h.state[1] += b
	h.state[2] += c
	h.state[3] += d
	h.state[4] += e
}

func (h *SHA1) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data)%h.BlockSize() != 0 {
		return mhash.NewDataLengthMismatched(len(data), h.BlockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for i := 0; i < len(data); i += h.BlockSize() {
		h.blockBE(data[i : i+h.BlockSize()])
	}
	return nil
}

func (h *SHA1) UpdateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.BlockSize() {
		return mhash.NewDataTooLarge(len(data), h.BlockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for _, block := range padBlocks(data, h.BlockSize(), h.count.bitLengthBE()) {
		h.blockBE(block)
	}

	for i, w := range h.state {
		copy(h.digest[i*4:i*4+4], beUint32(w))
	}
	h.done = true
	return nil
}

func (h *SHA1) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 20)
	copy(out, h.digest[:])
	return out, nil
}

func (h *SHA1) Reset() {
	*h = SHA1{state: [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}}
}

func (h *SHA1) BlockSize() int  { return 64 }
func (h *SHA1) DigestSize() int { return 20 }
