package hash

import "github.com/maboroshinokiseki/mhash"

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakRotc[x+5*y] is the rho rotation offset for lane (x,y), reduced mod 64.
var keccakRotc = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func rotl64(x uint64, n uint) uint64 { return x<<n | x>>(64-n) }

// keccakF1600 runs the 24-round Keccak-f[1600] permutation over a as a
// flat 5x5 array of 64-bit lanes indexed x+5*y.
func keccakF1600(a *[25]uint64) {
	for round := 0; round < 24; round++ {
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		var b [25]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				newX := y
				newY := (2*x + 3*y) % 5
				b[newX+5*newY] = rotl64(a[x+5*y], keccakRotc[x+5*y])
			}
		}

		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		a[0] ^= keccakRC[round]
	}
}

// sha3State is the shared absorb/pad/squeeze core for the four SHA-3
// variants: Keccak-f[1600], rate = 1600 - 2*digestBits, NIST's
// domain-separated multi-rate padding (0x06 ... 0x80). Unlike the
// Merkle-Damgard primitives, Update accepts any non-negative length: it
// absorbs full rate-sized blocks immediately and buffers the remainder
// internally rather than rejecting a non-multiple length.
type sha3State struct {
	state      [25]uint64
	rate       int
	digestSize int
	buffer     []byte
	done       bool
	out        []byte
}

func newSHA3(rate, digestSize int) *sha3State {
	return &sha3State{rate: rate, digestSize: digestSize}
}

func (h *sha3State) absorb(block []byte) {
	lanes := h.rate / 8
	for i := 0; i < lanes; i++ {
		h.state[i] ^= leBytesToUint64(block[i*8 : i*8+8])
	}
	keccakF1600(&h.state)
}

func (h *sha3State) update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	h.buffer = append(h.buffer, data...)
	for len(h.buffer) >= h.rate {
		h.absorb(h.buffer[:h.rate])
		h.buffer = h.buffer[h.rate:]
	}
	return nil
}

func (h *sha3State) updateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.rate {
		return mhash.NewDataTooLarge(len(data), h.rate)
	}
	tail := append(h.buffer, data...)
	for len(tail) >= h.rate {
		h.absorb(tail[:h.rate])
		tail = tail[h.rate:]
	}

	padded := make([]byte, h.rate)
	copy(padded, tail)
	if len(tail) == h.rate-1 {
		padded[len(tail)] = 0x06 | 0x80
	} else {
		padded[len(tail)] = 0x06
		padded[h.rate-1] |= 0x80
	}
	h.absorb(padded)

	lanesNeeded := (h.digestSize + 7) / 8
	full := make([]byte, lanesNeeded*8)
	for i := 0; i < lanesNeeded; i++ {
		copy(full[i*8:i*8+8], leUint64(h.state[i]))
	}
	h.out = full[:h.digestSize]
	h.done = true
	return nil
}

func (h *sha3State) digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, len(h.out))
	copy(out, h.out)
	return out, nil
}

// SHA3_224 computes the FIPS 202 SHA3-224 digest (28 bytes, rate 144 bytes).
type SHA3_224 struct{ core *sha3State }

// NewSHA3_224 constructs a SHA3_224 ready to accept Update calls.
func NewSHA3_224() *SHA3_224 { return &SHA3_224{core: newSHA3(144, 28)} }

func (h *SHA3_224) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA3_224) UpdateLast(data []byte) error { return h.core.updateLast(data) }
func (h *SHA3_224) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA3_224) Reset()                      { h.core = newSHA3(144, 28) }
func (h *SHA3_224) BlockSize() int              { return 144 }
func (h *SHA3_224) DigestSize() int             { return 28 }

// SHA3_256 computes the FIPS 202 SHA3-256 digest (32 bytes, rate 136 bytes).
type SHA3_256 struct{ core *sha3State }

// NewSHA3_256 constructs a SHA3_256 ready to accept Update calls.
func NewSHA3_256() *SHA3_256 { return &SHA3_256{core: newSHA3(136, 32)} }

func (h *SHA3_256) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA3_256) UpdateLast(data []byte) error { return h.core.updateLast(data) }
func (h *SHA3_256) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA3_256) Reset()                      { h.core = newSHA3(136, 32) }
func (h *SHA3_256) BlockSize() int              { return 136 }
func (h *SHA3_256) DigestSize() int             { return 32 }

// SHA3_384 computes the FIPS 202 SHA3-384 digest (48 bytes, rate 104 bytes).
type SHA3_384 struct{ core *sha3State }

// NewSHA3_384 constructs a SHA3_384 ready to accept Update calls.
func NewSHA3_384() *SHA3_384 { return &SHA3_384{core: newSHA3(104, 48)} }

func (h *SHA3_384) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA3_384) UpdateLast(data []byte) error { return h.core.updateLast(data) }
func (h *SHA3_384) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA3_384) Reset()                      { h.core = newSHA3(104, 48) }
func (h *SHA3_384) BlockSize() int              { return 104 }
func (h *SHA3_384) DigestSize() int             { return 48 }

// SHA3_512 computes the FIPS 202 SHA3-512 digest (64 bytes, rate 72 bytes).
type SHA3_512 struct{ core *sha3State }

// NewSHA3_512 constructs a SHA3_512 ready to accept Update calls.
func NewSHA3_512() *SHA3_512 { return &SHA3_512{core: newSHA3(72, 64)} }

func (h *SHA3_512) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA3_512) UpdateLast(data []byte) error { return h.core.updateLast(data) }
func (h *SHA3_512) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA3_512) Reset()                      { h.core = newSHA3(72, 64) }
func (h *SHA3_512) BlockSize() int              { return 72 }
func (h *SHA3_512) DigestSize() int             { return 64 }
