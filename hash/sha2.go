package hash

import "github.com/maboroshinokiseki/mhash"

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha224IV = [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4}
var sha256IV = [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}

func rotr32(x uint32, n uint32) uint32 { return x>>n | x<<(32-n) }

func sha256Block(state *[8]uint32, blk []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = beBytesToUint32(blk[i*4 : i*4+4])
	}
	for t := 16; t < 64; t++ {
		s0 := rotr32(w[t-15], 7) ^ rotr32(w[t-15], 18) ^ (w[t-15] >> 3)
		s1 := rotr32(w[t-2], 17) ^ rotr32(w[t-2], 19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha256K[t] + w[t]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// sha2_32 is the shared block-oriented core for SHA-224 and SHA-256:
// block 64 bytes, big-endian, checked 64-bit bit-count, 64-round
// compression over the standard K256 schedule.
type sha2_32 struct {
	state  [8]uint32
	count  checkedByteCount64
	done   bool
	out    []byte
}

func newSHA2_32(iv [8]uint32, digestSize int) *sha2_32 {
	return &sha2_32{state: iv, out: make([]byte, 0, digestSize)}
}

func (h *sha2_32) blockSize() int { return 64 }

func (h *sha2_32) update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data)%h.blockSize() != 0 {
		return mhash.NewDataLengthMismatched(len(data), h.blockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for i := 0; i < len(data); i += h.blockSize() {
		sha256Block(&h.state, data[i:i+h.blockSize()])
	}
	return nil
}

func (h *sha2_32) updateLast(data []byte, digestSize int) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.blockSize() {
		return mhash.NewDataTooLarge(len(data), h.blockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for _, block := range padBlocks(data, h.blockSize(), h.count.bitLengthBE()) {
		sha256Block(&h.state, block)
	}

	full := make([]byte, 32)
	for i, w := range h.state {
		copy(full[i*4:i*4+4], beUint32(w))
	}
	h.out = append(h.out[:0], full[:digestSize]...)
	h.done = true
	return nil
}

func (h *sha2_32) digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, len(h.out))
	copy(out, h.out)
	return out, nil
}

// SHA224 computes the FIPS 180-4 SHA-224 digest (28 bytes).
type SHA224 struct{ core *sha2_32 }

// NewSHA224 constructs a SHA224 ready to accept Update calls.
func NewSHA224() *SHA224 { return &SHA224{core: newSHA2_32(sha224IV, 28)} }

func (h *SHA224) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA224) UpdateLast(data []byte) error { return h.core.updateLast(data, 28) }
func (h *SHA224) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA224) Reset()                      { h.core = newSHA2_32(sha224IV, 28) }
func (h *SHA224) BlockSize() int              { return 64 }
func (h *SHA224) DigestSize() int             { return 28 }

// SHA256 computes the FIPS 180-4 SHA-256 digest (32 bytes).
type SHA256 struct{ core *sha2_32 }

// NewSHA256 constructs a SHA256 ready to accept Update calls.
func NewSHA256() *SHA256 { return &SHA256{core: newSHA2_32(sha256IV, 32)} }

func (h *SHA256) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA256) UpdateLast(data []byte) error { return h.core.updateLast(data, 32) }
func (h *SHA256) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA256) Reset()                      { h.core = newSHA2_32(sha256IV, 32) }
func (h *SHA256) BlockSize() int              { return 64 }
func (h *SHA256) DigestSize() int             { return 32 }

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var sha384IV = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}
var sha512IV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

func rotr64(x uint64, n uint) uint64 { return x>>n | x<<(64-n) }

func sha512Block(state *[8]uint64, blk []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = beBytesToUint64(blk[i*8 : i*8+8])
	}
	for t := 16; t < 80; t++ {
		s0 := rotr64(w[t-15], 1) ^ rotr64(w[t-15], 8) ^ (w[t-15] >> 7)
		s1 := rotr64(w[t-2], 19) ^ rotr64(w[t-2], 61) ^ (w[t-2] >> 6)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 80; t++ {
		s1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha512K[t] + w[t]
		s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// sha2_64 is the shared block-oriented core for SHA-384 and SHA-512:
// block 128 bytes, big-endian 64-bit words, checked 128-bit bit-count,
// 80-round compression over the standard K512 schedule.
type sha2_64 struct {
	state [8]uint64
	count checkedByteCount128
	done  bool
	out   []byte
}

func newSHA2_64(iv [8]uint64, digestSize int) *sha2_64 {
	return &sha2_64{state: iv, out: make([]byte, 0, digestSize)}
}

func (h *sha2_64) blockSize() int { return 128 }

func (h *sha2_64) update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data)%h.blockSize() != 0 {
		return mhash.NewDataLengthMismatched(len(data), h.blockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for i := 0; i < len(data); i += h.blockSize() {
		sha512Block(&h.state, data[i:i+h.blockSize()])
	}
	return nil
}

func (h *sha2_64) updateLast(data []byte, digestSize int) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.blockSize() {
		return mhash.NewDataTooLarge(len(data), h.blockSize())
	}
	if err := h.count.add(len(data)); err != nil {
		return err
	}
	for _, block := range padBlocks(data, h.blockSize(), h.count.bitLengthBE()) {
		sha512Block(&h.state, block)
	}

	full := make([]byte, 64)
	for i, w := range h.state {
		copy(full[i*8:i*8+8], beUint64(w))
	}
	h.out = append(h.out[:0], full[:digestSize]...)
	h.done = true
	return nil
}

func (h *sha2_64) digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, len(h.out))
	copy(out, h.out)
	return out, nil
}

// SHA384 computes the FIPS 180-4 SHA-384 digest (48 bytes).
type SHA384 struct{ core *sha2_64 }

// NewSHA384 constructs a SHA384 ready to accept Update calls.
func NewSHA384() *SHA384 { return &SHA384{core: newSHA2_64(sha384IV, 48)} }

func (h *SHA384) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA384) UpdateLast(data []byte) error { return h.core.updateLast(data, 48) }
func (h *SHA384) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA384) Reset()                      { h.core = newSHA2_64(sha384IV, 48) }
func (h *SHA384) BlockSize() int              { return 128 }
func (h *SHA384) DigestSize() int             { return 48 }

// SHA512 computes the FIPS 180-4 SHA-512 digest (64 bytes).
type SHA512 struct{ core *sha2_64 }

// NewSHA512 constructs a SHA512 ready to accept Update calls.
func NewSHA512() *SHA512 { return &SHA512{core: newSHA2_64(sha512IV, 64)} }

func (h *SHA512) Update(data []byte) error     { return h.core.update(data) }
func (h *SHA512) UpdateLast(data []byte) error { return h.core.updateLast(data, 64) }
func (h *SHA512) Digest() ([]byte, error)      { return h.core.digest() }
func (h *SHA512) Reset()                      { h.core = newSHA2_64(sha512IV, 64) }
func (h *SHA512) BlockSize() int              { return 128 }
func (h *SHA512) DigestSize() int             { return 64 }
