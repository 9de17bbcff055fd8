package hash

import "github.com/maboroshinokiseki/mhash"

const (
	md5S11, md5S12, md5S13, md5S14 = 7, 12, 17, 22
	md5S21, md5S22, md5S23, md5S24 = 5, 9, 14, 20
	md5S31, md5S32, md5S33, md5S34 = 4, 11, 16, 23
	md5S41, md5S42, md5S43, md5S44 = 6, 10, 15, 21
)

func md5F(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func md5G(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }
func md5H(x, y, z uint32) uint32 { return x ^ y ^ z }
func md5I(x, y, z uint32) uint32 { return y ^ (x | ^z) }

func md5Rotl(x uint32, s uint32) uint32 { return x<<s | x>>(32-s) }

func md5Round1(a, b, c, d, x, s, ac uint32) uint32 {
	return md5Rotl(a+md5F(b, c, d)+x+ac, s) + b
}
func md5Round2(a, b, c, d, x, s, ac uint32) uint32 {
	return md5Rotl(a+md5G(b, c, d)+x+ac, s) + b
}
func md5Round3(a, b, c, d, x, s, ac uint32) uint32 {
	return md5Rotl(a+md5H(b, c, d)+x+ac, s) + b
}
func md5Round4(a, b, c, d, x, s, ac uint32) uint32 {
	return md5Rotl(a+md5I(b, c, d)+x+ac, s) + b
}

// MD5 computes the RFC 1321 MD5 digest: block 64 bytes, digest 16
// bytes, little-endian word interpretation, wrapping 64-bit bit-count.
type MD5 struct {
	state  [4]uint32
	count  wrappingByteCount
	done   bool
	digest [16]byte
}

// NewMD5 constructs an MD5 ready to accept Update calls, with the
// standard RFC 1321 initial state.
func NewMD5() *MD5 {
	h := &MD5{}
	h.Reset()
	return h
}

func (h *MD5) blockLE(blk []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = leBytesToUint32(blk[i*4 : i*4+4])
	}

	a, b, c, d := h.state[0], h.state[1], h.state[2], h.state[3]

	a = md5Round1(a, b, c, d, x[0], md5S11, 0xd76aa478)
	d = md5Round1(d, a, b, c, x[1], md5S12, 0xe8c7b756)
	c = md5Round1(c, d, a, b, x[2], md5S13, 0x242070db)
	b = md5Round1(b, c, d, a, x[3], md5S14, 0xc1bdceee)
	a = md5Round1(a, b, c, d, x[4], md5S11, 0xf57c0faf)
	d = md5Round1(d, a, b, c, x[5], md5S12, 0x4787c62a)
	c = md5Round1(c, d, a, b, x[6], md5S13, 0xa8304613)
	b = md5Round1(b, c, d, a, x[7], md5S14, 0xfd469501)
	a = md5Round1(a, b, c, d, x[8], md5S11, 0x698098d8)
	d = md5Round1(d, a, b, c, x[9], md5S12, 0x8b44f7af)
	c = md5Round1(c, d, a, b, x[10], md5S13, 0xffff5bb1)
	b = md5Round1(b, c, d, a, x[11], md5S14, 0x895cd7be)
	a = md5Round1(a, b, c, d, x[12], md5S11, 0x6b901122)
	d = md5Round1(d, a, b, c, x[13], md5S12, 0xfd987193)
	c = md5Round1(c, d, a, b, x[14], md5S13, 0xa679438e)
	b = md5Round1(b, c, d, a, x[15], md5S14, 0x49b40821)

	a = md5Round2(a, b, c, d, x[1], md5S21, 0xf61e2562)
	d = md5Round2(d, a, b, c, x[6], md5S22, 0xc040b340)
	c = md5Round2(c, d, a, b, x[11], md5S23, 0x265e5a51)
	b = md5Round2(b, c, d, a, x[0], md5S24, 0xe9b6c7aa)
	a = md5Round2(a, b, c, d, x[5], md5S21, 0xd62f105d)
	d = md5Round2(d, a, b, c, x[10], md5S22, 0x02441453)
	c = md5Round2(c, d, a, b, x[15], md5S23, 0xd8a1e681)
	b = md5Round2(b, c, d, a, x[4], md5S24, 0xe7d3fbc8)
	a = md5Round2(a, b, c, d, x[9], md5S21, 0x21e1cde6)
	d = md5Round2(d, a, b, c, x[14], md5S22, 0xc33707d6)
	c = md5Round2(c, d, a, b, x[3], md5S23, 0xf4d50d87)
	b = md5Round2(b, c, d, a, x[8], md5S24, 0x455a14ed)
	a = md5Round2(a, b, c, d, x[13], md5S21, 0xa9e3e905)
	d = md5Round2(d, a, b, c, x[2], md5S22, 0xfcefa3f8)
	c = md5Round2(c, d, a, b, x[7], md5S23, 0x676f02d9)
	b = md5Round2(b, c, d, a, x[12], md5S24, 0x8d2a4c8a)

	a = md5Round3(a, b, c, d, x[5], md5S31, 0xfffa3942)
	d = md5Round3(d, a, b, c, x[8], md5S32, 0x8771f681)
	c = md5Round3(c, d, a, b, x[11], md5S33, 0x6d9d6122)
	b = md5Round3(b, c, d, a, x[14], md5S34, 0xfde5380c)
	a = md5Round3(a, b, c, d, x[1], md5S31, 0xa4beea44)
	d = md5Round3(d, a, b, c, x[4], md5S32, 0x4bdecfa9)
	c = md5Round3(c, d, a, b, x[7], md5S33, 0xf6bb4b60)
	b = md5Round3(b, c, d, a, x[10], md5S34, 0xbebfbc70)
	a = md5Round3(a, b, c, d, x[13], md5S31, 0x289b7ec6)
	d = md5Round3(d, a, b, c, x[0], md5S32, 0xeaa127fa)
	c = md5Round3(c, d, a, b, x[3], md5S33, 0xd4ef3085)
	b = md5Round3(b, c, d, a, x[6], md5S34, 0x04881d05)
	a = md5Round3(a, b, c, d, x[9], md5S31, 0xd9d4d039)
	d = md5Round3(d, a, b, c, x[12], md5S32, 0xe6db99e5)
	c = md5Round3(c, d, a, b, x[15], md5S33, 0x1fa27cf8)
	b = md5Round3(b, c, d, a, x[2], md5S34, 0xc4ac5665)

	a = md5Round4(a, b, c, d, x[0], md5S41, 0xf4292244)
	d = md5Round4(d, a, b, c, x[7], md5S42, 0x432aff97)
	c = md5Round4(c, d, a, b, x[14], md5S43, 0xab9423a7)
	b = md5Round4(b, c, d, a, x[5], md5S44, 0xfc93a039)
	a = md5Round4(a, b, c, d, x[12], md5S41, 0x655b59c3)
	d = md5Round4(d, a, b, c, x[3], md5S42, 0x8f0ccc92)
	c = md5Round4(c, d, a, b, x[10], md5S43, 0xffeff47d)
	b = md5Round4(b, c, d, a, x[1], md5S44, 0x85845dd1)
	a = md5Round4(a, b, c, d, x[8], md5S41, 0x6fa87e4f)
	d = md5Round4(d, a, b, c, x[15], md5S42, 0xfe2ce6e0)
	c = md5Round4(c, d, a, b, x[6], md5S43, 0xa3014314)
	b = md5Round4(b, c, d, a, x[13], md5S44, 0x4e0811a1)
	a = md5Round4(a, b, c, d, x[4], md5S41, 0xf7537e82)
	d = md5Round4(d, a, b, c, x[11], md5S42, 0xbd3af235)
	c = md5Round4(c, d, a, b, x[2], md5S43, 0x2ad7d2bb)
	b = md5Round4(b, c, d, a, x[9], md5S44, 0xeb86d391)

	h.state[0] += a
	h.state[1] += b
	h.state[2] += c
	h.state[3] += d
}

func (h *MD5) Update(data []byte) error {
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

func (h *MD5) UpdateLast(data []byte) error {
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

func (h *MD5) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 16)
	copy(out, h.digest[:])
	return out, nil
}

func (h *MD5) Reset() {
	*h = MD5{state: [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}}
}

func (h *MD5) BlockSize() int  { return 64 }
func (h *MD5) DigestSize() int { return 16 }
