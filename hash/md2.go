package hash

import "github.com/maboroshinokiseki/mhash"

// md2SBox is the RFC 1319 non-linear substitution table.
var md2SBox = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6,
	19, 98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188,
	76, 130, 202, 30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24,
	138, 23, 229, 18, 190, 78, 196, 214, 218, 158, 222, 73, 160, 251,
	245, 142, 187, 47, 238, 122, 169, 104, 121, 145, 21, 178, 7, 63,
	148, 194, 16, 137, 11, 34, 95, 33, 128, 127, 93, 154, 90, 144, 50,
	39, 53, 62, 204, 231, 191, 247, 151, 3, 255, 25, 48, 179, 72, 165,
	181, 209, 215, 94, 146, 42, 172, 86, 170, 198, 79, 184, 56, 210,
	150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241, 69, 157,
	112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2, 27,
	96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197,
	234, 38, 44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65,
	129, 77, 82, 106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123,
	8, 12, 189, 177, 74, 120, 136, 149, 139, 227, 99, 232, 109, 233,
	203, 213, 254, 59, 0, 29, 57, 242, 239, 183, 14, 102, 88, 208, 228,
	166, 119, 114, 248, 235, 117, 75, 10, 49, 68, 80, 180, 143, 237,
	31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

// MD2 computes the RFC 1319 MD2 digest. Its block size is 16 bytes; the
// final block always appends a value-padding tail (RFC 1319's
// "pad with N bytes each holding N") even when the data already lands
// on a block boundary, followed by a running checksum block.
type MD2 struct {
	state    [48]byte
	checksum [16]byte
	done     bool
	digest   [16]byte
}

// NewMD2 constructs an MD2 ready to accept Update calls.
func NewMD2() *MD2 { return &MD2{} }

func (h *MD2) block(p []byte) {
	var t byte
	copy(h.state[16:32], p)
	for i := 0; i < 16; i++ {
		h.state[i+32] = p[i] ^ h.state[i]
	}
	for i := 0; i < 18; i++ {
		for j := 0; j < 48; j++ {
			h.state[j] ^= md2SBox[t]
			t = h.state[j]
		}
		t += byte(i)
	}

	t = h.checksum[15]
	for i := 0; i < 16; i++ {
		h.checksum[i] ^= md2SBox[p[i]^t]
		t = h.checksum[i]
	}
}

func (h *MD2) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data)%h.BlockSize() != 0 {
		return mhash.NewDataLengthMismatched(len(data), h.BlockSize())
	}
	for i := 0; i < len(data); i += h.BlockSize() {
		h.block(data[i : i+h.BlockSize()])
	}
	return nil
}

func (h *MD2) UpdateLast(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	if len(data) > h.BlockSize() {
		return mhash.NewDataTooLarge(len(data), h.BlockSize())
	}

	paddingSize := h.BlockSize() - len(data)
	if paddingSize == 0 {
		paddingSize = h.BlockSize()
	}
	buf := make([]byte, 0, len(data)+paddingSize)
	buf = append(buf, data...)
	for i := 0; i < paddingSize; i++ {
		buf = append(buf, byte(paddingSize))
	}
	for i := 0; i < len(buf); i += h.BlockSize() {
		h.block(buf[i : i+h.BlockSize()])
	}
	h.block(h.checksum[:])

	copy(h.digest[:], h.state[:16])
	h.done = true
	return nil
}

func (h *MD2) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	out := make([]byte, 16)
	copy(out, h.digest[:])
	return out, nil
}

func (h *MD2) Reset() { *h = MD2{} }

func (h *MD2) BlockSize() int  { return 16 }
func (h *MD2) DigestSize() int { return 16 }
