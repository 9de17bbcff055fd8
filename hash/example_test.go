package hash_test

import (
	"encoding/hex"
	"fmt"

	"github.com/maboroshinokiseki/mhash/hash"
)

// ExampleSHA256 uses a primitive directly, with no engine involved at
// all: constructing a Hasher and driving Update/UpdateLast/Digest by
// hand is a complete, supported way to compute a digest.
func ExampleSHA256() {
	h := hash.NewSHA256()
	if err := h.UpdateLast([]byte("abc")); err != nil {
		panic(err)
	}
	digest, err := h.Digest()
	if err != nil {
		panic(err)
	}
	fmt.Println(hex.EncodeToString(digest))
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
