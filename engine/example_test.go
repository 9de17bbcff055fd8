package engine_test

import (
	"encoding/hex"
	"fmt"

	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/engine"
)

// sumHasher is a trivial running byte-sum checksum. It implements
// hash.Hasher without importing that package at all, showing that the
// engine never requires a caller-defined algorithm to originate from
// the built-in set.
type sumHasher struct {
	sum    byte
	done   bool
	digest [1]byte
}

func (h *sumHasher) Update(data []byte) error {
	if h.done {
		return mhash.ErrUpdatingAfterFinished
	}
	for _, b := range data {
		h.sum += b
	}
	return nil
}

func (h *sumHasher) UpdateLast(data []byte) error {
	if err := h.Update(data); err != nil {
		return err
	}
	h.digest[0] = h.sum
	h.done = true
	return nil
}

func (h *sumHasher) Digest() ([]byte, error) {
	if !h.done {
		return nil, mhash.ErrNotFinished
	}
	return append([]byte(nil), h.digest[:]...), nil
}

func (h *sumHasher) Reset()          { *h = sumHasher{} }
func (h *sumHasher) BlockSize() int  { return 1 }
func (h *sumHasher) DigestSize() int { return 1 }

// ExampleHasherWrapper_custom registers a caller-defined Hasher under
// an arbitrary tag value the engine has never heard of, and dispatches
// it through the engine exactly like a built-in algorithm.
func ExampleHasherWrapper_custom() {
	e, err := engine.NewBuilder().
		OnResult(func(r engine.Result) {
			digest, _ := r.Hasher.Digest()
			fmt.Printf("%s: %s\n", r.Tag, hex.EncodeToString(digest))
		}).
		OnError(func(he engine.HasherError) {
			panic(he.Err)
		}).
		Build()
	if err != nil {
		panic(err)
	}

	sender := e.DataSender()
	id := mhash.NewNameIdentifier("custom")
	wrapper := engine.NewHasherWrapper("checksum", &sumHasher{})
	fs := sender.FragmentSender(id, []*engine.HasherWrapper{wrapper})
	fs.PushLastData([]byte{1, 2, 3, 4})
	sender.End()

	e.Compute()
	// Output: checksum: 0a
}

// ExampleFragmentSender hashes an in-memory byte slice directly,
// without ever opening a file.
func ExampleFragmentSender() {
	e, err := engine.NewBuilder().
		OnResult(func(r engine.Result) {
			digest, _ := r.Hasher.Digest()
			fmt.Printf("%s: %s\n", r.Tag, hex.EncodeToString(digest))
		}).
		OnError(func(he engine.HasherError) {
			panic(he.Err)
		}).
		Build()
	if err != nil {
		panic(err)
	}

	h, err := engine.NewHasherFromTag(mhash.SHA256)
	if err != nil {
		panic(err)
	}

	sender := e.DataSender()
	id := mhash.NewNameIdentifier("fragment")
	fs := sender.FragmentSender(id, []*engine.HasherWrapper{engine.NewHasherWrapper(mhash.SHA256, h)})
	fs.PushLastData([]byte("abc"))
	sender.End()

	e.Compute()
	// Output: SHA256: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
