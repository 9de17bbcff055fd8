package engine

import (
	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/hash"
	"golang.org/x/xerrors"
)

// HasherWrapper pairs a caller-chosen tag with a shared-mutable hasher.
// shallowClone hands out another reference to the same underlying
// Hasher rather than a copy: the server and the dispatched worker job
// both hold a HasherWrapper for the same tag, and mutual exclusion
// between them is guaranteed by the tag-keyed pool's serialization
// (§4.3), never by a lock on the struct itself.
type HasherWrapper struct {
	Tag    any
	Hasher hash.Hasher
}

// NewHasherWrapper wraps an already-constructed Hasher under tag,
// supporting caller-defined algorithms registered under arbitrary tag
// values.
func NewHasherWrapper(tag any, h hash.Hasher) *HasherWrapper {
	return &HasherWrapper{Tag: tag, Hasher: h}
}

func (w *HasherWrapper) shallowClone() *HasherWrapper {
	return &HasherWrapper{Tag: w.Tag, Hasher: w.Hasher}
}

// NewHasherFromTag materializes one of the built-in algorithms named by
// tag. It is the one piece of public surface the distilled spec only
// mentions in passing; every standard algorithm is reachable through it
// without the caller having to import package hash directly.
func NewHasherFromTag(tag mhash.HasherTag) (hash.Hasher, error) {
	switch tag {
	case mhash.CRC32:
		return hash.NewCRC32(), nil
	case mhash.CRC32C:
		return hash.NewCRC32C(), nil
	case mhash.MD2:
		return hash.NewMD2(), nil
	case mhash.MD4:
		return hash.NewMD4(), nil
	case mhash.MD5:
		return hash.NewMD5(), nil
	case mhash.SHA1:
		return hash.NewSHA1(), nil
	case mhash.SHA224:
		return hash.NewSHA224(), nil
	case mhash.SHA256:
		return hash.NewSHA256(), nil
	case mhash.SHA384:
		return hash.NewSHA384(), nil
	case mhash.SHA512:
		return hash.NewSHA512(), nil
	case mhash.SHA3_224:
		return hash.NewSHA3_224(), nil
	case mhash.SHA3_256:
		return hash.NewSHA3_256(), nil
	case mhash.SHA3_384:
		return hash.NewSHA3_384(), nil
	case mhash.SHA3_512:
		return hash.NewSHA3_512(), nil
	default:
		return nil, xerrors.Errorf("mhash: no built-in hasher for tag %v", tag)
	}
}
