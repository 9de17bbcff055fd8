package engine

import (
	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/hash"
)

// operation is the tagged union flowing on the engine's central,
// unbounded operation channel. Concrete types below implement it;
// Engine.Compute type-switches on the concrete type rather than
// inspecting a discriminant field, which is the idiom the rest of this
// module already uses for Kind-tagged values.
type operation interface {
	isOperation()
}

type opNewIdentifier struct {
	identifier mhash.Identifier
	hashers    []*HasherWrapper
}

func (opNewIdentifier) isOperation() {}

type opEndOfNewIdentifier struct{}

func (opEndOfNewIdentifier) isOperation() {}

type opData struct {
	data *DataWrapper
}

func (opData) isOperation() {}

type opProgress struct {
	progress Progress
}

func (opProgress) isOperation() {}

type opResult struct {
	identifier mhash.Identifier
	wrapper    *HasherWrapper
}

func (opResult) isOperation() {}

type opError struct {
	identifier mhash.Identifier
	tag        any
	hasTag     bool
	err        *mhash.Error
}

func (opError) isOperation() {}

// Progress reports how much of an identifier's declared total a single
// hasher has consumed so far. Delivered synchronously on the engine's
// own goroutine, in sent_data_length-monotone order per (identifier, tag).
type Progress struct {
	Identifier      mhash.Identifier
	Tag             any
	TotalDataLength uint64
	SentDataLength  uint64
}

// Result is the final, successful callback for one (identifier, tag)
// pair: exactly one Result or one HasherError follows every terminal
// DataWrapper dispatched for a registered hasher.
type Result struct {
	Identifier mhash.Identifier
	Tag        any
	Hasher     hash.Hasher
}

// HasherError is the final callback for a (identifier, tag) pair when
// hashing fails, or a source-wide failure when Tag is absent (HasTag
// false) — in which case the whole identifier was torn down.
type HasherError struct {
	Identifier mhash.Identifier
	Tag        any
	HasTag     bool
	Err        *mhash.Error
}
