// Package mhash implements a multi-hash streaming engine: given a set
// of input sources (files or caller-fed byte fragments) it computes,
// in parallel, one or more digests per source and delivers progress,
// results and errors through a single-threaded callback sink.
//
// The concurrency/dispatch machinery lives in the engine subpackage,
// built on top of the bit-exact hash state machines in the hash
// subpackage. This package holds the identity and error types shared
// by both.
package mhash
