package hash

import sha256simd "github.com/minio/sha256-simd"

// QuickSHA256 computes a whole-buffer SHA-256 digest using the
// hardware-accelerated implementation instead of the block-exact state
// machine in sha2.go. It exists for callers that already hold the entire
// message in memory and have no need for the engine's streaming
// Update/UpdateLast contract — the streaming SHA256 type in this
// package is still required wherever a message arrives in chunks that
// do not line up with a single Write call.
func QuickSHA256(data []byte) [32]byte {
	return sha256simd.Sum256(data)
}
