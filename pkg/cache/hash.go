package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key returns "prefix:hash(data)". Equal inputs map to equal keys.
func Key(prefix, data string) string {
	return prefix + ":" + Hash([]byte(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
