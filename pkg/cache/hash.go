package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key hashes an arbitrary key string into a fixed-length hex form safe for
// filenames and redis keys alike. The full SHA-256 digest is kept to rule
// out collisions.
func Key(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Hash computes the SHA-256 hex digest of data. Used for artifact cache keys
// derived from layout content.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
