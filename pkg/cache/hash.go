package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced cache key from the JSON encoding of parts.
// Keys look like "scan:<sha256>"; the prefix separates scan results from
// any future entry kinds sharing a directory.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data. The full 64-character
// digest is kept: parameter tuples are tiny, and a truncated key that
// collided would silently serve the wrong sequence to the instrument.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
