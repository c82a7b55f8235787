package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Key builds a cache key from a kind and the values that determine the
// output. The format is kind:sha256(json(parts)).
func Key(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// KindOf returns the kind prefix of a key built by Key, or "" when there is
// none.
func KindOf(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		kind := key[:i]
		if j := strings.LastIndexByte(kind, ':'); j >= 0 {
			kind = kind[j+1:]
		}
		return kind
	}
	return ""
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
