package codforge

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashProjection computes the SHA-256 hash of a translation projection's
// canonical JSON encoding.
func HashProjection(p Projection) string {
	data, err := json.Marshal(p)
	if err != nil {
		// Projection is plain strings and slices; Marshal cannot fail.
		return ""
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a projection hash and target
// language.
func CacheKey(hash, targetLang string) string {
	return hash + ":" + targetLang
}
