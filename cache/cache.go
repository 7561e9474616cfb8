// Package cache stores translated projection payloads keyed by a hash
// of the source projection and the target language, so repeating a
// translation skips the provider round trip.
package cache

// TranslationCache holds serialized translation payloads.
type TranslationCache interface {
	// Get retrieves a cached payload. Returns empty string and false
	// if not found or expired.
	Get(key string) (string, bool)

	// Set stores a payload under the given key.
	Set(key string, value string) error
}
