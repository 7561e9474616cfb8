package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Snapshot is the JSON structure used to move cached translations
// between environments.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    map[string]string `json:"entries"`
}

// WriteSnapshot serializes every live entry of an in-memory cache.
// Only the in-memory cache supports enumeration; Redis deployments
// migrate with Redis tooling instead.
func WriteSnapshot(w io.Writer, c *InMemoryCache) error {
	snap := Snapshot{
		Version:    "1",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    c.Entries(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot's entries into any cache. It returns
// the number of entries stored.
func ReadSnapshot(r io.Reader, dst TranslationCache) (int, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	loaded := 0
	for key, value := range snap.Entries {
		if err := dst.Set(key, value); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// WriteSnapshotFile writes a snapshot to the given path.
// The path is provided by the caller and is intentionally user-controlled.
func WriteSnapshotFile(path string, c *InMemoryCache) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return WriteSnapshot(f, c)
}

// ReadSnapshotFile loads a snapshot file into dst.
func ReadSnapshotFile(path string, dst TranslationCache) (int, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f, dst)
}
