// Package cache stores rendered radar artifacts keyed by the content that
// produced them.
//
// Three backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a Redis server, for the HTTP and MCP servers
//
// A [Keyer] derives keys from a hash of the radar definition plus the
// render parameters, so editing a definition or changing the seed never
// returns a stale drawing.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// ArtifactTTL is how long rendered artifacts are kept.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultDir returns the CLI cache directory, ~/.cache/techradar.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "techradar"), nil
}
