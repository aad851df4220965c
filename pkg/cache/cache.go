// Package cache stores rendered hierarchy diagrams so repeated renders of an
// unchanged tree skip Graphviz and rsvg-convert.
//
// Entries are opaque byte slices under string keys. Three backends are
// provided: [FileCache] for the CLI, [RedisCache] for a cache shared between
// machines, and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry. Get reports a miss with
// ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey identifies a diagram rendered from DOT source in format. The
// scale only matters for raster formats.
func ArtifactKey(dot []byte, format string, scale float64) string {
	return fmt.Sprintf("artifact:%s:%s:%s", format, strconv.FormatFloat(scale, 'g', -1, 64), Hash(dot))
}
