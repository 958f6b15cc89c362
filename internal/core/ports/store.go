package ports

import (
	"context"
	"time"
)

// HashInput produces one hex fragment of a version token. An empty result
// means "this input contributes no stable version".
type HashInput func() (string, error)

// ContentFunc generates the content of a cache entry. It is potentially
// expensive (a full render) and must be invoked at most once per version.
type ContentFunc func() ([]byte, error)

// VersionStore is the content-addressed cache of rendered asset versions.
// Entries are keyed by (category, path, hash) and immutable once written;
// there is no deletion.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// Store combines the hash inputs into a version token and materializes
	// the entry if it does not exist yet. It returns the empty token when no
	// input produced a value (the asset is not versionable). When the entry
	// already exists, generate is not invoked.
	Store(ctx context.Context, category, path string, inputs []HashInput, generate ContentFunc) (string, error)

	// Load returns the content and age of a stored version. A version that
	// was never stored yields domain.ErrCacheMiss.
	Load(ctx context.Context, category, path, hash string) ([]byte, time.Duration, error)
}
