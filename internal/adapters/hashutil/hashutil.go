// Package hashutil implements the version-token hashing primitives shared by
// renderers, the version store and the remote mirror.
package hashutil

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
)

// Content returns the hex digest of a byte slice.
func Content(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// File returns the hex digest of a file's content.
func File(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Bundle computes the version token of a bundle of assets. The token is
// order-independent: paths are sorted before hashing. A separator byte is
// written after every per-path hash so that adjacent fragments cannot run
// into each other; an empty per-path hash still advances the separator,
// recording that the path contributes nothing stable.
func Bundle(paths []string, perPath func(string) (string, error)) (string, error) {
	if len(paths) == 0 {
		return "", domain.ErrNoPathsProvided
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	hasher := xxhash.New()
	for _, path := range sorted {
		part, err := perPath(path)
		if err != nil {
			return "", err
		}
		if part != "" {
			_, _ = hasher.WriteString(part)
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Combine merges hash fragments into one version token. Empty fragments are
// skipped. With no usable fragment the result is empty, meaning the asset is
// not versionable. A single fragment passes through verbatim, so a renderer
// hash doubles as the store token for that asset.
func Combine(parts []string) string {
	usable := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			usable = append(usable, part)
		}
	}

	switch len(usable) {
	case 0:
		return ""
	case 1:
		return usable[0]
	}

	hasher := xxhash.New()
	for _, part := range usable {
		_, _ = hasher.WriteString(part)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// Resolve evaluates the hash inputs and combines the results into a version
// token.
func Resolve(inputs []ports.HashInput) (string, error) {
	parts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		part, err := input()
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return Combine(parts), nil
}
