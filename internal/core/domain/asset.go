// Package domain contains core value types for asset versioning.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
)

const (
	// DirPerm is the permission used for cache directories. The cache tree is
	// shared between processes, so it must stay group/world readable.
	DirPerm = 0o755

	// FilePerm is the permission used for cache entries.
	FilePerm = 0o644

	// MaxAgeSeconds is the Cache-Control lifetime for hashed URLs (~1 year).
	MaxAgeSeconds = 60 * 60 * 24 * 30 * 12

	// VersionParam is the query parameter carrying the version token.
	VersionParam = "_v"

	bundlePrefix = "__bundle_"
	bundleSuffix = "__"
)

var hashPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// ValidHash reports whether s is a well-formed version token.
func ValidHash(s string) bool {
	return hashPattern.MatchString(s)
}

// hiddenPattern matches paths with a path segment starting with an
// underscore. Such paths are excluded from default bundles.
var hiddenPattern = regexp.MustCompile(`(^|/)_`)

// HiddenPath reports whether path is excluded from default path listings.
func HiddenPath(path string) bool {
	return hiddenPattern.MatchString(path)
}

// BundleName derives a deterministic, order-independent identifier for a set
// of paths. It is an identity for the path set, not a content hash: the same
// name holds multiple historical content versions side by side.
func BundleName(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return hex.EncodeToString(sum[:])
}

// BundleRef wraps a bundle name in the reserved URL marker.
func BundleRef(name string) string {
	return bundlePrefix + name + bundleSuffix
}

// ParseBundleRef extracts the bundle name from a URL path segment. It returns
// false if the segment is not a bundle marker.
func ParseBundleRef(segment string) (string, bool) {
	if !strings.HasPrefix(segment, bundlePrefix) || !strings.HasSuffix(segment, bundleSuffix) {
		return "", false
	}
	return segment[len(bundlePrefix) : len(segment)-len(bundleSuffix)], true
}
