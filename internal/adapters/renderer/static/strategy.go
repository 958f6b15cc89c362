package static

import (
	"fmt"
	"os"

	"go.trai.ch/webassets/internal/adapters/hashutil"
	"go.trai.ch/zerr"
)

// HashStrategy computes the version fragment for a backing file. Results
// must be hex strings; they become part of cache file names.
type HashStrategy interface {
	Hash(file string) (string, error)
}

// ContentStrategy hashes the file's content. Stable across machines.
type ContentStrategy struct{}

// Hash returns the content digest of file.
func (ContentStrategy) Hash(file string) (string, error) {
	return hashutil.File(file)
}

// MtimeStrategy derives the token from the file's modification time. Cheaper
// than hashing content but only stable on a single machine.
type MtimeStrategy struct{}

// Hash returns the file's mtime as a hex token.
func (MtimeStrategy) Hash(file string) (string, error) {
	info, err := os.Stat(file)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat asset file"), "file", file)
	}
	return fmt.Sprintf("%x", info.ModTime().UnixNano()), nil
}

// StrategyByName maps a configuration value to a strategy. The empty string
// selects the content strategy.
func StrategyByName(name string) (HashStrategy, bool) {
	switch name {
	case "", "content":
		return ContentStrategy{}, true
	case "mtime":
		return MtimeStrategy{}, true
	default:
		return nil, false
	}
}
