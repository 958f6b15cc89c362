// Package cas implements the content-addressed version store on the local
// filesystem.
package cas

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/webassets/internal/adapters/hashutil"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionStore = (*Store)(nil)

const readmeText = "This folder is managed by the webassets version store.\n\n" +
	"Do not alter/delete any files!"

// Store keeps one immutable file per (category, path, hash). Multiple
// processes may share the same root; writes are atomic rename-into-place, so
// a lost race leaves an identical file behind and is harmless.
type Store struct {
	root string
}

// NewStore creates the store root and drops a README warning into it.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "root", root)
	}

	readme := filepath.Join(root, "README.txt")
	if err := os.WriteFile(readme, []byte(readmeText), domain.FilePerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	return &Store{root: filepath.Clean(root)}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// CacheFile returns the file holding the given version of an asset. The hash
// must come from one of this system's hashers; anything else is a programmer
// error.
func (s *Store) CacheFile(category, path, hash string) string {
	if !domain.ValidHash(hash) {
		panic(fmt.Sprintf("cas: invalid hash %q", hash))
	}
	return filepath.Join(s.root, category, path, hash)
}

// Store combines the hash inputs into a version token and writes the entry
// if it is not present yet. The generator runs at most once per version.
func (s *Store) Store(_ context.Context, category, path string, inputs []ports.HashInput, generate ports.ContentFunc) (string, error) {
	token, err := hashutil.Resolve(inputs)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}

	file := s.CacheFile(category, path, token)
	if _, err := os.Stat(file); err == nil {
		return token, nil
	}

	content, err := generate()
	if err != nil {
		return "", err
	}

	if err := s.WriteEntry(file, content); err != nil {
		return "", err
	}
	return token, nil
}

// Load returns the content and age of a stored version.
func (s *Store) Load(_ context.Context, category, path, hash string) ([]byte, time.Duration, error) {
	file := s.CacheFile(category, path, hash)

	info, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, domain.ErrCacheMiss
		}
		return nil, 0, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", file)
	}

	content, err := os.ReadFile(file) //nolint:gosec // Path is rooted in the store directory
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", file)
	}

	return content, time.Since(info.ModTime()), nil
}

// WriteEntry atomically materializes a cache entry: the content is written to
// a scratch file in the target directory and renamed into place.
func (s *Store) WriteEntry(file string, content []byte) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	scratch, err := os.CreateTemp(dir, filepath.Base(file)+".*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if _, err := scratch.Write(content); err != nil {
		_ = scratch.Close()
		_ = os.Remove(scratch.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := scratch.Close(); err != nil {
		_ = os.Remove(scratch.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(scratch.Name(), domain.FilePerm); err != nil {
		_ = os.Remove(scratch.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.Rename(scratch.Name(), file); err != nil {
		_ = os.Remove(scratch.Name())
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "file", file)
	}
	return nil
}
