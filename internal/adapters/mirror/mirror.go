// Package mirror decorates the local version store with a remote peer store.
// Versions already computed by a peer are downloaded instead of regenerated;
// locally generated versions are published for the peers.
package mirror

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/webassets/internal/adapters/cas"
	"go.trai.ch/webassets/internal/adapters/hashutil"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.VersionStore = (*Mirror)(nil)

// Mirror wraps a local cas.Store and a remote store. Cross-process
// coordination happens through an exclusive advisory lock on a scratch file
// next to the cache entry: at most one process per host downloads or
// regenerates a given version, the others block briefly and then observe the
// materialized file.
type Mirror struct {
	local  *cas.Store
	remote ports.RemoteStore
	log    ports.Logger
}

// New creates a Mirror over the given local store and remote peer.
func New(local *cas.Store, remote ports.RemoteStore, log ports.Logger) *Mirror {
	return &Mirror{local: local, remote: remote, log: log}
}

func remoteKey(category, path, hash string) string {
	return fmt.Sprintf("webassets/%s/%s/%s", category, path, hash)
}

// Store resolves the version token and materializes the entry, preferring a
// peer download over local regeneration. Upload failures after a local
// regeneration are propagated: the content exists locally but could not be
// shared, and the caller decides whether that is acceptable.
func (m *Mirror) Store(ctx context.Context, category, path string, inputs []ports.HashInput, generate ports.ContentFunc) (string, error) {
	token, err := hashutil.Resolve(inputs)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}

	file := m.local.CacheFile(category, path, token)
	if _, err := os.Stat(file); err == nil {
		return token, nil
	}

	fetched, err := m.fetch(ctx, category, path, token, file)
	if err != nil {
		return "", err
	}
	if fetched {
		return token, nil
	}

	content, err := generate()
	if err != nil {
		return "", err
	}
	if err := m.local.WriteEntry(file, content); err != nil {
		return "", err
	}

	if err := m.publish(ctx, category, path, token, content); err != nil {
		return "", err
	}
	return token, nil
}

// Load tries the local store first and falls back to a peer download.
func (m *Mirror) Load(ctx context.Context, category, path, hash string) ([]byte, time.Duration, error) {
	content, age, err := m.local.Load(ctx, category, path, hash)
	if err == nil {
		return content, age, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		return nil, 0, err
	}

	file := m.local.CacheFile(category, path, hash)
	fetched, err := m.fetch(ctx, category, path, hash, file)
	if err != nil {
		return nil, 0, err
	}
	if !fetched {
		return nil, 0, domain.ErrCacheMiss
	}

	return m.local.Load(ctx, category, path, hash)
}

// fetch attempts to download the version from the peer store into place. It
// returns true when the cache file exists afterwards, either because this
// process downloaded it or because another process won the race while we
// waited on the lock. Remote connectivity problems and missing objects both
// come back as (false, nil): the caller falls through to regeneration.
func (m *Mirror) fetch(ctx context.Context, category, path, hash, file string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(file), domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	scratchPath := file + ".tmp"
	scratch, err := os.OpenFile(scratchPath, os.O_CREATE|os.O_RDWR, domain.FilePerm) //nolint:gosec // Path is rooted in the store directory
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() {
		_ = unix.Flock(int(scratch.Fd()), unix.LOCK_UN)
		_ = scratch.Close()
		_ = os.Remove(scratchPath)
	}()

	if err := unix.Flock(int(scratch.Fd()), unix.LOCK_EX); err != nil {
		return false, zerr.Wrap(err, "failed to lock scratch file")
	}

	// Another process may have finished downloading while we waited.
	if _, err := os.Stat(file); err == nil {
		return true, nil
	}

	conn, err := m.remote.Connect(ctx)
	if err != nil {
		m.log.Warn("remote store unreachable, falling back to local generation: " + err.Error())
		return false, nil
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	mtime, err := conn.Download(ctx, remoteKey(category, path, hash), scratch)
	if err != nil {
		if !errors.Is(err, domain.ErrRemoteObjectMissing) {
			m.log.Warn("remote download failed, falling back to local generation: " + err.Error())
		}
		return false, nil
	}

	if err := os.Chtimes(scratchPath, mtime, mtime); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(scratchPath, file); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "file", file)
	}
	return true, nil
}

// publish uploads a locally generated version so peers can download it
// instead of regenerating.
func (m *Mirror) publish(ctx context.Context, category, path, hash string, content []byte) error {
	conn, err := m.remote.Connect(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to publish version to remote store")
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	key := remoteKey(category, path, hash)
	if err := conn.Upload(ctx, key, bytes.NewReader(content)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to upload version"), "key", key)
	}
	if err := conn.Commit(ctx); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit upload"), "key", key)
	}
	return nil
}
