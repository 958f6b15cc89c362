// Package responder implements the conditional-HTTP state machine: given an
// abstract request it decides between 304, a cached response, and a live
// render.
package responder

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/webassets/internal/engine/registry"
)

// loader produces the mimetype and body for a request, either from the
// version store (hash given) or by rendering live (hash empty).
type loader func(ctx context.Context, hash string) (string, []byte, error)

// Responder answers asset requests.
type Responder struct {
	registry *registry.Registry
	store    ports.VersionStore
	rootdir  string
	log      ports.Logger
}

// New creates a Responder. rootdir may be empty when no cache directory is
// configured; the If-Modified-Since directory scan is then skipped.
func New(reg *registry.Registry, store ports.VersionStore, rootdir string, log ports.Logger) *Responder {
	return &Responder{registry: reg, store: store, rootdir: rootdir, log: log}
}

// Respond handles one request. ErrAssetNotFound is returned for unknown
// modules, invalid paths and unknown versions; the boundary adapter maps it
// to 404.
func (r *Responder) Respond(ctx context.Context, req domain.Request) (domain.Response, error) {
	module, rest, ok := splitRequestPath(req.Path)
	if !ok {
		return domain.Response{}, domain.AssetNotFound("", req.Path)
	}

	var load loader
	if name, isBundle := domain.ParseBundleRef(rest); isBundle {
		load = r.bundleLoader(module, name)
	} else {
		load = r.assetLoader(module, rest)
	}

	return r.respond(ctx, req, module, rest, load)
}

func splitRequestPath(path string) (module, rest string, ok bool) {
	path = strings.TrimPrefix(path, "/")
	module, rest, found := strings.Cut(path, "/")
	if !found || module == "" || rest == "" {
		return "", "", false
	}
	return module, rest, true
}

// bundleLoader reads a pre-materialized bundle entry. Bundles are never
// rendered live: a missing entry is a 404.
func (r *Responder) bundleLoader(module, name string) loader {
	return func(ctx context.Context, hash string) (string, []byte, error) {
		if hash == "" {
			return "", nil, domain.AssetNotFound(module, "bundle("+name+")")
		}
		entry, _, err := r.store.Load(ctx, module, name, hash)
		if err != nil {
			if errors.Is(err, domain.ErrCacheMiss) {
				return "", nil, domain.AssetNotFound(module, "bundle("+name+")@"+hash)
			}
			return "", nil, err
		}
		return splitEntry(entry)
	}
}

// assetLoader reads the cache entry for a versioned request and falls back
// to a live render when no version is given.
func (r *Responder) assetLoader(module, path string) loader {
	return func(ctx context.Context, hash string) (string, []byte, error) {
		if hash != "" {
			entry, _, err := r.store.Load(ctx, module, path, hash)
			if err != nil {
				if errors.Is(err, domain.ErrCacheMiss) {
					return "", nil, domain.AssetNotFound(module, path+"@"+hash)
				}
				return "", nil, err
			}
			return splitEntry(entry)
		}

		mimetype, err := r.registry.AssetMimetype(module, path)
		if err != nil {
			return "", nil, err
		}
		body, err := r.registry.AssetContent(module, path)
		if err != nil {
			return "", nil, err
		}
		return mimetype, body, nil
	}
}

func (r *Responder) respond(ctx context.Context, req domain.Request, module, path string, load loader) (domain.Response, error) {
	if hash, ok := req.Version(); ok {
		// A versioned URL is immutable, so any conditional revalidation of
		// it is satisfied without touching storage, whatever the token says.
		_, hasEtag := req.Header("If-None-Match")
		_, hasModSince := req.Header("If-Modified-Since")
		if hasEtag || hasModSince {
			return domain.Response{Status: http.StatusNotModified}, nil
		}

		// Tokens produced by this system are always hex; anything else in
		// the query string came from outside and cannot name a version.
		// Checked only now, when the store is about to be consulted.
		if !domain.ValidHash(hash) {
			return domain.Response{}, domain.AssetNotFound(module, path)
		}

		mimetype, body, err := load(ctx, hash)
		if err != nil {
			return domain.Response{}, err
		}
		return domain.Response{
			Status: http.StatusOK,
			Headers: map[string]string{
				"Content-Type":  mimetype,
				"Cache-Control": "max-age=" + strconv.Itoa(domain.MaxAgeSeconds),
				"Etag":          hash,
				"Last-Modified": time.Now().UTC().Format(http.TimeFormat),
			},
			Body: body,
		}, nil
	}

	if since, ok := req.Header("If-Modified-Since"); ok && r.rootdir != "" {
		if notModified := r.unchangedSince(module, path, since); notModified {
			return domain.Response{Status: http.StatusNotModified}, nil
		}
	}

	mimetype, body, err := load(ctx, "")
	if err != nil {
		return domain.Response{}, err
	}
	return domain.Response{
		Status: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":  mimetype,
			"Last-Modified": time.Now().UTC().Format(http.TimeFormat),
		},
		Body: body,
	}, nil
}

// unchangedSince scans the asset's cache directory for entries newer than
// the timestamp. A missing directory means nothing has been cached yet and
// the request falls through to a live render.
func (r *Responder) unchangedSince(module, path, header string) bool {
	since, err := http.ParseTime(header)
	if err != nil {
		return false
	}

	dir := filepath.Join(r.rootdir, module, filepath.FromSlash(path))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(since) {
			return false
		}
	}
	return true
}

// splitEntry parses the persisted two-part cache entry: mimetype line,
// newline, body.
func splitEntry(entry []byte) (string, []byte, error) {
	mimetype, body, found := bytes.Cut(entry, []byte("\n"))
	if !found {
		return string(mimetype), nil, nil
	}
	return string(mimetype), body, nil
}
