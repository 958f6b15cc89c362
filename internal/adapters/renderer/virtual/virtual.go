// Package virtual implements a Renderer for assets that have no backing
// file: each asset is a registered callback that generates its content.
package virtual

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/webassets/internal/adapters/renderer"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// RenderFunc generates the content of a virtual asset.
type RenderFunc func() ([]byte, error)

// HashFunc returns a hex token that changes whenever the asset's content
// changes.
type HashFunc func() (string, error)

type asset struct {
	render RenderFunc
	hash   HashFunc
}

// Renderer holds registered virtual assets.
type Renderer struct {
	mu     sync.RWMutex
	assets map[string]asset
}

// New creates an empty virtual Renderer.
func New() *Renderer {
	return &Renderer{assets: make(map[string]asset)}
}

// Register adds a virtual asset under path. A nil hasher falls back to
// hashing the rendered content with sha256. Registering the same path twice
// is a programmer error.
func (r *Renderer) Register(path string, render RenderFunc, hasher HashFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[path]; exists {
		panic(fmt.Sprintf("virtual: asset %q already registered", path))
	}
	if hasher == nil {
		hasher = contentHasher(render)
	}
	r.assets[path] = asset{render: render, hash: hasher}
}

// contentHasher is the default hashing strategy: sha256 over the rendered
// bytes.
func contentHasher(render RenderFunc) HashFunc {
	return func() (string, error) {
		content, err := render()
		if err != nil {
			return "", err
		}
		sum := sha256.Sum256(content)
		return hex.EncodeToString(sum[:]), nil
	}
}

// DefaultPaths returns all registered paths sorted, with hidden paths
// excluded.
func (r *Renderer) DefaultPaths() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.assets))
	for path := range r.assets {
		if !domain.HiddenPath(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// DefaultBundlePaths is identical to DefaultPaths.
func (r *Renderer) DefaultBundlePaths() ([]string, error) {
	return r.DefaultPaths()
}

// ValidatePath reports whether path is registered.
func (r *Renderer) ValidatePath(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.assets[path]
	return ok
}

// Hash invokes the asset's hashing callback.
func (r *Renderer) Hash(path string) (string, error) {
	a, ok := r.lookup(path)
	if !ok {
		return "", domain.AssetNotFound("", path)
	}
	return a.hash()
}

// Render invokes the asset's content callback.
func (r *Renderer) Render(path string) ([]byte, error) {
	a, ok := r.lookup(path)
	if !ok {
		return nil, domain.AssetNotFound("", path)
	}
	return a.render()
}

// Mimetype returns the mime type derived from the path's extension.
func (r *Renderer) Mimetype(path string) string {
	return renderer.MimetypeByExt(path)
}

// RenderURL returns the HTML snippet embedding url.
func (r *Renderer) RenderURL(url string) string {
	return renderer.EmbedTag(renderer.MimetypeByExt(url), url)
}

// CreateBundle concatenates the assets in the order given.
func (r *Renderer) CreateBundle(paths []string) ([]byte, error) {
	return renderer.Concat(paths, r.Render)
}

// BundleMimetype returns the mime type of the first path in the bundle.
func (r *Renderer) BundleMimetype(paths []string) string {
	if len(paths) == 0 {
		return "application/octet-stream"
	}
	return renderer.MimetypeByExt(paths[0])
}

// BundleHash returns the order-independent bundle token.
func (r *Renderer) BundleHash(paths []string) (string, error) {
	return renderer.BundleHash(paths, r.Hash)
}

func (r *Renderer) lookup(path string) (asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[path]
	return a, ok
}
