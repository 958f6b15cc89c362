// Package static implements a Renderer backed by a directory of asset files.
package static

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/webassets/internal/adapters/renderer"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer serves assets from a directory tree. Paths are slash-separated
// and relative to the directory.
type Renderer struct {
	dir      string
	strategy HashStrategy
}

// New creates a Renderer for the given directory.
func New(dir string, strategy HashStrategy) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrModuleDirMissing, "dir", dir)
	}
	if strategy == nil {
		strategy = ContentStrategy{}
	}
	return &Renderer{dir: filepath.Clean(dir), strategy: strategy}, nil
}

// DefaultPaths walks the directory and returns all asset paths sorted, with
// hidden paths (any segment starting with an underscore) excluded.
func (r *Renderer) DefaultPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !domain.HiddenPath(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list assets"), "dir", r.dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// DefaultBundlePaths is identical to DefaultPaths.
func (r *Renderer) DefaultBundlePaths() ([]string, error) {
	return r.DefaultPaths()
}

// ValidatePath reports whether path names an existing file inside the
// directory.
func (r *Renderer) ValidatePath(path string) bool {
	file, ok := r.file(path)
	if !ok {
		return false
	}
	info, err := os.Stat(file)
	return err == nil && !info.IsDir()
}

// Hash returns the strategy's token for the asset's backing file.
func (r *Renderer) Hash(path string) (string, error) {
	file, ok := r.file(path)
	if !ok {
		return "", domain.AssetNotFound("", path)
	}
	return r.strategy.Hash(file)
}

// Render reads the asset's backing file.
func (r *Renderer) Render(path string) ([]byte, error) {
	file, ok := r.file(path)
	if !ok {
		return nil, domain.AssetNotFound("", path)
	}
	content, err := os.ReadFile(file) //nolint:gosec // Path is validated against the asset directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.AssetNotFound("", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	return content, nil
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

// file maps an asset path to its backing file, rejecting escapes from the
// asset directory.
func (r *Renderer) file(path string) (string, bool) {
	if path == "" || strings.HasPrefix(path, "/") {
		return "", false
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(r.dir, clean), true
}
