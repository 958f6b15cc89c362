// Package registry implements the asset registry: it resolves module names
// to renderers, computes version hashes with an optional freeze cache, and
// builds versioned URLs, materializing cache entries as a side effect.
package registry

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Registry is the facade over all configured asset modules.
//
// When freeze mode is enabled, computed hashes and validated paths are
// memoized for the lifetime of the process. The memo maps are owned by this
// instance and never shared; construct a fresh Registry per test.
type Registry struct {
	renderers map[string]ports.Renderer
	store     ports.VersionStore
	freeze    domain.FreezeMode
	log       ports.Logger

	mu        sync.Mutex
	frozen    map[string]string
	validated map[string]map[string]bool
}

// New creates a Registry. The store may be nil when no cache root is
// configured; URL generation then skips materialization.
func New(freeze domain.FreezeMode, store ports.VersionStore, log ports.Logger) *Registry {
	return &Registry{
		renderers: make(map[string]ports.Renderer),
		store:     store,
		freeze:    freeze,
		log:       log,
		frozen:    make(map[string]string),
		validated: make(map[string]map[string]bool),
	}
}

// AddModule registers a renderer under the given module name.
func (r *Registry) AddModule(name string, renderer ports.Renderer) {
	r.renderers[name] = renderer
}

// Modules returns the registered module names, sorted.
func (r *Registry) Modules() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the renderer for module after validating every given
// path. Unknown modules and invalid paths yield ErrAssetNotFound.
func (r *Registry) Resolve(module string, paths ...string) (ports.Renderer, error) {
	renderer, ok := r.renderers[module]
	if !ok {
		path := "???"
		if len(paths) > 0 {
			path = paths[0]
		}
		return nil, domain.AssetNotFound(module, path)
	}
	for _, path := range paths {
		if r.pathValidated(module, path) {
			continue
		}
		if !renderer.ValidatePath(path) {
			return nil, domain.AssetNotFound(module, path)
		}
		r.markValidated(module, path)
	}
	return renderer, nil
}

// pathValidated reports whether the path was already validated under freeze
// mode. Without freeze, validation runs on every resolution.
func (r *Registry) pathValidated(module, path string) bool {
	if !r.freeze.Enabled() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validated[module][path]
}

func (r *Registry) markValidated(module, path string) {
	if !r.freeze.Enabled() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.validated[module] == nil {
		r.validated[module] = make(map[string]bool)
	}
	r.validated[module][path] = true
}

// AssetHash returns the version token for a single asset.
func (r *Registry) AssetHash(module, path string) (string, error) {
	return r.hash(module+"/"+path, func() (string, error) {
		renderer, err := r.Resolve(module, path)
		if err != nil {
			return "", err
		}
		return renderer.Hash(path)
	})
}

// BundleHash returns the version token for a bundle. A nil path list selects
// the module's default bundle paths.
func (r *Registry) BundleHash(module string, paths []string) (string, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		return "", err
	}
	return r.hash(frozenBundleKey(module, paths), func() (string, error) {
		return r.freshBundleHash(module, paths)
	})
}

// FreshBundleHash computes the bundle token bypassing the freeze cache. Used
// by the freeze fingerprint, which must observe current content.
func (r *Registry) FreshBundleHash(module string, paths []string) (string, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		return "", err
	}
	return r.freshBundleHash(module, paths)
}

func (r *Registry) freshBundleHash(module string, paths []string) (string, error) {
	renderer, err := r.Resolve(module, paths...)
	if err != nil {
		return "", err
	}
	return renderer.BundleHash(paths)
}

// hash applies the freeze policy around compute: a configured literal wins
// unconditionally, enabled freeze memoizes per key, otherwise every call
// computes fresh.
func (r *Registry) hash(key string, compute func() (string, error)) (string, error) {
	if literal, ok := r.freeze.Literal(); ok {
		return literal, nil
	}
	if !r.freeze.Enabled() {
		return compute()
	}

	r.mu.Lock()
	cached, ok := r.frozen[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	value, err := compute()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.frozen[key] = value
	r.mu.Unlock()
	return value, nil
}

func frozenBundleKey(module string, paths []string) string {
	key := module + "/bundle"
	for _, path := range paths {
		key += "\x00" + path
	}
	return key
}

// BundleName returns the order-independent identifier for a bundle.
func (r *Registry) BundleName(module string, paths []string) (string, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		return "", err
	}
	return domain.BundleName(paths), nil
}

// AssetURL builds the versioned URL for a single asset. When a version store
// is configured, the rendered content is eagerly materialized under the
// token so the first request for the URL is already a cache hit.
func (r *Registry) AssetURL(ctx context.Context, module, path string) (string, error) {
	renderer, err := r.Resolve(module, path)
	if err != nil {
		return "", err
	}

	hash, err := r.AssetHash(module, path)
	if err != nil {
		return "", err
	}

	url := "/" + module + "/" + path
	if hash == "" {
		return url, nil
	}

	if r.store != nil {
		input := func() (string, error) { return hash, nil }
		_, err := r.store.Store(ctx, module, path, []ports.HashInput{input}, func() ([]byte, error) {
			return renderEntry(renderer.Mimetype(path), func() ([]byte, error) {
				return renderer.Render(path)
			})
		})
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to materialize asset"), "path", path)
		}
	}

	return url + "?" + domain.VersionParam + "=" + hash, nil
}

// BundleURL builds the versioned URL for a bundle. Single-path bundles
// degrade to the plain asset URL. Bundles materialize under the bundle name,
// so one name can hold several historical versions.
func (r *Registry) BundleURL(ctx context.Context, module string, paths []string) (string, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		return "", err
	}
	if len(paths) == 1 {
		return r.AssetURL(ctx, module, paths[0])
	}

	renderer, err := r.Resolve(module, paths...)
	if err != nil {
		return "", err
	}

	hash, err := r.BundleHash(module, paths)
	if err != nil {
		return "", err
	}
	name := domain.BundleName(paths)

	if r.store != nil && hash != "" {
		input := func() (string, error) { return hash, nil }
		_, err := r.store.Store(ctx, module, name, []ports.HashInput{input}, func() ([]byte, error) {
			return renderEntry(renderer.BundleMimetype(paths), func() ([]byte, error) {
				return renderer.CreateBundle(paths)
			})
		})
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to materialize bundle"), "bundle", name)
		}
	}

	url := "/" + module + "/" + domain.BundleRef(name)
	if hash != "" {
		url += "?" + domain.VersionParam + "=" + hash
	}
	return url, nil
}

// BundleTag returns the HTML snippet embedding the bundle's URL.
func (r *Registry) BundleTag(ctx context.Context, module string, paths []string) (string, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		if errors.Is(err, domain.ErrNoPathsProvided) {
			return "", nil
		}
		return "", err
	}

	renderer, err := r.Resolve(module, paths...)
	if err != nil {
		return "", err
	}

	url, err := r.BundleURL(ctx, module, paths)
	if err != nil {
		return "", err
	}
	return renderer.RenderURL(url), nil
}

// AssetContent renders an asset without caching.
func (r *Registry) AssetContent(module, path string) ([]byte, error) {
	renderer, err := r.Resolve(module, path)
	if err != nil {
		return nil, err
	}
	return renderer.Render(path)
}

// AssetMimetype returns the mime type of an asset.
func (r *Registry) AssetMimetype(module, path string) (string, error) {
	renderer, err := r.Resolve(module, path)
	if err != nil {
		return "", err
	}
	return renderer.Mimetype(path), nil
}

// BundleContent renders a bundle without caching.
func (r *Registry) BundleContent(module string, paths []string) ([]byte, error) {
	paths, err := r.resolvePaths(module, paths)
	if err != nil {
		return nil, err
	}
	renderer, err := r.Resolve(module, paths...)
	if err != nil {
		return nil, err
	}
	return renderer.CreateBundle(paths)
}

// DefaultPaths returns the module's default asset paths.
func (r *Registry) DefaultPaths(module string) ([]string, error) {
	renderer, err := r.Resolve(module)
	if err != nil {
		return nil, err
	}
	return renderer.DefaultPaths()
}

// PrewarmAll materializes the default bundle of every module so that the
// first real request after startup is served from cache. Modules are
// independent and processed concurrently.
func (r *Registry) PrewarmAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, module := range r.Modules() {
		g.Go(func() error {
			_, err := r.BundleURL(ctx, module, nil)
			if err != nil && errors.Is(err, domain.ErrNoPathsProvided) {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// resolvePaths substitutes the module's default bundle paths when no
// explicit list is given.
func (r *Registry) resolvePaths(module string, paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}
	renderer, err := r.Resolve(module)
	if err != nil {
		return nil, err
	}
	defaults, err := renderer.DefaultBundlePaths()
	if err != nil {
		return nil, err
	}
	if len(defaults) == 0 {
		return nil, zerr.With(domain.ErrNoPathsProvided, "module", module)
	}
	return defaults, nil
}

// renderEntry produces the persisted two-part cache entry: the mimetype on
// the first line, the body after one newline.
func renderEntry(mimetype string, render func() ([]byte, error)) ([]byte, error) {
	body, err := render()
	if err != nil {
		return nil, err
	}
	entry := make([]byte, 0, len(mimetype)+1+len(body))
	entry = append(entry, mimetype...)
	entry = append(entry, '\n')
	entry = append(entry, body...)
	return entry, nil
}
