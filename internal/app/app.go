// Package app implements the application layer for webassets.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/webassets/internal/adapters/cas"
	"go.trai.ch/webassets/internal/adapters/httpd"
	"go.trai.ch/webassets/internal/adapters/mirror"
	"go.trai.ch/webassets/internal/adapters/remote"
	"go.trai.ch/webassets/internal/adapters/renderer/static"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/webassets/internal/engine/registry"
	"go.trai.ch/webassets/internal/engine/responder"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires configuration, registry and responder together for the CLI.
// The engine is built lazily on first use, after the config flag is known.
type App struct {
	configLoader ports.ConfigLoader
	log          ports.Logger

	mu         sync.Mutex
	configPath string
	engine     *engine
}

// engine holds everything derived from one loaded configuration.
type engine struct {
	cfg       *domain.Config
	registry  *registry.Registry
	responder *responder.Responder
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		log:          log,
		configPath:   "webassets.yaml",
	}
}

// SetConfigPath overrides the configuration file location. Called from the
// CLI's persistent flag hook before any command runs.
func (a *App) SetConfigPath(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configPath = path
}

// loadEngine builds the registry and responder from the configuration. The
// result is cached for the process lifetime.
func (a *App) loadEngine() (*engine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine != nil {
		return a.engine, nil
	}

	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	local, err := cas.NewStore(cfg.RootDir)
	if err != nil {
		return nil, err
	}

	var store ports.VersionStore = local
	if cfg.Remote != nil {
		store = mirror.New(local, remote.New(cfg.Remote.URL), a.log)
	}

	reg := registry.New(cfg.Freeze, store, a.log)
	for _, mod := range cfg.Modules {
		strategy, _ := static.StrategyByName(mod.Strategy)
		ren, err := static.New(mod.Dir, strategy)
		if err != nil {
			return nil, zerr.With(err, "module", mod.Name)
		}
		reg.AddModule(mod.Name, ren)
	}

	a.engine = &engine{
		cfg:       cfg,
		registry:  reg,
		responder: responder.New(reg, store, cfg.RootDir, a.log),
	}
	return a.engine, nil
}

// Registry exposes the asset registry, loading the engine if needed.
func (a *App) Registry() (*registry.Registry, error) {
	eng, err := a.loadEngine()
	if err != nil {
		return nil, err
	}
	return eng.registry, nil
}

// targetModules resolves the module argument: a named module, or all
// configured modules when empty.
func (a *App) targetModules(eng *engine, module string) []string {
	if module != "" {
		return []string{module}
	}
	return eng.registry.Modules()
}

// AssetHashes prints "module/path hash" for the selected assets.
func (a *App) AssetHashes(_ context.Context, module string, paths []string, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	for _, mod := range a.targetModules(eng, module) {
		modPaths, err := a.modulePaths(eng, mod, paths)
		if err != nil {
			return err
		}
		for _, path := range modPaths {
			hash, err := eng.registry.AssetHash(mod, path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "%s/%s %s\n", mod, path, hash)
		}
	}
	return nil
}

// AssetURLs prints the versioned URL of the selected assets, materializing
// their cache entries as a side effect.
func (a *App) AssetURLs(ctx context.Context, module string, paths []string, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	for _, mod := range a.targetModules(eng, module) {
		modPaths, err := a.modulePaths(eng, mod, paths)
		if err != nil {
			return err
		}
		for _, path := range modPaths {
			url, err := eng.registry.AssetURL(ctx, mod, path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, url)
		}
	}
	return nil
}

// BundleHashes prints "module/bundle-name hash" for the selected modules.
// With force, the freeze cache is bypassed.
func (a *App) BundleHashes(_ context.Context, module string, paths []string, force bool, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	for _, mod := range a.targetModules(eng, module) {
		name, err := eng.registry.BundleName(mod, paths)
		if err != nil {
			return err
		}
		var hash string
		if force {
			hash, err = eng.registry.FreshBundleHash(mod, paths)
		} else {
			hash, err = eng.registry.BundleHash(mod, paths)
		}
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s/%s %s\n", mod, name, hash)
	}
	return nil
}

// BundleURL prints the versioned URL of one bundle.
func (a *App) BundleURL(ctx context.Context, module string, paths []string, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	url, err := eng.registry.BundleURL(ctx, module, paths)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, url)
	return nil
}

// RequestResponse runs one request through the responder and prints the
// result: status line, headers, blank line, body.
func (a *App) RequestResponse(ctx context.Context, rawURL string, headerLines []string, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse request url"), "url", rawURL)
	}

	req := domain.Request{
		Path:    parsed.Path,
		Query:   make(map[string]string),
		Headers: make(map[string]string),
	}
	for key, values := range parsed.Query() {
		if len(values) > 0 {
			req.Query[key] = values[0]
		}
	}
	for _, line := range headerLines {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return zerr.With(zerr.New("malformed header, expected 'Name: value'"), "header", line)
		}
		req.Headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	resp, err := eng.responder.Respond(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			_, _ = fmt.Fprintln(out, "404")
			return nil
		}
		return err
	}

	_, _ = fmt.Fprintln(out, resp.Status)
	keys := make([]string, 0, len(resp.Headers))
	for key := range resp.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		_, _ = fmt.Fprintf(out, "%s: %s\n", key, resp.Headers[key])
	}
	_, _ = fmt.Fprintln(out)
	if len(resp.Body) > 0 {
		_, _ = fmt.Fprintln(out, string(resp.Body))
	}
	return nil
}

// Freeze prints a fingerprint over all modules' default bundles: a stable
// value for pinning a deployment. Hashes are always computed fresh.
func (a *App) Freeze(_ context.Context, out io.Writer) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	modules := eng.registry.Modules()
	hashes := make([]string, len(modules))

	var g errgroup.Group
	for i, mod := range modules {
		g.Go(func() error {
			hash, err := eng.registry.FreshBundleHash(mod, nil)
			if err != nil {
				if errors.Is(err, domain.ErrNoPathsProvided) {
					a.log.Warn("module " + mod + " has no default bundle paths, skipping")
					return nil
				}
				return err
			}
			hashes[i] = hash
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	digest := xxhash.New()
	for _, hash := range hashes {
		_, _ = digest.WriteString(hash)
	}
	_, _ = fmt.Fprintf(out, "%016x\n", digest.Sum64())
	return nil
}

// Serve prewarms the default bundles and runs the HTTP boundary until the
// context is canceled.
func (a *App) Serve(ctx context.Context, addrOverride string) error {
	eng, err := a.loadEngine()
	if err != nil {
		return err
	}

	if err := eng.registry.PrewarmAll(ctx); err != nil {
		return zerr.Wrap(err, "failed to prewarm asset cache")
	}

	addr := eng.cfg.Serve.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	handler := httpd.NewHandler(eng.responder, eng.cfg.Serve.Prefix, a.log)
	return httpd.NewServer(addr, handler, a.log).Run(ctx)
}

// modulePaths resolves the explicit path list or falls back to the module's
// default paths.
func (a *App) modulePaths(eng *engine, module string, paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}
	return eng.registry.DefaultPaths(module)
}
