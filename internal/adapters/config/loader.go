// Package config provides the configuration loader for webassets.
package config

import (
	"os"
	"sort"

	"go.trai.ch/webassets/internal/adapters/renderer/static"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads and validates the configuration at the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	return Load(path)
}

// Load reads a configuration file from the given path. Validation fails
// fast: a broken configuration is a startup error, never a request-time
// condition.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.RootDir == "" {
		return nil, domain.ErrNoRootDir
	}
	if info, err := os.Stat(file.RootDir); err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRootDirMissing, "rootdir", file.RootDir)
	}
	if len(file.Modules) == 0 {
		return nil, domain.ErrNoModulesConfigured
	}

	cfg := &domain.Config{
		RootDir: file.RootDir,
		Freeze:  domain.ParseFreezeMode(file.Freeze),
		Serve: domain.ServeConfig{
			Addr:   file.Serve.Addr,
			Prefix: file.Serve.Prefix,
		},
	}
	// A freeze literal is served as the version token of every asset, so it
	// must be a well-formed token. Catch a bad one here instead of letting it
	// surface during URL generation.
	if literal, ok := cfg.Freeze.Literal(); ok && !domain.ValidHash(literal) {
		return nil, zerr.With(domain.ErrInvalidFreezeValue, "freeze", file.Freeze)
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}
	if cfg.Serve.Prefix == "" {
		cfg.Serve.Prefix = "/_assets"
	}
	if file.Remote.URL != "" {
		cfg.Remote = &domain.RemoteConfig{URL: file.Remote.URL}
	}

	names := make([]string, 0, len(file.Modules))
	for name := range file.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dto := file.Modules[name]
		if _, ok := static.StrategyByName(dto.Strategy); !ok {
			return nil, zerr.With(domain.ErrInvalidHashStrategy, "module", name)
		}
		if info, err := os.Stat(dto.Dir); err != nil || !info.IsDir() {
			return nil, zerr.With(zerr.With(domain.ErrModuleDirMissing, "module", name), "dir", dto.Dir)
		}
		cfg.Modules = append(cfg.Modules, domain.ModuleConfig{
			Name:     name,
			Dir:      dto.Dir,
			Strategy: dto.Strategy,
		})
	}

	return cfg, nil
}
