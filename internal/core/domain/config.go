package domain

// Config is the validated runtime configuration.
type Config struct {
	// RootDir is the cache directory shared by all processes serving the
	// same assets.
	RootDir string

	// Freeze controls hash memoization.
	Freeze FreezeMode

	// Modules lists the configured asset modules in name order.
	Modules []ModuleConfig

	// Remote, when set, mirrors cache entries to a peer store.
	Remote *RemoteConfig

	// Serve configures the HTTP boundary.
	Serve ServeConfig
}

// ModuleConfig declares one asset module backed by a directory.
type ModuleConfig struct {
	Name     string
	Dir      string
	Strategy string // "content" or "mtime"
}

// RemoteConfig points at a peer object store.
type RemoteConfig struct {
	URL string
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr   string
	Prefix string
}

// Module returns the configuration for the named module.
func (c *Config) Module(name string) (ModuleConfig, bool) {
	for _, m := range c.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return ModuleConfig{}, false
}
