package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetNotFound is returned when an asset module is not registered, a
	// path fails validation, or a requested version has no cache entry. The
	// HTTP boundary maps this to 404.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrNoPathsProvided is returned when a bundle operation receives an
	// empty path list and no default paths are available.
	ErrNoPathsProvided = zerr.New("no paths provided")

	// ErrCacheMiss is returned when a requested version is not present in the
	// version store.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrRemoteObjectMissing is returned by a remote store when the requested
	// object does not exist. It is recoverable: callers fall back to local
	// generation.
	ErrRemoteObjectMissing = zerr.New("remote object missing")

	// ErrRemoteUnavailable is returned by a remote store when the peer cannot
	// be reached at all. Distinguished from ErrRemoteObjectMissing so that
	// connectivity problems remain observable in logs.
	ErrRemoteUnavailable = zerr.New("remote store unavailable")

	// ErrStoreCreateFailed is returned when a version store directory cannot
	// be created.
	ErrStoreCreateFailed = zerr.New("failed to create version store directory")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoRootDir is returned when no rootdir is configured.
	ErrNoRootDir = zerr.New("no rootdir configured")

	// ErrRootDirMissing is returned when the configured rootdir does not exist.
	ErrRootDirMissing = zerr.New("configured rootdir does not exist")

	// ErrNoModulesConfigured is returned when the configuration declares no
	// asset modules.
	ErrNoModulesConfigured = zerr.New("no asset modules configured")

	// ErrInvalidHashStrategy is returned when a module declares an unknown
	// hash strategy.
	ErrInvalidHashStrategy = zerr.New("invalid hash strategy, expected 'content' or 'mtime'")

	// ErrInvalidFreezeValue is returned when the freeze setting is neither a
	// boolean nor a hex literal. Literals become version tokens, so they must
	// satisfy the token format.
	ErrInvalidFreezeValue = zerr.New("invalid freeze value, expected a boolean or a hex literal")

	// ErrModuleDirMissing is returned when a module's asset directory does
	// not exist.
	ErrModuleDirMissing = zerr.New("module asset directory does not exist")

	// ErrRenderFailed is returned when rendering an asset fails.
	ErrRenderFailed = zerr.New("failed to render asset")
)

// AssetNotFound returns ErrAssetNotFound annotated with the module and path
// that could not be resolved.
func AssetNotFound(module, path string) error {
	return zerr.With(zerr.With(ErrAssetNotFound, "module", module), "path", path)
}
