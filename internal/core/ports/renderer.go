package ports

// Renderer is the pluggable backend that turns asset paths into content. One
// Renderer is registered per module name; the registry dispatches to it by
// configured name.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// DefaultPaths returns the paths used when no explicit path list is
	// given, sorted, with hidden paths excluded.
	DefaultPaths() ([]string, error)

	// DefaultBundlePaths returns the paths used for a bundle when no
	// explicit path list is given. Usually identical to DefaultPaths.
	DefaultBundlePaths() ([]string, error)

	// ValidatePath reports whether path can be passed to Render.
	ValidatePath(path string) bool

	// Hash returns a stable hex token for the asset's current content, or an
	// empty string if the asset has no stable version.
	Hash(path string) (string, error)

	// Render produces the content of the asset.
	Render(path string) ([]byte, error)

	// Mimetype returns the mime type of the asset.
	Mimetype(path string) string

	// RenderURL returns the HTML snippet that embeds the given URL, e.g. a
	// <link> tag for stylesheets or a <script> tag for scripts.
	RenderURL(url string) string

	// CreateBundle concatenates the contents of the given paths, in the
	// order given.
	CreateBundle(paths []string) ([]byte, error)

	// BundleMimetype returns the mime type of the bundle.
	BundleMimetype(paths []string) string

	// BundleHash returns a stable hex token for the bundle's current
	// content. It must be order-independent with respect to paths.
	BundleHash(paths []string) (string, error)
}
