// Package renderer provides shared behavior for Renderer implementations.
package renderer

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"go.trai.ch/webassets/internal/adapters/hashutil"
)

// MimetypeByExt returns the mime type for a path based on its extension,
// without parameters. Unknown extensions map to application/octet-stream.
func MimetypeByExt(path string) string {
	mimetype := mime.TypeByExtension(filepath.Ext(path))
	if mimetype == "" {
		return "application/octet-stream"
	}
	if i := strings.IndexByte(mimetype, ';'); i >= 0 {
		mimetype = strings.TrimSpace(mimetype[:i])
	}
	return mimetype
}

// EmbedTag returns the HTML snippet that loads url for content of the given
// mime type.
func EmbedTag(mimetype, url string) string {
	switch mimetype {
	case "text/css":
		return fmt.Sprintf(`<link rel="stylesheet" href="%s">`, url)
	case "application/javascript", "text/javascript":
		return fmt.Sprintf(`<script src="%s"></script>`, url)
	default:
		return fmt.Sprintf(`<link href="%s">`, url)
	}
}

// BundleHash is the default bundle hashing shared by Renderer
// implementations: an order-independent digest over the per-path hashes.
func BundleHash(paths []string, perPath func(string) (string, error)) (string, error) {
	return hashutil.Bundle(paths, perPath)
}

// Concat renders each path in the order given and joins the results with a
// newline. Bundle content is order-dependent even though the bundle hash is
// not.
func Concat(paths []string, render func(string) ([]byte, error)) ([]byte, error) {
	parts := make([][]byte, 0, len(paths))
	for _, path := range paths {
		content, err := render(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, content)
	}
	return bytes.Join(parts, []byte("\n")), nil
}
