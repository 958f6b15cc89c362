package static_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webassets/internal/adapters/renderer/static"
	"go.trai.ch/webassets/internal/core/domain"
)

// fixture creates an asset directory with a few files, including a hidden
// one.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"css/style.css":    "body { color: red }",
		"js/app.js":        "console.log('hi')",
		"index.html":       "<html></html>",
		"_private/key.txt": "secret",
		"css/_draft.css":   "WIP",
	}
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func TestNew_MissingDir(t *testing.T) {
	_, err := static.New(filepath.Join(t.TempDir(), "nope"), nil)
	assert.ErrorIs(t, err, domain.ErrModuleDirMissing)
}

func TestDefaultPaths_SortedAndFiltered(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	paths, err := r.DefaultPaths()
	require.NoError(t, err)

	// Hidden segments (leading underscore) are excluded, the rest sorted.
	assert.Equal(t, []string{"css/style.css", "index.html", "js/app.js"}, paths)
}

func TestValidatePath(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	assert.True(t, r.ValidatePath("css/style.css"))
	assert.False(t, r.ValidatePath("css/missing.css"))
	assert.False(t, r.ValidatePath("css"), "directories are not assets")
	assert.False(t, r.ValidatePath(""))
	assert.False(t, r.ValidatePath("/etc/passwd"))
	assert.False(t, r.ValidatePath("../outside.css"))
	assert.False(t, r.ValidatePath("css/../../outside.css"))
}

func TestRender(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	content, err := r.Render("css/style.css")
	require.NoError(t, err)
	assert.Equal(t, "body { color: red }", string(content))

	_, err = r.Render("css/missing.css")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestHash_ContentStrategy(t *testing.T) {
	dir := fixture(t)
	r, err := static.New(dir, static.ContentStrategy{})
	require.NoError(t, err)

	first, err := r.Hash("css/style.css")
	require.NoError(t, err)
	assert.True(t, domain.ValidHash(first), "hash %q must be hex", first)

	// Unchanged content, unchanged token.
	again, err := r.Hash("css/style.css")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Changed content, changed token.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("body { color: blue }"), 0o644))
	changed, err := r.Hash("css/style.css")
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestHash_MtimeStrategy(t *testing.T) {
	r, err := static.New(fixture(t), static.MtimeStrategy{})
	require.NoError(t, err)

	hash, err := r.Hash("css/style.css")
	require.NoError(t, err)
	assert.True(t, domain.ValidHash(hash), "hash %q must be hex", hash)
}

func TestBundleHash_OrderIndependent(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	forward, err := r.BundleHash([]string{"css/style.css", "js/app.js"})
	require.NoError(t, err)
	reversed, err := r.BundleHash([]string{"js/app.js", "css/style.css"})
	require.NoError(t, err)
	assert.Equal(t, forward, reversed)
}

func TestCreateBundle_OrderDependent(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	forward, err := r.CreateBundle([]string{"css/style.css", "js/app.js"})
	require.NoError(t, err)
	assert.Equal(t, "body { color: red }\nconsole.log('hi')", string(forward))

	reversed, err := r.CreateBundle([]string{"js/app.js", "css/style.css"})
	require.NoError(t, err)
	assert.NotEqual(t, string(forward), string(reversed))
}

func TestMimetype(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "text/css", r.Mimetype("css/style.css"))
	assert.Equal(t, "application/octet-stream", r.Mimetype("data.unknownext"))
}

func TestRenderURL(t *testing.T) {
	r, err := static.New(fixture(t), nil)
	require.NoError(t, err)

	assert.Equal(t, `<link rel="stylesheet" href="/main/style.css?_v=cafe">`, r.RenderURL("/main/style.css?_v=cafe"))
	assert.Contains(t, r.RenderURL("/main/app.js?_v=cafe"), "<script")
}

func TestStrategyByName(t *testing.T) {
	_, ok := static.StrategyByName("")
	assert.True(t, ok)
	_, ok = static.StrategyByName("content")
	assert.True(t, ok)
	_, ok = static.StrategyByName("mtime")
	assert.True(t, ok)
	_, ok = static.StrategyByName("git")
	assert.False(t, ok)
}

func TestRender_OutsideRootFails(t *testing.T) {
	dir := fixture(t)
	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("nope"), 0o600))

	r, err := static.New(dir, nil)
	require.NoError(t, err)

	_, err = r.Render("../outside.txt")
	assert.True(t, errors.Is(err, domain.ErrAssetNotFound))
}
