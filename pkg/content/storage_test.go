package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageCreateTempFileIsUnique(t *testing.T) {
	uris := NewURIBuilder("https://example.com")
	storage, err := NewStorage(t.TempDir(), uris, testLogger())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		dc := storage.CreateTempFile("jpg")
		assert.False(t, seen[dc.Path], "temp file names must never collide")
		seen[dc.Path] = true
		assert.True(t, strings.HasSuffix(dc.Path, ".jpg"))
		assert.True(t, strings.HasPrefix(dc.URI, "https://example.com/downloaded/"))
	}
}

func TestStorageSaveContent(t *testing.T) {
	dir := t.TempDir()
	uris := NewURIBuilder("https://example.com")
	storage, err := NewStorage(dir, uris, testLogger())
	require.NoError(t, err)

	dc, err := storage.SaveContent("mp4", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(dc.Path))
	data, err := os.ReadFile(dc.Path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	name := filepath.Base(dc.Path)
	assert.Equal(t, "https://example.com/downloaded/"+name, dc.URI)
}

func TestStorageCleanup(t *testing.T) {
	dir := t.TempDir()
	uris := NewURIBuilder("https://example.com")
	storage, err := NewStorage(dir, uris, testLogger())
	require.NoError(t, err)

	saved, err := storage.SaveContent("jpg", strings.NewReader("a"))
	require.NoError(t, err)
	// A reserved slot the transcoder never wrote to.
	reserved := storage.CreateTempFile("jpg")

	storage.Cleanup()

	_, err = os.Stat(saved.Path)
	assert.True(t, os.IsNotExist(err), "saved files must be removed")
	_, err = os.Stat(reserved.Path)
	assert.True(t, os.IsNotExist(err))

	// Cleanup is idempotent.
	storage.Cleanup()
}

func TestStorageCreatesDownloadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	uris := NewURIBuilder("https://example.com")
	_, err := NewStorage(dir, uris, testLogger())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestURIBuilder(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"plain", "https://example.com", "/static/a.png", "https://example.com/static/a.png"},
		{"trailing slash on base", "https://example.com/", "/static/a.png", "https://example.com/static/a.png"},
		{"missing leading slash", "https://example.com", "static/a.png", "https://example.com/static/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewURIBuilder(tt.base)
			assert.Equal(t, tt.want, b.Build(tt.path))
		})
	}
}
