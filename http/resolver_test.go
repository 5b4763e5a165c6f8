package http

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shale-dev/shale/filesystem"
)

func TestResolvePath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0770))
	require.NoError(t, os.WriteFile(filepath.Join(root, "page.html"), []byte("x"), 0644))

	fs := filesystem.NewLocalFileSystem()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Root", "/", root + "/index.html"},
		{"TrailingSlash", "/docs/", root + "/docs/index.html"},
		{"ExistingDirectory", "/docs", root + "/docs/index.html"},
		{"PlainFile", "/page.html", root + "/page.html"},
		{"Missing", "/missing.html", root + "/missing.html"},
		{"NestedTrailingSlash", "/a/b/", root + "/a/b/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(fs, root, tt.url, "index.html"))
		})
	}
}

func TestResolvePath_CustomDefaultPage(t *testing.T) {
	fs := filesystem.NewLocalFileSystem()

	assert.Equal(t, "/srv/www/home.htm", ResolvePath(fs, "/srv/www", "/", "home.htm"))
}

func TestContainsDotDot(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"/..", true},
		{"..", true},
		{"/../etc/passwd", true},
		{"/a/../b", true},
		{"/a/b/..", true},
		{"/a..b", false},
		{"/notes..txt", false},
		{"/normal/path", false},
		{"/", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, containsDotDot(tt.url))
		})
	}
}
