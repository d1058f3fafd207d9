package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\www\site\file.php`, "C:/www/site/file.php"},
		{`/var/www//site/../file.php`, "/var/www/site/file.php"},
		{"already/clean", "already/clean"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/var/www/site/wp-content/plugins/myplugin/src/File.php", ".../src/File.php"},
		{`C:\plugins\myplugin\src\File.php`, ".../src/File.php"},
		{"src/File.php", ".../src/File.php"},
		{"a.php", ".../a.php"},
		{"/a.php", ".../a.php"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Shorten(tt.in))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/this/is/a/path", Join("/this/is", "a", "path"))
	assert.Equal(t, "file.php", Join("file.php"))
	assert.Equal(t, "", Join())
}

func TestEnsureDir_CreatesParents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	ok, err := EnsureDir(target)
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := EnsureDir(file)
	require.NoError(t, err)
	assert.False(t, ok)
}
