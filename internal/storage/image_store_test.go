package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/microblog/backend/internal/storage"
)

func TestImageStoreSave(t *testing.T) {
	store, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	content := []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}
	name, err := store.Save("small.gif", bytes.NewReader(content))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".gif"))

	stored, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestImageStoreUniqueNames(t *testing.T) {
	store, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("photo.png", bytes.NewReader([]byte("one")))
	require.NoError(t, err)
	second, err := store.Save("photo.png", bytes.NewReader([]byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestImageStoreDropsSuspiciousExtensions(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewImageStore(root)
	require.NoError(t, err)

	name, err := store.Save("../../etc/passwd.sh", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	assert.False(t, strings.Contains(name, "/"))
	assert.False(t, strings.HasSuffix(name, ".sh"))
	assert.Equal(t, filepath.Join(root, name), store.Path(name))
}
