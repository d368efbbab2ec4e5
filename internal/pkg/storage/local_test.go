package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndExists(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	path, err := s.Upload(ctx, strings.NewReader("image-bytes"), "photo/avatar.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("photo", "avatar.png"), path)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	path, err := s.Upload(ctx, strings.NewReader("image-bytes"), "photo/avatar.png", "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, path))

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := s.GetURL(ctx, "photo/avatar.png", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photo/avatar.png", url)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = s.Upload(ctx, strings.NewReader("x"), "../escape.txt", "text/plain")
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(base), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
