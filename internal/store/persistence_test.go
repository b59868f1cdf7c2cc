package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileImageStore_LoadAbsent(t *testing.T) {
	images := NewFileImageStore(filepath.Join(t.TempDir(), "slot.img"), 0)

	data, found, err := images.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestFileImageStore_FlushLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.img")
	images := NewFileImageStore(path, 0)

	payload := []byte("serialized database image")
	require.NoError(t, images.Flush(context.Background(), payload))

	data, found, err := images.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, data)

	// no temp file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileImageStore_FlushOverwritesPriorImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.img")
	images := NewFileImageStore(path, 0)

	require.NoError(t, images.Flush(context.Background(), []byte("first")))
	require.NoError(t, images.Flush(context.Background(), []byte("second")))

	data, found, err := images.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), data)
}

func TestFileImageStore_QuotaExceeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.img")
	images := NewFileImageStore(path, 8)

	require.NoError(t, images.Flush(context.Background(), []byte("tiny")))

	err := images.Flush(context.Background(), []byte("way over the quota"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// the slot still holds the last complete image
	data, found, loadErr := images.Load(context.Background())
	require.NoError(t, loadErr)
	assert.True(t, found)
	assert.Equal(t, []byte("tiny"), data)
}

func TestFileImageStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "slot.img")
	images := NewFileImageStore(path, 0)

	require.NoError(t, images.Flush(context.Background(), []byte("img")))

	_, found, err := images.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
}
