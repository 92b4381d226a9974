package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveAndRead(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	location, err := store.Save("job-1", "clip.wav", strings.NewReader("audio-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "job-1_clip.wav", filepath.Base(location))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
	assert.True(t, store.Exists(location))
}

func TestDiskStore_Save_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(root)

	location, err := store.Save("job-1", "clip.wav", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, store.Exists(location))
}

func TestDiskStore_Save_StripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	location, err := store.Save("job-1", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, root, filepath.Dir(location))
	assert.Equal(t, "job-1_passwd", filepath.Base(location))
}

func TestDiskStore_Save_EmptyFilename(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	location, err := store.Save("job-1", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "job-1_payload", filepath.Base(location))
}

func TestDiskStore_Save_RefusesExistingSlot(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Save("job-1", "clip.wav", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = store.Save("job-1", "clip.wav", strings.NewReader("second"))
	require.Error(t, err)
}

func TestDiskStore_Remove_Idempotent(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	location, err := store.Save("job-1", "clip.wav", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(location))
	assert.False(t, store.Exists(location))

	// Removing again is not an error
	require.NoError(t, store.Remove(location))
}

func TestDiskStore_Exists_MissingOrDir(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	assert.False(t, store.Exists(filepath.Join(root, "nope")))
	assert.False(t, store.Exists(root))
}
