package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryWriteFile_CreatesFolders(t *testing.T) {
	name := filepath.Join(t.TempDir(), "saves", "nested", "a.gamesave")
	require.NoError(t, TryWriteFile(name, []byte("{}")))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestFolderWatcher(t *testing.T) {
	dir := t.TempDir()
	w := FolderWatcher{Folder: dir}
	assert.False(t, w.FolderContentsChanged())

	name := filepath.Join(dir, "story.yaml")
	require.NoError(t, os.WriteFile(name, []byte("Title: a"), 0644))
	assert.True(t, w.FolderContentsChanged())
	assert.False(t, w.FolderContentsChanged())

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(name, later, later))
	assert.True(t, w.FolderContentsChanged())

	var empty FolderWatcher
	assert.False(t, empty.FolderContentsChanged())
}
