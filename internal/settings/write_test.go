package settings

import (
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/ccperms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates new file without backup", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "merged.json")

		backupPath, err := WriteFile(path, []byte("{}\n"), true)
		require.NoError(t, err)
		assert.Empty(t, backupPath)
		assert.Equal(t, "{}\n", testutil.ReadFile(t, path))
	})

	t.Run("backs up existing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "merged.json", "old")

		backupPath, err := WriteFile(path, []byte("new"), true)
		require.NoError(t, err)
		assert.Equal(t, path+".bak", backupPath)
		assert.Equal(t, "old", testutil.ReadFile(t, backupPath))
		assert.Equal(t, "new", testutil.ReadFile(t, path))
	})

	t.Run("numbers later backups", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "merged.json", "v1")

		_, err := WriteFile(path, []byte("v2"), true)
		require.NoError(t, err)
		backupPath, err := WriteFile(path, []byte("v3"), true)
		require.NoError(t, err)

		assert.Equal(t, path+".bak.1", backupPath)
		assert.Equal(t, "v1", testutil.ReadFile(t, path+".bak"))
		assert.Equal(t, "v2", testutil.ReadFile(t, backupPath))
		assert.Equal(t, "v3", testutil.ReadFile(t, path))
	})

	t.Run("backup disabled overwrites in place", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "merged.json", "old")

		backupPath, err := WriteFile(path, []byte("new"), false)
		require.NoError(t, err)
		assert.Empty(t, backupPath)
		assert.NoFileExists(t, path+".bak")
		assert.Equal(t, "new", testutil.ReadFile(t, path))
	})

	t.Run("unwritable destination", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "merged.json")

		_, err := WriteFile(path, []byte("{}"), true)
		assert.ErrorIs(t, err, ErrUnwritableOutput)
	})
}
