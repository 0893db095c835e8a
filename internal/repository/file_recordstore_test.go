package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitsaluja27/n8n-Workflow/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileRecordStore(t *testing.T) {
	ctx := context.Background()

	t.Run("List filters by suffix and skips directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "b.json", `{}`)
		writeFile(t, dir, "a.json", `{}`)
		writeFile(t, dir, "notes.txt", `{}`)
		writeFile(t, dir, "c.json.bak", `{}`)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))
		writeFile(t, filepath.Join(dir, "nested.json"), "deep.json", `{}`)

		store := NewFileRecordStore(dir, ".json")
		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.json", "b.json"}, names)
		assert.Equal(t, dir, store.Dir())
	})

	t.Run("Matches", func(t *testing.T) {
		store := NewFileRecordStore(t.TempDir(), ".json")
		for name, want := range map[string]bool{
			"a.json":           true,
			".json":            true,
			"package.json.bak": false,
			"a.JSON":           false,
			"notes.md":         false,
			"":                 false,
			"sub/a.json":       false,
			"../a.json":        false,
		} {
			assert.Equal(t, want, store.Matches(name), name)
		}
	})

	t.Run("List on a missing directory", func(t *testing.T) {
		store := NewFileRecordStore(filepath.Join(t.TempDir(), "missing"), ".json")
		_, err := store.List(ctx)
		assert.ErrorIs(t, err, models.ErrDirectoryAccess)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("List with a cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewFileRecordStore(t.TempDir(), ".json").List(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Load and Save", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "wf.json", `{"name":"Sample"}`)
		store := NewFileRecordStore(dir, ".json")

		rec, err := store.Load(ctx, "wf.json")
		require.NoError(t, err)
		assert.Equal(t, `"Sample"`, string(rec.Name))

		require.NoError(t, rec.SetDescription("ok"))
		require.NoError(t, store.Save(ctx, "wf.json", rec))

		data, err := os.ReadFile(filepath.Join(dir, "wf.json"))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"name\": \"Sample\",\n  \"description\": \"ok\"\n}", string(data))
	})

	t.Run("Load errors", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "broken.json", `{"name": `)
		store := NewFileRecordStore(dir, ".json")

		_, err := store.Load(ctx, "missing.json")
		assert.ErrorIs(t, err, models.ErrRead)

		_, err = store.Load(ctx, "broken.json")
		assert.ErrorIs(t, err, models.ErrParse)
	})

	t.Run("Save into a missing directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "wf.json", `{"name":"Sample"}`)
		rec, err := NewFileRecordStore(dir, ".json").Load(ctx, "wf.json")
		require.NoError(t, err)

		gone := NewFileRecordStore(filepath.Join(dir, "gone"), ".json")
		err = gone.Save(ctx, "wf.json", rec)
		assert.ErrorIs(t, err, models.ErrWrite)
	})
}
