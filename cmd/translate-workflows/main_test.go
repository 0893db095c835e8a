package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("processes the directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"name": "Sample"}`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`not json`), 0o644))

		out, err := execute(t, "--dir", dir, "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, out, "Processed a.json\n")
		assert.Contains(t, out, "Error processing b.json: cannot parse record")

		data, err := os.ReadFile(filepath.Join(dir, "a.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "Sample", "description": "", "translations": {"fa": {"name": "Sample", "description": ""}}}`, string(data))
	})

	t.Run("defaults to ./workflows", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.Mkdir("workflows", 0o755))
		require.NoError(t, os.WriteFile(filepath.Join("workflows", "w.json"), []byte(`{"name": "W"}`), 0o644))

		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--log-level", "error"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "Processed w.json\n", out.String())
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := execute(t, "--dir", filepath.Join(t.TempDir(), "missing"), "--log-level", "error")
		assert.Error(t, err)
	})

	t.Run("invalid configuration fails", func(t *testing.T) {
		_, err := execute(t, "--locale", "x")
		assert.Error(t, err)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, "extra")
		assert.Error(t, err)
	})
}
