package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestClient_Sweep(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "debug.log"))
	writeFile(t, filepath.Join(dir, "tmp", "scratch.txt"))
	writeFile(t, filepath.Join(dir, "keep.go"))

	client := NewClient()
	removed, err := client.Sweep(dir, []string{"*.log", "tmp/*.txt"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"debug.log", filepath.Join("tmp", "scratch.txt")}, removed)
	assert.NoFileExists(t, filepath.Join(dir, "debug.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.go"))
}

func TestClient_Sweep_NoPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "debug.log"))

	client := NewClient()
	removed, err := client.Sweep(dir, nil)
	require.NoError(t, err)

	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(dir, "debug.log"))
}

func TestClient_Sweep_RejectsEscape(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "project")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, filepath.Join(parent, "outside.log"))

	client := NewClient()
	_, err := client.Sweep(dir, []string{"../*.log"})

	assert.Error(t, err)
	assert.FileExists(t, filepath.Join(parent, "outside.log"))
}

func TestClient_Sweep_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build"), 0o755))

	client := NewClient()
	removed, err := client.Sweep(dir, []string{"build"})
	require.NoError(t, err)

	assert.Empty(t, removed)
	assert.DirExists(t, filepath.Join(dir, "build"))
}
