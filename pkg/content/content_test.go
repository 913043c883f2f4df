package content_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/turner/pkg/content"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600)
	require.NoError(t, err)
}

func TestDirSourceBlocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "second")
	writeFile(t, dir, "a.txt", "first")
	writeFile(t, dir, ".hidden", "skipped")

	err := os.Mkdir(filepath.Join(dir, "sub"), 0o700)
	require.NoError(t, err)

	src := content.NewDirSource(dir)
	blocks, err := src.Blocks()
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Equal(t, "a.txt", blocks[0].Name)
	assert.Equal(t, "first", blocks[0].Body)
	assert.Equal(t, int64(5), blocks[0].Size)
	assert.Equal(t, "b.txt", blocks[1].Name)
	assert.Equal(t, dir, src.String())
}

func TestDirSourceEmpty(t *testing.T) {
	t.Parallel()

	src := content.NewDirSource(t.TempDir())
	blocks, err := src.Blocks()
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestDirSourceMissing(t *testing.T) {
	t.Parallel()

	src := content.NewDirSource(filepath.Join(t.TempDir(), "nope"))
	_, err := src.Blocks()
	assert.Error(t, err)
}

func TestFileSourceBlocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "alpha\nstill alpha\n\nbeta\n\n\n\ngamma\n")

	src := content.NewFileSource(filepath.Join(dir, "doc.md"))
	blocks, err := src.Blocks()
	require.NoError(t, err)

	require.Len(t, blocks, 3)
	assert.Equal(t, "doc.md #1", blocks[0].Name)
	assert.Equal(t, "alpha\nstill alpha", blocks[0].Body)
	assert.Equal(t, "beta", blocks[1].Body)
	assert.Equal(t, "gamma", blocks[2].Body)
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "doc.txt", "hello")

	src, err := content.NewSource(dir)
	require.NoError(t, err)
	assert.IsType(t, &content.DirSource{}, src)

	src, err = content.NewSource(filepath.Join(dir, "doc.txt"))
	require.NoError(t, err)
	assert.IsType(t, &content.FileSource{}, src)

	_, err = content.NewSource(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestWatcherSignalsOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	w, err := content.NewWatcher(dir, content.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = w.Close()
	})

	writeFile(t, dir, "new.txt", "content")

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcherMissingPath(t *testing.T) {
	t.Parallel()

	_, err := content.NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
