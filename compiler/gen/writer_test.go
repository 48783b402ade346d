package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_WriteAll(t *testing.T) {
	require := require.New(t)
	dir := filepath.Join(t.TempDir(), "out")
	files := []*File{
		{Name: "Post.ts", Contents: "export default class Post {}\n"},
		{Name: "User.ts", Contents: "export default class User {}\n"},
	}
	w := NewFileWriter(dir).WithWorkers(2).WithHeader("// header\n")
	require.NoError(w.WriteAll(context.Background(), files))
	require.Equal(2, w.Metrics().FilesWritten)

	buf, err := os.ReadFile(filepath.Join(dir, "Post.ts"))
	require.NoError(err)
	require.Equal("// header\nexport default class Post {}\n", string(buf))
	require.EqualValues(len(buf)*2, w.Metrics().TotalBytes)

	w = NewFileWriter(dir).WithHeader("// header")
	require.NoError(w.WriteAll(context.Background(), files))
	require.Zero(w.Metrics().FilesWritten)
	require.Equal(2, w.Metrics().FilesUnchanged)
}

func TestFileWriter_NoHeader(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	require.NoError(t, w.WriteAll(context.Background(), []*File{{Name: "Tag.ts", Contents: "x\n"}}))
	buf, err := os.ReadFile(filepath.Join(dir, "Tag.ts"))
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(buf))
}

func TestFileWriter_Check(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "Post.ts"), []byte("old\n"), 0o644))
	require.NoError(os.WriteFile(filepath.Join(dir, "User.ts"), []byte("user\n"), 0o644))

	w := NewFileWriter(dir).WithCheck(true)
	err := w.WriteAll(context.Background(), []*File{
		{Name: "User.ts", Contents: "user\n"},
		{Name: "Tag.ts", Contents: "tag\n"},
		{Name: "Post.ts", Contents: "new\n"},
	})
	require.ErrorIs(err, ErrStale)
	require.Equal("veloxts: generated files are stale: Post.ts, Tag.ts", err.Error())
	require.Equal([]string{"Post.ts", "Tag.ts"}, w.Metrics().Stale)
	require.Equal(1, w.Metrics().FilesUnchanged)
	require.Zero(w.Metrics().FilesWritten)

	buf, err := os.ReadFile(filepath.Join(dir, "Post.ts"))
	require.NoError(err)
	require.Equal("old\n", string(buf))
	_, err = os.Stat(filepath.Join(dir, "Tag.ts"))
	require.True(errors.Is(err, os.ErrNotExist))
}

func TestFileWriter_CheckMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	err := NewFileWriter(dir).WithCheck(true).WriteAll(context.Background(), []*File{{Name: "A.ts", Contents: "a"}})
	require.ErrorIs(t, err, ErrStale)
	_, err = os.Stat(dir)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileWriter_NonLocalName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")
	for _, name := range []string{"../escaped.ts", "/tmp/abs.ts", ""} {
		err := NewFileWriter(dir).WriteAll(context.Background(), []*File{{Name: name, Contents: "x"}})
		require.Error(t, err, name)
		assert.True(t, IsGenerationError(err), name)
	}
	_, err := os.Stat(filepath.Join(root, "escaped.ts"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileWriter_Builders(t *testing.T) {
	w := NewFileWriter("out").WithWorkers(0).WithLogger(nil)
	assert.Positive(t, w.workers)
	assert.NotNil(t, w.logger)
}
