package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MRtecno98/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaining(t *testing.T) {
	fs := afero.NewMemMapFs()

	d := New(fs, "path/to").Mkdir()
	require.NoError(t, d.Err())

	p := d.Join("file").WithSuffix(".txt").Touch()
	require.NoError(t, p.Err())

	c := p.Copy(d.Join("copy.txt").String())
	require.NoError(t, c.Err())
	assert.Equal(t, "copy.txt", c.Name())

	matches, err := d.Glob("*.txt")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	assert.False(t, d.Parent().Rmdir(true).Exists())
	assert.False(t, d.Exists())
}

func TestLexical(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := New(fs, "a", "b", "archive.tar.gz")

	assert.Equal(t, filepath.Join("a", "b", "archive.tar.gz"), p.String())
	assert.Equal(t, "archive.tar.gz", p.Name())
	assert.Equal(t, ".gz", p.Suffix())
	assert.Equal(t, "archive.tar", p.Stem())
	assert.Equal(t, filepath.Join("a", "b"), p.Parent().String())
	assert.Equal(t, "archive.tar.zip", p.WithSuffix("zip").Name())
	assert.Equal(t, "archive.tar", p.WithSuffix("").Name())
	assert.Equal(t, "backup.gz", p.WithStem("backup").Name())
	assert.Equal(t, filepath.Join("a", "b", "x"), p.WithName("x").String())
	assert.Equal(t, filepath.Join("c", "archive.tar.gz"), p.WithDir("c").String())
	assert.Equal(t, filepath.Join("b", "archive.tar.gz"), p.RelativeTo("a").String())

	assert.Empty(t, New(fs, ".bashrc").Suffix())
	assert.Equal(t, ".bashrc", New(fs, ".bashrc").Stem())

	abs := p.Absolute()
	require.NoError(t, abs.Err())
	assert.True(t, filepath.IsAbs(abs.String()))
}

func TestMatch(t *testing.T) {
	p := New(afero.NewMemMapFs(), "a", "b", "c.py")

	assert.True(t, p.Match("*.py"))
	assert.True(t, p.Match("b/*.py"))
	assert.False(t, p.Match("a/*.py"))
	assert.False(t, p.Match("x/a/b/c.py"))
}

func TestStickyError(t *testing.T) {
	fs := afero.NewMemMapFs()

	p := New(fs, "").WithName("x")
	assert.ErrorIs(t, p.Err(), ErrNoName)

	after := p.Join("y").Mkdir().Touch()
	assert.ErrorIs(t, after.Err(), ErrNoName)
	assert.False(t, after.Exists())

	_, err := after.ListDir()
	assert.ErrorIs(t, err, ErrNoName)
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()

	missing := New(fs, "nope").Remove(false, false)
	assert.ErrorIs(t, missing.Err(), ErrNotExist)
	assert.NoError(t, New(fs, "nope").Remove(false, true).Err())

	d := New(fs, "tree").Mkdir()
	d.Join("sub").Mkdir().Join("f").Touch()

	assert.ErrorIs(t, d.Remove(false, true).Err(), ErrNotEmpty)
	assert.NoError(t, d.Remove(true, true).Err())
	assert.False(t, d.Exists())

	f := New(fs, "file").Touch()
	assert.NoError(t, f.Remove(false, false).Err())
	assert.False(t, f.Exists())

	assert.Error(t, New(fs, "gone").Unlink(false).Err())
	assert.NoError(t, New(fs, "gone").Unlink(true).Err())
}

func TestRenameAndCopyTree(t *testing.T) {
	fs := afero.NewMemMapFs()

	src := New(fs, "src").Mkdir()
	require.NoError(t, fs.MkdirAll("src/deep", 0755))
	require.NoError(t, afero.WriteFile(fs, "src/a.txt", []byte("aaa"), 0644))
	require.NoError(t, afero.WriteFile(fs, "src/deep/b.txt", []byte("bb"), 0644))

	dst := src.Copy("dst")
	require.NoError(t, dst.Err())
	assert.True(t, dst.Join("deep", "b.txt").IsFile())

	size, err := dst.Size(true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	size, err = dst.Size(false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)

	moved := dst.Join("a.txt").Rename("moved.txt")
	require.NoError(t, moved.Err())
	assert.Equal(t, "moved.txt", moved.String())
	assert.True(t, moved.IsFile())
	assert.False(t, dst.Join("a.txt").Exists())

	found, err := src.RGlob("*.txt")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	children, err := src.ListDir()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "a.txt", children[0].Name())
	assert.True(t, children[1].IsDir())
}

func TestChmod(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := New(fs, "f").Touch().Chmod(0600)
	require.NoError(t, p.Err())

	info, err := p.Stat()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSymlink(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())

	target := New(fs, "target").Touch()
	require.NoError(t, target.Err())

	link := New(fs, "link").Symlink("target")
	require.NoError(t, link.Err())
	assert.True(t, link.IsSymlink())
	assert.False(t, target.IsSymlink())
}
