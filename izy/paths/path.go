// Package paths wraps file system paths for method chaining. Operations that
// fail record their error in the returned Path; later operations on it do
// nothing and Err reports the first failure.
package paths

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MRtecno98/afero"
	"github.com/hashicorp/go-multierror"
)

type Path struct {
	fs   afero.Fs
	path string
	err  error
}

func New(fs afero.Fs, elems ...string) Path {
	return Path{fs: fs, path: filepath.Join(elems...)}
}

func Cwd(fs afero.Fs) Path {
	dir, err := os.Getwd()
	return Path{fs: fs, path: dir, err: err}
}

func Home(fs afero.Fs) Path {
	dir, err := os.UserHomeDir()
	return Path{fs: fs, path: dir, err: err}
}

func (p Path) String() string { return p.path }
func (p Path) Err() error     { return p.err }
func (p Path) Fs() afero.Fs   { return p.fs }

func (p Path) with(path string) Path {
	return Path{fs: p.fs, path: path, err: p.err}
}

func (p Path) fail(err error) Path {
	if p.err == nil && err != nil {
		p.err = fmt.Errorf("%s: %w", p.path, err)
	}

	return p
}

// Lexical operations

func (p Path) Name() string {
	if p.path == "" {
		return ""
	}

	name := filepath.Base(p.path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}

	return name
}

// Suffix is the extension of the name including its dot. Names starting with
// a dot and no other dot have none.
func (p Path) Suffix() string {
	name := p.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		return name[i:]
	}

	return ""
}

func (p Path) Stem() string {
	return strings.TrimSuffix(p.Name(), p.Suffix())
}

func (p Path) Parent() Path {
	return p.with(filepath.Dir(p.path))
}

func (p Path) Join(elems ...string) Path {
	return p.with(filepath.Join(append([]string{p.path}, elems...)...))
}

// WithName replaces the last element.
func (p Path) WithName(name string) Path {
	if p.Name() == "" {
		return p.fail(ErrNoName)
	}

	return p.with(filepath.Join(filepath.Dir(p.path), name))
}

// WithSuffix replaces the extension, or removes it when suffix is empty.
func (p Path) WithSuffix(suffix string) Path {
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}

	return p.WithName(p.Stem() + suffix)
}

func (p Path) WithStem(stem string) Path {
	return p.WithName(stem + p.Suffix())
}

// WithDir moves the name under dir.
func (p Path) WithDir(dir string) Path {
	if p.Name() == "" {
		return p.fail(ErrNoName)
	}

	return p.with(filepath.Join(dir, p.Name()))
}

func (p Path) Absolute() Path {
	abs, err := filepath.Abs(p.path)
	if err != nil {
		return p.fail(err)
	}

	return p.with(abs)
}

func (p Path) RelativeTo(base string) Path {
	rel, err := filepath.Rel(base, p.path)
	if err != nil {
		return p.fail(err)
	}

	return p.with(rel)
}

// Match reports whether the path ends with elements matching the glob
// pattern. An absolute pattern must match the whole path.
func (p Path) Match(pattern string) bool {
	if filepath.IsAbs(pattern) {
		ok, _ := filepath.Match(pattern, p.path)
		return ok
	}

	pat := strings.Split(filepath.Clean(pattern), string(filepath.Separator))
	elems := strings.Split(filepath.Clean(p.path), string(filepath.Separator))
	if len(pat) > len(elems) {
		return false
	}

	ok, _ := filepath.Match(filepath.Join(pat...), filepath.Join(elems[len(elems)-len(pat):]...))
	return ok
}

// File and directory operations

// Touch creates the file if missing, or updates its modification time.
func (p Path) Touch() Path {
	if p.err != nil {
		return p
	}

	if _, err := p.fs.Stat(p.path); err == nil {
		now := time.Now()
		return p.fail(p.fs.Chtimes(p.path, now, now))
	}

	f, err := p.fs.OpenFile(p.path, os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return p.fail(err)
	}

	return p.fail(f.Close())
}

// Unlink removes a file or an empty directory.
func (p Path) Unlink(missingOK bool) Path {
	if p.err != nil {
		return p
	}

	if err := p.fs.Remove(p.path); err != nil && !(missingOK && os.IsNotExist(err)) {
		return p.fail(err)
	}

	return p
}

// Rename moves the path to target and returns the new path.
func (p Path) Rename(target string) Path {
	if p.err != nil {
		return p
	}

	if err := p.fs.Rename(p.path, target); err != nil {
		return p.fail(err)
	}

	return p.with(target)
}

// Remove deletes a file or a directory, which must be empty unless
// recursive is set. A missing path is an error only without missingOK.
func (p Path) Remove(recursive, missingOK bool) Path {
	if p.err != nil {
		return p
	}

	switch {
	case p.IsFile():
		return p.Unlink(false)
	case p.IsDir():
		return p.Rmdir(recursive)
	case !missingOK:
		return p.fail(ErrNotExist)
	}

	return p
}

// Rmdir removes the directory. With recursive, its contents go first and
// every failure is reported.
func (p Path) Rmdir(recursive bool) Path {
	if p.err != nil {
		return p
	}

	if !recursive {
		infos, err := afero.ReadDir(p.fs, p.path)
		if err != nil {
			return p.fail(err)
		}

		if len(infos) > 0 {
			return p.fail(ErrNotEmpty)
		}

		return p.fail(p.fs.Remove(p.path))
	}

	return p.fail(removeTree(p.fs, p.path))
}

func removeTree(fs afero.Fs, dir string) error {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, info := range infos {
		child := filepath.Join(dir, info.Name())
		if info.IsDir() {
			if err := removeTree(fs, child); err != nil {
				result = multierror.Append(result, err)
			}
		} else if err := fs.Remove(child); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if result.ErrorOrNil() != nil {
		return result
	}

	return fs.Remove(dir)
}

// Mkdir creates the directory and any missing parents.
func (p Path) Mkdir() Path {
	if p.err != nil {
		return p
	}

	return p.fail(p.fs.MkdirAll(p.path, 0777))
}

func (p Path) Chmod(mode os.FileMode) Path {
	if p.err != nil {
		return p
	}

	return p.fail(p.fs.Chmod(p.path, mode))
}

// Symlink makes p a symbolic link to target, on file systems that support it.
func (p Path) Symlink(target string) Path {
	if p.err != nil {
		return p
	}

	linker, ok := p.fs.(afero.Linker)
	if !ok {
		return p.fail(&os.LinkError{Op: "symlink", Old: target, New: p.path, Err: afero.ErrNoSymlink})
	}

	return p.fail(linker.SymlinkIfPossible(target, p.path))
}

// Copy copies a file, or a whole directory tree, to dst and returns dst.
func (p Path) Copy(dst string) Path {
	if p.err != nil {
		return p
	}

	info, err := p.fs.Stat(p.path)
	if err != nil {
		return p.fail(err)
	}

	if !info.IsDir() {
		return p.with(dst).fail(copyFile(p.fs, p.path, dst, info.Mode()))
	}

	err = afero.Walk(p.fs, p.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(p.path, path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return p.fs.MkdirAll(target, info.Mode().Perm()|0700)
		}

		return copyFile(p.fs, path, target, info.Mode())
	})

	return p.with(dst).fail(err)
}

func copyFile(fs afero.Fs, src, dst string, mode os.FileMode) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}

	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// Queries

func (p Path) Stat() (os.FileInfo, error) {
	if p.err != nil {
		return nil, p.err
	}

	return p.fs.Stat(p.path)
}

func (p Path) Exists() bool {
	_, err := p.Stat()
	return err == nil
}

func (p Path) IsDir() bool {
	info, err := p.Stat()
	return err == nil && info.IsDir()
}

func (p Path) IsFile() bool {
	info, err := p.Stat()
	return err == nil && info.Mode().IsRegular()
}

func (p Path) IsSymlink() bool {
	if p.err != nil {
		return false
	}

	lstater, ok := p.fs.(afero.Lstater)
	if !ok {
		return false
	}

	info, _, err := lstater.LstatIfPossible(p.path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Size is the size of a file, or the total size of the files in a directory,
// counting subdirectories when recursive is set.
func (p Path) Size(recursive bool) (int64, error) {
	info, err := p.Stat()
	if err != nil {
		return 0, err
	}

	if !info.IsDir() {
		return info.Size(), nil
	}

	var files []Path
	if recursive {
		files, err = p.RGlob("*")
	} else {
		files, err = p.ListDir()
	}

	if err != nil {
		return 0, err
	}

	var total int64
	for _, f := range files {
		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
			total += info.Size()
		}
	}

	return total, nil
}

// ListDir lists the direct children of the directory, sorted by name.
func (p Path) ListDir() ([]Path, error) {
	if p.err != nil {
		return nil, p.err
	}

	infos, err := afero.ReadDir(p.fs, p.path)
	if err != nil {
		return nil, err
	}

	children := make([]Path, len(infos))
	for i, info := range infos {
		children[i] = p.Join(info.Name())
	}

	return children, nil
}

// Glob lists the paths matching pattern relative to the directory.
func (p Path) Glob(pattern string) ([]Path, error) {
	if p.err != nil {
		return nil, p.err
	}

	matches, err := afero.Glob(p.fs, filepath.Join(p.path, pattern))
	if err != nil {
		return nil, err
	}

	out := make([]Path, len(matches))
	for i, m := range matches {
		out[i] = p.with(m)
	}

	return out, nil
}

// RGlob lists the paths anywhere below the directory that match pattern, in
// walk order.
func (p Path) RGlob(pattern string) ([]Path, error) {
	if p.err != nil {
		return nil, p.err
	}

	var out []Path
	err := afero.Walk(p.fs, p.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == p.path {
			return nil
		}

		if child := p.with(path); child.Match(pattern) {
			out = append(out, child)
		}

		return nil
	})

	return out, err
}
