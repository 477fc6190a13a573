package paths

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"

	"github.com/MRtecno98/afero"
	"github.com/MRtecno98/afero/zipfs"
	"github.com/MRtecno98/izy/izy/discovery"
	"github.com/MRtecno98/izy/izy/table"
	"gopkg.in/yaml.v2"
)

// FilePath is a Path known to name a file. Its Mkdir creates the parent
// directory, and it adds content readers and writers.
type FilePath struct {
	Path
}

func NewFile(fs afero.Fs, elems ...string) FilePath {
	return FilePath{New(fs, elems...)}
}

func (f FilePath) wrap(p Path) FilePath { return FilePath{p} }

// Mkdir creates the parent directory of the file.
func (f FilePath) Mkdir() FilePath {
	return FilePath{f.Parent().Mkdir().with(f.path)}
}

func (f FilePath) Touch() FilePath { return f.wrap(f.Path.Touch()) }

func (f FilePath) ReadBytes() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	return afero.ReadFile(f.fs, f.path)
}

func (f FilePath) ReadText() (string, error) {
	data, err := f.ReadBytes()
	return string(data), err
}

func (f FilePath) WriteBytes(data []byte) FilePath {
	if f.err != nil {
		return f
	}

	return f.wrap(f.fail(afero.WriteFile(f.fs, f.path, data, 0666)))
}

func (f FilePath) WriteText(text string) FilePath {
	return f.WriteBytes([]byte(text))
}

// ReadLines returns the first n lines, or all of them when n is negative.
// Lines keep their trailing newline.
func (f FilePath) ReadLines(n int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)
	for n < 0 || len(lines) < n {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}

		if err == io.EOF {
			break
		} else if err != nil {
			return lines, err
		}
	}

	return lines, nil
}

func (f FilePath) open(flag int) (afero.File, error) {
	return f.fs.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|flag, 0666)
}

// write opens the file with flag and hands it to fn, recording any failure
// including the one from closing it.
func (f FilePath) write(flag int, fn func(w io.Writer) error) FilePath {
	if f.err != nil {
		return f
	}

	file, err := f.open(flag)
	if err != nil {
		return f.wrap(f.fail(err))
	}

	err = fn(file)
	return f.wrap(f.fail(errors.Join(err, file.Close())))
}

func printObjects(w io.Writer, objs []any) error {
	opts := discovery.Options{N: math.MaxInt}
	for _, obj := range objs {
		if err := discovery.HPrint(w, obj, opts); err != nil {
			return err
		}
	}

	return nil
}

// Print pretty-prints each object on its own line, replacing the contents.
func (f FilePath) Print(objs ...any) FilePath {
	return f.write(os.O_TRUNC, func(w io.Writer) error { return printObjects(w, objs) })
}

func (f FilePath) AppendPrint(objs ...any) FilePath {
	return f.write(os.O_APPEND, func(w io.Writer) error { return printObjects(w, objs) })
}

func (f FilePath) DumpJSON(v any) FilePath {
	return f.write(os.O_TRUNC, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	})
}

func (f FilePath) LoadJSON(v any) error {
	data, err := f.ReadBytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// DumpJSONLines writes one JSON document per line, after the existing
// contents when appending.
func (f FilePath) DumpJSONLines(appending bool, objs ...any) FilePath {
	flag := os.O_TRUNC
	if appending {
		flag = os.O_APPEND
	}

	return f.write(flag, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		for _, obj := range objs {
			if err := enc.Encode(obj); err != nil {
				return err
			}
		}

		return nil
	})
}

// LoadJSONLines decodes every JSON document of the file as a T.
func LoadJSONLines[T any](f FilePath) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	var out []T
	dec := json.NewDecoder(file)
	for {
		var v T
		if err := dec.Decode(&v); err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}

		out = append(out, v)
	}
}

func (f FilePath) DumpYAML(v any) FilePath {
	return f.write(os.O_TRUNC, func(w io.Writer) error {
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}

		_, err = w.Write(data)
		return err
	})
}

func (f FilePath) LoadYAML(v any) error {
	data, err := f.ReadBytes()
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, v)
}

func (f FilePath) ReadCSV(opts table.CSVOptions) (*table.Table, error) {
	if f.err != nil {
		return nil, f.err
	}

	return table.FromCSV(f.fs, f.path, opts)
}

func (f FilePath) WriteCSV(t *table.Table, opts table.CSVOptions) FilePath {
	if f.err != nil {
		return f
	}

	return f.wrap(f.fail(t.ToCSV(f.fs, f.path, opts)))
}

// AppendCSV appends the rows of t without a header.
func (f FilePath) AppendCSV(t *table.Table, opts table.CSVOptions) FilePath {
	if f.err != nil {
		return f
	}

	return f.wrap(f.fail(t.AppendToCSV(f.fs, f.path, opts)))
}

// ZipFs is a read-only view of a zip archive. Close releases the archive.
type ZipFs struct {
	afero.Afero
	file afero.File
}

func (z *ZipFs) Close() error {
	return z.file.Close()
}

// OpenZip opens the file as a zip archive.
func (f FilePath) OpenZip() (*ZipFs, error) {
	if f.err != nil {
		return nil, f.err
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	reader, err := zip.NewReader(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, err
	}

	return &ZipFs{Afero: afero.Afero{Fs: zipfs.New(reader)}, file: file}, nil
}

// TempFilePath is a file created under a unique name. Close removes it.
type TempFilePath struct {
	FilePath
}

// NewTemp creates an empty file in dir whose name is pattern with a random
// string in place of the last "*".
func NewTemp(fs afero.Fs, dir, pattern string) (TempFilePath, error) {
	if dir != "" {
		if err := fs.MkdirAll(dir, 0777); err != nil {
			return TempFilePath{}, err
		}
	}

	file, err := afero.TempFile(fs, dir, pattern)
	if err != nil {
		return TempFilePath{}, err
	}

	name := file.Name()
	if err := file.Close(); err != nil {
		return TempFilePath{}, err
	}

	return TempFilePath{NewFile(fs, name)}, nil
}

func (t TempFilePath) Close() error {
	return t.Unlink(true).Err()
}
