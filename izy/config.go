package izy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/MRtecno98/afero"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"
)

const ConfigName string = "izyrc.yml"

var GlobalConfig *Config = &Config{}

type Config struct {
	Table TableConfig `yaml:"table"`
	Head  HeadConfig  `yaml:"head"`
	Log   LogConfig   `yaml:"log"`
	Fetch FetchConfig `yaml:"fetch"`
}

type TableConfig struct {
	MaxColWidth int    `yaml:"max-col-width"`
	Rows        int    `yaml:"rows"`
	Separator   string `yaml:"separator"`
	Style       string `yaml:"style"`
}

type HeadConfig struct {
	N      int `yaml:"n"`
	Width  int `yaml:"width"`
	Indent int `yaml:"indent"`
	Depth  int `yaml:"depth"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type FetchConfig struct {
	UserAgent string `yaml:"user-agent"`
	Timeout   string `yaml:"timeout"`
}

// DefaultConfig holds the values used for anything no config file sets.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{MaxColWidth: 16, Rows: 5, Separator: ",", Style: "plain"},
		Head:  HeadConfig{N: 3, Width: 80, Indent: 2},
		Log:   LogConfig{Level: "info"},
		Fetch: FetchConfig{UserAgent: USER_AGENT, Timeout: "30s"},
	}
}

// Collapse fills the zero fields of c with the values of o, recursing into
// nested sections. Slices are appended.
func (c *Config) Collapse(o *Config) {
	collapse(reflect.ValueOf(c).Elem(), reflect.ValueOf(o).Elem())
}

func collapse(cv, ov reflect.Value) {
	for i := 0; i < cv.NumField(); i++ {
		cf := cv.Field(i)
		of := ov.Field(i)

		switch of.Kind() {
		case reflect.Struct:
			collapse(cf, of)

		case reflect.Slice:
			cf.Set(reflect.AppendSlice(cf, of))

		default:
			if cf.IsZero() {
				cf.Set(of)
			}
		}
	}
}

// LoadSystemConfig merges base, then ~/.izy/izyrc.yml, then the defaults into
// GlobalConfig. Earlier sources win. Files that cannot be read or parsed are
// skipped and reported in the returned error, which leaves GlobalConfig usable.
func LoadSystemConfig(fs afero.Fs, base string) (*Config, error) {
	paths := []string{base}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".izy", ConfigName))
	}

	var errs error

	conf := Config{}
	for _, v := range paths {
		parse, err := LoadFilesystemConfig(fs, v)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		if parse != nil {
			conf.Collapse(parse)
		}
	}

	conf.Collapse(DefaultConfig())
	GlobalConfig.Collapse(&conf)

	return GlobalConfig, errs
}

// LoadFilesystemConfig reads the config file at path. A missing file is not
// an error and gives a nil config.
func LoadFilesystemConfig(fs afero.Fs, path string) (*Config, error) {
	file, err := fs.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	defer file.Close()

	conf, err := LoadConfigFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return conf, nil
}

func LoadConfigFrom(f io.Reader) (*Config, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
