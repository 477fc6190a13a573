package izy

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/MRtecno98/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	conf, err := LoadConfigFrom(strings.NewReader(`
table:
  max-col-width: 20
  separator: "\t"
head:
  n: 5
`))
	require.NoError(t, err)
	assert.Equal(t, 20, conf.Table.MaxColWidth)
	assert.Equal(t, "\t", conf.Table.Separator)
	assert.Equal(t, 5, conf.Head.N)
	assert.Zero(t, conf.Head.Width)
}

func TestLoadConfigFromUnknownField(t *testing.T) {
	_, err := LoadConfigFrom(strings.NewReader("tabel:\n  rows: 3\n"))
	assert.Error(t, err)
}

func TestCollapse(t *testing.T) {
	c := &Config{Head: HeadConfig{N: 7}}
	c.Collapse(DefaultConfig())

	assert.Equal(t, 7, c.Head.N)
	assert.Equal(t, 80, c.Head.Width)
	assert.Equal(t, 16, c.Table.MaxColWidth)
	assert.Equal(t, USER_AGENT, c.Fetch.UserAgent)
}

func TestLoadSystemConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "custom.yml", []byte("table:\n  rows: 9\n"), 0644))

	saved := GlobalConfig
	GlobalConfig = &Config{}
	defer func() { GlobalConfig = saved }()

	conf, err := LoadSystemConfig(fs, "custom.yml")
	require.NoError(t, err)
	assert.Equal(t, 9, conf.Table.Rows)
	assert.Equal(t, ",", conf.Table.Separator)
	assert.Same(t, GlobalConfig, conf)
}

func TestLoadSystemConfigMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "broken.yml", []byte("table: [rows\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "typo.yml", []byte("tabel:\n  rows: 3\n"), 0644))

	saved := GlobalConfig
	defer func() { GlobalConfig = saved }()

	for _, name := range []string{"broken.yml", "typo.yml"} {
		GlobalConfig = &Config{}

		conf, err := LoadSystemConfig(fs, name)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), name)
		assert.Equal(t, 5, conf.Table.Rows, name)
		assert.Equal(t, "info", conf.Log.Level, name)
	}
}

type deniedFs struct{ afero.Fs }

func (deniedFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func TestLoadFilesystemConfigUnreadable(t *testing.T) {
	_, err := LoadFilesystemConfig(deniedFs{afero.NewMemMapFs()}, ConfigName)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoadFilesystemConfigMissing(t *testing.T) {
	conf, err := LoadFilesystemConfig(afero.NewMemMapFs(), ConfigName)
	assert.NoError(t, err)
	assert.Nil(t, conf)
}

func TestNewProfileFilename(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Equal(t, "profile.0.pprof", NewProfileFilename(fs))

	require.NoError(t, afero.WriteFile(fs, "profile.0.pprof", nil, 0644))
	assert.Equal(t, "profile.1.pprof", NewProfileFilename(fs))
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	PrintConfig(&buf, DefaultConfig())
	assert.Contains(t, buf.String(), "Max column width: 16")
}
