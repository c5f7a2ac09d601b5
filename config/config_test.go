package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"circle-sectors/geometry"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "circle-config")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, geometry.DefaultConfig(), cfg.Layout)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"addr": "127.0.0.1:9000",
		"layout": {"circleRadius": 80, "curveFactor": 0.2},
		"board": {"color": "#ff0000"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 80.0, cfg.Layout.CircleRadius)
	assert.Equal(t, 0.2, cfg.Layout.CurveFactor)
	// untouched fields keep defaults
	assert.Equal(t, 600.0, cfg.Layout.CanvasWidth)
	assert.Equal(t, "#ff0000", cfg.Board.Color)
	assert.Equal(t, 2.0, cfg.Board.Width)
	assert.Equal(t, "16", cfg.InitialCount)
}

func TestLoadRejectsBadLayout(t *testing.T) {
	path := writeConfig(t, `{"layout": {"circleRadius": -1}}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrInvalidConfig))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist-circle.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{not json`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{"board": {"color": "red"}}`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{"addr": ""}`))
	assert.Error(t, err)
}
