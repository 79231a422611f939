package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	c, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, 20.0, c.Selector.DeadZone)
	require.Len(t, c.Selector.Labels, 8)
	require.Equal(t, "up", c.Selector.Labels[0])
	require.Equal(t, "cancel", c.Selector.CenterLabel)
	require.Equal(t, 8.0, c.Input.CellWidth)
	require.Equal(t, 16.0, c.Input.CellHeight)
	require.Empty(t, c.Log.Path)
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`
[selector]
dead_zone = 32
labels = ["a", "b", "c", "d", "e", "f", "g", "h"]
center_label = "none"

[input]
cell_width = 10
cell_height = 20

[ui]
selected_color = "#f38ba8"

[log]
path = "/tmp/radial.log"
`))
	require.NoError(t, err)
	require.Equal(t, 32.0, c.Selector.DeadZone)
	require.Equal(t, "h", c.Selector.Labels[7])
	require.Equal(t, "none", c.Selector.CenterLabel)
	require.Equal(t, 10.0, c.Input.CellWidth)
	require.Equal(t, "#f38ba8", c.UI.SelectedColor)
	require.Equal(t, "#a6e3a1", c.UI.ActiveColor)
	require.Equal(t, "/tmp/radial.log", c.Log.Path)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"short labels":   "[selector]\nlabels = [\"a\", \"b\"]\n",
		"negative zone":  "[selector]\ndead_zone = -1\n",
		"zero cell":      "[input]\ncell_width = 0\n",
		"malformed toml": "[selector\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[selector]\ndead_zone = 40\n"), 0o644))

	t.Setenv("RADIAL_CONFIG", path)
	t.Setenv("RADIAL_INPUT_CELL_HEIGHT", "18")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 40.0, c.Selector.DeadZone)
	require.Equal(t, 18.0, c.Input.CellHeight)
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("RADIAL_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 20.0, c.Selector.DeadZone)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("RADIAL_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}
