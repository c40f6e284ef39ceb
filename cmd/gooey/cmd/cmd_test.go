package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/go-gooey/gooey/pkg/rendering"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("GOOEY_CONFIG", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gooey version "+Version+" (built "+BuildTime+")\n", out)
}

func TestRender_DefaultScene(t *testing.T) {
	out, err := run(t, "render", "--frames", "3", "--fps", "200", "--out", "shots",
		"--format", "bmp", "--width", "80", "--height", "46", "--scale", "2", "--log", "gooey.log")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 3 frames to shots")

	entries, err := os.ReadDir("shots")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "frame-0001.bmp", entries[0].Name())

	f, err := os.Open(filepath.Join("shots", "frame-0003.bmp"))
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 92, img.Bounds().Dy())
	assert.Equal(t, rendering.FromRGB(0x101820FF), rendering.ColorFromImage(img.At(0, 0)))

	log, err := os.ReadFile("gooey.log")
	require.NoError(t, err)
	assert.Contains(t, string(log), "built 6 widgets, 3 animations")
}

func TestRender_SceneFile(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(`
background: white
widgets:
  - {kind: box, x: 1, y: 1, w: 2, h: 2, background: red}
`), 0o644))

	_, err := run(t, "render", "--scene", scenePath, "--frames", "1", "--fps", "200",
		"--width", "4", "--height", "4", "--log", "gooey.log")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join("frames", "frame-0001.png"))
	assert.NoError(t, err)
}

func TestRender_BadScene(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte("widgets:\n  - {kind: triangle}\n"), 0o644))

	_, err := run(t, "render", "--scene", scenePath, "--log", "gooey.log")
	assert.ErrorContains(t, err, "triangle")
}

func TestRender_BadConfig(t *testing.T) {
	_, err := run(t, "render", "--fps=-1", "--log", "gooey.log")
	assert.ErrorContains(t, err, "frame.fps must be between 1 and 1000")
}

func TestRender_FPSAboveLimit(t *testing.T) {
	_, err := run(t, "render", "--frames", "1", "--fps", "2000000000", "--log", "gooey.log")
	assert.ErrorContains(t, err, "got 2000000000")
}
