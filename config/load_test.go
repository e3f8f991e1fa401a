package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/zoomview/shared/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoomview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	require.NoError(t, Validate())
	assert.Equal(t, zoom.DefaultConfig(), Zoom.Animation)
}

func TestLoadFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := writeConfig(t, `
window:
  width: 1280
  height: 720
zoom:
  start_velocity: 0.2
  step: 0.01
scene:
  scheme: berlin
debug: true
`)
	require.NoError(t, Load(NewViper(), path))

	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, 720, C.Height)
	assert.Equal(t, 60, C.TPS)
	assert.Equal(t, zoom.Config{StartVelocity: 0.2, Step: 0.01}, Zoom.Animation)
	assert.Equal(t, "berlin", Scene.Scheme)
	assert.True(t, Debug.Enabled)
	assert.True(t, HUD.Visible)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("ZOOMVIEW_ZOOM_STEP", "0.02")

	path := writeConfig(t, "zoom:\n  step: 0.01\n")
	require.NoError(t, Load(NewViper(), path))
	assert.Equal(t, 0.02, Zoom.Animation.Step)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative width", "window:\n  width: -1\n"},
		{"zero tps", "window:\n  tps: 0\n"},
		{"step above velocity", "zoom:\n  start_velocity: 0.1\n  step: 0.5\n"},
		{"inverted levels", "camera:\n  min_level: 10\n  max_level: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			err := Load(NewViper(), writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	err := Load(NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStepAboveVelocityWrapsZoomError(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	Zoom.Animation.Step = 1
	err := Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, zoom.ErrInvalidConfig)
}
