package scenes

import (
	"testing"

	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMapSceneKeepsStartupError(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Zoom.Animation = zoom.Config{}

	manifest, err := assets.LoadManifest("")
	require.NoError(t, err)

	ms := NewMapScene(nil, manifest, zap.NewNop())
	ms.Update()
	ms.Update()

	require.Error(t, ms.Err())
	assert.ErrorIs(t, ms.Err(), zoom.ErrInvalidConfig)
	assert.Contains(t, ms.Err().Error(), "could not create camera")
	assert.Nil(t, ms.ecs)
	assert.NotPanics(t, ms.Close)
}
