package systems

import (
	"testing"

	"github.com/automoto/puffball/components"
	cfg "github.com/automoto/puffball/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraFollowsPlayerNearLevelStart(t *testing.T) {
	cases := []struct {
		name    string
		origin  float64
		playerX float64
		wantX   float64
	}{
		{"left of threshold", 0, 100, 600},
		{"just left of threshold", 0, 431, 931},
		{"at threshold holds still", 0, 432, 500},
		{"past threshold holds still", 0, 500, 500},
		{"threshold moves with level origin", 1000, 1300, 1800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			level(w).OriginX = tc.origin
			addStandingPlayer(w, tc.playerX, 100)

			runFrames(w, 1)
			cameraEntry, ok := components.Camera.First(w.World)
			require.True(t, ok)
			cam := components.Camera.Get(cameraEntry)
			assert.InDelta(t, tc.wantX, cam.Position.X, 1e-9)
			assert.Equal(t, cfg.Camera.FixedY, cam.Position.Y)
		})
	}
}

func TestCameraTracksWalkingPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := addStandingPlayer(w, 0, 100)
	cameraEntry, _ := components.Camera.First(w.World)
	cam := components.Camera.Get(cameraEntry)

	runFrames(w, 30, cfg.ActionMoveRight)
	pos := components.Position.Get(p)
	assert.InDelta(t, pos.X+cfg.Camera.LeadX, cam.Position.X, 1e-9)
}

func TestCameraHoldsWithoutPlayer(t *testing.T) {
	w := newTestWorld(t)
	runFrames(w, 5)
	cameraEntry, _ := components.Camera.First(w.World)
	assert.Equal(t, 500.0, components.Camera.Get(cameraEntry).Position.X)
}

func TestCameraView(t *testing.T) {
	view := CameraView(&components.CameraData{Scale: 0.5})
	assert.InDelta(t, -float64(cfg.C.Width), view.MinX, 1e-9)
	assert.InDelta(t, float64(cfg.C.Width), view.MaxX, 1e-9)
	assert.InDelta(t, -float64(cfg.C.Height), view.MinY, 1e-9)

	assert.False(t, view.Outside(view.MaxX+10, 0, 10))
	assert.True(t, view.Outside(view.MaxX+11, 0, 10))
	assert.True(t, view.Outside(0, view.MinY-11, 10))
	assert.False(t, view.Outside(0, 0, 0))
}
