package quadra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	assert.Equal(t, 1.0, cam.Zoom)
	assert.Equal(t, 400.0, cam.X)
	assert.Equal(t, 300.0, cam.Y)
}

func TestCameraDefaultIsScreenSpace(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	sx, sy := cam.WorldToScreen(123, 45)
	assert.InDelta(t, 123, sx, epsilon)
	assert.InDelta(t, 45, sy, epsilon)
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	sx, sy := cam.WorldToScreen(100, 50)
	assert.InDelta(t, 400, sx, epsilon)
	assert.InDelta(t, 300, sy, epsilon)
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2.0

	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	assert.InDelta(t, 2.0, sx1-sx0, epsilon)
}

func TestCameraRotation90(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 0, 0
	cam.Rotation = math.Pi / 2

	// Rotate(-pi/2) maps (1,0) to (0,-1) around the viewport center.
	sx, sy := cam.WorldToScreen(1, 0)
	assert.InDelta(t, 400, sx, epsilon)
	assert.InDelta(t, 299, sy, epsilon)
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5
	cam.Rotation = 0.3

	sx, sy := cam.WorldToScreen(123, -456)
	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.InDelta(t, 123, wx, 1e-6)
	assert.InDelta(t, -456, wy, 1e-6)
}

func TestCameraMatrixTracksFieldChanges(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	before := cam.ViewMatrix()
	cam.X += 10
	after := cam.ViewMatrix()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, float64(before[12])-10, float64(after[12]), 1e-4)
}

func TestVisibleBoundsZoom1(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	b := cam.VisibleBounds()
	assert.InDelta(t, 0, b.X, 1e-6)
	assert.InDelta(t, 0, b.Y, 1e-6)
	assert.InDelta(t, 800, b.Width, 1e-6)
	assert.InDelta(t, 600, b.Height, 1e-6)
}

func TestVisibleBoundsZoom2(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2.0
	b := cam.VisibleBounds()
	assert.InDelta(t, 400, b.Width, 1e-6)
	assert.InDelta(t, 300, b.Height, 1e-6)
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	target := NewVisual(190, 140, 20, 20)

	cam.Follow(target, 0, 0, 1.0)
	cam.Update(1.0 / 60.0)
	assert.InDelta(t, 200, cam.X, epsilon)
	assert.InDelta(t, 150, cam.Y, epsilon)
}

func TestCameraFollowLerp(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 0, 0
	target := NewVisual(100, 0, 0, 0)

	cam.Follow(target, 0, 0, 0.5)
	cam.Update(1.0 / 60.0)
	assert.InDelta(t, 50, cam.X, epsilon)
}

func TestCameraFollowWithOffset(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	target := NewVisual(100, 100, 0, 0)

	cam.Follow(target, 10, -20, 1.0)
	cam.Update(1.0 / 60.0)
	assert.InDelta(t, 110, cam.X, epsilon)
	assert.InDelta(t, 80, cam.Y, epsilon)
}

func TestCameraUnfollow(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	target := NewVisual(100, 100, 0, 0)

	cam.Follow(target, 0, 0, 1.0)
	cam.Update(1.0 / 60.0)
	cam.Unfollow()

	target.X = 500
	cam.Update(1.0 / 60.0)
	assert.InDelta(t, 100, cam.X, epsilon)
}

func TestCameraIgnoresDestroyedTarget(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	target := NewVisual(10, 10, 0, 0)
	cam.Follow(target, 0, 0, 1.0)
	target.Destroy()

	cam.Update(1.0 / 60.0)
	assert.Equal(t, 400.0, cam.X)
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 0, 0
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.Update(0.5)
	assert.InDelta(t, 50, cam.X, 1.0)
	assert.InDelta(t, 100, cam.Y, 1.0)

	cam.Update(0.5)
	assert.InDelta(t, 100, cam.X, 1.0)
	assert.InDelta(t, 200, cam.Y, 1.0)
	assert.Nil(t, cam.scrollTween)
}
