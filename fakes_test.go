package quadra

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

// fakeTexture is a Texture with fixed dimensions and no pixels.
type fakeTexture struct {
	w, h int
}

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

func (t *fakeTexture) UVRect(left, top, right, bottom int) RectF {
	return uvRect(t.w, t.h, left, top, right, bottom)
}

// fakeBuffer records what an Image wrote to its vertex buffer.
type fakeBuffer struct {
	data    []float32
	updates int
	deletes int
}

func (b *fakeBuffer) Update(data []float32) {
	b.data = append(b.data[:0], data...)
	b.updates++
}

func (b *fakeBuffer) Delete() {
	b.deletes++
}

// recordingBackend logs every call in order and hands out fakeBuffers.
type recordingBackend struct {
	calls   []string
	buffers []*fakeBuffer

	camera   *Camera
	model    mgl32.Mat4
	lighting [8]float32
	texture  Texture
	drawn    []VertexBuffer
}

func (r *recordingBackend) SetCamera(c *Camera) {
	r.calls = append(r.calls, "SetCamera")
	r.camera = c
}

func (r *recordingBackend) SetModel(m mgl32.Mat4) {
	r.calls = append(r.calls, "SetModel")
	r.model = m
}

func (r *recordingBackend) Lighting(rm, gm, bm, am, ra, ga, ba, aa float32) {
	r.calls = append(r.calls, "Lighting")
	r.lighting = [8]float32{rm, gm, bm, am, ra, ga, ba, aa}
}

func (r *recordingBackend) BindTexture(t Texture) {
	r.calls = append(r.calls, "BindTexture")
	r.texture = t
}

func (r *recordingBackend) DrawQuad(buf VertexBuffer) {
	r.calls = append(r.calls, "DrawQuad")
	r.drawn = append(r.drawn, buf)
}

func (r *recordingBackend) NewVertexBuffer(data []float32) VertexBuffer {
	r.calls = append(r.calls, "NewVertexBuffer")
	b := &fakeBuffer{data: append([]float32(nil), data...)}
	r.buffers = append(r.buffers, b)
	return b
}

func (r *recordingBackend) reset() {
	r.calls = r.calls[:0]
}

// scriptedKeys is a KeySource that replays one batch of transitions per
// Poll.
type scriptedKeys struct {
	pressed  [][]ebiten.Key
	released [][]ebiten.Key
	mods     KeyModifiers
	frame    int
}

func (s *scriptedKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	if s.frame < len(s.pressed) {
		keys = append(keys, s.pressed[s.frame]...)
	}
	return keys
}

func (s *scriptedKeys) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	if s.frame < len(s.released) {
		keys = append(keys, s.released[s.frame]...)
	}
	s.frame++
	return keys
}

func (s *scriptedKeys) Modifiers() KeyModifiers { return s.mods }

// newTestGame creates a game that never reads the real keyboard.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	g.Keys.SetSource(nil)
	return g
}
