package quadra

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// quadIndices splits a top-left, top-right, bottom-right, bottom-left quad
// into two triangles.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// ebitenImager is implemented by textures that can hand the backend an
// *ebiten.Image to sample.
type ebitenImager interface {
	Image() *ebiten.Image
}

// BackendStats counts backend work. Game resets it every frame and logs it
// in debug mode.
type BackendStats struct {
	Allocs  int // vertex buffers created
	Uploads int // pending buffer contents transferred at draw time
	Draws   int // quads submitted
}

// EbitenBackend renders quads into an *ebiten.Image with DrawTriangles.
// The model and view matrices are applied on the CPU; the eight lighting
// channels become a color matrix (scale then translate).
type EbitenBackend struct {
	// Blend is used for every quad drawn by this backend.
	Blend BlendMode
	// Filter selects texture sampling. Nearest suits pixel art.
	Filter ebiten.Filter

	target  *ebiten.Image
	texture *ebiten.Image
	model   mgl32.Mat4
	view    mgl32.Mat4
	colorM  colorm.ColorM
	verts   [4]ebiten.Vertex
	stats   BackendStats
}

// NewEbitenBackend creates a backend with identity matrices and neutral
// lighting. Call SetTarget before drawing.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		Filter: ebiten.FilterNearest,
		model:  mgl32.Ident4(),
		view:   mgl32.Ident4(),
	}
}

// SetTarget selects the image subsequent quads are drawn into.
func (b *EbitenBackend) SetTarget(dst *ebiten.Image) {
	b.target = dst
}

// Stats returns the counters accumulated since the last ResetStats.
func (b *EbitenBackend) Stats() BackendStats {
	return b.stats
}

// ResetStats zeroes the counters.
func (b *EbitenBackend) ResetStats() {
	b.stats = BackendStats{}
}

// SetCamera selects the camera's view matrix, or identity for nil.
func (b *EbitenBackend) SetCamera(c *Camera) {
	if c == nil {
		b.view = mgl32.Ident4()
		return
	}
	b.view = c.ViewMatrix()
}

// SetModel sets the model matrix.
func (b *EbitenBackend) SetModel(m mgl32.Mat4) {
	b.model = m
}

// Lighting sets the color matrix from multipliers and additive offsets.
func (b *EbitenBackend) Lighting(rm, gm, bm, am, ra, ga, ba, aa float32) {
	var cm colorm.ColorM
	cm.Scale(float64(rm), float64(gm), float64(bm), float64(am))
	cm.Translate(float64(ra), float64(ga), float64(ba), float64(aa))
	b.colorM = cm
}

// BindTexture selects the texture to sample. Textures that are not backed
// by an ebiten image unbind, and the next DrawQuad is dropped.
func (b *EbitenBackend) BindTexture(t Texture) {
	b.texture = nil
	if it, ok := t.(ebitenImager); ok {
		b.texture = it.Image()
	}
}

// NewVertexBuffer allocates a buffer holding a copy of data.
func (b *EbitenBackend) NewVertexBuffer(data []float32) VertexBuffer {
	b.stats.Allocs++
	vb := &ebitenVertexBuffer{}
	copy(vb.resident[:], data)
	return vb
}

// DrawQuad transforms the buffer's corners by view*model, maps texture
// coordinates to source pixels, and draws two triangles.
func (b *EbitenBackend) DrawQuad(buf VertexBuffer) {
	vb, ok := buf.(*ebitenVertexBuffer)
	if !ok || vb.deleted || b.target == nil || b.texture == nil {
		return
	}
	if vb.pending {
		vb.resident = vb.staged
		vb.pending = false
		b.stats.Uploads++
	}

	b.verts = quadVertices(b.view.Mul4(b.model), &vb.resident, b.texture.Bounds())
	colorm.DrawTriangles(b.target, b.verts[:], quadIndices, b.texture, b.colorM, &colorm.DrawTrianglesOptions{
		Blend:  b.Blend.EbitenBlend(),
		Filter: b.Filter,
	})
	b.stats.Draws++
}

// quadVertices transforms each corner position by mvp and maps its texture
// coordinates into src, the sampled image's bounds. Sub-images have a
// non-zero src.Min.
func quadVertices(mvp mgl32.Mat4, data *[floatsPerQuad]float32, src image.Rectangle) [4]ebiten.Vertex {
	sw := float32(src.Dx())
	sh := float32(src.Dy())
	sx0 := float32(src.Min.X)
	sy0 := float32(src.Min.Y)

	var verts [4]ebiten.Vertex
	for i := range verts {
		d := data[i*4 : i*4+4]
		p := mvp.Mul4x1(mgl32.Vec4{d[0], d[1], 0, 1})
		verts[i] = ebiten.Vertex{
			DstX:   p.X(),
			DstY:   p.Y(),
			SrcX:   sx0 + d[2]*sw,
			SrcY:   sy0 + d[3]*sh,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return verts
}

// ebitenVertexBuffer keeps the uploaded corners plus a staged copy written
// by Update. The staged copy replaces the resident one on the next draw.
type ebitenVertexBuffer struct {
	resident [floatsPerQuad]float32
	staged   [floatsPerQuad]float32
	pending  bool
	deleted  bool
}

// Update stages new contents for transfer on the next draw.
func (vb *ebitenVertexBuffer) Update(data []float32) {
	if vb.deleted {
		return
	}
	copy(vb.staged[:], data)
	vb.pending = true
}

// Delete marks the buffer released. Later draws of it are ignored.
func (vb *ebitenVertexBuffer) Delete() {
	vb.deleted = true
	vb.pending = false
}
