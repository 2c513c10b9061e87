package quadra

import "github.com/go-gl/mathgl/mgl32"

// Backend is the rendering collaborator a node draws through. Calls arrive
// in a fixed order per quad: BindTexture, SetCamera, SetModel, Lighting,
// DrawQuad. Buffer allocation happens before that sequence, and only when a
// node's cached geometry changed.
//
// EbitenBackend is the implementation used by Game. Tests substitute a
// recording fake.
type Backend interface {
	// SetCamera selects the view used by subsequent draws. Nil means
	// identity (screen space).
	SetCamera(c *Camera)

	// SetModel sets the model transform for subsequent draws.
	SetModel(m mgl32.Mat4)

	// Lighting sets the color channels for subsequent draws: RGBA
	// multipliers followed by RGBA additive offsets.
	Lighting(rm, gm, bm, am, ra, ga, ba, aa float32)

	// BindTexture selects the texture sampled by subsequent draws.
	BindTexture(t Texture)

	// DrawQuad draws the four vertices held by buf as two triangles.
	DrawQuad(buf VertexBuffer)

	// NewVertexBuffer allocates a vertex buffer holding a copy of data.
	NewVertexBuffer(data []float32) VertexBuffer
}

// VertexBuffer is backend-resident vertex storage owned by exactly one node.
// Data is laid out as consecutive (x, y, u, v) float32 tuples.
type VertexBuffer interface {
	// Update replaces the buffer contents in place. The backend may defer
	// the actual transfer until the buffer is next drawn.
	Update(data []float32)

	// Delete releases the buffer. The buffer must not be used afterwards.
	Delete()
}
