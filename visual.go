package quadra

import "github.com/go-gl/mathgl/mgl32"

// Visual is the base of every drawable node. It carries the transform
// (position, origin, scale, angle), the size used by hit tests and derived
// geometry, simple motion, and the eight color channels pushed to the
// backend: four multipliers (RM..AM) and four additive offsets (RA..AA).
//
// Visual.Draw is the hook concrete nodes call before submitting geometry;
// it refreshes the model matrix.
type Visual struct {
	Gizmo

	X, Y          float64
	Width, Height float64
	Scale         Vec2
	Origin        Vec2
	Angle         float64 // radians, clockwise

	Speed        Vec2
	Acc          Vec2
	AngularSpeed float64

	RM, GM, BM, AM float64
	RA, GA, BA, AA float64

	matrix [6]float64
}

// NewVisual creates a visual at (x, y) with the given size, unit scale, and
// neutral color channels.
func NewVisual(x, y, width, height float64) *Visual {
	v := &Visual{}
	v.init(x, y, width, height)
	return v
}

func (v *Visual) init(x, y, width, height float64) {
	v.X, v.Y = x, y
	v.Width, v.Height = width, height
	v.Scale = Vec2{1, 1}
	v.ResetColor()
	v.matrix = identityTransform
}

// Update applies Speed, Acc, and AngularSpeed over dt seconds.
func (v *Visual) Update(dt float64) {
	if v.Acc.X != 0 || v.Acc.Y != 0 {
		v.Speed.X += v.Acc.X * dt
		v.Speed.Y += v.Acc.Y * dt
	}
	v.X += v.Speed.X * dt
	v.Y += v.Speed.Y * dt
	v.Angle += v.AngularSpeed * dt
}

// Draw refreshes the model matrix from the current transform fields.
// Nodes that render call it before touching the backend.
func (v *Visual) Draw(b Backend) {
	v.updateMatrix()
}

func (v *Visual) updateMatrix() {
	v.matrix = computeLocalTransform(v)
}

// Matrix returns the model matrix computed by the last Draw.
func (v *Visual) Matrix() mgl32.Mat4 {
	return affineToMat4(v.matrix)
}

// SetPosition sets X and Y.
func (v *Visual) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
}

// SetScale sets both scale components.
func (v *Visual) SetScale(sx, sy float64) {
	v.Scale = Vec2{sx, sy}
}

// ScaledWidth returns Width multiplied by the horizontal scale.
func (v *Visual) ScaledWidth() float64 { return v.Width * v.Scale.X }

// ScaledHeight returns Height multiplied by the vertical scale.
func (v *Visual) ScaledHeight() float64 { return v.Height * v.Scale.Y }

// Center returns the center of the scaled bounds.
func (v *Visual) Center() Vec2 {
	return Vec2{v.X + v.ScaledWidth()/2, v.Y + v.ScaledHeight()/2}
}

// SetOriginToCenter puts the rotation/scale origin in the middle of the
// unscaled bounds.
func (v *Visual) SetOriginToCenter() {
	v.Origin = Vec2{v.Width / 2, v.Height / 2}
}

// OverlapsPoint reports whether (x, y) falls inside the scaled, unrotated
// bounds.
func (v *Visual) OverlapsPoint(x, y float64) bool {
	return Rect{v.X, v.Y, v.ScaledWidth(), v.ScaledHeight()}.Contains(x, y)
}

// --- Color channels ---

// Alpha returns the alpha multiplier.
func (v *Visual) Alpha() float64 { return v.AM + v.AA }

// SetAlpha sets the alpha multiplier and clears the additive alpha.
func (v *Visual) SetAlpha(a float64) {
	v.AM = a
	v.AA = 0
}

// Tint blends the visual toward c by strength in [0, 1] without touching
// alpha.
func (v *Visual) Tint(c Color, strength float64) {
	v.RM, v.GM, v.BM = 1-strength, 1-strength, 1-strength
	v.RA = c.R * strength
	v.GA = c.G * strength
	v.BA = c.B * strength
}

// Hardlight multiplies the color channels by c.
func (v *Visual) Hardlight(c Color) {
	v.RM, v.GM, v.BM = c.R, c.G, c.B
	v.RA, v.GA, v.BA = 0, 0, 0
}

// Brightness scales the RGB multipliers uniformly.
func (v *Visual) Brightness(value float64) {
	v.RM, v.GM, v.BM = value, value, value
}

// ResetColor restores neutral channels: multipliers 1, offsets 0.
func (v *Visual) ResetColor() {
	v.RM, v.GM, v.BM, v.AM = 1, 1, 1, 1
	v.RA, v.GA, v.BA, v.AA = 0, 0, 0, 0
}

// lighting returns the eight channels in backend order as float32.
func (v *Visual) lighting() [8]float32 {
	return [8]float32{
		float32(v.RM), float32(v.GM), float32(v.BM), float32(v.AM),
		float32(v.RA), float32(v.GA), float32(v.BA), float32(v.AA),
	}
}
