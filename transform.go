package quadra

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the affine matrix of a visual from its
// position, origin, scale, and angle. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-Origin) -> Scale -> Rotate -> Translate(X+OriginX, Y+OriginY)
//
// so the visual rotates and scales around Origin while (X, Y) stays the
// unscaled top-left corner.
func computeLocalTransform(v *Visual) [6]float64 {
	sx := v.Scale.X
	sy := v.Scale.Y

	sin, cos := math.Sincos(v.Angle)

	ox := v.Origin.X
	oy := v.Origin.Y
	preTx := -ox * sx
	preTy := -oy * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + v.X + ox,
		sin*preTx + cos*preTy + v.Y + oy,
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affineToMat4 widens a 2D affine matrix to the column-major 4x4 layout
// backends expect for their model and view uniforms.
func affineToMat4(m [6]float64) mgl32.Mat4 {
	return mgl32.Mat4{
		float32(m[0]), float32(m[1]), 0, 0,
		float32(m[2]), float32(m[3]), 0, 0,
		0, 0, 1, 0,
		float32(m[4]), float32(m[5]), 0, 1,
	}
}
