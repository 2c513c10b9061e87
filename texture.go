package quadra

import "github.com/hajimehoshi/ebiten/v2"

// Texture is a non-owning handle to pixel data held by a TextureCache (or
// any other owner). Nodes read its dimensions and hand it to the backend;
// they never free it.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int
	// Height returns the texture height in pixels.
	Height() int
	// UVRect converts the pixel rectangle (left, top)-(right, bottom) into
	// normalized texture coordinates.
	UVRect(left, top, right, bottom int) RectF
}

// ImageTexture is a Texture backed by an *ebiten.Image.
type ImageTexture struct {
	img  *ebiten.Image
	key  any
	w, h int
}

// NewImageTexture wraps img. The texture does not take ownership; callers
// that want eviction should register the image with a TextureCache.
func NewImageTexture(img *ebiten.Image) *ImageTexture {
	b := img.Bounds()
	return &ImageTexture{img: img, w: b.Dx(), h: b.Dy()}
}

// Width returns the image width in pixels.
func (t *ImageTexture) Width() int { return t.w }

// Height returns the image height in pixels.
func (t *ImageTexture) Height() int { return t.h }

// UVRect converts a pixel rectangle into texture coordinates.
func (t *ImageTexture) UVRect(left, top, right, bottom int) RectF {
	return uvRect(t.w, t.h, left, top, right, bottom)
}

// Image returns the underlying ebiten image.
func (t *ImageTexture) Image() *ebiten.Image { return t.img }

// Key returns the cache key this texture was registered under, or nil.
func (t *ImageTexture) Key() any { return t.key }

// uvRect divides pixel edges by the texture size. A zero dimension yields
// zero coordinates on that axis rather than NaN.
func uvRect(w, h, left, top, right, bottom int) RectF {
	var r RectF
	if w > 0 {
		fw := float64(w)
		r.Left = float64(left) / fw
		r.Right = float64(right) / fw
	}
	if h > 0 {
		fh := float64(h)
		r.Top = float64(top) / fh
		r.Bottom = float64(bottom) / fh
	}
	return r
}
