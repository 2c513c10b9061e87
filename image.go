package quadra

import "fmt"

// cacheState tracks whether an Image's vertex cache has diverged from the
// contents of its vertex buffer.
type cacheState uint8

const (
	cacheClean cacheState = iota // vertices match the last buffer write
	cacheDirty                   // vertices must be rebuilt and uploaded before drawing
)

// floatsPerQuad is 4 corners of (x, y, u, v).
const floatsPerQuad = 16

// Image draws a rectangular region of a texture as a single quad.
//
// The region (the frame) is stored in texture coordinates and determines the
// image's Width and Height in pixels. Geometry is rebuilt lazily: any change
// to the texture, frame, or flips marks the vertex cache dirty, and the next
// Draw rebuilds it and either allocates the vertex buffer or updates it in
// place. Drawing an unchanged image uploads nothing.
//
// Frames are not validated. Inverted or out-of-range rectangles produce
// mirrored or wrapped output rather than errors.
type Image struct {
	Visual

	texture Texture
	frame   RectF

	flipHorizontal bool
	flipVertical   bool

	vertices [floatsPerQuad]float32
	state    cacheState
	buffer   VertexBuffer
}

// NewImage creates an empty image: no texture, zero size. It draws nothing
// until a texture is set.
func NewImage() *Image {
	img := &Image{}
	img.Visual.init(0, 0, 0, 0)
	return img
}

// NewImageFrom creates an image showing the whole of tex.
func NewImageFrom(tex Texture) *Image {
	img := NewImage()
	img.SetTexture(tex)
	return img
}

// NewImageRegion creates an image showing the pixel rectangle
// (left, top, width, height) of tex.
func NewImageRegion(tex Texture, left, top, width, height int) (*Image, error) {
	img := NewImageFrom(tex)
	if err := img.SetFramePixels(left, top, width, height); err != nil {
		return nil, err
	}
	return img, nil
}

// CopyImage creates an image that shows the same texture region as src.
// See CopyFrom for what is copied.
func CopyImage(src *Image) *Image {
	img := NewImage()
	img.CopyFrom(src)
	return img
}

// Texture returns the bound texture, or nil.
func (i *Image) Texture() Texture {
	return i.texture
}

// SetTexture binds tex and resets the frame to the whole texture. A nil
// texture is accepted; the image then skips drawing until a texture is set.
func (i *Image) SetTexture(tex Texture) {
	i.texture = tex
	i.frame = FullFrame
	i.updateSize()
	i.markDirty()
}

// SetFrame maps the texture region r, given in texture coordinates, and
// resizes the image to match. Requires a bound texture.
func (i *Image) SetFrame(r RectF) error {
	if i.texture == nil {
		return fmt.Errorf("quadra: set frame without texture: %w", ErrInvalidState)
	}
	i.frame = r
	i.updateSize()
	i.markDirty()
	return nil
}

// SetFramePixels maps the pixel rectangle (left, top, width, height) of the
// bound texture. Requires a bound texture.
func (i *Image) SetFramePixels(left, top, width, height int) error {
	if i.texture == nil {
		return fmt.Errorf("quadra: set pixel frame without texture: %w", ErrInvalidState)
	}
	return i.SetFrame(i.texture.UVRect(left, top, left+width, top+height))
}

// Frame returns a copy of the current frame in texture coordinates.
func (i *Image) Frame() RectF {
	return i.frame
}

// CopyFrom makes i show the same texture region as other: texture, frame,
// size, and scale are copied. Flip flags and the vertex buffer are not.
func (i *Image) CopyFrom(other *Image) {
	i.texture = other.texture
	i.frame = other.frame
	i.Width = other.Width
	i.Height = other.Height
	i.Scale = other.Scale
	i.markDirty()
}

// FlipHorizontal reports whether the texture is mirrored left to right.
func (i *Image) FlipHorizontal() bool { return i.flipHorizontal }

// SetFlipHorizontal mirrors the texture left to right. Positions are not
// affected; only texture coordinates swap.
func (i *Image) SetFlipHorizontal(flip bool) {
	if i.flipHorizontal == flip {
		return
	}
	i.flipHorizontal = flip
	i.markDirty()
}

// FlipVertical reports whether the texture is mirrored top to bottom.
func (i *Image) FlipVertical() bool { return i.flipVertical }

// SetFlipVertical mirrors the texture top to bottom.
func (i *Image) SetFlipVertical(flip bool) {
	if i.flipVertical == flip {
		return
	}
	i.flipVertical = flip
	i.markDirty()
}

// IsDirty reports whether the next Draw will rebuild and upload geometry.
func (i *Image) IsDirty() bool {
	return i.state == cacheDirty
}

// Vertices returns a copy of the vertex cache as of the last rebuild.
func (i *Image) Vertices() [floatsPerQuad]float32 {
	return i.vertices
}

func (i *Image) markDirty() {
	i.state = cacheDirty
}

func (i *Image) updateSize() {
	if i.texture == nil {
		i.Width, i.Height = 0, 0
		return
	}
	i.Width = i.frame.Width() * float64(i.texture.Width())
	i.Height = i.frame.Height() * float64(i.texture.Height())
}

// updateVertices rebuilds the vertex cache. Corner order is fixed:
// top-left, top-right, bottom-right, bottom-left. Flips only permute which
// frame edge each corner samples.
func (i *Image) updateVertices() {
	w := float32(i.Width)
	h := float32(i.Height)

	left, right := float32(i.frame.Left), float32(i.frame.Right)
	if i.flipHorizontal {
		left, right = right, left
	}
	top, bottom := float32(i.frame.Top), float32(i.frame.Bottom)
	if i.flipVertical {
		top, bottom = bottom, top
	}

	i.vertices = [floatsPerQuad]float32{
		0, 0, left, top,
		w, 0, right, top,
		w, h, right, bottom,
		0, h, left, bottom,
	}
}

// Draw submits the quad to b. Geometry is rebuilt and uploaded only when it
// changed since the last Draw. Images without a texture, and images that
// have never had geometry, are skipped without any backend calls.
func (i *Image) Draw(b Backend) {
	if i.destroyed || i.texture == nil || (i.state == cacheClean && i.buffer == nil) {
		return
	}

	i.Visual.Draw(b)

	if i.state == cacheDirty {
		i.updateVertices()
		if i.buffer == nil {
			i.buffer = b.NewVertexBuffer(i.vertices[:])
		} else {
			i.buffer.Update(i.vertices[:])
		}
		i.state = cacheClean
	}

	b.BindTexture(i.texture)
	b.SetCamera(i.Camera())
	b.SetModel(i.Matrix())
	l := i.lighting()
	b.Lighting(l[0], l[1], l[2], l[3], l[4], l[5], l[6], l[7])
	b.DrawQuad(i.buffer)
}

// Destroy releases the vertex buffer and detaches the image. Safe to call
// more than once; the buffer is deleted at most once.
func (i *Image) Destroy() {
	if i.buffer != nil {
		i.buffer.Delete()
		i.buffer = nil
	}
	i.Visual.Destroy()
}
