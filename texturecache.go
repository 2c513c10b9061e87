package quadra

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureCache owns textures and hands out non-owning handles to them.
// Any comparable value can be a key: an asset path, an enum, a Color.
//
// Images keep the handle they were given; evicting a texture here does not
// reach into those images, so evict only textures nothing draws anymore.
type TextureCache struct {
	textures map[any]*ImageTexture
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[any]*ImageTexture)}
}

// Add registers img under key and returns its handle. An existing texture
// under the same key is replaced and deallocated.
func (c *TextureCache) Add(key any, img *ebiten.Image) *ImageTexture {
	c.Remove(key)
	t := NewImageTexture(img)
	t.key = key
	c.textures[key] = t
	return t
}

// Get returns the texture registered under key.
func (c *TextureCache) Get(key any) (*ImageTexture, bool) {
	t, ok := c.textures[key]
	return t, ok
}

// Contains reports whether key is registered.
func (c *TextureCache) Contains(key any) bool {
	_, ok := c.textures[key]
	return ok
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// Solid returns a 1x1 texture filled with col, creating it on first use.
// Stretch an image of it with Scale for solid rectangles.
func (c *TextureCache) Solid(col Color) *ImageTexture {
	if t, ok := c.textures[col]; ok {
		return t
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(color.NRGBA{
		R: uint8(col.R*255 + 0.5),
		G: uint8(col.G*255 + 0.5),
		B: uint8(col.B*255 + 0.5),
		A: uint8(col.A*255 + 0.5),
	})
	return c.Add(col, img)
}

// Remove evicts and deallocates the texture under key. No-op if absent.
func (c *TextureCache) Remove(key any) {
	t, ok := c.textures[key]
	if !ok {
		return
	}
	delete(c.textures, key)
	t.img.Deallocate()
}

// Clear evicts and deallocates every texture.
func (c *TextureCache) Clear() {
	for key := range c.textures {
		c.Remove(key)
	}
}
