package quadra

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	log "github.com/sirupsen/logrus"
)

// atlasFrame is a named pixel rectangle on one atlas page.
type atlasFrame struct {
	page                     int
	left, top, width, height int
}

// Atlas maps frame names to regions of one or more page textures.
type Atlas struct {
	pages  []Texture
	frames map[string]atlasFrame
}

// Frame returns the named region in texture coordinates of its page.
func (a *Atlas) Frame(name string) (RectF, bool) {
	f, ok := a.lookup(name)
	if !ok {
		return RectF{}, false
	}
	p := a.pages[f.page]
	return p.UVRect(f.left, f.top, f.left+f.width, f.top+f.height), true
}

// Page returns the texture holding the named frame.
func (a *Atlas) Page(name string) (Texture, bool) {
	f, ok := a.lookup(name)
	if !ok {
		return nil, false
	}
	return a.pages[f.page], true
}

// Names returns every frame name in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewImage creates an image showing the named frame. It fails with
// ErrFrameNotFound for an unknown name or a frame whose page is missing.
func (a *Atlas) NewImage(name string) (*Image, error) {
	f, ok := a.lookup(name)
	if !ok {
		if globalDebug {
			logger.WithField("frame", name).Warn("quadra: atlas frame not found")
		}
		return nil, fmt.Errorf("%w: %q", ErrFrameNotFound, name)
	}
	img := NewImageFrom(a.pages[f.page])
	if err := img.SetFramePixels(f.left, f.top, f.width, f.height); err != nil {
		return nil, fmt.Errorf("quadra: atlas frame %q: %w", name, err)
	}
	return img, nil
}

func (a *Atlas) lookup(name string) (atlasFrame, bool) {
	f, ok := a.frames[name]
	if !ok || f.page < 0 || f.page >= len(a.pages) || isNilTexture(a.pages[f.page]) {
		return atlasFrame{}, false
	}
	return f, true
}

// isNilTexture reports whether t is nil or an interface holding a nil
// pointer, such as a (*ImageTexture)(nil) placed in a page slice.
func isNilTexture(t Texture) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// textures. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists). Trim offsets
// are ignored, and rotated frames are used as stored, so they appear rotated.
func LoadAtlas(jsonData []byte, pages []Texture) (*Atlas, error) {
	var head struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil {
		return nil, fmt.Errorf("quadra: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		pages:  pages,
		frames: make(map[string]atlasFrame),
	}

	switch {
	case head.Textures != nil:
		if err := parseArrayFormat(head.Textures, atlas); err != nil {
			return nil, err
		}
	case head.Frames != nil:
		if err := parseHashFrames(head.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("quadra: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	if globalDebug {
		logger.WithFields(log.Fields{"frames": len(atlas.frames), "pages": len(pages)}).
			Debug("quadra: atlas loaded")
	}
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("quadra: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.frames[name] = toAtlasFrame(f, page)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("quadra: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.frames[name] = toAtlasFrame(f, i)
		}
	}
	return nil
}

func toAtlasFrame(f jsonFrame, page int) atlasFrame {
	return atlasFrame{
		page:   page,
		left:   f.Frame.X,
		top:    f.Frame.Y,
		width:  f.Frame.W,
		height: f.Frame.H,
	}
}
