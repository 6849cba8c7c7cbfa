package swrast

import (
	"image/color"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
	"github.com/gogpu/glapi/span"
)

const (
	// maxTextureLevels bounds the mipmap level accepted by TexImage2D.
	maxTextureLevels = 14

	// maxTextureSize is the largest width or height of level 0. Level n
	// accepts maxTextureSize>>n.
	maxTextureSize = 1 << (maxTextureLevels - 1)
)

// texture stores mipmap levels as RGBA8888 images, row 0 at the bottom.
type texture struct {
	levels [maxTextureLevels]*span.Buffer
}

type textures struct {
	store map[uint32]*texture
	next  uint32
	bound uint32
}

func (t *textures) init() {
	// Name 0 is the default texture and always exists.
	*t = textures{store: map[uint32]*texture{0: {}}, next: 1}
}

func (c *Context) genTextures(n int32, names []uint32) {
	if !c.outsideBegin() {
		return
	}
	if n < 0 || int(n) > len(names) {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	t := &c.tex
	for i := range names[:n] {
		for t.store[t.next] != nil {
			t.next++
		}
		names[i] = t.next
		t.store[t.next] = &texture{}
		t.next++
	}
}

func (c *Context) bindTexture(target glapi.Enum, name uint32) {
	if !c.outsideBegin() {
		return
	}
	if target != glapi.TEXTURE_2D {
		c.setError(glapi.INVALID_ENUM)
		return
	}
	if c.tex.store[name] == nil {
		c.tex.store[name] = &texture{}
	}
	c.tex.bound = name
}

func (c *Context) deleteTextures(n int32, names []uint32) {
	if !c.outsideBegin() {
		return
	}
	if n < 0 || int(n) > len(names) {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	for _, name := range names[:n] {
		if name == 0 {
			continue
		}
		delete(c.tex.store, name)
		if c.tex.bound == name {
			c.tex.bound = 0
		}
	}
}

// internalFormatOK accepts the unsized and sized color formats plus the
// legacy component counts 3 and 4.
func internalFormatOK(f int32) bool {
	switch f {
	case 3, 4, glapi.RGB, glapi.RGBA, glapi.RGB8, glapi.RGBA8:
		return true
	}
	return false
}

func (c *Context) texImage2D(target glapi.Enum, level, ifmt, w, h, border int32, format, xtype glapi.Enum, pixels []byte) {
	if !c.outsideBegin() {
		return
	}
	switch {
	case target != glapi.TEXTURE_2D:
		c.setError(glapi.INVALID_ENUM)
		return
	case level < 0 || level >= maxTextureLevels, w < 0, h < 0, border != 0, !internalFormatOK(ifmt):
		c.setError(glapi.INVALID_VALUE)
		return
	case w > maxTextureSize>>level, h > maxTextureSize>>level:
		c.setError(glapi.INVALID_VALUE)
		return
	}
	cf, ok := glapi.ClientFormat(format, xtype)
	if !ok || cf.IsIndexed() {
		c.setError(glapi.INVALID_ENUM)
		return
	}

	tex := c.tex.store[c.tex.bound]
	if w == 0 || h == 0 {
		tex.levels[level] = nil
		return
	}
	img, err := span.New(int(w), int(h), pixel.FormatRGBA8888)
	if err != nil {
		c.setError(glapi.OUT_OF_MEMORY)
		return
	}
	if pixels != nil {
		src, err := span.FromRaw(pixels, int(w), int(h), glapi.ClientStride(int(w), cf), cf)
		if err != nil {
			c.setError(glapi.INVALID_OPERATION)
			return
		}
		row := make([]color.NRGBA, w)
		for y := 0; y < int(h); y++ {
			src.ReadRow(0, y, row)
			img.WriteRow(0, y, row, nil)
		}
	}
	tex.levels[level] = img
}

// TextureImage returns the image stored for a texture level, or nil. Row 0
// of the image is the bottom row, as uploaded.
func (c *Context) TextureImage(name uint32, level int) *span.Buffer {
	t := c.tex.store[name]
	if t == nil || level < 0 || level >= maxTextureLevels {
		return nil
	}
	return t.levels[level]
}

// BoundTexture returns the name bound to TEXTURE_2D.
func (c *Context) BoundTexture() uint32 { return c.tex.bound }
