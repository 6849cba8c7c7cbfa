package wgpu

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
	"github.com/gogpu/glapi/span"
)

// level is one uploaded mipmap level.
type level struct {
	tex    hal.Texture
	width  int
	height int
	format pixel.Format
}

type texture struct {
	levels [maxTextureLevels]*level
}

func (t *texture) destroy(device hal.Device) {
	for i, l := range t.levels {
		if l != nil {
			device.DestroyTexture(l.tex)
			t.levels[i] = nil
		}
	}
}

// open reports whether the context can still create GPU objects, recording
// INVALID_OPERATION when it cannot.
func (c *Context) open() bool {
	if c.closed {
		c.setError(glapi.INVALID_OPERATION)
		return false
	}
	return true
}

func (c *Context) genTextures(n int32, names []uint32) {
	if !c.open() {
		return
	}
	if n < 0 || int(n) > len(names) {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	for i := range names[:n] {
		for c.textures[c.next] != nil {
			c.next++
		}
		names[i] = c.next
		c.textures[c.next] = &texture{}
		c.next++
	}
}

func (c *Context) bindTexture(target glapi.Enum, name uint32) {
	if !c.open() {
		return
	}
	if target != glapi.TEXTURE_2D {
		c.setError(glapi.INVALID_ENUM)
		return
	}
	if c.textures[name] == nil {
		c.textures[name] = &texture{}
	}
	c.bound = name
}

func (c *Context) deleteTextures(n int32, names []uint32) {
	if !c.open() {
		return
	}
	if n < 0 || int(n) > len(names) {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	for _, name := range names[:n] {
		t := c.textures[name]
		if name == 0 || t == nil {
			continue
		}
		t.destroy(c.device)
		delete(c.textures, name)
		if c.bound == name {
			c.bound = 0
		}
	}
}

func internalFormatOK(f int32) bool {
	switch f {
	case 3, 4, glapi.RGB, glapi.RGBA, glapi.RGB8, glapi.RGBA8:
		return true
	}
	return false
}

func (c *Context) texImage2D(target glapi.Enum, lvl, ifmt, w, h, border int32, format, xtype glapi.Enum, pixels []byte) {
	if !c.open() {
		return
	}
	switch {
	case target != glapi.TEXTURE_2D:
		c.setError(glapi.INVALID_ENUM)
		return
	case lvl < 0 || lvl >= maxTextureLevels, w < 0, h < 0, border != 0, !internalFormatOK(ifmt):
		c.setError(glapi.INVALID_VALUE)
		return
	case w > c.maxSize>>lvl, h > c.maxSize>>lvl:
		c.setError(glapi.INVALID_VALUE)
		return
	}
	cf, ok := glapi.ClientFormat(format, xtype)
	if !ok || cf.IsIndexed() {
		c.setError(glapi.INVALID_ENUM)
		return
	}

	t := c.textures[c.bound]
	if old := t.levels[lvl]; old != nil {
		c.device.DestroyTexture(old.tex)
		t.levels[lvl] = nil
	}
	if w == 0 || h == 0 {
		return
	}

	uf := cf.UploadFormat()
	data, stride, err := uploadData(pixels, int(w), int(h), cf, uf)
	if err != nil {
		c.setError(glapi.INVALID_OPERATION)
		return
	}
	tex, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label: fmt.Sprintf("glapi_tex_%d_%d", c.bound, lvl),
		Size: hal.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        uf.TextureFormat(),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		glapi.Logger().Warn("wgpu: create texture failed", "error", err)
		c.setError(glapi.OUT_OF_MEMORY)
		return
	}
	if data != nil {
		c.queue.WriteTexture(
			&hal.ImageCopyTexture{
				Texture:  tex,
				MipLevel: 0,
			},
			data,
			&hal.ImageDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(stride),
				RowsPerImage: uint32(h),
			},
			&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		)
	}
	t.levels[lvl] = &level{tex: tex, width: int(w), height: int(h), format: uf}
}

// uploadData returns the bytes to upload for a w x h client image in cf,
// laid out in uf, and their row stride. Nil pixels define the level
// without data.
func uploadData(pixels []byte, w, h int, cf, uf pixel.Format) ([]byte, int, error) {
	if pixels == nil {
		return nil, 0, nil
	}
	src, err := span.FromRaw(pixels, w, h, glapi.ClientStride(w, cf), cf)
	if err != nil {
		return nil, 0, err
	}
	if cf == uf {
		return src.Pix[:glapi.ClientSize(w, h, cf)], src.Stride, nil
	}
	dst, err := span.New(w, h, uf)
	if err != nil {
		return nil, 0, err
	}
	row := make([]color.NRGBA, w)
	for y := 0; y < h; y++ {
		src.ReadRow(0, y, row)
		dst.WriteRow(0, y, row, nil)
	}
	return dst.Pix, dst.Stride, nil
}

// BoundTexture returns the name bound to TEXTURE_2D.
func (c *Context) BoundTexture() uint32 { return c.bound }

// TextureLevel reports the size and GPU format of an uploaded level.
func (c *Context) TextureLevel(name uint32, lvl int) (width, height int, format gputypes.TextureFormat, ok bool) {
	t := c.textures[name]
	if t == nil || lvl < 0 || lvl >= maxTextureLevels || t.levels[lvl] == nil {
		return 0, 0, gputypes.TextureFormatUndefined, false
	}
	l := t.levels[lvl]
	return l.width, l.height, l.format.TextureFormat(), true
}
