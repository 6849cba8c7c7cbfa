package swrast

import (
	"math"

	"github.com/gogpu/glapi"
)

func (c *Context) setColor(r, g, b, a float32) {
	c.color = [4]float32{r, g, b, a}
}

func (c *Context) color4ub(r, g, b, a uint8) {
	c.color = [4]float32{
		float32(r) / 255,
		float32(g) / 255,
		float32(b) / 255,
		float32(a) / 255,
	}
}

func (c *Context) windowPos(x, y int32) {
	if !c.outsideBegin() {
		return
	}
	c.rasterX, c.rasterY = int(x), int(y)
}

func (c *Context) setClearColor(r, g, b, a float32) {
	if !c.outsideBegin() {
		return
	}
	c.clearColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

func (c *Context) setClearIndex(i float32) {
	if !c.outsideBegin() {
		return
	}
	c.clearIndex = uint32(int64(math.Floor(float64(i) + 0.5)))
}

func (c *Context) setColorMask(r, g, b, a bool) {
	if !c.outsideBegin() {
		return
	}
	c.colorMask = [4]bool{r, g, b, a}
}

func (c *Context) setIndexMask(m uint32) {
	if !c.outsideBegin() {
		return
	}
	c.indexMask = m
}

func (c *Context) setViewport(x, y, w, h int32) {
	if !c.outsideBegin() {
		return
	}
	if w < 0 || h < 0 {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	c.viewport = rect{int(x), int(y), int(w), int(h)}
}

func (c *Context) setScissor(x, y, w, h int32) {
	if !c.outsideBegin() {
		return
	}
	if w < 0 || h < 0 {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	c.scissor = rect{int(x), int(y), int(w), int(h)}
}

// capFlag returns the state flag for an Enable capability, or nil.
func (c *Context) capFlag(cp glapi.Enum) *bool {
	switch cp {
	case glapi.SCISSOR_TEST:
		return &c.scissorTest
	case glapi.DITHER:
		return &c.dither
	case glapi.TEXTURE_2D:
		return &c.texture2D
	}
	return nil
}

func (c *Context) setCap(cp glapi.Enum, on bool) {
	if !c.outsideBegin() {
		return
	}
	flag := c.capFlag(cp)
	if flag == nil {
		c.setError(glapi.INVALID_ENUM)
		return
	}
	*flag = on
}

func (c *Context) isEnabled(cp glapi.Enum) bool {
	if !c.outsideBegin() {
		return false
	}
	flag := c.capFlag(cp)
	if flag == nil {
		c.setError(glapi.INVALID_ENUM)
		return false
	}
	return *flag
}

func (c *Context) pixelZoom(x, y float32) {
	if !c.outsideBegin() {
		return
	}
	c.zoomX, c.zoomY = x, y
}
