package swrast

import (
	"github.com/gogpu/glapi"
)

// execFuncs returns the immediate-mode implementation of every operation
// the renderer supports.
func (c *Context) execFuncs() glapi.Funcs {
	return glapi.Funcs{
		NewList:     c.newList,
		EndList:     c.endList,
		CallList:    c.callList,
		GenLists:    c.genLists,
		DeleteLists: c.deleteLists,

		Begin:       c.begin,
		End:         c.end,
		Vertex2f:    func(x, y float32) { c.vertex(x, y) },
		Vertex3f:    func(x, y, _ float32) { c.vertex(x, y) },
		Color3f:     func(r, g, b float32) { c.setColor(r, g, b, 1) },
		Color4ub:    c.color4ub,
		Indexi:      func(i int32) { c.index = uint32(i) },
		WindowPos2i: c.windowPos,

		Clear:      c.clear,
		ClearColor: c.setClearColor,
		ClearIndex: c.setClearIndex,
		ColorMask:  c.setColorMask,
		IndexMask:  c.setIndexMask,
		Viewport:   c.setViewport,
		Scissor:    c.setScissor,
		Enable:     func(cp glapi.Enum) { c.setCap(cp, true) },
		Disable:    func(cp glapi.Enum) { c.setCap(cp, false) },
		IsEnabled:  c.isEnabled,

		PixelZoom:  c.pixelZoom,
		DrawPixels: c.drawPixels,
		ReadPixels: c.readPixels,

		GenTextures:    c.genTextures,
		BindTexture:    c.bindTexture,
		DeleteTextures: c.deleteTextures,
		TexImage2D:     c.texImage2D,

		GetError:  c.getError,
		GetString: c.getString,
		Flush:     func() { c.outsideBegin() },
		Finish:    func() { c.outsideBegin() },
	}
}

// saveFuncs returns the display list compilation implementation of the
// listable operations. Every other slot falls back to exec.
func (c *Context) saveFuncs() glapi.Funcs {
	e := c.execFuncs()
	return glapi.Funcs{
		CallList: func(list uint32) { c.compile(func() { e.CallList(list) }) },

		Begin:       func(mode glapi.Enum) { c.compile(func() { e.Begin(mode) }) },
		End:         func() { c.compile(e.End) },
		Vertex2f:    func(x, y float32) { c.compile(func() { e.Vertex2f(x, y) }) },
		Vertex3f:    func(x, y, z float32) { c.compile(func() { e.Vertex3f(x, y, z) }) },
		Color3f:     func(r, g, b float32) { c.compile(func() { e.Color3f(r, g, b) }) },
		Color4ub:    func(r, g, b, a uint8) { c.compile(func() { e.Color4ub(r, g, b, a) }) },
		Indexi:      func(i int32) { c.compile(func() { e.Indexi(i) }) },
		WindowPos2i: func(x, y int32) { c.compile(func() { e.WindowPos2i(x, y) }) },

		Clear:      func(mask glapi.Bitfield) { c.compile(func() { e.Clear(mask) }) },
		ClearColor: func(r, g, b, a float32) { c.compile(func() { e.ClearColor(r, g, b, a) }) },
		ClearIndex: func(i float32) { c.compile(func() { e.ClearIndex(i) }) },
		ColorMask:  func(r, g, b, a bool) { c.compile(func() { e.ColorMask(r, g, b, a) }) },
		IndexMask:  func(m uint32) { c.compile(func() { e.IndexMask(m) }) },
		Viewport:   func(x, y, w, h int32) { c.compile(func() { e.Viewport(x, y, w, h) }) },
		Scissor:    func(x, y, w, h int32) { c.compile(func() { e.Scissor(x, y, w, h) }) },
		Enable:     func(cp glapi.Enum) { c.compile(func() { e.Enable(cp) }) },
		Disable:    func(cp glapi.Enum) { c.compile(func() { e.Disable(cp) }) },

		PixelZoom: func(x, y float32) { c.compile(func() { e.PixelZoom(x, y) }) },
		DrawPixels: func(w, h int32, format, xtype glapi.Enum, pixels []byte) {
			// Client memory is unpacked at compile time.
			p := append([]byte(nil), pixels...)
			c.compile(func() { e.DrawPixels(w, h, format, xtype, p) })
		},

		BindTexture: func(target glapi.Enum, tex uint32) { c.compile(func() { e.BindTexture(target, tex) }) },
		TexImage2D: func(target glapi.Enum, level, ifmt, w, h, border int32, format, xtype glapi.Enum, pixels []byte) {
			var p []byte
			if pixels != nil {
				p = append([]byte(nil), pixels...)
			}
			c.compile(func() { e.TexImage2D(target, level, ifmt, w, h, border, format, xtype, p) })
		},
	}
}

// getError returns and clears the pending error.
func (c *Context) getError() glapi.Enum {
	if !c.outsideBegin() {
		return glapi.NO_ERROR
	}
	e := c.err
	c.err = glapi.NO_ERROR
	return e
}

func (c *Context) getString(name glapi.Enum) string {
	if !c.outsideBegin() {
		return ""
	}
	switch name {
	case glapi.VENDOR:
		return "gogpu"
	case glapi.RENDERER:
		return c.renderer
	case glapi.VERSION:
		return "1.1 glapi"
	case glapi.EXTENSIONS:
		return "GL_EXT_bgra GL_ARB_window_pos"
	}
	c.setError(glapi.INVALID_ENUM)
	return ""
}
