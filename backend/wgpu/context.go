package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glapi"
)

// maxTextureLevels bounds the mipmap level accepted by TexImage2D.
const maxTextureLevels = 14

// Context is a texture driver context. It owns the GPU textures created
// through its table. A Context is used from one thread at a time.
type Context struct {
	device hal.Device
	queue  hal.Queue

	table    *glapi.Table
	renderer string
	err      glapi.Enum

	// maxSize is the largest level 0 width or height.
	maxSize int32

	textures map[uint32]*texture
	next     uint32
	bound    uint32
	closed   bool
}

func newContext(device hal.Device, queue hal.Queue, renderer string) *Context {
	c := &Context{
		device:   device,
		queue:    queue,
		renderer: renderer,
		maxSize:  int32(min(gputypes.DefaultLimits().MaxTextureDimension2D, 1<<(maxTextureLevels-1))),
		textures: map[uint32]*texture{0: {}},
		next:     1,
	}
	c.table = glapi.Build(glapi.Funcs{
		GenTextures:    c.genTextures,
		BindTexture:    c.bindTexture,
		DeleteTextures: c.deleteTextures,
		TexImage2D:     c.texImage2D,
		GetError:       c.getError,
		GetString:      c.getString,
		Flush:          func() {},
		Finish:         func() {},
	}, glapi.WithName("wgpu"))
	return c
}

// Dispatch returns the context's table.
func (c *Context) Dispatch() *glapi.Table { return c.table }

// Close destroys every texture the context created and unbinds the table
// from the calling thread if it is bound there. Close is idempotent. Texture
// calls through the table after Close record INVALID_OPERATION.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if glapi.Current() == c.table {
		glapi.ReleaseCurrent()
	}
	for _, t := range c.textures {
		t.destroy(c.device)
	}
	c.textures = map[uint32]*texture{0: {}}
	c.bound = 0
}

// setError records e unless an error is already pending.
func (c *Context) setError(e glapi.Enum) {
	if c.err == glapi.NO_ERROR {
		c.err = e
	}
}

func (c *Context) getError() glapi.Enum {
	e := c.err
	c.err = glapi.NO_ERROR
	return e
}

func (c *Context) getString(name glapi.Enum) string {
	switch name {
	case glapi.VENDOR:
		return "gogpu"
	case glapi.RENDERER:
		return c.renderer
	case glapi.VERSION:
		return "1.1 glapi"
	case glapi.EXTENSIONS:
		return "GL_EXT_bgra"
	}
	c.setError(glapi.INVALID_ENUM)
	return ""
}
