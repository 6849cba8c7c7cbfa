package swrast

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/exp/constraints"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/internal/parallel"
	"github.com/gogpu/glapi/pixel"
	"github.com/gogpu/glapi/span"
)

// ErrClosed is returned by operations on a closed Context.
var ErrClosed = errors.New("swrast: context closed")

// rect is a window-space rectangle with its origin at the bottom left.
type rect struct {
	x, y, w, h int
}

// vertex is a point submitted between Begin and End with the color or index
// current at the time.
type vertex struct {
	x, y  float32
	color color.NRGBA
	index uint32
}

// Context is a software GL context rendering into a span.Buffer.
type Context struct {
	buf      *span.Buffer
	yUp      bool
	renderer string
	pool     *parallel.Pool // nil renders on the calling goroutine

	exec   *glapi.Table
	save   *glapi.Table
	active *glapi.Table
	closed bool

	err glapi.Enum

	// Current vertex attributes.
	color [4]float32
	index uint32

	clearColor [4]float32
	clearIndex uint32
	colorMask  [4]bool
	indexMask  uint32

	viewport rect
	scissor  rect

	scissorTest bool
	dither      bool
	texture2D   bool

	rasterX, rasterY int
	zoomX, zoomY     float32

	inBegin bool
	mode    glapi.Enum
	verts   []vertex

	lists lists
	tex   textures
}

// NewContext creates a context with a width x height color buffer of the
// given format. All state starts at the GL defaults: black clear color,
// white current color, full-buffer viewport and scissor, no error.
func NewContext(width, height int, format pixel.Format, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf := o.buffer
	if buf == nil {
		var err error
		buf, err = span.New(width, height, format)
		if err != nil {
			return nil, fmt.Errorf("swrast: color buffer: %w", err)
		}
	}

	c := &Context{
		buf:       buf,
		yUp:       o.yUp,
		renderer:  o.renderer,
		color:     [4]float32{1, 1, 1, 1},
		index:     1,
		colorMask: [4]bool{true, true, true, true},
		indexMask: ^uint32(0),
		viewport:  rect{0, 0, buf.Width, buf.Height},
		scissor:   rect{0, 0, buf.Width, buf.Height},
		zoomX:     1,
		zoomY:     1,
	}
	if o.workers > 1 {
		c.pool = parallel.NewPool(o.workers)
	}
	c.lists.init()
	c.tex.init()

	c.exec = glapi.Build(c.execFuncs(), glapi.WithName("swrast"))
	c.save = glapi.Build(c.saveFuncs(), glapi.WithName("swrast-save"), glapi.WithFallback(c.exec))
	c.active = c.exec

	glapi.Logger().Debug("swrast: context created",
		"width", buf.Width, "height", buf.Height, "format", buf.Format().String())
	return c, nil
}

// Dispatch returns the table to bind for this context. It is the save table
// while a display list is being compiled and the exec table otherwise, so
// callers holding a table directly must fetch it again after NewList and
// EndList.
func (c *Context) Dispatch() *glapi.Table { return c.active }

// Exec returns the immediate-execution table.
func (c *Context) Exec() *glapi.Table { return c.exec }

// Buffer returns the color buffer.
func (c *Context) Buffer() *span.Buffer { return c.buf }

// MakeCurrent binds the context to the calling thread. The goroutine must be
// locked to its thread.
func (c *Context) MakeCurrent() error {
	if c.closed {
		return ErrClosed
	}
	glapi.SetCurrent(c.active)
	return nil
}

// IsCurrent reports whether the context is bound to the calling thread.
func (c *Context) IsCurrent() bool {
	cur := glapi.Current()
	return cur == c.exec || cur == c.save
}

// Close releases display lists and textures and unbinds the context from the
// calling thread if it is bound there. Close is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	if c.IsCurrent() {
		glapi.ReleaseCurrent()
	}
	c.lists.init()
	c.tex.init()
	c.pool.Close()
	c.pool = nil
	c.closed = true
}

// setError records e unless an earlier error is still pending.
func (c *Context) setError(e glapi.Enum) {
	if c.err == glapi.NO_ERROR {
		c.err = e
	}
}

// outsideBegin records INVALID_OPERATION and returns false when called
// between Begin and End.
func (c *Context) outsideBegin() bool {
	if c.inBegin {
		c.setError(glapi.INVALID_OPERATION)
		return false
	}
	return true
}

// bufferRow maps a window y coordinate to a row of the color buffer.
func (c *Context) bufferRow(wy int) int {
	if c.yUp {
		return wy
	}
	return c.buf.Height - 1 - wy
}

// drawRect returns the window rectangle writes are limited to.
func (c *Context) drawRect() rect {
	r := rect{0, 0, c.buf.Width, c.buf.Height}
	if c.scissorTest {
		r = r.intersect(c.scissor)
	}
	return r
}

func (r rect) intersect(o rect) rect {
	x0, y0 := max(r.x, o.x), max(r.y, o.y)
	x1, y1 := min(r.x+r.w, o.x+o.w), min(r.y+r.h, o.y+o.h)
	if x1 <= x0 || y1 <= y0 {
		return rect{}
	}
	return rect{x0, y0, x1 - x0, y1 - y0}
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

func clamp01[F constraints.Float](v F) F {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// toByte converts a normalized channel to 0..255 with rounding.
func toByte[F constraints.Float](v F) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func toNRGBA(v [4]float32) color.NRGBA {
	return color.NRGBA{R: toByte(v[0]), G: toByte(v[1]), B: toByte(v[2]), A: toByte(v[3])}
}

// fullColorMask reports whether every channel is writable.
func (c *Context) fullColorMask() bool {
	return c.colorMask == [4]bool{true, true, true, true}
}

// noColorMask reports whether no channel is writable.
func (c *Context) noColorMask() bool {
	return c.colorMask == [4]bool{}
}

// maskColor keeps the channels of old that the color mask protects.
func (c *Context) maskColor(src, old color.NRGBA) color.NRGBA {
	if !c.colorMask[0] {
		src.R = old.R
	}
	if !c.colorMask[1] {
		src.G = old.G
	}
	if !c.colorMask[2] {
		src.B = old.B
	}
	if !c.colorMask[3] {
		src.A = old.A
	}
	return src
}

// indexBits returns the bits of an index the buffer can store.
func (c *Context) indexBits() uint32 {
	return c.buf.Format().Descriptor().Index.Max()
}

func (c *Context) fullIndexMask() bool {
	bits := c.indexBits()
	return c.indexMask&bits == bits
}

func (c *Context) maskIndex(src, old uint32) uint32 {
	return old&^c.indexMask | src&c.indexMask
}
