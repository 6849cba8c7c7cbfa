package swrast

import (
	"image/color"

	"github.com/gogpu/glapi"
)

const clearBits = glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT |
	glapi.STENCIL_BUFFER_BIT | glapi.ACCUM_BUFFER_BIT

// clear fills the color buffer inside the draw rectangle. The context has no
// depth, stencil or accumulation buffer, so those bits are accepted and
// ignored.
func (c *Context) clear(mask glapi.Bitfield) {
	if !c.outsideBegin() {
		return
	}
	if mask&^clearBits != 0 {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	if mask&glapi.COLOR_BUFFER_BIT == 0 {
		return
	}
	r := c.drawRect()
	if r.empty() {
		return
	}
	if c.buf.IsIndexed() {
		c.clearIndexed(r)
		return
	}
	c.clearRGBA(r)
}

func (c *Context) clearRGBA(r rect) {
	if c.noColorMask() {
		return
	}
	col := toNRGBA(c.clearColor)
	if c.fullColorMask() {
		c.pool.Rows(r.y, r.h, func(y0, y1 int) {
			for wy := y0; wy < y1; wy++ {
				c.buf.WriteMonoRow(r.x, c.bufferRow(wy), r.w, col, nil)
			}
		})
		return
	}

	c.pool.Rows(r.y, r.h, func(y0, y1 int) {
		row := make([]color.NRGBA, r.w)
		for wy := y0; wy < y1; wy++ {
			y := c.bufferRow(wy)
			c.buf.ReadRow(r.x, y, row)
			for i, old := range row {
				row[i] = c.maskColor(col, old)
			}
			c.buf.WriteRow(r.x, y, row, nil)
		}
	})
}

func (c *Context) clearIndexed(r rect) {
	if c.indexMask&c.indexBits() == 0 {
		return
	}
	if c.fullIndexMask() {
		c.pool.Rows(r.y, r.h, func(y0, y1 int) {
			for wy := y0; wy < y1; wy++ {
				c.buf.WriteMonoIndexRow(r.x, c.bufferRow(wy), r.w, c.clearIndex, nil)
			}
		})
		return
	}

	c.pool.Rows(r.y, r.h, func(y0, y1 int) {
		row := make([]uint32, r.w)
		for wy := y0; wy < y1; wy++ {
			y := c.bufferRow(wy)
			c.buf.ReadIndexRow(r.x, y, row)
			for i, old := range row {
				row[i] = c.maskIndex(c.clearIndex, old)
			}
			c.buf.WriteIndexRow(r.x, y, row, nil)
		}
	})
}
