package swrast

import (
	"image/color"
	"math"

	"github.com/gogpu/glapi"
)

func (c *Context) begin(mode glapi.Enum) {
	if c.inBegin {
		c.setError(glapi.INVALID_OPERATION)
		return
	}
	if mode > glapi.POLYGON {
		c.setError(glapi.INVALID_ENUM)
		return
	}
	c.inBegin = true
	c.mode = mode
	c.verts = c.verts[:0]
}

// vertex records a vertex in normalized device coordinates. Vertices outside
// Begin and End are ignored.
func (c *Context) vertex(x, y float32) {
	if !c.inBegin {
		return
	}
	c.verts = append(c.verts, vertex{x: x, y: y, color: toNRGBA(c.color), index: c.index})
}

func (c *Context) end() {
	if !c.inBegin {
		c.setError(glapi.INVALID_OPERATION)
		return
	}
	c.inBegin = false
	if c.mode == glapi.POINTS && len(c.verts) > 0 {
		c.drawPoints(c.verts)
	}
	c.verts = c.verts[:0]
}

// drawPoints writes one pixel per vertex. The viewport maps x and y from
// [-1, 1] to window coordinates; pixels outside the buffer or the scissor box
// are masked out.
func (c *Context) drawPoints(verts []vertex) {
	n := len(verts)
	xs := make([]int, n)
	ys := make([]int, n)
	mask := make([]bool, n)
	clip := c.drawRect()
	vp := c.viewport

	for i, v := range verts {
		wx := float64(vp.x) + (float64(v.x)+1)*float64(vp.w)/2
		wy := float64(vp.y) + (float64(v.y)+1)*float64(vp.h)/2
		if math.IsNaN(wx) || math.IsNaN(wy) {
			continue
		}
		px, py := int(math.Floor(wx)), int(math.Floor(wy))
		if !clip.contains(px, py) {
			continue
		}
		xs[i], ys[i] = px, c.bufferRow(py)
		mask[i] = true
	}

	if c.buf.IsIndexed() {
		c.pointsIndexed(verts, xs, ys, mask)
		return
	}
	c.pointsRGBA(verts, xs, ys, mask)
}

func (c *Context) pointsRGBA(verts []vertex, xs, ys []int, mask []bool) {
	if c.noColorMask() {
		return
	}
	vals := make([]color.NRGBA, len(verts))
	mono := true
	for i, v := range verts {
		vals[i] = v.color
		mono = mono && v.color == verts[0].color
	}

	if !c.fullColorMask() {
		old := make([]color.NRGBA, len(verts))
		c.buf.ReadScattered(xs, ys, old, mask)
		for i := range vals {
			vals[i] = c.maskColor(vals[i], old[i])
		}
		c.buf.WriteScattered(xs, ys, vals, mask)
		return
	}
	if mono {
		c.buf.WriteMonoScattered(xs, ys, vals[0], mask)
		return
	}
	c.buf.WriteScattered(xs, ys, vals, mask)
}

func (c *Context) pointsIndexed(verts []vertex, xs, ys []int, mask []bool) {
	idx := make([]uint32, len(verts))
	mono := true
	for i, v := range verts {
		idx[i] = v.index
		mono = mono && v.index == verts[0].index
	}
	if c.fullIndexMask() && mono {
		c.buf.WriteMonoIndexScattered(xs, ys, idx[0], mask)
		return
	}
	if !c.fullIndexMask() {
		old := make([]uint32, len(verts))
		c.buf.ReadIndexScattered(xs, ys, old, mask)
		for i := range idx {
			idx[i] = c.maskIndex(idx[i], old[i])
		}
	}
	c.buf.WriteIndexScattered(xs, ys, idx, mask)
}
