package swrast

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/span"
)

// clientImage validates a client image description and wraps its memory in
// a span buffer. Client row 0 is the bottom row of the image. It returns
// false after recording an error, or for an empty image.
func (c *Context) clientImage(w, h int32, format, xtype glapi.Enum, pixels []byte) (*span.Buffer, bool) {
	if w < 0 || h < 0 {
		c.setError(glapi.INVALID_VALUE)
		return nil, false
	}
	cf, ok := glapi.ClientFormat(format, xtype)
	if !ok {
		c.setError(glapi.INVALID_ENUM)
		return nil, false
	}
	if cf.IsIndexed() != c.buf.IsIndexed() {
		c.setError(glapi.INVALID_OPERATION)
		return nil, false
	}
	if w == 0 || h == 0 {
		return nil, false
	}
	img, err := span.FromRaw(pixels, int(w), int(h), glapi.ClientStride(int(w), cf), cf)
	if err != nil {
		c.setError(glapi.INVALID_OPERATION)
		return nil, false
	}
	return img, true
}

func (c *Context) drawPixels(w, h int32, format, xtype glapi.Enum, pixels []byte) {
	if !c.outsideBegin() {
		return
	}
	src, ok := c.clientImage(w, h, format, xtype, pixels)
	if !ok {
		return
	}
	if c.zoomX == 1 && c.zoomY == 1 {
		c.copyRows(src, c.rasterX, c.rasterY)
		return
	}
	c.drawZoomed(src)
}

// maxZoomed caps a zoomed dimension so the window arithmetic stays in range.
const maxZoomed = 1 << 30

func zoomed(n int, f float32) int {
	z := math.Round(float64(n) * math.Abs(float64(f)))
	if z > maxZoomed {
		return maxZoomed
	}
	return int(z)
}

// drawZoomed scales src by the pixel zoom factors with nearest-neighbor
// sampling. Negative factors mirror the image to the left of or below the
// raster position. Only the part of the zoomed image inside the draw
// rectangle is scaled.
func (c *Context) drawZoomed(src *span.Buffer) {
	zw, zh := zoomed(src.Width, c.zoomX), zoomed(src.Height, c.zoomY)
	if zw == 0 || zh == 0 {
		return
	}
	x0, y0 := c.rasterX, c.rasterY
	if c.zoomX < 0 {
		x0 -= zw
	}
	if c.zoomY < 0 {
		y0 -= zh
	}
	clip := c.drawRect().intersect(rect{x0, y0, zw, zh})
	if clip.empty() {
		return
	}

	// Offset of the visible part inside the unmirrored zoomed image.
	ox, oy := clip.x-x0, clip.y-y0
	if c.zoomX < 0 {
		ox = zw - ox - clip.w
	}
	if c.zoomY < 0 {
		oy = zh - oy - clip.h
	}
	part, err := span.New(clip.w, clip.h, src.Format())
	if err != nil {
		c.setError(glapi.OUT_OF_MEMORY)
		return
	}
	dr := image.Rect(-ox, -oy, zw-ox, zh-oy)
	draw.NearestNeighbor.Scale(part, dr, src, src.Bounds(), draw.Src, nil)

	if c.zoomX < 0 {
		mirrorX(part)
	}
	if c.zoomY < 0 {
		mirrorY(part)
	}
	c.copyRows(part, clip.x, clip.y)
}

// copyRows writes src with its bottom-left pixel at window (x0, y0),
// clipped to the draw rectangle.
func (c *Context) copyRows(src *span.Buffer, x0, y0 int) {
	clip := c.drawRect().intersect(rect{x0, y0, src.Width, src.Height})
	if clip.empty() {
		return
	}
	sx := clip.x - x0
	n := clip.w

	if c.buf.IsIndexed() {
		idx := make([]uint32, n)
		var old []uint32
		if !c.fullIndexMask() {
			old = make([]uint32, n)
		}
		for wy := clip.y; wy < clip.y+clip.h; wy++ {
			y := c.bufferRow(wy)
			src.ReadIndexRow(sx, wy-y0, idx)
			if old != nil {
				c.buf.ReadIndexRow(clip.x, y, old)
				for i := range idx {
					idx[i] = c.maskIndex(idx[i], old[i])
				}
			}
			c.buf.WriteIndexRow(clip.x, y, idx, nil)
		}
		return
	}

	if c.noColorMask() {
		return
	}
	vals := make([]color.NRGBA, n)
	if !src.Format().HasAlpha() && c.fullColorMask() {
		rgb := make([][3]uint8, n)
		for wy := clip.y; wy < clip.y+clip.h; wy++ {
			src.ReadRow(sx, wy-y0, vals)
			for i, v := range vals {
				rgb[i] = [3]uint8{v.R, v.G, v.B}
			}
			c.buf.WriteRowRGB(clip.x, c.bufferRow(wy), rgb, nil)
		}
		return
	}

	var old []color.NRGBA
	if !c.fullColorMask() {
		old = make([]color.NRGBA, n)
	}
	for wy := clip.y; wy < clip.y+clip.h; wy++ {
		y := c.bufferRow(wy)
		src.ReadRow(sx, wy-y0, vals)
		if old != nil {
			c.buf.ReadRow(clip.x, y, old)
			for i := range vals {
				vals[i] = c.maskColor(vals[i], old[i])
			}
		}
		c.buf.WriteRow(clip.x, y, vals, nil)
	}
}

func (c *Context) readPixels(x, y, w, h int32, format, xtype glapi.Enum, pixels []byte) {
	if !c.outsideBegin() {
		return
	}
	dst, ok := c.clientImage(w, h, format, xtype, pixels)
	if !ok {
		return
	}
	// Pixels outside the color buffer are left untouched in client memory.
	r := rect{int(x), int(y), int(w), int(h)}.intersect(rect{0, 0, c.buf.Width, c.buf.Height})
	if r.empty() {
		return
	}
	dx := r.x - int(x)

	if c.buf.IsIndexed() {
		idx := make([]uint32, r.w)
		for wy := r.y; wy < r.y+r.h; wy++ {
			c.buf.ReadIndexRow(r.x, c.bufferRow(wy), idx)
			dst.WriteIndexRow(dx, wy-int(y), idx, nil)
		}
		return
	}
	vals := make([]color.NRGBA, r.w)
	for wy := r.y; wy < r.y+r.h; wy++ {
		c.buf.ReadRow(r.x, c.bufferRow(wy), vals)
		dst.WriteRow(dx, wy-int(y), vals, nil)
	}
}

// mirrorX reverses every row of b in place.
func mirrorX(b *span.Buffer) {
	bpp := b.Format().BytesPerPixel()
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Stride : y*b.Stride+b.Width*bpp]
		for i, j := 0, b.Width-1; i < j; i, j = i+1, j-1 {
			for k := 0; k < bpp; k++ {
				row[i*bpp+k], row[j*bpp+k] = row[j*bpp+k], row[i*bpp+k]
			}
		}
	}
}

// mirrorY reverses the row order of b in place.
func mirrorY(b *span.Buffer) {
	rb := b.Format().RowBytes(b.Width)
	tmp := make([]byte, rb)
	for i, j := 0, b.Height-1; i < j; i, j = i+1, j-1 {
		a := b.Pix[i*b.Stride : i*b.Stride+rb]
		z := b.Pix[j*b.Stride : j*b.Stride+rb]
		copy(tmp, a)
		copy(a, z)
		copy(z, tmp)
	}
}
