package span

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Buffer)(nil)

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return b.format.Descriptor().Model()
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. Indexed buffers report the index as a gray
// level.
func (b *Buffer) At(x, y int) color.Color {
	if !b.InBounds(x, y) {
		return color.NRGBA{}
	}
	return b.NRGBAAt(x, y)
}

// NRGBAAt returns the color at (x, y) without bounds checks beyond the
// slice's own.
func (b *Buffer) NRGBAAt(x, y int) color.NRGBA {
	d := b.format.Descriptor()
	return d.Decode(d.Load(b.Pix[b.PixOffset(x, y):]))
}

// Set implements draw.Image. Points outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.InBounds(x, y) {
		return
	}
	d := b.format.Descriptor()
	var p uint32
	if d.IsIndexed() {
		p = d.EncodeIndex(uint32(color.GrayModel.Convert(c).(color.Gray).Y))
	} else {
		p = d.Encode(color.NRGBAModel.Convert(c).(color.NRGBA))
	}
	d.Store(b.Pix[b.PixOffset(x, y):], p)
}

// ToImage converts the buffer to an *image.NRGBA with the same orientation.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	row := make([]color.NRGBA, b.Width)
	for y := 0; y < b.Height; y++ {
		if b.IsIndexed() {
			for x := range row {
				row[x] = b.NRGBAAt(x, y)
			}
		} else {
			b.ReadRow(0, y, row)
		}
		o := y * img.Stride
		for x, c := range row {
			img.Pix[o+4*x+0] = c.R
			img.Pix[o+4*x+1] = c.G
			img.Pix[o+4*x+2] = c.B
			img.Pix[o+4*x+3] = c.A
		}
	}
	return img
}
