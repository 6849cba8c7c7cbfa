// Package span reads and writes horizontal runs and scattered sets of pixels
// in a caller-owned color buffer.
//
// A Buffer wraps a byte slice laid out in one pixel.Format. Every write
// operation accepts an optional mask: a nil mask writes every pixel, a
// non-nil mask writes exactly the pixels whose flag is set and leaves the
// others untouched. The buffer never takes ownership of its memory and
// callers are responsible for keeping coordinates inside the buffer; spans
// that run off the edge panic with an index out of range, like slices do.
//
// Rows are addressed with y = 0 at the top of the memory (the first row of
// Pix). GL-style bottom-up addressing is a concern of the rasterizer.
package span

import (
	"errors"
	"image/color"
	"math"

	"github.com/gogpu/glapi/pixel"
)

// Errors returned by New and FromRaw.
var (
	ErrInvalidDimensions = errors.New("span: invalid dimensions")
	ErrInvalidStride     = errors.New("span: stride smaller than a row")
	ErrDataTooSmall      = errors.New("span: pixel data too small")
)

// MaxBytes bounds the memory a Buffer may span. Larger sizes are rejected
// with ErrInvalidDimensions.
const MaxBytes = math.MaxInt32

// fits reports whether height rows of stride bytes, the last of them rowBytes
// long, stay within MaxBytes.
func fits(rowBytes, stride, height int) bool {
	return stride <= MaxBytes && height-1 <= (MaxBytes-rowBytes)/stride
}

// rowBytes returns the packed size of a row, or -1 if it exceeds MaxBytes.
func rowBytes(width int, format pixel.Format) int {
	if width > MaxBytes/format.BytesPerPixel() {
		return -1
	}
	return format.RowBytes(width)
}

// Buffer is a color buffer of Width x Height pixels of one format.
// Row y starts at Pix[y*Stride].
type Buffer struct {
	Pix    []byte
	Stride int
	Width  int
	Height int

	format pixel.Format
	spans  spans
}

// New allocates a zeroed buffer with rows packed back to back.
func New(width, height int, format pixel.Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, pixel.ErrUnsupportedFormat
	}
	stride := rowBytes(width, format)
	if stride < 0 || !fits(stride, stride, height) {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
		format: format,
		spans:  spansFor(format),
	}, nil
}

// FromRaw wraps existing memory. The buffer aliases pix; writes through the
// buffer are visible to the caller and vice versa.
func FromRaw(pix []byte, width, height, stride int, format pixel.Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, pixel.ErrUnsupportedFormat
	}
	rb := rowBytes(width, format)
	if rb < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < rb {
		return nil, ErrInvalidStride
	}
	if !fits(rb, stride, height) {
		return nil, ErrInvalidDimensions
	}
	if len(pix) < stride*(height-1)+rb {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		Pix:    pix,
		Stride: stride,
		Width:  width,
		Height: height,
		format: format,
		spans:  spansFor(format),
	}, nil
}

// Format returns the pixel format of the buffer.
func (b *Buffer) Format() pixel.Format { return b.format }

// IsIndexed reports whether the buffer stores color indices.
func (b *Buffer) IsIndexed() bool { return b.format.IsIndexed() }

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*b.format.BytesPerPixel()
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Clone returns a deep copy with tightly packed rows.
func (b *Buffer) Clone() *Buffer {
	c, _ := New(b.Width, b.Height, b.format)
	rb := b.format.RowBytes(b.Width)
	for y := 0; y < b.Height; y++ {
		copy(c.Pix[y*c.Stride:y*c.Stride+rb], b.Pix[y*b.Stride:])
	}
	return c
}

// WriteRow writes vals to the run of len(vals) pixels starting at (x, y).
func (b *Buffer) WriteRow(x, y int, vals []color.NRGBA, mask []bool) {
	b.spans.writeRow(b, x, y, vals, mask)
}

// WriteRowRGB writes RGB triples starting at (x, y). Alpha is stored as
// fully opaque on formats that have it.
func (b *Buffer) WriteRowRGB(x, y int, rgb [][3]uint8, mask []bool) {
	b.spans.writeRowRGB(b, x, y, rgb, mask)
}

// WriteMonoRow writes the single color c to n pixels starting at (x, y).
func (b *Buffer) WriteMonoRow(x, y, n int, c color.NRGBA, mask []bool) {
	b.spans.writeMonoRow(b, x, y, n, c, mask)
}

// WriteScattered writes vals[i] to (xs[i], ys[i]). When a position repeats,
// the last write wins.
func (b *Buffer) WriteScattered(xs, ys []int, vals []color.NRGBA, mask []bool) {
	b.spans.writeScattered(b, xs, ys, vals, mask)
}

// WriteMonoScattered writes c to every (xs[i], ys[i]).
func (b *Buffer) WriteMonoScattered(xs, ys []int, c color.NRGBA, mask []bool) {
	b.spans.writeMonoScattered(b, xs, ys, c, mask)
}

// ReadRow reads len(dst) pixels starting at (x, y).
func (b *Buffer) ReadRow(x, y int, dst []color.NRGBA) {
	b.spans.readRow(b, x, y, dst)
}

// ReadScattered reads (xs[i], ys[i]) into dst[i]. With a mask, entries whose
// flag is clear are left unchanged in dst.
func (b *Buffer) ReadScattered(xs, ys []int, dst []color.NRGBA, mask []bool) {
	b.spans.readScattered(b, xs, ys, dst, mask)
}

// WriteIndexRow writes color indices starting at (x, y).
func (b *Buffer) WriteIndexRow(x, y int, idx []uint32, mask []bool) {
	b.spans.writeIndexRow(b, x, y, idx, mask)
}

// WriteMonoIndexRow writes the index i to n pixels starting at (x, y).
func (b *Buffer) WriteMonoIndexRow(x, y, n int, i uint32, mask []bool) {
	b.spans.writeMonoIndexRow(b, x, y, n, i, mask)
}

// WriteIndexScattered writes idx[i] to (xs[i], ys[i]).
func (b *Buffer) WriteIndexScattered(xs, ys []int, idx []uint32, mask []bool) {
	b.spans.writeIndexScattered(b, xs, ys, idx, mask)
}

// WriteMonoIndexScattered writes the index i to every (xs[k], ys[k]).
func (b *Buffer) WriteMonoIndexScattered(xs, ys []int, i uint32, mask []bool) {
	b.spans.writeMonoIndexScattered(b, xs, ys, i, mask)
}

// ReadIndexRow reads len(dst) indices starting at (x, y).
func (b *Buffer) ReadIndexRow(x, y int, dst []uint32) {
	b.spans.readIndexRow(b, x, y, dst)
}

// ReadIndexScattered reads the indices at (xs[i], ys[i]) into dst[i].
func (b *Buffer) ReadIndexScattered(xs, ys []int, dst []uint32, mask []bool) {
	b.spans.readIndexScattered(b, xs, ys, dst, mask)
}
