package span

import "image/color"

type spans interface {
	writeRow(b *Buffer, x, y int, vals []color.NRGBA, mask []bool)
	writeRowRGB(b *Buffer, x, y int, rgb [][3]uint8, mask []bool)
	writeMonoRow(b *Buffer, x, y, n int, c color.NRGBA, mask []bool)
	writeScattered(b *Buffer, xs, ys []int, vals []color.NRGBA, mask []bool)
	writeMonoScattered(b *Buffer, xs, ys []int, c color.NRGBA, mask []bool)
	readRow(b *Buffer, x, y int, dst []color.NRGBA)
	readScattered(b *Buffer, xs, ys []int, dst []color.NRGBA, mask []bool)

	writeIndexRow(b *Buffer, x, y int, idx []uint32, mask []bool)
	writeMonoIndexRow(b *Buffer, x, y, n int, i uint32, mask []bool)
	writeIndexScattered(b *Buffer, xs, ys []int, idx []uint32, mask []bool)
	writeMonoIndexScattered(b *Buffer, xs, ys []int, i uint32, mask []bool)
	readIndexRow(b *Buffer, x, y int, dst []uint32)
	readIndexScattered(b *Buffer, xs, ys []int, dst []uint32, mask []bool)
}

// codecSpans implements every span operation once, parameterized by the
// pixel codec. Instantiating it per codec lets the compiler inline the
// per-pixel pack and unpack into each loop.
type codecSpans[C codec] struct {
	c C
}

// row returns the bytes of the n pixels starting at (x, y).
func (s codecSpans[C]) row(b *Buffer, x, y, n int) []byte {
	off := b.PixOffset(x, y)
	return b.Pix[off : off+n*s.c.size()]
}

func (s codecSpans[C]) writeRow(b *Buffer, x, y int, vals []color.NRGBA, mask []bool) {
	n := s.c.size()
	pix := s.row(b, x, y, len(vals))
	if mask == nil {
		for i, v := range vals {
			s.c.put(pix[i*n:], v)
		}
		return
	}
	for i, v := range vals {
		if mask[i] {
			s.c.put(pix[i*n:], v)
		}
	}
}

func (s codecSpans[C]) writeRowRGB(b *Buffer, x, y int, rgb [][3]uint8, mask []bool) {
	n := s.c.size()
	pix := s.row(b, x, y, len(rgb))
	if mask == nil {
		for i, v := range rgb {
			s.c.put(pix[i*n:], color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff})
		}
		return
	}
	for i, v := range rgb {
		if mask[i] {
			s.c.put(pix[i*n:], color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff})
		}
	}
}

func (s codecSpans[C]) writeMonoRow(b *Buffer, x, y, count int, c color.NRGBA, mask []bool) {
	var px [4]byte
	s.c.put(px[:], c)
	n := s.c.size()
	pix := s.row(b, x, y, count)
	if mask == nil {
		for i := 0; i < count; i++ {
			copy(pix[i*n:i*n+n], px[:n])
		}
		return
	}
	for i := 0; i < count; i++ {
		if mask[i] {
			copy(pix[i*n:i*n+n], px[:n])
		}
	}
}

func (s codecSpans[C]) writeScattered(b *Buffer, xs, ys []int, vals []color.NRGBA, mask []bool) {
	for i, v := range vals {
		if mask != nil && !mask[i] {
			continue
		}
		s.c.put(b.Pix[b.PixOffset(xs[i], ys[i]):], v)
	}
}

func (s codecSpans[C]) writeMonoScattered(b *Buffer, xs, ys []int, c color.NRGBA, mask []bool) {
	var px [4]byte
	s.c.put(px[:], c)
	n := s.c.size()
	for i := range xs {
		if mask != nil && !mask[i] {
			continue
		}
		off := b.PixOffset(xs[i], ys[i])
		copy(b.Pix[off:off+n], px[:n])
	}
}

func (s codecSpans[C]) readRow(b *Buffer, x, y int, dst []color.NRGBA) {
	n := s.c.size()
	pix := s.row(b, x, y, len(dst))
	for i := range dst {
		dst[i] = s.c.get(pix[i*n:])
	}
}

func (s codecSpans[C]) readScattered(b *Buffer, xs, ys []int, dst []color.NRGBA, mask []bool) {
	for i := range dst {
		if mask != nil && !mask[i] {
			continue
		}
		dst[i] = s.c.get(b.Pix[b.PixOffset(xs[i], ys[i]):])
	}
}

func (s codecSpans[C]) writeIndexRow(b *Buffer, x, y int, idx []uint32, mask []bool) {
	n := s.c.size()
	pix := s.row(b, x, y, len(idx))
	if mask == nil {
		for i, v := range idx {
			s.c.putIndex(pix[i*n:], v)
		}
		return
	}
	for i, v := range idx {
		if mask[i] {
			s.c.putIndex(pix[i*n:], v)
		}
	}
}

func (s codecSpans[C]) writeMonoIndexRow(b *Buffer, x, y, count int, v uint32, mask []bool) {
	var px [4]byte
	s.c.putIndex(px[:], v)
	n := s.c.size()
	pix := s.row(b, x, y, count)
	if mask == nil {
		for i := 0; i < count; i++ {
			copy(pix[i*n:i*n+n], px[:n])
		}
		return
	}
	for i := 0; i < count; i++ {
		if mask[i] {
			copy(pix[i*n:i*n+n], px[:n])
		}
	}
}

func (s codecSpans[C]) writeIndexScattered(b *Buffer, xs, ys []int, idx []uint32, mask []bool) {
	for i, v := range idx {
		if mask != nil && !mask[i] {
			continue
		}
		s.c.putIndex(b.Pix[b.PixOffset(xs[i], ys[i]):], v)
	}
}

func (s codecSpans[C]) writeMonoIndexScattered(b *Buffer, xs, ys []int, v uint32, mask []bool) {
	var px [4]byte
	s.c.putIndex(px[:], v)
	n := s.c.size()
	for i := range xs {
		if mask != nil && !mask[i] {
			continue
		}
		off := b.PixOffset(xs[i], ys[i])
		copy(b.Pix[off:off+n], px[:n])
	}
}

func (s codecSpans[C]) readIndexRow(b *Buffer, x, y int, dst []uint32) {
	n := s.c.size()
	pix := s.row(b, x, y, len(dst))
	for i := range dst {
		dst[i] = s.c.getIndex(pix[i*n:])
	}
}

func (s codecSpans[C]) readIndexScattered(b *Buffer, xs, ys []int, dst []uint32, mask []bool) {
	for i := range dst {
		if mask != nil && !mask[i] {
			continue
		}
		dst[i] = s.c.getIndex(b.Pix[b.PixOffset(xs[i], ys[i]):])
	}
}
