package pixel

import "image/color"

// pack quantizes an 8-bit value to the field width, rounding to the nearest
// level, and moves it into position.
func (c Channel) pack(v uint8) uint32 {
	switch c.Bits {
	case 0:
		return 0
	case 8:
		return uint32(v) << c.Shift
	}
	m := c.Max()
	return ((uint32(v)*m + 127) / 255) << c.Shift
}

// unpack extracts the field and rescales it to 0..255. Narrow fields are
// scaled by 255/max with rounding so that the top level maps to 255 exactly.
func (c Channel) unpack(p uint32) uint8 {
	switch c.Bits {
	case 0:
		return 0
	case 8:
		return uint8(p >> c.Shift)
	}
	m := c.Max()
	v := (p >> c.Shift) & m
	return uint8((v*255 + m/2) / m)
}

// Encode packs c into the descriptor's pixel word. The result fits in
// BytesPerPixel bytes. Formats without alpha drop c.A.
// It panics on an indexed descriptor.
func (d *Descriptor) Encode(c color.NRGBA) uint32 {
	if d.Index.Bits != 0 {
		panic("pixel: Encode on indexed format " + d.Format.String())
	}
	return d.R.pack(c.R) | d.G.pack(c.G) | d.B.pack(c.B) | d.A.pack(c.A)
}

// Decode unpacks a pixel word into 8-bit channels. Formats without alpha
// decode as fully opaque.
// Indexed formats decode to a gray level equal to the index, opaque.
func (d *Descriptor) Decode(p uint32) color.NRGBA {
	if d.Index.Bits != 0 {
		i := uint8(d.DecodeIndex(p))
		return color.NRGBA{R: i, G: i, B: i, A: 0xff}
	}
	c := color.NRGBA{
		R: d.R.unpack(p),
		G: d.G.unpack(p),
		B: d.B.unpack(p),
		A: 0xff,
	}
	if d.A.Bits != 0 {
		c.A = d.A.unpack(p)
	}
	return c
}

// EncodeIndex packs a color index. Values wider than the index field are
// truncated to the field width.
// It panics on an RGBA descriptor.
func (d *Descriptor) EncodeIndex(i uint32) uint32 {
	if d.Index.Bits == 0 {
		panic("pixel: EncodeIndex on RGBA format " + d.Format.String())
	}
	return (i & d.Index.Max()) << d.Index.Shift
}

// DecodeIndex returns the raw color index stored in p. Alpha is opaque by
// convention for indexed formats.
func (d *Descriptor) DecodeIndex(p uint32) uint32 {
	return (p >> d.Index.Shift) & d.Index.Max()
}
