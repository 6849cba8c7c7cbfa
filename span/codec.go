package span

import (
	"image/color"

	"github.com/gogpu/glapi/pixel"
)

// codec packs and unpacks one pixel of a single format at a byte position.
// RGBA codecs panic on index calls and index codecs panic on RGBA calls.
type codec interface {
	size() int
	put(dst []byte, c color.NRGBA)
	get(src []byte) color.NRGBA
	putIndex(dst []byte, i uint32)
	getIndex(src []byte) uint32
}

func rgbaOnly(f pixel.Format) {
	panic("span: color index access to RGBA format " + f.String())
}

func indexOnly(f pixel.Format) {
	panic("span: RGBA access to color index format " + f.String())
}

// rgba8Codec is FormatRGBA8888: channels are bytes in R, G, B, A order.
type rgba8Codec struct{}

func (rgba8Codec) size() int { return 4 }

func (rgba8Codec) put(dst []byte, c color.NRGBA) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
}

func (rgba8Codec) get(src []byte) color.NRGBA {
	_ = src[3]
	return color.NRGBA{R: src[0], G: src[1], B: src[2], A: src[3]}
}

func (rgba8Codec) putIndex([]byte, uint32) { rgbaOnly(pixel.FormatRGBA8888) }
func (rgba8Codec) getIndex([]byte) uint32  { rgbaOnly(pixel.FormatRGBA8888); return 0 }

// bgra8Codec is FormatBGRA8888: channels are bytes in B, G, R, A order.
type bgra8Codec struct{}

func (bgra8Codec) size() int { return 4 }

func (bgra8Codec) put(dst []byte, c color.NRGBA) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = c.B, c.G, c.R, c.A
}

func (bgra8Codec) get(src []byte) color.NRGBA {
	_ = src[3]
	return color.NRGBA{R: src[2], G: src[1], B: src[0], A: src[3]}
}

func (bgra8Codec) putIndex([]byte, uint32) { rgbaOnly(pixel.FormatBGRA8888) }
func (bgra8Codec) getIndex([]byte) uint32  { rgbaOnly(pixel.FormatBGRA8888); return 0 }

// rgb565Codec is FormatRGB565 with the quantization of pixel.Descriptor
// unrolled for the fixed 5-6-5 little-endian layout.
type rgb565Codec struct{}

func (rgb565Codec) size() int { return 2 }

func (rgb565Codec) put(dst []byte, c color.NRGBA) {
	r := (uint32(c.R)*31 + 127) / 255
	g := (uint32(c.G)*63 + 127) / 255
	b := (uint32(c.B)*31 + 127) / 255
	p := r<<11 | g<<5 | b
	_ = dst[1]
	dst[0], dst[1] = byte(p), byte(p>>8)
}

func (rgb565Codec) get(src []byte) color.NRGBA {
	_ = src[1]
	p := uint32(src[0]) | uint32(src[1])<<8
	r := p >> 11 & 0x1f
	g := p >> 5 & 0x3f
	b := p & 0x1f
	return color.NRGBA{
		R: uint8((r*255 + 15) / 31),
		G: uint8((g*255 + 31) / 63),
		B: uint8((b*255 + 15) / 31),
		A: 0xff,
	}
}

func (rgb565Codec) putIndex([]byte, uint32) { rgbaOnly(pixel.FormatRGB565) }
func (rgb565Codec) getIndex([]byte) uint32  { rgbaOnly(pixel.FormatRGB565); return 0 }

// packedCodec handles any RGBA descriptor through its channel table.
type packedCodec struct {
	d *pixel.Descriptor
}

func (c packedCodec) size() int { return c.d.BytesPerPixel }

func (c packedCodec) put(dst []byte, v color.NRGBA) {
	c.d.Store(dst, c.d.Encode(v))
}

func (c packedCodec) get(src []byte) color.NRGBA {
	return c.d.Decode(c.d.Load(src))
}

func (c packedCodec) putIndex([]byte, uint32) { rgbaOnly(c.d.Format) }
func (c packedCodec) getIndex([]byte) uint32  { rgbaOnly(c.d.Format); return 0 }

// indexCodec handles color-index descriptors.
type indexCodec struct {
	d *pixel.Descriptor
}

func (c indexCodec) size() int { return c.d.BytesPerPixel }

func (c indexCodec) put([]byte, color.NRGBA) { indexOnly(c.d.Format) }

func (c indexCodec) get([]byte) color.NRGBA { indexOnly(c.d.Format); return color.NRGBA{} }

func (c indexCodec) putIndex(dst []byte, i uint32) {
	c.d.Store(dst, c.d.EncodeIndex(i))
}

func (c indexCodec) getIndex(src []byte) uint32 {
	return c.d.DecodeIndex(c.d.Load(src))
}

// spansFor selects the span implementation for f once, at buffer creation.
func spansFor(f pixel.Format) spans {
	d := f.Descriptor()
	switch {
	case d.IsIndexed():
		return codecSpans[indexCodec]{indexCodec{d}}
	case f == pixel.FormatRGBA8888:
		return codecSpans[rgba8Codec]{}
	case f == pixel.FormatBGRA8888:
		return codecSpans[bgra8Codec]{}
	case f == pixel.FormatRGB565:
		return codecSpans[rgb565Codec]{}
	default:
		return codecSpans[packedCodec]{packedCodec{d}}
	}
}
