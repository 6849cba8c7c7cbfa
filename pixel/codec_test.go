package pixel

import (
	"image/color"
	"testing"
)

// representative returns 0, 1, mid-range and max for an 8-bit channel.
func representative() []uint8 {
	return []uint8{0, 1, 7, 12, 64, 127, 128, 200, 254, 255}
}

// tolerance is half a quantization step of the field, the largest error a
// round trip through it may introduce.
func tolerance(c Channel) float64 {
	if c.Bits == 0 || c.Bits >= 8 {
		return 0
	}
	return 255 / float64(c.Max()) / 2
}

func within(got, want uint8, tol float64) bool {
	d := int(got) - int(want)
	if d < 0 {
		d = -d
	}
	return float64(d) <= tol
}

func TestRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		d := f.Descriptor()
		if d.IsIndexed() {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			for _, v := range representative() {
				in := color.NRGBA{R: v, G: 255 - v, B: v / 2, A: v}
				out := d.Decode(d.Encode(in))

				if !within(out.R, in.R, tolerance(d.R)) {
					t.Errorf("R: %d -> %d", in.R, out.R)
				}
				if !within(out.G, in.G, tolerance(d.G)) {
					t.Errorf("G: %d -> %d", in.G, out.G)
				}
				if !within(out.B, in.B, tolerance(d.B)) {
					t.Errorf("B: %d -> %d", in.B, out.B)
				}
				if d.HasAlpha() {
					if !within(out.A, in.A, tolerance(d.A)) {
						t.Errorf("A: %d -> %d", in.A, out.A)
					}
				} else if out.A != 0xff {
					t.Errorf("A = %d on format without alpha, want 255", out.A)
				}
			}
		})
	}
}

func TestRoundTripExhaustive565(t *testing.T) {
	d := FormatRGB565.Descriptor()
	for v := 0; v < 256; v++ {
		c := color.NRGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 0xff}
		got := d.Decode(d.Encode(c))
		if !within(got.R, c.R, tolerance(d.R)) || !within(got.G, c.G, tolerance(d.G)) {
			t.Fatalf("%d -> %+v", v, got)
		}
	}
}

func TestEncode565Red(t *testing.T) {
	d := FormatRGB565.Descriptor()
	p := d.Encode(color.NRGBA{R: 255, G: 0, B: 0, A: 0})
	if p != 0xf800 {
		t.Errorf("Encode(red) = %#04x, want 0xf800", p)
	}
	got := d.Decode(p)
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("Decode(%#04x) = %+v, want %+v", p, got, want)
	}
}

func TestDecodeScalesFullRange(t *testing.T) {
	tests := []struct {
		name string
		c    Channel
	}{
		{"1-bit", Channel{1, 0}},
		{"2-bit", Channel{2, 0}},
		{"3-bit", Channel{3, 0}},
		{"4-bit", Channel{4, 0}},
		{"5-bit", Channel{5, 0}},
		{"6-bit", Channel{6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.unpack(tt.c.Max()); got != 255 {
				t.Errorf("unpack(max) = %d, want 255", got)
			}
			if got := tt.c.unpack(0); got != 0 {
				t.Errorf("unpack(0) = %d, want 0", got)
			}
		})
	}
}

func TestDecode5BitNotShifted(t *testing.T) {
	// A plain left shift would give 16<<3 = 128; scaling gives 132.
	c := Channel{5, 0}
	if got := c.unpack(16); got != 132 {
		t.Errorf("unpack(16) = %d, want 132", got)
	}
}

func TestPackedLayouts(t *testing.T) {
	c := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	tests := []struct {
		format Format
		want   []byte
	}{
		{FormatRGBA8888, []byte{0x11, 0x22, 0x33, 0x44}},
		{FormatBGRA8888, []byte{0x33, 0x22, 0x11, 0x44}},
		{FormatRGB888, []byte{0x11, 0x22, 0x33}},
		{FormatBGR888, []byte{0x33, 0x22, 0x11}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			d := tt.format.Descriptor()
			buf := make([]byte, d.BytesPerPixel)
			d.Store(buf, d.Encode(c))
			for i := range tt.want {
				if buf[i] != tt.want[i] {
					t.Fatalf("stored % x, want % x", buf, tt.want)
				}
			}
		})
	}
}

func TestStoreByteOrder(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	le := FormatRGB565.Descriptor()
	buf := make([]byte, 2)
	le.Store(buf, le.Encode(red))
	if buf[0] != 0x00 || buf[1] != 0xf8 {
		t.Errorf("little-endian 565 red = % x, want 00 f8", buf)
	}

	be := FormatRGB565BE.Descriptor()
	be.Store(buf, be.Encode(red))
	if buf[0] != 0xf8 || buf[1] != 0x00 {
		t.Errorf("big-endian 565 red = % x, want f8 00", buf)
	}
	if got := be.Load(buf); got != 0xf800 {
		t.Errorf("Load() = %#x, want 0xf800", got)
	}
}

func TestStoreLoadAllSizes(t *testing.T) {
	tests := []struct {
		d Descriptor
		p uint32
	}{
		{Descriptor{Index: Channel{8, 0}, BytesPerPixel: 1}, 0xab},
		{Descriptor{Index: Channel{16, 0}, BytesPerPixel: 2}, 0xabcd},
		{Descriptor{Index: Channel{16, 0}, BytesPerPixel: 2, BigEndian: true}, 0xabcd},
		{Descriptor{Index: Channel{24, 0}, BytesPerPixel: 3}, 0xabcdef},
		{Descriptor{Index: Channel{24, 0}, BytesPerPixel: 3, BigEndian: true}, 0xabcdef},
		{Descriptor{Index: Channel{8, 0}, BytesPerPixel: 4}, 0xdeadbeef},
		{Descriptor{Index: Channel{8, 0}, BytesPerPixel: 4, BigEndian: true}, 0xdeadbeef},
	}

	for _, tt := range tests {
		buf := make([]byte, 4)
		tt.d.Store(buf, tt.p)
		if got := tt.d.Load(buf); got != tt.p {
			t.Errorf("bpp=%d big=%v: Load(Store(%#x)) = %#x", tt.d.BytesPerPixel, tt.d.BigEndian, tt.p, got)
		}
	}
}

func TestIndexCodec(t *testing.T) {
	d := FormatCI8.Descriptor()
	if got := d.DecodeIndex(d.EncodeIndex(200)); got != 200 {
		t.Errorf("index round trip = %d, want 200", got)
	}
	// Out-of-range indices are truncated to the field, not rejected.
	if got := d.EncodeIndex(0x1ff); got != 0xff {
		t.Errorf("EncodeIndex(0x1ff) = %#x, want 0xff", got)
	}
	if got := d.Decode(d.EncodeIndex(9)); got.A != 0xff || got.R != 9 {
		t.Errorf("Decode(index 9) = %+v, want gray 9 opaque", got)
	}
}

func TestCodecMisuse(t *testing.T) {
	t.Run("Encode on indexed", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		FormatCI8.Descriptor().Encode(color.NRGBA{})
	})
	t.Run("EncodeIndex on RGBA", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		FormatRGB565.Descriptor().EncodeIndex(1)
	})
}

func TestModel(t *testing.T) {
	m := FormatRGB332.Descriptor().Model()
	got := m.Convert(color.NRGBA{R: 255, G: 255, B: 255, A: 255}).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("white through RGB332 = %+v", got)
	}

	got = m.Convert(color.NRGBA{R: 40, G: 0, B: 0, A: 255}).(color.NRGBA)
	d := FormatRGB332.Descriptor()
	if want := d.Decode(d.Encode(color.NRGBA{R: 40, A: 255})); got != want {
		t.Errorf("Convert = %+v, want %+v", got, want)
	}
}

func BenchmarkEncode565(b *testing.B) {
	d := FormatRGB565.Descriptor()
	c := color.NRGBA{R: 10, G: 200, B: 77, A: 255}
	b.ReportAllocs()
	for b.Loop() {
		_ = d.Encode(c)
	}
}

func BenchmarkDecode565(b *testing.B) {
	d := FormatRGB565.Descriptor()
	b.ReportAllocs()
	for b.Loop() {
		_ = d.Decode(0x7bef)
	}
}
