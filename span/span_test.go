package span

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/glapi/pixel"
)

var sentinel = color.NRGBA{R: 1, G: 2, B: 3, A: 4}

func rgbaFormats() []pixel.Format {
	var out []pixel.Format
	for _, f := range pixel.Formats() {
		if !f.IsIndexed() {
			out = append(out, f)
		}
	}
	return out
}

// fill writes c to every pixel through the slow path.
func fill(b *Buffer, c color.NRGBA) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Set(x, y, c)
		}
	}
}

// quantize returns what storing c in format f and reading it back yields.
func quantize(f pixel.Format, c color.NRGBA) color.NRGBA {
	d := f.Descriptor()
	return d.Decode(d.Encode(c))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		format pixel.Format
		want   error
	}{
		{"ok", 4, 3, pixel.FormatRGB565, nil},
		{"zero width", 0, 3, pixel.FormatRGB565, ErrInvalidDimensions},
		{"negative height", 4, -1, pixel.FormatRGB565, ErrInvalidDimensions},
		{"bad format", 4, 3, pixel.Format(99), pixel.ErrUnsupportedFormat},
		{"too large", 1 << 30, 1 << 30, pixel.FormatRGBA8888, ErrInvalidDimensions},
		{"row overflow", math.MaxInt, 1, pixel.FormatRGBA8888, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if err == nil && b.Stride != tt.format.RowBytes(tt.w) {
				t.Errorf("Stride = %d, want %d", b.Stride, tt.format.RowBytes(tt.w))
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	pix := make([]byte, 64)
	if _, err := FromRaw(pix, 4, 4, 8, pixel.FormatRGBA8888); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride: %v, want ErrInvalidStride", err)
	}
	if _, err := FromRaw(pix[:40], 4, 4, 16, pixel.FormatRGBA8888); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data: %v, want ErrDataTooSmall", err)
	}
	if _, err := FromRaw(pix, 4, 1<<30, 1<<30, pixel.FormatRGBA8888); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("oversized: %v, want ErrInvalidDimensions", err)
	}

	// Padded stride: the last row does not need trailing padding.
	b, err := FromRaw(make([]byte, 20*2+16), 4, 3, 20, pixel.FormatRGBA8888)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	b.WriteMonoRow(0, 2, 4, color.NRGBA{R: 9, A: 255}, nil)
	if got := b.Pix[40]; got != 9 {
		t.Errorf("row 2 first byte = %d, want 9", got)
	}

	// Writes are visible through the caller's slice.
	raw := make([]byte, 16)
	b, _ = FromRaw(raw, 2, 2, 8, pixel.FormatRGBA8888)
	b.WriteRow(1, 1, []color.NRGBA{{R: 7, G: 8, B: 9, A: 10}}, nil)
	if raw[12] != 7 || raw[15] != 10 {
		t.Errorf("raw = % x", raw)
	}
}

func TestWriteRowMask(t *testing.T) {
	vals := []color.NRGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	mask := []bool{true, false, true, false}

	for _, f := range rgbaFormats() {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(6, 2, f)
			fill(b, sentinel)
			before := b.NRGBAAt(0, 0)

			b.WriteRow(1, 1, vals, mask)

			for i, v := range vals {
				got := b.NRGBAAt(1+i, 1)
				want := before
				if mask[i] {
					want = quantize(f, v)
				}
				if got != want {
					t.Errorf("pixel %d = %+v, want %+v", i, got, want)
				}
			}
			// Neighbors and the other row are untouched.
			for _, p := range [][2]int{{0, 1}, {5, 1}, {2, 0}} {
				if got := b.NRGBAAt(p[0], p[1]); got != before {
					t.Errorf("pixel %v = %+v, want untouched %+v", p, got, before)
				}
			}
		})
	}
}

func TestWriteRowNoMask(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	b, _ := New(4, 1, pixel.FormatRGBA8888)
	b.WriteRow(0, 0, []color.NRGBA{c, c, c, c}, nil)
	for x := 0; x < 4; x++ {
		if got := b.NRGBAAt(x, 0); got != c {
			t.Errorf("pixel %d = %+v, want %+v", x, got, c)
		}
	}
}

func TestWriteRowRGBOpaque(t *testing.T) {
	for _, f := range []pixel.Format{pixel.FormatRGBA8888, pixel.FormatBGRA8888, pixel.FormatARGB1555, pixel.FormatRGBA4444} {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(3, 1, f)
			fill(b, color.NRGBA{})
			b.WriteRowRGB(0, 0, [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}, []bool{true, true, false})

			if got := b.NRGBAAt(0, 0); got.A != 0xff || got.R != 0xff {
				t.Errorf("pixel 0 = %+v, want opaque red", got)
			}
			if got := b.NRGBAAt(1, 0); got.A != 0xff || got.G != 0xff {
				t.Errorf("pixel 1 = %+v, want opaque green", got)
			}
			if got := b.NRGBAAt(2, 0); got.A != 0 {
				t.Errorf("masked pixel 2 alpha = %d, want 0", got.A)
			}
		})
	}
}

func TestWriteMonoRow(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	for _, f := range rgbaFormats() {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(5, 1, f)
			fill(b, sentinel)
			before := b.NRGBAAt(0, 0)

			b.WriteMonoRow(1, 0, 3, c, []bool{true, false, true})

			want := []color.NRGBA{before, quantize(f, c), before, quantize(f, c), before}
			for x, w := range want {
				if got := b.NRGBAAt(x, 0); got != w {
					t.Errorf("pixel %d = %+v, want %+v", x, got, w)
				}
			}
		})
	}
}

// bytesAt returns a copy of the bytes of pixel (x, y).
func bytesAt(b *Buffer, x, y int) string {
	off := b.PixOffset(x, y)
	return string(b.Pix[off : off+b.Format().BytesPerPixel()])
}

func TestWriteScattered(t *testing.T) {
	xs := []int{0, 3, 1, 0}
	ys := []int{0, 3, 2, 0}
	vals := []color.NRGBA{
		{R: 10, A: 255},
		{R: 20, A: 255},
		{R: 30, A: 255},
		{R: 250, A: 255},
	}
	mask := []bool{true, true, false, true}

	for _, f := range rgbaFormats() {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(4, 4, f)
			fill(b, sentinel)
			before := bytesAt(b, 1, 2)

			b.WriteScattered(xs, ys, vals, mask)

			// (0,0) is written twice; the later value wins.
			if got, want := b.NRGBAAt(0, 0), quantize(f, vals[3]); got != want {
				t.Errorf("(0,0) = %+v, want %+v", got, want)
			}
			if got, want := b.NRGBAAt(3, 3), quantize(f, vals[1]); got != want {
				t.Errorf("(3,3) = %+v, want %+v", got, want)
			}
			if got := bytesAt(b, 1, 2); got != before {
				t.Errorf("masked (1,2) = % x, want % x", got, before)
			}
			if got := bytesAt(b, 2, 1); got != before {
				t.Errorf("unaddressed (2,1) = % x, want % x", got, before)
			}
		})
	}
}

func TestWriteMonoScattered(t *testing.T) {
	c := color.NRGBA{R: 255, G: 255, A: 255}
	for _, f := range rgbaFormats() {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(3, 3, f)
			fill(b, sentinel)
			before := bytesAt(b, 0, 0)

			b.WriteMonoScattered([]int{0, 1, 2}, []int{2, 1, 0}, c, []bool{true, false, true})

			for _, p := range [][2]int{{0, 2}, {2, 0}} {
				if got := b.NRGBAAt(p[0], p[1]); got != quantize(f, c) {
					t.Errorf("%v = %+v, want %+v", p, got, quantize(f, c))
				}
			}
			if got := bytesAt(b, 1, 1); got != before {
				t.Errorf("masked (1,1) = % x, want % x", got, before)
			}

			b.WriteMonoScattered([]int{1}, []int{1}, c, nil)
			if got := b.NRGBAAt(1, 1); got != quantize(f, c) {
				t.Errorf("nil mask (1,1) = %+v, want %+v", got, quantize(f, c))
			}
		})
	}
}

func TestWriteIndexScatteredMask(t *testing.T) {
	b, _ := New(3, 2, pixel.FormatCI8)
	for y := 0; y < b.Height; y++ {
		b.WriteMonoIndexRow(0, y, b.Width, 0xa5, nil)
	}
	before := bytesAt(b, 0, 0)

	b.WriteIndexScattered([]int{0, 1, 2}, []int{0, 1, 0}, []uint32{1, 2, 3}, []bool{false, true, true})
	b.WriteMonoIndexScattered([]int{0, 2}, []int{1, 1}, 9, []bool{true, false})

	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0xa5},
		{1, 1, 2},
		{2, 0, 3},
		{0, 1, 9},
		{2, 1, 0xa5},
	}
	for _, tt := range tests {
		got := make([]uint32, 1)
		b.ReadIndexRow(tt.x, tt.y, got)
		if got[0] != tt.want {
			t.Errorf("(%d,%d) = %#x, want %#x", tt.x, tt.y, got[0], tt.want)
		}
	}
	for _, p := range [][2]int{{0, 0}, {2, 1}} {
		if got := bytesAt(b, p[0], p[1]); got != before {
			t.Errorf("masked %v = % x, want % x", p, got, before)
		}
	}
}

func TestUnmaskedRowPaths(t *testing.T) {
	t.Run("RGB", func(t *testing.T) {
		for _, f := range rgbaFormats() {
			b, _ := New(2, 1, f)
			fill(b, sentinel)
			b.WriteRowRGB(0, 0, [][3]uint8{{255, 0, 0}, {0, 0, 255}}, nil)
			if got := b.NRGBAAt(1, 0); got != quantize(f, color.NRGBA{B: 255, A: 255}) {
				t.Errorf("%v: pixel 1 = %+v", f, got)
			}
		}
	})
	t.Run("index", func(t *testing.T) {
		b, _ := New(3, 1, pixel.FormatCI8)
		b.WriteIndexRow(0, 0, []uint32{4, 5, 6}, nil)
		got := make([]uint32, 3)
		b.ReadIndexRow(0, 0, got)
		if got[0] != 4 || got[1] != 5 || got[2] != 6 {
			t.Errorf("indices = %v, want [4 5 6]", got)
		}
		b.WriteMonoIndexRow(1, 0, 2, 7, nil)
		b.ReadIndexRow(0, 0, got)
		if got[0] != 4 || got[1] != 7 || got[2] != 7 {
			t.Errorf("indices = %v, want [4 7 7]", got)
		}
	})
}

func TestReadRow(t *testing.T) {
	for _, f := range rgbaFormats() {
		t.Run(f.String(), func(t *testing.T) {
			b, _ := New(3, 2, f)
			vals := []color.NRGBA{
				{R: 250, G: 10, B: 10, A: 255},
				{R: 10, G: 250, B: 10, A: 128},
				{R: 10, G: 10, B: 250, A: 0},
			}
			b.WriteRow(0, 1, vals, nil)

			got := make([]color.NRGBA, 3)
			b.ReadRow(0, 1, got)
			for i := range vals {
				if want := quantize(f, vals[i]); got[i] != want {
					t.Errorf("pixel %d = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

func TestReadScatteredMask(t *testing.T) {
	b, _ := New(2, 2, pixel.FormatBGRA8888)
	b.WriteMonoRow(0, 1, 2, color.NRGBA{R: 5, G: 6, B: 7, A: 8}, nil)

	dst := []color.NRGBA{sentinel, sentinel}
	b.ReadScattered([]int{0, 1}, []int{1, 1}, dst, []bool{false, true})
	if dst[0] != sentinel {
		t.Errorf("masked entry changed to %+v", dst[0])
	}
	if want := (color.NRGBA{R: 5, G: 6, B: 7, A: 8}); dst[1] != want {
		t.Errorf("dst[1] = %+v, want %+v", dst[1], want)
	}
}

func TestIndexSpans(t *testing.T) {
	b, _ := New(4, 2, pixel.FormatCI8)
	b.WriteMonoIndexRow(0, 0, 4, 7, nil)
	b.WriteIndexRow(0, 0, []uint32{1, 2, 3, 0x1ff}, []bool{true, false, true, true})

	got := make([]uint32, 4)
	b.ReadIndexRow(0, 0, got)
	want := []uint32{1, 7, 3, 0xff}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}

	b.WriteIndexScattered([]int{3, 2}, []int{1, 1}, []uint32{40, 50}, nil)
	b.WriteMonoIndexScattered([]int{0}, []int{1}, 9, nil)
	sc := make([]uint32, 3)
	b.ReadIndexScattered([]int{0, 2, 3}, []int{1, 1, 1}, sc, nil)
	if sc[0] != 9 || sc[1] != 50 || sc[2] != 40 {
		t.Errorf("scattered = %v, want [9 50 40]", sc)
	}
}

func TestFormatMisusePanics(t *testing.T) {
	t.Run("index on RGBA", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		b, _ := New(1, 1, pixel.FormatRGB565)
		b.WriteMonoIndexRow(0, 0, 1, 1, nil)
	})
	t.Run("RGBA on index", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		b, _ := New(1, 1, pixel.FormatCI8)
		b.WriteMonoRow(0, 0, 1, color.NRGBA{}, nil)
	})
}

func TestFastCodecsMatchPacked(t *testing.T) {
	tests := []struct {
		format pixel.Format
		fast   codec
	}{
		{pixel.FormatRGBA8888, rgba8Codec{}},
		{pixel.FormatBGRA8888, bgra8Codec{}},
		{pixel.FormatRGB565, rgb565Codec{}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			slow := packedCodec{tt.format.Descriptor()}
			a := make([]byte, 4)
			b := make([]byte, 4)
			for v := 0; v < 256; v++ {
				c := color.NRGBA{R: uint8(v), G: uint8(255 - v), B: uint8(v * 7), A: uint8(v / 3)}
				tt.fast.put(a, c)
				slow.put(b, c)
				if string(a[:slow.size()]) != string(b[:slow.size()]) {
					t.Fatalf("put(%+v): fast % x, packed % x", c, a, b)
				}
				if tt.fast.get(a) != slow.get(a) {
					t.Fatalf("get(% x): fast %+v, packed %+v", a, tt.fast.get(a), slow.get(a))
				}
			}
		})
	}
}

func TestToImage(t *testing.T) {
	b, _ := New(2, 2, pixel.FormatRGB565)
	b.WriteMonoRow(0, 1, 2, color.NRGBA{R: 255, A: 255}, nil)
	img := b.ToImage()
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBAAt(1,1) = %+v", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("NRGBAAt(0,0) = %+v, want opaque black", got)
	}
}

func TestClone(t *testing.T) {
	b, _ := FromRaw(make([]byte, 3*8), 2, 3, 8, pixel.FormatRGBA8888)
	b.WriteMonoRow(0, 2, 2, color.NRGBA{G: 3, A: 255}, nil)
	c := b.Clone()
	if c.Stride != 8 || c.NRGBAAt(1, 2) != b.NRGBAAt(1, 2) {
		t.Errorf("clone mismatch: stride %d", c.Stride)
	}
	c.WriteMonoRow(0, 2, 1, color.NRGBA{}, nil)
	if b.NRGBAAt(0, 2).G != 3 {
		t.Error("clone aliases source")
	}
}

func BenchmarkWriteMonoRow565(b *testing.B) {
	buf, _ := New(1024, 1, pixel.FormatRGB565)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	b.ReportAllocs()
	for b.Loop() {
		buf.WriteMonoRow(0, 0, 1024, c, nil)
	}
}

func BenchmarkWriteRowMasked(b *testing.B) {
	buf, _ := New(1024, 1, pixel.FormatRGBA8888)
	vals := make([]color.NRGBA, 1024)
	mask := make([]bool, 1024)
	for i := range mask {
		mask[i] = i%2 == 0
	}
	b.ReportAllocs()
	for b.Loop() {
		buf.WriteRow(0, 0, vals, mask)
	}
}
