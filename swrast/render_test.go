package swrast

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
)

func TestClear(t *testing.T) {
	for _, f := range []pixel.Format{pixel.FormatRGBA8888, pixel.FormatBGRA8888, pixel.FormatRGB565, pixel.FormatRGB888} {
		t.Run(f.String(), func(t *testing.T) {
			c := newTestContext(t, 5, 4, f)
			e := c.Exec()
			e.ClearColor(0, 1, 0, 1)
			e.Clear(glapi.COLOR_BUFFER_BIT)
			for y := 0; y < 4; y++ {
				for x := 0; x < 5; x++ {
					if got := at(c, x, y); got != green {
						t.Fatalf("(%d,%d) = %+v, want green", x, y, got)
					}
				}
			}
		})
	}
}

func TestClearIgnoresOtherBuffers(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()
	e.ClearColor(1, 1, 1, 1)
	e.Clear(glapi.DEPTH_BUFFER_BIT | glapi.STENCIL_BUFFER_BIT)
	if got := at(c, 0, 0); got != (color.NRGBA{}) {
		t.Errorf("depth-only clear wrote color %+v", got)
	}
	e.Clear(0x1)
	if got := e.GetError(); got != glapi.INVALID_VALUE {
		t.Errorf("GetError() = %#x, want INVALID_VALUE", got)
	}
}

func TestClearScissor(t *testing.T) {
	c := newTestContext(t, 6, 6, pixel.FormatRGBA8888)
	e := c.Exec()
	e.ClearColor(0, 0, 0, 1)
	e.Clear(glapi.COLOR_BUFFER_BIT)

	e.Enable(glapi.SCISSOR_TEST)
	e.Scissor(1, 2, 3, 2)
	e.ClearColor(1, 0, 0, 1)
	e.Clear(glapi.COLOR_BUFFER_BIT)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := black
			if x >= 1 && x < 4 && y >= 2 && y < 4 {
				want = red
			}
			if got := at(c, x, y); got != want {
				t.Errorf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestClearColorMask(t *testing.T) {
	c := newTestContext(t, 3, 1, pixel.FormatRGBA8888)
	e := c.Exec()
	e.ClearColor(0, 0, 1, 1)
	e.Clear(glapi.COLOR_BUFFER_BIT)

	e.ColorMask(true, false, false, false)
	e.ClearColor(1, 1, 0, 0)
	e.Clear(glapi.COLOR_BUFFER_BIT)

	want := color.NRGBA{R: 255, B: 255, A: 255}
	if got := at(c, 1, 0); got != want {
		t.Errorf("masked clear = %+v, want %+v", got, want)
	}

	e.ColorMask(false, false, false, false)
	e.ClearColor(0, 0, 0, 0)
	e.Clear(glapi.COLOR_BUFFER_BIT)
	if got := at(c, 1, 0); got != want {
		t.Errorf("fully masked clear changed pixel to %+v", got)
	}
}

func TestClearIndexed(t *testing.T) {
	c := newTestContext(t, 4, 2, pixel.FormatCI8)
	e := c.Exec()
	e.ClearIndex(0x5a)
	e.Clear(glapi.COLOR_BUFFER_BIT)
	if got := indexAt(c, 3, 1); got != 0x5a {
		t.Fatalf("index = %#x, want 0x5a", got)
	}

	e.IndexMask(0x0f)
	e.ClearIndex(0xff)
	e.Clear(glapi.COLOR_BUFFER_BIT)
	if got := indexAt(c, 0, 0); got != 0x5f {
		t.Errorf("masked index = %#x, want 0x5f", got)
	}
}

func TestPoints(t *testing.T) {
	c := newTestContext(t, 4, 4, pixel.FormatRGBA8888)
	e := c.Exec()

	e.Begin(glapi.POINTS)
	e.Color3f(1, 0, 0)
	e.Vertex2f(-1, -1) // bottom-left pixel
	e.Color4ub(0, 0, 255, 255)
	e.Vertex3f(0.9, 0.9, 0.5) // top-right pixel
	e.Vertex2f(2, 2)          // outside, dropped
	e.End()

	if got := at(c, 0, 0); got != red {
		t.Errorf("(0,0) = %+v, want red", got)
	}
	if got := at(c, 3, 3); got != blue {
		t.Errorf("(3,3) = %+v, want blue", got)
	}
	if got := e.GetError(); got != glapi.NO_ERROR {
		t.Errorf("GetError() = %#x", got)
	}
}

func TestPointsYUp(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888, WithYUp(true))
	e := c.Exec()
	e.Begin(glapi.POINTS)
	e.Color3f(0, 1, 0)
	e.Vertex2f(-1, -1)
	e.End()

	// With Y up, window row 0 is the first row in memory.
	if got := c.Buffer().NRGBAAt(0, 0); got != green {
		t.Errorf("memory (0,0) = %+v, want green", got)
	}
}

func TestPointsScissor(t *testing.T) {
	c := newTestContext(t, 4, 4, pixel.FormatRGBA8888)
	e := c.Exec()
	e.Enable(glapi.SCISSOR_TEST)
	e.Scissor(2, 2, 2, 2)

	e.Begin(glapi.POINTS)
	e.Color3f(1, 0, 0)
	e.Vertex2f(-1, -1)
	e.Vertex2f(0.5, 0.5)
	e.End()

	if got := at(c, 0, 0); got != (color.NRGBA{}) {
		t.Errorf("scissored point written: %+v", got)
	}
	if got := at(c, 3, 3); got != red {
		t.Errorf("(3,3) = %+v, want red", got)
	}
}

func TestPointsColorMask(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()
	e.ClearColor(0, 0, 1, 1)
	e.Clear(glapi.COLOR_BUFFER_BIT)
	e.ColorMask(true, true, false, true)

	e.Begin(glapi.POINTS)
	e.Color3f(1, 0, 0)
	e.Vertex2f(-1, -1)
	e.End()

	if got, want := at(c, 0, 0), (color.NRGBA{R: 255, B: 255, A: 255}); got != want {
		t.Errorf("(0,0) = %+v, want %+v", got, want)
	}
}

func TestPointsIndexed(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatCI8)
	e := c.Exec()
	e.Begin(glapi.POINTS)
	e.Indexi(7)
	e.Vertex2f(-1, -1)
	e.Indexi(9)
	e.Vertex2f(0, 0)
	e.End()

	if got := indexAt(c, 0, 0); got != 7 {
		t.Errorf("(0,0) = %d, want 7", got)
	}
	if got := indexAt(c, 1, 1); got != 9 {
		t.Errorf("(1,1) = %d, want 9", got)
	}
}

func TestOtherPrimitivesNotRasterized(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()
	e.Begin(glapi.TRIANGLES)
	e.Vertex2f(-1, -1)
	e.Vertex2f(1, -1)
	e.Vertex2f(0, 1)
	e.End()
	if got := e.GetError(); got != glapi.NO_ERROR {
		t.Errorf("GetError() = %#x", got)
	}
	if got := at(c, 0, 0); got != (color.NRGBA{}) {
		t.Errorf("triangle wrote %+v", got)
	}
}

func TestViewportMapping(t *testing.T) {
	c := newTestContext(t, 8, 8, pixel.FormatRGBA8888)
	e := c.Exec()
	e.Viewport(4, 4, 4, 4)
	e.Begin(glapi.POINTS)
	e.Vertex2f(-1, -1)
	e.End()
	if got := at(c, 4, 4); got.A != 255 {
		t.Errorf("(4,4) = %+v, want the current color", got)
	}
}

func TestClearWithWorkers(t *testing.T) {
	for _, f := range []pixel.Format{pixel.FormatRGB565, pixel.FormatCI8} {
		t.Run(f.String(), func(t *testing.T) {
			serial := newTestContext(t, 37, 131, f)
			banded := newTestContext(t, 37, 131, f, WithWorkers(4))

			for _, c := range []*Context{serial, banded} {
				e := c.Exec()
				e.ClearColor(0.2, 0.4, 0.6, 1)
				e.ClearIndex(0x33)
				e.Clear(glapi.COLOR_BUFFER_BIT)
				e.ColorMask(true, false, true, true)
				e.IndexMask(0xf0)
				e.ClearColor(1, 1, 1, 1)
				e.ClearIndex(0xcc)
				e.Enable(glapi.SCISSOR_TEST)
				e.Scissor(3, 5, 30, 120)
				e.Clear(glapi.COLOR_BUFFER_BIT)
			}
			if !bytes.Equal(serial.Buffer().Pix, banded.Buffer().Pix) {
				t.Error("banded clear differs from serial clear")
			}
		})
	}
}

func BenchmarkClearWorkers(b *testing.B) {
	c, _ := NewContext(1024, 1024, pixel.FormatRGBA8888, WithWorkers(4))
	defer c.Close()
	e := c.Exec()
	e.ClearColor(0.2, 0.4, 0.6, 1)
	b.ReportAllocs()
	for b.Loop() {
		e.Clear(glapi.COLOR_BUFFER_BIT)
	}
}
