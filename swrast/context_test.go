package swrast

import (
	"image/color"
	"testing"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
	"github.com/gogpu/glapi/span"
)

func newTestContext(t *testing.T, w, h int, f pixel.Format, opts ...Option) *Context {
	t.Helper()
	c, err := NewContext(w, h, f, opts...)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

// at returns the pixel at window coordinates (x, y).
func at(c *Context, x, y int) color.NRGBA {
	return c.Buffer().NRGBAAt(x, c.bufferRow(y))
}

func indexAt(c *Context, x, y int) uint32 {
	v := make([]uint32, 1)
	c.Buffer().ReadIndexRow(x, c.bufferRow(y), v)
	return v[0]
}

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestNewContextDefaults(t *testing.T) {
	c := newTestContext(t, 4, 3, pixel.FormatRGBA8888)
	e := c.Exec()

	if !e.Validate() {
		t.Error("exec table has unset slots")
	}
	if len(e.Missing()) != 0 {
		t.Errorf("exec table missing %v", e.Missing())
	}
	if c.Dispatch() != e {
		t.Error("Dispatch() is not the exec table outside list compilation")
	}
	if got := e.GetError(); got != glapi.NO_ERROR {
		t.Errorf("GetError() = %#x, want NO_ERROR", got)
	}
	if e.IsEnabled(glapi.SCISSOR_TEST) {
		t.Error("SCISSOR_TEST enabled by default")
	}
	if got := e.GetString(glapi.RENDERER); got != "glapi swrast" {
		t.Errorf("RENDERER = %q", got)
	}
}

func TestNewContextInvalid(t *testing.T) {
	if _, err := NewContext(0, 4, pixel.FormatRGBA8888); err == nil {
		t.Error("NewContext(0, 4) succeeded")
	}
}

func TestWithBuffer(t *testing.T) {
	raw := make([]byte, 2*2*2)
	buf, err := span.FromRaw(raw, 2, 2, 4, pixel.FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	c := newTestContext(t, 99, 99, pixel.FormatRGBA8888, WithBuffer(buf))
	e := c.Exec()
	e.ClearColor(1, 0, 0, 1)
	e.Clear(glapi.COLOR_BUFFER_BIT)

	// 565 red, little-endian.
	for i := 0; i < len(raw); i += 2 {
		if raw[i] != 0x00 || raw[i+1] != 0xf8 {
			t.Fatalf("raw = % x, want 00 f8 repeated", raw)
		}
	}
}

func TestStickyError(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()

	e.Enable(0x1234)        // INVALID_ENUM
	e.Viewport(0, 0, -1, 1) // INVALID_VALUE, dropped while the first is pending

	if got := e.GetError(); got != glapi.INVALID_ENUM {
		t.Errorf("first GetError() = %#x, want INVALID_ENUM", got)
	}
	if got := e.GetError(); got != glapi.NO_ERROR {
		t.Errorf("second GetError() = %#x, want NO_ERROR", got)
	}
}

func TestInsideBeginErrors(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()

	e.Begin(glapi.POINTS)
	e.Begin(glapi.POINTS)
	e.Clear(glapi.COLOR_BUFFER_BIT)
	e.End()

	if got := e.GetError(); got != glapi.INVALID_OPERATION {
		t.Errorf("GetError() = %#x, want INVALID_OPERATION", got)
	}

	e.End()
	if got := e.GetError(); got != glapi.INVALID_OPERATION {
		t.Errorf("End without Begin: GetError() = %#x, want INVALID_OPERATION", got)
	}

	e.Begin(0x99)
	if got := e.GetError(); got != glapi.INVALID_ENUM {
		t.Errorf("Begin(bad mode): GetError() = %#x, want INVALID_ENUM", got)
	}
}

func TestEnableDisable(t *testing.T) {
	c := newTestContext(t, 2, 2, pixel.FormatRGBA8888)
	e := c.Exec()

	for _, cp := range []glapi.Enum{glapi.SCISSOR_TEST, glapi.DITHER, glapi.TEXTURE_2D} {
		e.Enable(cp)
		if !e.IsEnabled(cp) {
			t.Errorf("IsEnabled(%#x) = false after Enable", cp)
		}
		e.Disable(cp)
		if e.IsEnabled(cp) {
			t.Errorf("IsEnabled(%#x) = true after Disable", cp)
		}
	}
	if e.IsEnabled(0x1234) {
		t.Error("IsEnabled(unknown) = true")
	}
	if got := e.GetError(); got != glapi.INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", got)
	}
}

func TestGetString(t *testing.T) {
	c := newTestContext(t, 1, 1, pixel.FormatRGBA8888, WithRenderer("custom"))
	e := c.Exec()

	if got := e.GetString(glapi.RENDERER); got != "custom" {
		t.Errorf("RENDERER = %q, want custom", got)
	}
	if got := e.GetString(glapi.VENDOR); got == "" {
		t.Error("VENDOR is empty")
	}
	if got := e.GetString(0); got != "" {
		t.Errorf("GetString(0) = %q", got)
	}
	if got := e.GetError(); got != glapi.INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", got)
	}
}

func TestMakeCurrentAndClose(t *testing.T) {
	c, err := NewContext(2, 2, pixel.FormatRGBA8888)
	if err != nil {
		t.Fatal(err)
	}
	glapi.With(glapi.Noop(), func() {
		if err := c.MakeCurrent(); err != nil {
			t.Fatalf("MakeCurrent() = %v", err)
		}
		if !c.IsCurrent() {
			t.Fatal("IsCurrent() = false after MakeCurrent")
		}
		c.Close()
		if glapi.Current() != glapi.Noop() {
			t.Error("Close did not release the binding")
		}
	})
	if err := c.MakeCurrent(); err != ErrClosed {
		t.Errorf("MakeCurrent after Close = %v, want ErrClosed", err)
	}
}
