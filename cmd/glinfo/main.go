// Command glinfo lists the registered GL backends and renders a test frame.
//
// For every backend it prints the identification strings and how many
// dispatch slots the backend implements itself. It then draws a frame with
// the chosen backend through the glapi entry points, reads it back with
// ReadPixels and writes it as PNG.
//
//	glinfo -output frame.png
//	glinfo -output - | display
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/backend"
	"github.com/gogpu/glapi/backend/trace"
	_ "github.com/gogpu/glapi/backend/wgpu"
	"github.com/gogpu/glapi/pixel"
)

const pipeName = "-"

func main() {
	var (
		width   = flag.Int("width", 320, "frame width")
		height  = flag.Int("height", 240, "frame height")
		output  = flag.String("output", "glinfo.png", "output file, - for stdout")
		name    = flag.String("backend", "", "backend to render with (default: best available)")
		verbose = flag.Bool("v", false, "list the operations each backend leaves to stubs")
		traced  = flag.Bool("trace", false, "log every GL call to stderr")
	)
	flag.Parse()

	if *traced {
		glapi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	for _, n := range backend.Available() {
		describe(os.Stderr, n, *verbose)
	}

	b := backend.Default()
	if *name != "" {
		b = backend.Get(*name)
	}
	if b == nil {
		log.Fatalf("backend %q not registered", *name)
	}
	if err := b.Init(); err != nil {
		log.Fatalf("init %s: %v", b.Name(), err)
	}
	defer b.Close()

	ctx, err := b.NewContext(*width, *height, pixel.FormatRGBA8888)
	if err != nil {
		log.Fatalf("context: %v", err)
	}
	defer ctx.Close()

	tbl := ctx.Dispatch()
	if *traced {
		tbl = trace.Wrap(tbl, nil)
	}
	img := render(tbl, *width, *height)

	w, closeOut, err := openOutput(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer closeOut()
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		log.Fatalf("encode: %v", err)
	}
	if *output != pipeName {
		log.Printf("frame saved to %s (%dx%d, %s)", *output, *width, *height, b.Name())
	}
}

// describe prints one backend's identification and slot coverage.
func describe(w io.Writer, name string, verbose bool) {
	b := backend.Get(name)
	if err := b.Init(); err != nil {
		fmt.Fprintf(w, "%-10s unavailable: %v\n", name, err)
		return
	}
	defer b.Close()
	ctx, err := b.NewContext(1, 1, pixel.FormatRGBA8888)
	if err != nil {
		fmt.Fprintf(w, "%-10s unavailable: %v\n", name, err)
		return
	}
	defer ctx.Close()

	d := ctx.Dispatch()
	missing := d.Missing()
	fmt.Fprintf(w, "%-10s %2d/%d ops  renderer=%q version=%q\n",
		name, glapi.NumOps-len(missing), glapi.NumOps, d.GetString(glapi.RENDERER), d.GetString(glapi.VERSION))
	if verbose && len(missing) > 0 {
		names := make([]string, len(missing))
		for i, op := range missing {
			names[i] = op.GLName()
		}
		fmt.Fprintf(w, "%-10s stubs: %s\n", "", strings.Join(names, " "))
	}
}

// render draws the test frame with tbl bound and returns it top row first.
func render(tbl *glapi.Table, w, h int) image.Image {
	pix := make([]byte, glapi.ClientSize(w, h, pixel.FormatRGBA8888))

	glapi.With(tbl, func() {
		glapi.ClearColor(0.1, 0.1, 0.2, 1)
		glapi.Clear(glapi.COLOR_BUFFER_BIT)

		// Color bars through the scissor.
		glapi.Enable(glapi.SCISSOR_TEST)
		bars := [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
		bw := int32(w / len(bars))
		for i, c := range bars {
			glapi.Scissor(int32(i)*bw, int32(h*3/4), bw, int32(h/4))
			glapi.ClearColor(c[0], c[1], c[2], 1)
			glapi.Clear(glapi.COLOR_BUFFER_BIT)
		}
		glapi.Disable(glapi.SCISSOR_TEST)

		// A point grid compiled once and replayed.
		list := glapi.GenLists(1)
		glapi.NewList(list, glapi.COMPILE)
		glapi.Begin(glapi.POINTS)
		for y := -0.9; y < 0.5; y += 0.05 {
			for x := -0.9; x < 0; x += 0.05 {
				glapi.Color3f(float32(x+1), float32(y+1)/2, 0.5)
				glapi.Vertex2f(float32(x), float32(y))
			}
		}
		glapi.End()
		glapi.EndList()
		glapi.CallList(list)

		// A gradient image, zoomed.
		const gw, gh = 16, 16
		grad := make([]byte, gw*gh*3)
		for i := range gw * gh {
			grad[i*3] = byte(i % gw * 16)
			grad[i*3+1] = byte(i / gw * 16)
			grad[i*3+2] = 0x80
		}
		glapi.WindowPos2i(int32(w/2), int32(h/8))
		glapi.PixelZoom(4, 4)
		glapi.DrawPixels(gw, gh, glapi.RGB, glapi.UNSIGNED_BYTE, grad)
		glapi.PixelZoom(1, 1)

		glapi.Finish()
		glapi.ReadPixels(0, 0, int32(w), int32(h), glapi.RGBA, glapi.UNSIGNED_BYTE, pix)
		if e := glapi.GetError(); e != glapi.NO_ERROR {
			log.Printf("GL error %#x", e)
		}
	})

	img := &image.NRGBA{
		Pix:    pix,
		Stride: glapi.ClientStride(w, pixel.FormatRGBA8888),
		Rect:   image.Rect(0, 0, w, h),
	}
	// GL rows run bottom to top.
	return imaging.FlipV(img)
}

// openOutput returns the destination for the PNG. Stdout is only used when
// it is not a terminal.
func openOutput(out string) (io.Writer, func(), error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", out, err)
		}
	}, nil
}
