package swrast

import "github.com/gogpu/glapi/span"

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	buffer   *span.Buffer
	yUp      bool
	renderer string
	workers  int
}

func defaultOptions() options {
	return options{renderer: "glapi swrast"}
}

// WithBuffer renders into buf instead of a newly allocated buffer. The
// buffer's size and format override the ones given to NewContext.
//
// Example:
//
//	buf, _ := span.FromRaw(fb, 640, 480, 640*2, pixel.FormatRGB565)
//	ctx, _ := swrast.NewContext(640, 480, pixel.FormatRGB565, swrast.WithBuffer(buf))
func WithBuffer(buf *span.Buffer) Option {
	return func(o *options) {
		o.buffer = buf
	}
}

// WithYUp stores the bottom row of the image first in memory, the GL
// convention. By default the top row comes first, as in image.Image.
func WithYUp(yUp bool) Option {
	return func(o *options) {
		o.yUp = yUp
	}
}

// WithRenderer sets the string GetString returns for RENDERER.
func WithRenderer(name string) Option {
	return func(o *options) {
		o.renderer = name
	}
}

// WithWorkers splits clears of large buffers into row bands rendered by n
// worker goroutines. The context owns the workers and stops them on Close.
// n <= 1 renders on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
