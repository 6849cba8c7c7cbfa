// Package backend provides a pluggable registry of GL backends.
//
// A backend hands out contexts, and each context owns the dispatch table
// that the glapi entry points reach once the table is bound to a thread.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software and noop backends are registered on import:
//
//	import _ "github.com/gogpu/glapi/backend"
//
// The wgpu texture driver registers itself when its package is imported:
//
//	import _ "github.com/gogpu/glapi/backend/wgpu"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()
//	b := backend.Get("software")
//
// # Usage
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	ctx, err := b.NewContext(800, 600, pixel.FormatRGBA8888)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	glapi.With(ctx.Dispatch(), func() {
//		glapi.ClearColor(0, 0, 0, 1)
//		glapi.Clear(glapi.COLOR_BUFFER_BIT)
//	})
//
// # Available Backends
//
//   - "software": span rasterizer over CPU memory (always available)
//   - "wgpu": texture uploads on a gogpu/wgpu HAL device
//   - "noop": every call is a stub
package backend
