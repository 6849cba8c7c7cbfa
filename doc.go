// Package glapi routes GL entry points to interchangeable backends through
// per-thread dispatch tables.
//
// # Overview
//
// Every GL call in this package, such as [Begin] or [TexImage2D], looks up
// the [Table] bound to the calling OS thread and invokes the matching slot.
// A table is built once per backend from a sparse set of implementations;
// the slots a backend leaves empty are filled with stubs that do nothing,
// so every slot of every table is callable.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glapi"
//	    "github.com/gogpu/glapi/backend"
//	    "github.com/gogpu/glapi/pixel"
//	)
//
//	ctx, err := backend.MustDefault().NewContext(640, 480, pixel.FormatRGBA8888)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	glapi.With(ctx.Dispatch(), func() {
//	    glapi.ClearColor(0, 0, 0, 1)
//	    glapi.Clear(glapi.COLOR_BUFFER_BIT)
//	})
//
// # Tables
//
// [Build] takes a [Funcs] value with one optional field per operation and
// returns an immutable [Table]. [WithFallback] fills missing slots from
// another table instead of the stubs; backends use it for display list
// compilation, where only recordable operations differ from immediate
// execution. [BuildFromLookup] binds a table by entry point name.
//
// Callers that own a table can call its methods directly, for example
// t.Clear(mask), and skip the per-thread lookup entirely.
//
// # Current Table
//
// [SetCurrent] binds a table to the calling OS thread and [Current] returns
// it, or [Noop] when nothing is bound. Goroutines move between threads, so a
// goroutine that binds a table must hold runtime.LockOSThread while the
// binding is in use. [With] locks, binds, runs a function and restores the
// previous binding.
//
// # Diagnostics
//
// Calls that reach a stub are silent by default. Set GLAPI_DEBUG=1 in the
// environment, or call [SetDiagnosticsEnabled], to log them through
// [Logger] and to deliver them to a [DiagnosticFunc].
//
// # Architecture
//
// The module is organized into:
//   - glapi: tables, the thread registry and the entry points
//   - pixel: packed pixel layouts and single-pixel conversion
//   - span: row and scattered pixel I/O over color buffers
//   - swrast: the software renderer backend
//   - backend: backend registration, plus the trace and wgpu backends
//
// The per-operation sources (ops_gen.go, table_gen.go, noop_gen.go,
// entry_gen.go and backend/trace/trace_gen.go) are generated from
// internal/gen/api.toml.
package glapi

//go:generate go run ./internal/gen
