package backend

import (
	"errors"

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// RenderBackend is the interface for GL backends.
// It abstracts the implementation behind the dispatch tables, allowing
// callers to pick a software rasterizer, a GPU driver or a no-op sink
// without changing the code that issues GL calls.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before NewContext.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewContext creates a rendering context with a width x height color
	// buffer in the given pixel format. Backends that do not rasterize may
	// ignore the size and format.
	NewContext(width, height int, format pixel.Format) (Context, error)
}

// Context is a backend rendering context. Its dispatch table is what gets
// bound to a thread with glapi.SetCurrent or glapi.With.
type Context interface {
	// Dispatch returns the table that currently serves this context.
	// The table may change across NewList and EndList.
	Dispatch() *glapi.Table

	// Close releases the context. The context's table must not be bound
	// after Close.
	Close()
}
