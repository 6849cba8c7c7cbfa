package backend

import (
	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/pixel"
)

// NoopBackend creates contexts whose every call is a diagnostic stub.
// It is the backend of last resort and is useful for measuring dispatch
// overhead.
type NoopBackend struct{}

func init() {
	Register(BackendNoop, func() RenderBackend {
		return NoopBackend{}
	})
}

// Name returns the backend identifier.
func (NoopBackend) Name() string { return BackendNoop }

// Init does nothing.
func (NoopBackend) Init() error { return nil }

// Close does nothing.
func (NoopBackend) Close() {}

// NewContext returns a context dispatching to glapi.Noop. Size and format
// are ignored.
func (NoopBackend) NewContext(int, int, pixel.Format) (Context, error) {
	return noopContext{}, nil
}

type noopContext struct{}

func (noopContext) Dispatch() *glapi.Table { return glapi.Noop() }
func (noopContext) Close()                 {}
