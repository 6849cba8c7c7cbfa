package backend

import (
	"fmt"

	"github.com/gogpu/glapi/pixel"
	"github.com/gogpu/glapi/swrast"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU span rasterizer backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the texture driver on gogpu/wgpu.
	BackendWGPU = "wgpu"
	// BackendNoop is the name of the backend whose contexts discard every call.
	BackendNoop = "noop"
)

// SoftwareBackend is a CPU-based rendering backend.
// It hands out swrast contexts that rasterize into span buffers.
type SoftwareBackend struct {
	initialized bool
	opts        []swrast.Option
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend. The options
// are applied to every context it creates.
func NewSoftwareBackend(opts ...swrast.Option) *SoftwareBackend {
	return &SoftwareBackend{opts: opts}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewContext creates a software context with its own color buffer.
func (b *SoftwareBackend) NewContext(width, height int, format pixel.Format) (Context, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	c, err := swrast.NewContext(width, height, format, b.opts...)
	if err != nil {
		return nil, fmt.Errorf("backend: software context: %w", err)
	}
	return c, nil
}
