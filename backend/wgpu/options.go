package wgpu

import "github.com/gogpu/gputypes"

// Option configures a WGPUBackend.
type Option func(*options)

type options struct {
	backend  gputypes.Backend
	renderer string
}

func defaultOptions() options {
	return options{
		backend:  gputypes.BackendVulkan,
		renderer: "glapi wgpu",
	}
}

// WithBackend selects the HAL backend opened by Init.
func WithBackend(b gputypes.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithRenderer sets the RENDERER string reported by GetString. The adapter
// name is appended when known.
func WithRenderer(name string) Option {
	return func(o *options) { o.renderer = name }
}
