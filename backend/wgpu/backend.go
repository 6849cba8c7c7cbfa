package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // registers the Vulkan HAL backend

	"github.com/gogpu/glapi"
	"github.com/gogpu/glapi/backend"
	"github.com/gogpu/glapi/pixel"
)

var (
	// ErrNoAdapter is returned by Init when the HAL backend has no adapters.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrNotHAL is returned by NewFromProvider when the provider does not
	// expose hal.Device and hal.Queue handles.
	ErrNotHAL = errors.New("wgpu: provider does not expose HAL types")
)

func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return New()
	})
}

// WGPUBackend is a backend.RenderBackend whose contexts share one HAL
// device.
type WGPUBackend struct {
	opts options

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string

	// external is true when the device belongs to someone else and must
	// not be destroyed by Close.
	external bool
}

// New returns an uninitialized backend. Init opens the device.
func New(opts ...Option) *WGPUBackend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &WGPUBackend{opts: o}
}

// NewWithDevice returns an initialized backend on an existing device and
// queue. Close does not destroy them.
func NewWithDevice(device hal.Device, queue hal.Queue, opts ...Option) *WGPUBackend {
	b := New(opts...)
	b.device = device
	b.queue = queue
	b.external = true
	return b
}

// NewFromProvider returns an initialized backend sharing the device of
// provider. The provider must also implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue. The adapter name
// reported by the provider is appended to the RENDERER string.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*WGPUBackend, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNotHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is %T", ErrNotHAL, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is %T", ErrNotHAL, hp.HalQueue())
	}
	b := NewWithDevice(device, queue, opts...)
	b.adapter = provider.AdapterInfo().Name
	return b, nil
}

// Name returns the backend identifier.
func (b *WGPUBackend) Name() string { return backend.BackendWGPU }

// Init opens a device on the configured HAL backend, preferring discrete
// and integrated GPUs. Init does nothing when a device is already set.
func (b *WGPUBackend) Init() error {
	if b.device != nil {
		return nil
	}
	hb, ok := hal.GetBackend(b.opts.backend)
	if !ok {
		return fmt.Errorf("%w: HAL backend %v", backend.ErrBackendNotAvailable, b.opts.backend)
	}
	instance, err := hb.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return ErrNoAdapter
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("wgpu: open device: %w", err)
	}
	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapter = selected.Info.Name
	b.external = false

	glapi.Logger().Info("wgpu: device opened", "adapter", b.adapter)
	return nil
}

// Close destroys the device if Init opened it.
func (b *WGPUBackend) Close() {
	if !b.external && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.device = nil
	b.queue = nil
}

// NewContext creates a texture context on the backend's device. The size
// and format are ignored: the driver has no color buffer.
func (b *WGPUBackend) NewContext(_, _ int, _ pixel.Format) (backend.Context, error) {
	if b.device == nil {
		return nil, backend.ErrNotInitialized
	}
	return b.newContext(), nil
}

// NewTextureContext is NewContext with the concrete return type.
func (b *WGPUBackend) NewTextureContext() (*Context, error) {
	if b.device == nil {
		return nil, backend.ErrNotInitialized
	}
	return b.newContext(), nil
}

func (b *WGPUBackend) newContext() *Context {
	renderer := b.opts.renderer
	if b.adapter != "" {
		renderer += " (" + b.adapter + ")"
	}
	return newContext(b.device, b.queue, renderer)
}
