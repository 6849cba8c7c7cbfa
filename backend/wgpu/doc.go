// Package wgpu provides a GL texture driver on top of gogpu/wgpu.
//
// The driver implements texture object management and uploads on a HAL
// device: GenTextures, BindTexture, DeleteTextures and TexImage2D, plus
// GetError, GetString, Flush and Finish. Every other operation is filled
// with the glapi stub, so drawing through a wgpu context reports a
// diagnostic and does nothing.
//
// # Devices
//
// The device is chosen in one of three ways:
//
//   - WGPUBackend.Init opens the first suitable adapter of a HAL backend
//     (Vulkan by default, see WithBackend).
//   - NewFromProvider shares the device of a gpucontext.DeviceProvider that
//     also exposes its HAL handles, such as a gogpu window.
//   - NewWithDevice takes a hal.Device and hal.Queue directly.
//
// # Uploads
//
// TexImage2D decodes client memory with the span package and uploads the
// rows with Queue.WriteTexture. Client formats with a direct GPU equivalent
// are uploaded as-is; the rest are converted to RGBA8.
//
// Importing the package registers the "wgpu" backend:
//
//	import _ "github.com/gogpu/glapi/backend/wgpu"
package wgpu
