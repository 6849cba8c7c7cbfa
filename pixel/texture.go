package pixel

import "github.com/gogpu/gputypes"

// TextureFormat returns the GPU texture format with the same memory layout as
// f, or gputypes.TextureFormatUndefined if the GPU has no matching layout and
// pixels must be converted before upload.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA8888:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatCI8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// UploadFormat returns the format pixels of f should be converted to before
// a GPU upload: f itself when it maps directly, FormatRGBA8888 otherwise.
func (f Format) UploadFormat() Format {
	if f.TextureFormat() != gputypes.TextureFormatUndefined {
		return f
	}
	return FormatRGBA8888
}
