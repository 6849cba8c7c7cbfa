package glapi

import "github.com/gogpu/glapi/pixel"

// ClientFormat maps a GL format and type pair, as passed to DrawPixels,
// ReadPixels and TexImage2D, to the packed layout of client memory.
// Packed types are interpreted as little-endian words.
func ClientFormat(format, xtype Enum) (pixel.Format, bool) {
	switch format {
	case RGBA:
		switch xtype {
		case UNSIGNED_BYTE, UNSIGNED_INT_8_8_8_8_REV:
			return pixel.FormatRGBA8888, true
		case UNSIGNED_SHORT_4_4_4_4:
			return pixel.FormatRGBA4444, true
		}
	case BGRA:
		switch xtype {
		case UNSIGNED_BYTE, UNSIGNED_INT_8_8_8_8_REV:
			return pixel.FormatBGRA8888, true
		case UNSIGNED_SHORT_1_5_5_5_REV:
			return pixel.FormatARGB1555, true
		}
	case RGB:
		switch xtype {
		case UNSIGNED_BYTE:
			return pixel.FormatRGB888, true
		case UNSIGNED_SHORT_5_6_5:
			return pixel.FormatRGB565, true
		case UNSIGNED_BYTE_3_3_2:
			return pixel.FormatRGB332, true
		}
	case BGR:
		if xtype == UNSIGNED_BYTE {
			return pixel.FormatBGR888, true
		}
	case COLOR_INDEX:
		if xtype == UNSIGNED_BYTE {
			return pixel.FormatCI8, true
		}
	}
	return 0, false
}

// ClientStride returns the byte distance between rows of width pixels in
// client memory, using the default unpack and pack alignment of 4.
func ClientStride(width int, f pixel.Format) int {
	return (f.RowBytes(width) + 3) &^ 3
}

// ClientSize returns the number of bytes a width x height client image
// occupies. The last row is not padded.
func ClientSize(width, height int, f pixel.Format) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return ClientStride(width, f)*(height-1) + f.RowBytes(width)
}
