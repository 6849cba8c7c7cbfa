// Package pixel describes packed pixel layouts and converts single pixels
// between their packed encoding and canonical 8-bit RGBA or color-index values.
//
// Every supported layout is a Format with a process-wide, immutable
// Descriptor. Descriptors are data: bit widths and shifts per channel, the
// number of bytes a pixel occupies, and its byte order. The codec functions are
// driven entirely by that data, so adding a layout means adding a table entry.
package pixel

import (
	"errors"
	"fmt"
)

// Format identifies a packed pixel layout.
type Format uint8

const (
	// FormatRGBA8888 is 32-bit RGBA, bytes R, G, B, A in memory.
	FormatRGBA8888 Format = iota

	// FormatBGRA8888 is 32-bit BGRA, bytes B, G, R, A in memory
	// (ARGB words on little-endian machines).
	FormatBGRA8888

	// FormatRGB888 is 24-bit RGB, bytes R, G, B in memory. No alpha.
	FormatRGB888

	// FormatBGR888 is 24-bit BGR, bytes B, G, R in memory. No alpha.
	FormatBGR888

	// FormatRGB565 is 16-bit 5-6-5 RGB stored little-endian.
	FormatRGB565

	// FormatRGB565BE is 16-bit 5-6-5 RGB stored big-endian.
	FormatRGB565BE

	// FormatARGB1555 is 16-bit RGB with a 1-bit alpha in the top bit.
	FormatARGB1555

	// FormatRGBA4444 is 16-bit RGBA with 4 bits per channel.
	FormatRGBA4444

	// FormatRGB332 is 8-bit RGB with 3-3-2 bits per channel.
	FormatRGB332

	// FormatCI8 is an 8-bit color index.
	FormatCI8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Common descriptor errors.
var (
	// ErrChannelOverflow is returned when declared channel widths do not fit
	// in the pixel size.
	ErrChannelOverflow = errors.New("pixel: channels exceed pixel size")

	// ErrChannelOverlap is returned when two channel masks share bits.
	ErrChannelOverlap = errors.New("pixel: channel masks overlap")

	// ErrChannelSet is returned when a descriptor declares both or neither of
	// the RGBA channel set and the index channel.
	ErrChannelSet = errors.New("pixel: exactly one of RGBA or index channels required")

	// ErrPixelSize is returned when bytes per pixel is outside 1..4.
	ErrPixelSize = errors.New("pixel: bytes per pixel must be 1..4")

	// ErrUnsupportedFormat is returned for a Format outside the table.
	ErrUnsupportedFormat = errors.New("pixel: unsupported format")
)

// Channel is the position of one channel inside a packed pixel word.
type Channel struct {
	// Bits is the field width. Zero means the channel is absent.
	Bits uint8

	// Shift is the bit position of the field's least significant bit.
	Shift uint8
}

// Max returns the largest value the field can hold.
func (c Channel) Max() uint32 {
	return uint32(1)<<c.Bits - 1
}

// Mask returns the field mask in word position.
func (c Channel) Mask() uint32 {
	return c.Max() << c.Shift
}

// Descriptor is the bit layout of one packed pixel format.
type Descriptor struct {
	// Format is the format this descriptor belongs to.
	Format Format

	// R, G, B, A are the color channels. A.Bits == 0 means no alpha.
	R, G, B, A Channel

	// Index is the color-index channel. Set only for indexed formats.
	Index Channel

	// BytesPerPixel is the packed pixel size, 1 to 4.
	BytesPerPixel int

	// BigEndian selects the byte order of multi-byte pixels.
	BigEndian bool
}

// descriptors is indexed by Format.
var descriptors = [formatCount]Descriptor{
	FormatRGBA8888: {
		R: Channel{8, 0}, G: Channel{8, 8}, B: Channel{8, 16}, A: Channel{8, 24},
		BytesPerPixel: 4,
	},
	FormatBGRA8888: {
		B: Channel{8, 0}, G: Channel{8, 8}, R: Channel{8, 16}, A: Channel{8, 24},
		BytesPerPixel: 4,
	},
	FormatRGB888: {
		R: Channel{8, 0}, G: Channel{8, 8}, B: Channel{8, 16},
		BytesPerPixel: 3,
	},
	FormatBGR888: {
		B: Channel{8, 0}, G: Channel{8, 8}, R: Channel{8, 16},
		BytesPerPixel: 3,
	},
	FormatRGB565: {
		R: Channel{5, 11}, G: Channel{6, 5}, B: Channel{5, 0},
		BytesPerPixel: 2,
	},
	FormatRGB565BE: {
		R: Channel{5, 11}, G: Channel{6, 5}, B: Channel{5, 0},
		BytesPerPixel: 2,
		BigEndian:     true,
	},
	FormatARGB1555: {
		A: Channel{1, 15}, R: Channel{5, 10}, G: Channel{5, 5}, B: Channel{5, 0},
		BytesPerPixel: 2,
	},
	FormatRGBA4444: {
		R: Channel{4, 12}, G: Channel{4, 8}, B: Channel{4, 4}, A: Channel{4, 0},
		BytesPerPixel: 2,
	},
	FormatRGB332: {
		R: Channel{3, 5}, G: Channel{3, 2}, B: Channel{2, 0},
		BytesPerPixel: 1,
	},
	FormatCI8: {
		Index:         Channel{8, 0},
		BytesPerPixel: 1,
	},
}

func init() {
	for f := range descriptors {
		descriptors[f].Format = Format(f)
	}
}

// Descriptor returns the layout of f.
// It panics if f is not a supported format; passing one is a programming error.
func (f Format) Descriptor() *Descriptor {
	if f >= formatCount {
		panic(fmt.Sprintf("pixel: unsupported format %d", f))
	}
	return &descriptors[f]
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the packed pixel size.
func (f Format) BytesPerPixel() int {
	return f.Descriptor().BytesPerPixel
}

// IsIndexed returns true for color-index formats.
func (f Format) IsIndexed() bool {
	return f.Descriptor().IsIndexed()
}

// HasAlpha returns true if the format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Descriptor().HasAlpha()
}

// RowBytes returns the number of bytes in a tightly packed row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatBGRA8888:
		return "BGRA8888"
	case FormatRGB888:
		return "RGB888"
	case FormatBGR888:
		return "BGR888"
	case FormatRGB565:
		return "RGB565"
	case FormatRGB565BE:
		return "RGB565BE"
	case FormatARGB1555:
		return "ARGB1555"
	case FormatRGBA4444:
		return "RGBA4444"
	case FormatRGB332:
		return "RGB332"
	case FormatCI8:
		return "CI8"
	default:
		return "Unknown"
	}
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	fs := make([]Format, formatCount)
	for i := range fs {
		fs[i] = Format(i)
	}
	return fs
}

// IsIndexed returns true if the descriptor has an index channel.
func (d *Descriptor) IsIndexed() bool {
	return d.Index.Bits != 0
}

// HasAlpha returns true if the descriptor has an alpha channel.
func (d *Descriptor) HasAlpha() bool {
	return d.A.Bits != 0
}

// Validate checks the descriptor invariants: pixel size in range, channel
// widths fit in the pixel, no overlapping masks, and exactly one of the RGBA
// channel set and the index channel.
func (d *Descriptor) Validate() error {
	if d.BytesPerPixel < 1 || d.BytesPerPixel > 4 {
		return fmt.Errorf("%w: %d", ErrPixelSize, d.BytesPerPixel)
	}

	rgba := d.R.Bits != 0 || d.G.Bits != 0 || d.B.Bits != 0 || d.A.Bits != 0
	if rgba == d.IsIndexed() {
		return ErrChannelSet
	}

	limit := uint(d.BytesPerPixel) * 8
	var used uint32
	for _, c := range [...]Channel{d.R, d.G, d.B, d.A, d.Index} {
		if c.Bits == 0 {
			continue
		}
		if uint(c.Bits)+uint(c.Shift) > limit {
			return fmt.Errorf("%w: %d+%d > %d", ErrChannelOverflow, c.Bits, c.Shift, limit)
		}
		if used&c.Mask() != 0 {
			return ErrChannelOverlap
		}
		used |= c.Mask()
	}
	return nil
}
