package pixel

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDescriptorsValid(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			d := f.Descriptor()
			if d.Format != f {
				t.Errorf("Descriptor().Format = %v, want %v", d.Format, f)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestFormat_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatRGBA8888, 4},
		{FormatBGRA8888, 4},
		{FormatRGB888, 3},
		{FormatBGR888, 3},
		{FormatRGB565, 2},
		{FormatRGB565BE, 2},
		{FormatARGB1555, 2},
		{FormatRGBA4444, 2},
		{FormatRGB332, 1},
		{FormatCI8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.expected {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatRGBA8888, true},
		{FormatBGRA8888, true},
		{FormatRGB888, false},
		{FormatRGB565, false},
		{FormatARGB1555, true},
		{FormatRGBA4444, true},
		{FormatRGB332, false},
		{FormatCI8, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_IsIndexed(t *testing.T) {
	for _, f := range Formats() {
		want := f == FormatCI8
		if got := f.IsIndexed(); got != want {
			t.Errorf("%v.IsIndexed() = %v, want %v", f, got, want)
		}
	}
}

func TestFormat_Invalid(t *testing.T) {
	if Format(200).IsValid() {
		t.Error("Format(200).IsValid() = true")
	}
	if got := Format(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Descriptor() on unsupported format did not panic")
		}
	}()
	_ = Format(200).Descriptor()
}

func TestFormat_RowBytes(t *testing.T) {
	if got := FormatRGB888.RowBytes(10); got != 30 {
		t.Errorf("RGB888.RowBytes(10) = %d, want 30", got)
	}
	if got := FormatRGB565.RowBytes(7); got != 14 {
		t.Errorf("RGB565.RowBytes(7) = %d, want 14", got)
	}
}

func TestDescriptorValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want error
	}{
		{
			name: "overflow",
			desc: Descriptor{R: Channel{8, 4}, G: Channel{4, 0}, B: Channel{4, 12}, BytesPerPixel: 1},
			want: ErrChannelOverflow,
		},
		{
			name: "overlap",
			desc: Descriptor{R: Channel{5, 0}, G: Channel{5, 3}, B: Channel{5, 10}, BytesPerPixel: 2},
			want: ErrChannelOverlap,
		},
		{
			name: "both sets",
			desc: Descriptor{R: Channel{8, 0}, Index: Channel{8, 8}, BytesPerPixel: 2},
			want: ErrChannelSet,
		},
		{
			name: "no channels",
			desc: Descriptor{BytesPerPixel: 2},
			want: ErrChannelSet,
		},
		{
			name: "size",
			desc: Descriptor{Index: Channel{8, 0}, BytesPerPixel: 5},
			want: ErrPixelSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.desc.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFormat_TextureFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   gputypes.TextureFormat
		upload Format
	}{
		{FormatRGBA8888, gputypes.TextureFormatRGBA8Unorm, FormatRGBA8888},
		{FormatBGRA8888, gputypes.TextureFormatBGRA8Unorm, FormatBGRA8888},
		{FormatCI8, gputypes.TextureFormatR8Unorm, FormatCI8},
		{FormatRGB565, gputypes.TextureFormatUndefined, FormatRGBA8888},
		{FormatRGB888, gputypes.TextureFormatUndefined, FormatRGBA8888},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
			if got := tt.format.UploadFormat(); got != tt.upload {
				t.Errorf("UploadFormat() = %v, want %v", got, tt.upload)
			}
		})
	}
}
