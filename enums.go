package glapi

// Enum is a GL enumerant.
type Enum uint32

// Bitfield is a GL bitmask argument, such as the mask given to Clear.
type Bitfield uint32

// Boolean values as used by GL.
const (
	FALSE = 0
	TRUE  = 1
)

// Primitive modes accepted by Begin.
const (
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006
	QUADS          = 0x0007
	QUAD_STRIP     = 0x0008
	POLYGON        = 0x0009
)

// Clear mask bits.
const (
	DEPTH_BUFFER_BIT   = 0x00000100
	ACCUM_BUFFER_BIT   = 0x00000200
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000
)

// Display list modes.
const (
	COMPILE             = 0x1300
	COMPILE_AND_EXECUTE = 0x1301
)

// Error codes returned by GetError.
const (
	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	STACK_OVERFLOW    = 0x0503
	STACK_UNDERFLOW   = 0x0504
	OUT_OF_MEMORY     = 0x0505
)

// Capabilities for Enable, Disable and IsEnabled.
const (
	DITHER       = 0x0BD0
	SCISSOR_TEST = 0x0C11
	TEXTURE_2D   = 0x0DE1
)

// Pixel formats.
const (
	COLOR_INDEX = 0x1900
	RED         = 0x1903
	ALPHA       = 0x1906
	RGB         = 0x1907
	RGBA        = 0x1908
	LUMINANCE   = 0x1909
	BGR         = 0x80E0
	BGRA        = 0x80E1
)

// Pixel component types.
const (
	BYTE                        = 0x1400
	UNSIGNED_BYTE               = 0x1401
	SHORT                       = 0x1402
	UNSIGNED_SHORT              = 0x1403
	INT                         = 0x1404
	UNSIGNED_INT                = 0x1405
	FLOAT                       = 0x1406
	UNSIGNED_BYTE_3_3_2         = 0x8032
	UNSIGNED_SHORT_4_4_4_4      = 0x8033
	UNSIGNED_SHORT_5_6_5        = 0x8363
	UNSIGNED_SHORT_1_5_5_5_REV  = 0x8366
	UNSIGNED_INT_8_8_8_8_REV    = 0x8367
	UNSIGNED_SHORT_5_6_5_REV    = 0x8364
	UNSIGNED_SHORT_4_4_4_4_REV  = 0x8365
	UNSIGNED_SHORT_5_5_5_1      = 0x8034
	UNSIGNED_INT_8_8_8_8        = 0x8035
	UNSIGNED_INT_10_10_10_2     = 0x8036
	UNSIGNED_INT_2_10_10_10_REV = 0x8368
)

// Strings for GetString.
const (
	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03
)

// Internal texture formats accepted by TexImage2D besides the pixel formats.
const (
	RGB8  = 0x8051
	RGBA8 = 0x8058
)
