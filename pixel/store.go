package pixel

import "encoding/binary"

// Store writes the packed pixel p into the first BytesPerPixel bytes of dst.
func (d *Descriptor) Store(dst []byte, p uint32) {
	switch d.BytesPerPixel {
	case 1:
		dst[0] = byte(p)
	case 2:
		if d.BigEndian {
			binary.BigEndian.PutUint16(dst, uint16(p))
		} else {
			binary.LittleEndian.PutUint16(dst, uint16(p))
		}
	case 3:
		_ = dst[2]
		if d.BigEndian {
			dst[0], dst[1], dst[2] = byte(p>>16), byte(p>>8), byte(p)
		} else {
			dst[0], dst[1], dst[2] = byte(p), byte(p>>8), byte(p>>16)
		}
	case 4:
		if d.BigEndian {
			binary.BigEndian.PutUint32(dst, p)
		} else {
			binary.LittleEndian.PutUint32(dst, p)
		}
	}
}

// Load reads a packed pixel from the first BytesPerPixel bytes of src.
func (d *Descriptor) Load(src []byte) uint32 {
	switch d.BytesPerPixel {
	case 1:
		return uint32(src[0])
	case 2:
		if d.BigEndian {
			return uint32(binary.BigEndian.Uint16(src))
		}
		return uint32(binary.LittleEndian.Uint16(src))
	case 3:
		_ = src[2]
		if d.BigEndian {
			return uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		}
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	case 4:
		if d.BigEndian {
			return binary.BigEndian.Uint32(src)
		}
		return binary.LittleEndian.Uint32(src)
	}
	return 0
}
