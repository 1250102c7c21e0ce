package format

import (
	"encoding/binary"
)

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [RGB565].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats. ARGB8888 and XRGB8888 are the usual
// framebuffer formats. RGB565 and Gray8 are common on small SPI and
// I2C display controllers.
var (
	ARGB8888 formatARGB8888
	XRGB8888 formatXRGB8888
	RGB565   formatRGB565
	Gray8    formatGray8
)

// unpremultiply converts a premultiplied 16-bit channel to a straight
// channel of max bits.
func unpremultiply(c, a, max uint32) uint32 {
	if a == 0 {
		return 0
	}
	return c * max / a
}

type formatARGB8888 struct{}

func (formatARGB8888) String() string { return "ARGB8888" }

func (formatARGB8888) Size() int { return 4 }

func (formatARGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = (n >> 24 * 0xFFFF / 0xFF)
	r = (n >> 16 & 0xFF) * a / 0xFF
	g = (n >> 8 & 0xFF) * a / 0xFF
	b = (n & 0xFF) * a / 0xFF
	return
}

func (formatARGB8888) Write(buf []byte, r, g, b, a uint32) {
	r = unpremultiply(r, a, 0xFF) << 16
	g = unpremultiply(g, a, 0xFF) << 8
	b = unpremultiply(b, a, 0xFF)
	a = (a * 0xFF / 0xFFFF) << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

type formatXRGB8888 struct{}

func (formatXRGB8888) String() string { return "XRGB8888" }

func (formatXRGB8888) Size() int { return 4 }

func (formatXRGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = 0xFFFF
	r = (n >> 16 & 0xFF) * 0xFFFF / 0xFF
	g = (n >> 8 & 0xFF) * 0xFFFF / 0xFF
	b = (n & 0xFF) * 0xFFFF / 0xFF
	return
}

func (formatXRGB8888) Write(buf []byte, r, g, b, a uint32) {
	r = (r * 0xFF / 0xFFFF) << 16
	g = (g * 0xFF / 0xFFFF) << 8
	b = b * 0xFF / 0xFFFF
	a = 0xFF << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

// formatRGB565 is 16-bit color, red in the high bits, stored
// big-endian the way most display controllers expect it on the wire.
type formatRGB565 struct{}

func (formatRGB565) String() string { return "RGB565" }

func (formatRGB565) Size() int { return 2 }

func (formatRGB565) Read(data []byte) (r, g, b, a uint32) {
	n := uint32(binary.BigEndian.Uint16(data))
	a = 0xFFFF
	r = (n >> 11 & 0x1F) * 0xFFFF / 0x1F
	g = (n >> 5 & 0x3F) * 0xFFFF / 0x3F
	b = (n & 0x1F) * 0xFFFF / 0x1F
	return
}

func (formatRGB565) Write(buf []byte, r, g, b, a uint32) {
	r = (r * 0x1F / 0xFFFF) << 11
	g = (g * 0x3F / 0xFFFF) << 5
	b = b * 0x1F / 0xFFFF
	binary.BigEndian.PutUint16(buf, uint16(r|g|b))
}

type formatGray8 struct{}

func (formatGray8) String() string { return "Gray8" }

func (formatGray8) Size() int { return 1 }

func (formatGray8) Read(data []byte) (r, g, b, a uint32) {
	y := uint32(data[0]) * 0x101
	return y, y, y, 0xFFFF
}

func (formatGray8) Write(buf []byte, r, g, b, a uint32) {
	// Same weights as color.GrayModel.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
	buf[0] = uint8(y)
}
