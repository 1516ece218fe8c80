package image

import (
	"image/color"
)

// Color is an 8-bit RGB332 color.
type Color uint8

// Quantize packs r, g and b into an RGB332 value by keeping the most
// significant bits of each channel.
func Quantize(r, g, b uint8) Color {
	return Color(r&redMask | (g>>greenShift)<<2 | b>>blueShift)
}

// RGBA implements the color.Color interface. Each field is widened by bit
// replication so 0xff maps back to full intensity.
func (c Color) RGBA() (r, g, b, a uint32) {
	r3 := uint32(c>>5) & 0x07
	g3 := uint32(c>>2) & 0x07
	b2 := uint32(c) & 0x03

	r = r3<<13 | r3<<10 | r3<<7 | r3<<4 | r3<<1 | r3>>2
	g = g3<<13 | g3<<10 | g3<<7 | g3<<4 | g3<<1 | g3>>2
	b = b2 * 0x5555
	return r, g, b, 0xffff
}

func rgb332Model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	// Quantize the straight channels, not the premultiplied ones
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Quantize(n.R, n.G, n.B)
}

// Model converts any color to its RGB332 equivalent, ignoring alpha.
var Model = color.ModelFunc(rgb332Model)

// Palette holds every RGB332 color; the index of each entry is its value.
var Palette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}()
