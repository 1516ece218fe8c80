/*
Package image implements RGB332 quantization of decoded images and emits the
result as a firmware table.

RGB332 packs a color into a single byte laid out as RRRGGGBB; the top three
bits of red, the top three bits of green and the top two bits of blue. Lower
bits are discarded, there is no rounding or dithering and alpha is ignored.

A table is written as one line per pixel in row-major order, top to bottom
and left to right. Each line is the value as an unpadded lowercase hex
literal followed by a comma and a space:

	0xe0,
	0x1c,
	0x7,
*/
package image

const (
	bytesPerPixel = 4

	redMask    = 0xe0
	greenShift = 5
	blueShift  = 6

	linePrefix = "0x"
	lineSuffix = ", \n"

	pngHeader = "\x89PNG\r\n\x1a\n"
)
