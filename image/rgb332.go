package image

import (
	"image"
	"image/color"
)

// RGB332 is an in-memory image of RGB332 colors, one byte per pixel.
type RGB332 struct {
	// Pix holds the image's pixels in row-major order. The pixel at (x, y)
	// is at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []uint8
	// Stride is the Pix stride in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewRGB332 returns a new RGB332 image with the given bounds.
func NewRGB332(r image.Rectangle) *RGB332 {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &RGB332{Rect: r}
	}
	return &RGB332{
		Pix:    make([]uint8, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (p *RGB332) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *RGB332) Bounds() image.Rectangle {
	return p.Rect
}

// At implements the image.Image interface.
func (p *RGB332) At(x, y int) color.Color {
	return p.RGB332At(x, y)
}

// RGB332At returns the color at (x, y), or zero if (x, y) is out of bounds.
func (p *RGB332) RGB332At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return Color(p.Pix[p.PixOffset(x, y)])
}

// PixOffset returns the index of the byte of Pix that corresponds to the
// pixel at (x, y).
func (p *RGB332) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// Set implements the draw.Image interface.
func (p *RGB332) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint8(Model.Convert(c).(Color))
}

// SetRGB332 sets the pixel at (x, y) without any color conversion.
func (p *RGB332) SetRGB332(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint8(c)
}
