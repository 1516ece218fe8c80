package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

var (
	errNotPNG     = errors.New("image: not a PNG file")
	errDimensions = errors.New("image: negative dimensions")
)

// Buffer is a decoded image as non-premultiplied RGBA bytes, four per pixel
// in row-major order. The pixel at (x, y) starts at Pix[(y*Width+x)*4].
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Validate checks that the length of Pix agrees with the dimensions.
func (b *Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return errDimensions
	}
	if want := b.Width * b.Height * bytesPerPixel; len(b.Pix) != want {
		return fmt.Errorf("image: buffer is %d bytes, %dx%d needs %d", len(b.Pix), b.Width, b.Height, want)
	}
	return nil
}

// scale16 narrows a 16-bit sample to 8 bits, rounding to nearest.
func scale16(v uint16) uint8 {
	return uint8((uint32(v)*0xff + 0x7fff) / 0xffff)
}

func fromWide(m image.Image) *Buffer {
	r := m.Bounds()
	b := &Buffer{
		Width:  r.Dx(),
		Height: r.Dy(),
		Pix:    make([]byte, r.Dx()*r.Dy()*bytesPerPixel),
	}

	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBA64Model.Convert(m.At(x, y)).(color.NRGBA64)
			b.Pix[i+0] = scale16(c.R)
			b.Pix[i+1] = scale16(c.G)
			b.Pix[i+2] = scale16(c.B)
			b.Pix[i+3] = scale16(c.A)
			i += bytesPerPixel
		}
	}
	return b
}

// FromImage copies m into a Buffer with its top-left corner at (0, 0).
// 16-bit samples are rounded to the nearest 8-bit value rather than
// truncated.
func FromImage(m image.Image) *Buffer {
	switch m.(type) {
	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		return fromWide(m)
	}

	n := imaging.Clone(m)
	return &Buffer{
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
		Pix:    n.Pix,
	}
}

// Decode reads a PNG image from r and returns its pixels.
func Decode(r io.Reader) (*Buffer, error) {
	br := bufio.NewReader(r)

	sig, err := br.Peek(len(pngHeader))
	if err != nil {
		if err == io.EOF {
			return nil, errNotPNG
		}
		return nil, err
	}
	if string(sig) != pngHeader {
		return nil, errNotPNG
	}

	m, err := imaging.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	return FromImage(m), nil
}

// Open decodes the PNG image in file.
func Open(file string) (*Buffer, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
