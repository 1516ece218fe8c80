package image

import (
	"bufio"
	"image"
	"io"
	"strconv"
)

type encoder struct {
	w   *bufio.Writer
	tmp []byte
}

func (e *encoder) writeLine(c Color) error {
	e.tmp = append(e.tmp[:0], linePrefix...)
	e.tmp = strconv.AppendUint(e.tmp, uint64(c), 16)
	e.tmp = append(e.tmp, lineSuffix...)
	_, err := e.w.Write(e.tmp)
	return err
}

func (e *encoder) encode(m *RGB332) error {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if err := e.writeLine(m.RGB332At(x, y)); err != nil {
				return err
			}
		}
	}
	return e.w.Flush()
}

// Convert quantizes every pixel of b in row-major order. Alpha is ignored.
func Convert(b *Buffer) (*RGB332, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	m := NewRGB332(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := (y*b.Width + x) * bytesPerPixel
			m.Pix[y*m.Stride+x] = uint8(Quantize(b.Pix[i], b.Pix[i+1], b.Pix[i+2]))
		}
	}

	return m, nil
}

// Encode writes m to w as a table, one line per pixel.
func Encode(w io.Writer, m *RGB332) error {
	e := encoder{
		w:   bufio.NewWriter(w),
		tmp: make([]byte, 0, len(linePrefix)+2+len(lineSuffix)),
	}
	return e.encode(m)
}

// Write quantizes b and writes it to w as a table.
func Write(w io.Writer, b *Buffer) error {
	m, err := Convert(b)
	if err != nil {
		return err
	}
	return Encode(w, m)
}
