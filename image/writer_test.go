package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWrite(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Write(b, FromImage(redGreen())))
	assert.Equal(t, "0xe0, \n0x1c, \n", b.String())
}

func TestWriteUnpadded(t *testing.T) {
	buf := &Buffer{
		Width:  3,
		Height: 1,
		Pix: []byte{
			0x00, 0x00, 0x00, 0xff,
			0x00, 0x20, 0xc0, 0xff,
			0x12, 0x34, 0x56, 0x00,
		},
	}

	b := new(bytes.Buffer)
	require.NoError(t, Write(b, buf))
	assert.Equal(t, "0x0, \n0x7, \n0x5, \n", b.String())
}

func TestWriteRowMajor(t *testing.T) {
	const w, h = 7, 5

	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Index the pixel through the red and green fields
			m.SetNRGBA(x, y, color.NRGBA{uint8(x << 5), uint8(y << 5), 0x00, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Write(b, FromImage(m)))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, w*h)

	var want []string
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want = append(want, fmt.Sprintf("0x%x, ", x<<5|y<<2))
		}
	}
	for _, line := range lines {
		assert.Regexp(t, `^0x[0-9a-f]{1,2}, $`, line)
	}
	assert.Equal(t, want, lines)
}

func TestWriteEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Write(b, &Buffer{Width: 0, Height: 4}))
	assert.Equal(t, "", b.String())
}

func TestWriteMalformed(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Error(t, Write(b, &Buffer{Width: 2, Height: 2, Pix: make([]byte, 4)}))
	assert.Equal(t, 0, b.Len())
}

func TestConvert(t *testing.T) {
	m, err := Convert(FromImage(redGreen()))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
	assert.Equal(t, []uint8{0xe0, 0x1c}, m.Pix)
}

func TestEncodeSubImage(t *testing.T) {
	m := NewRGB332(image.Rect(0, 0, 3, 3))
	for i := range m.Pix {
		m.Pix[i] = uint8(i)
	}
	sub := &RGB332{
		Pix:    m.Pix[m.PixOffset(1, 1):],
		Stride: m.Stride,
		Rect:   image.Rect(1, 1, 3, 3),
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, sub))
	assert.Equal(t, "0x4, \n0x5, \n0x7, \n0x8, \n", b.String())
}

func TestEncodeWriteError(t *testing.T) {
	m, err := Convert(FromImage(redGreen()))
	require.NoError(t, err)

	assert.EqualError(t, Encode(errWriter{}, m), "write failed")
}
