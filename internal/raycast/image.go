package raycast

import "image"

// RGB8 is one quantized pixel.
type RGB8 [3]uint8

// Image is a row-major pixel buffer with a top-left origin.
type Image struct {
	Width, Height int
	Pix           []RGB8 // Pix[y*Width+x]
}

func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic("render size must be positive")
	}
	return &Image{Width: width, Height: height, Pix: make([]RGB8, width*height)}
}

func (m *Image) At(x, y int) RGB8     { return m.Pix[y*m.Width+x] }
func (m *Image) Set(x, y int, c RGB8) { m.Pix[y*m.Width+x] = c }

// row returns the slice backing scanline y.
func (m *Image) row(y int) []RGB8 { return m.Pix[y*m.Width : (y+1)*m.Width] }

// NRGBA converts the buffer to an opaque image.NRGBA for the encoders.
func (m *Image) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		rowOff := y * img.Stride
		for x, c := range m.row(y) {
			p := rowOff + x*4
			img.Pix[p+0] = c[ChR]
			img.Pix[p+1] = c[ChG]
			img.Pix[p+2] = c[ChB]
			img.Pix[p+3] = 255
		}
	}
	return img
}

// quantize clamps each channel to [0,1], scales by 255 and truncates.
func quantize(c RGB) RGB8 {
	q := func(x Real) uint8 {
		if !(x > 0) {
			return 0
		}
		return uint8(clamp01(x) * 255)
	}
	return RGB8{q(c.R), q(c.G), q(c.B)}
}
