package backdrop

import (
	"image/color"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B int
}

// Gradient is a vertical two-stop linear gradient.
type Gradient struct {
	Top    RGB
	Bottom RGB
}

// RowColor gets the colour of row y in a gradient of the given height.
// Channels are truncated, not rounded.
func (g Gradient) RowColor(y, height int) color.RGBA {
	ratio := float64(y) / float64(height)
	lerp := func(a, b int) uint8 {
		return clampByte(int(float64(a) + float64(b-a)*ratio))
	}
	return color.RGBA{
		R: lerp(g.Top.R, g.Bottom.R),
		G: lerp(g.Top.G, g.Bottom.G),
		B: lerp(g.Top.B, g.Bottom.B),
		A: 0xff,
	}
}

// Render paints the gradient into a new Frame.
func (g Gradient) Render(width, height int) *Frame {
	f := NewFrame(width, height)
	pix := f.img.Pix
	stride := f.img.Stride
	for y := 0; y < height; y++ {
		c := g.RowColor(y, height)
		row := pix[y*stride : y*stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	return f
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
