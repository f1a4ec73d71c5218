package backdrop

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Frame is one opaque RGB still of a background animation.
type Frame struct {
	img *image.RGBA
}

// NewFrame creates a new black Frame of the given size.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(f.img, f.img.Bounds(), image.Black, image.Point{}, draw.Src)
	return f
}

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Bounds()
}

// Image exposes the underlying raster.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// At returns the 8-bit colour at x, y.
func (f *Frame) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	out := new(Frame)
	out.img = image.NewRGBA(f.img.Bounds())
	copy(out.img.Pix, f.img.Pix)
	return out
}

// Composite alpha-blends a transparent layer over the frame in place.
func (f *Frame) Composite(l *Layer) {
	draw.Draw(f.img, f.img.Bounds(), l.img, l.img.Bounds().Min, draw.Over)
}

// InterpolateFrame merges two frames, t = 0 gives f and t = 1 gives f2.
func (f *Frame) InterpolateFrame(f2 *Frame, t float64) *Frame {
	b := f.img.Bounds()
	out := new(Frame)
	out.img = image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c1, _ := colorful.MakeColor(f.img.RGBAAt(x, y))
			c2, _ := colorful.MakeColor(f2.img.RGBAAt(x, y))
			r, g, bl := c1.BlendRgb(c2, t).Clamped().RGB255()
			out.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 0xff})
		}
	}

	return out
}
