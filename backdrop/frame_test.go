package backdrop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFrame_OpaqueBlack(t *testing.T) {
	f := NewFrame(3, 2)
	assert.Equal(t, color.RGBA{A: 255}, f.At(2, 1))
}

func TestFrame_CloneIsIndependent(t *testing.T) {
	f := NewFrame(4, 4)
	c := f.Clone()
	c.Image().SetRGBA(1, 1, color.RGBA{R: 9, A: 255})

	assert.Equal(t, color.RGBA{A: 255}, f.At(1, 1))
	assert.Equal(t, color.RGBA{R: 9, A: 255}, c.At(1, 1))
}

func TestFrame_InterpolateEndpoints(t *testing.T) {
	a := Gradient{Top: RGB{10, 20, 30}, Bottom: RGB{10, 20, 30}}.Render(4, 4)
	b := Gradient{Top: RGB{200, 100, 0}, Bottom: RGB{200, 100, 0}}.Render(4, 4)

	assert.Equal(t, a.Image().Pix, a.InterpolateFrame(b, 0).Image().Pix)
	assert.Equal(t, b.Image().Pix, a.InterpolateFrame(b, 1).Image().Pix)

	mid := a.InterpolateFrame(b, 0.5).At(2, 2)
	assert.InDelta(t, 105, float64(mid.R), 1)
	assert.InDelta(t, 60, float64(mid.G), 1)
	assert.InDelta(t, 15, float64(mid.B), 1)
	assert.Equal(t, uint8(255), mid.A)
}

func TestFrame_CompositeBlendsOver(t *testing.T) {
	f := NewFrame(4, 4)
	l := NewLayer(4, 4)
	l.FillCircle(1, 1, 10, color.NRGBA{R: 255, A: 128})
	f.Composite(l)

	got := f.At(1, 1)
	assert.InDelta(t, 128, float64(got.R), 1)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(255), got.A)
}

func TestTwilight_TopDrifts(t *testing.T) {
	tw := NewTwilight(10, 10)
	assert.Equal(t, RGB{40, 20, 60}, tw.TopColor(0))
	assert.Equal(t, RGB{49, 20, 60}, tw.TopColor(8))
	assert.Equal(t, color.RGBA{R: 40, G: 20, B: 60, A: 255}, tw.CalculateFrame(0).At(0, 0))
}
