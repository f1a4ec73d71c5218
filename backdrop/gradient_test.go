package backdrop

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient_Midpoint(t *testing.T) {
	g := Gradient{Top: RGB{0, 0, 0}, Bottom: RGB{255, 255, 255}}
	f := g.Render(Width, Height)

	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 255}, f.At(0, 300))
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 255}, f.At(Width-1, 300))
}

func TestGradient_FirstRowIsTop(t *testing.T) {
	g := Gradient{Top: RGB{20, 100, 200}, Bottom: RGB{255, 220, 150}}
	f := g.Render(10, 20)
	assert.Equal(t, color.RGBA{R: 20, G: 100, B: 200, A: 255}, f.At(5, 0))
}

func TestGradient_RowsMatchInterpolation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 20; n++ {
		top := RGB{rng.Intn(256), rng.Intn(256), rng.Intn(256)}
		bottom := RGB{rng.Intn(256), rng.Intn(256), rng.Intn(256)}
		g := Gradient{Top: top, Bottom: bottom}
		f := g.Render(4, Height)

		y := rng.Intn(Height)
		ratio := float64(y) / float64(Height)
		want := func(a, b int) float64 { return float64(a) + float64(b-a)*ratio }
		got := f.At(rng.Intn(4), y)
		assert.InDelta(t, want(top.R, bottom.R), float64(got.R), 1)
		assert.InDelta(t, want(top.G, bottom.G), float64(got.G), 1)
		assert.InDelta(t, want(top.B, bottom.B), float64(got.B), 1)
	}
}

func TestGradient_RowsAreUniform(t *testing.T) {
	g := Gradient{Top: RGB{15, 20, 30}, Bottom: RGB{40, 50, 70}}
	f := g.Render(Width, 50)
	for y := 0; y < 50; y++ {
		c := f.At(0, y)
		for x := 1; x < Width; x++ {
			require.Equal(t, c, f.At(x, y))
		}
	}
}
