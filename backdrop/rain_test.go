package backdrop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaindrop_WrapsToTop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		d := raindrop{x: 123, y: Height - 1, speed: 10}
		d.advance(rng, Width, Height, 25)

		assert.Equal(t, -25.0, d.y)
		assert.GreaterOrEqual(t, d.x, 0.0)
		assert.Less(t, d.x, float64(Width))
		assert.Equal(t, 10.0, d.speed)
	}
}

func TestRaindrop_FallsBySpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := raindrop{x: 7, y: 100, speed: 6}
	d.advance(rng, Width, Height, 10)

	assert.Equal(t, raindrop{x: 7, y: 106, speed: 6}, d)
}

func TestRaindrop_ExactlyAtBottomDoesNotWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := raindrop{x: 7, y: Height - 5, speed: 5}
	d.advance(rng, Width, Height, 10)

	assert.Equal(t, float64(Height), d.y)
	assert.Equal(t, 7.0, d.x)
}

func TestNewRainfall_Populations(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, spec := range []rainfallSpec{backgroundRain, foregroundRain} {
		r := newRainfall(rng, spec, Width, Height)
		require.Len(t, r.drops, spec.count)
		for _, d := range r.drops {
			assert.GreaterOrEqual(t, d.x, 0.0)
			assert.Less(t, d.x, float64(Width))
			assert.GreaterOrEqual(t, d.y, 0.0)
			assert.LessOrEqual(t, d.y, float64(Height))
			assert.GreaterOrEqual(t, d.speed, float64(spec.minSpeed))
			assert.LessOrEqual(t, d.speed, float64(spec.maxSpeed))
		}
	}
}

func TestRainfall_RenderAdvancesDrops(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := newRainfall(rng, foregroundRain, Width, Height)
	before := make([]raindrop, len(r.drops))
	copy(before, r.drops)

	l := r.render(rng, Width, Height)
	assert.Equal(t, Width, l.Bounds().Dx())

	for i, d := range r.drops {
		if d.y >= 0 {
			assert.Equal(t, before[i].y+before[i].speed, d.y)
		} else {
			assert.Equal(t, -foregroundRain.length, d.y)
		}
	}
}

func TestRainy_FramesDiffer(t *testing.T) {
	r := NewRainy(rand.New(rand.NewSource(5)), 80, 120)
	f0 := r.CalculateFrame(0)
	f1 := r.CalculateFrame(1)

	assert.Equal(t, 80, f0.Bounds().Dx())
	assert.Equal(t, 120, f0.Bounds().Dy())
	assert.NotEqual(t, f0.Image().Pix, f1.Image().Pix)
}
