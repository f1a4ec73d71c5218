package backdrop

import (
	"image/color"
	"math/rand"

	"github.com/matt-g-everett/weatherapp/util"
)

const rainyFrames = 15

var rainSky = Gradient{Top: RGB{15, 20, 30}, Bottom: RGB{40, 50, 70}}

type raindrop struct {
	x     float64
	y     float64
	speed float64
}

// A rainfall is one population of drops sharing a look.
type rainfall struct {
	drops  []raindrop
	length float64
	width  float64
	colour color.NRGBA
	blur   float64
}

// Rainfall parameters for the two parallax populations.
var (
	backgroundRain = rainfallSpec{count: 80, minSpeed: 3, maxSpeed: 8, length: 10, width: 1,
		colour: color.NRGBA{R: 100, G: 120, B: 150, A: 100}, blur: 2}
	foregroundRain = rainfallSpec{count: 40, minSpeed: 10, maxSpeed: 20, length: 25, width: 2,
		colour: color.NRGBA{R: 200, G: 220, B: 255, A: 180}}
)

type rainfallSpec struct {
	count    int
	minSpeed int
	maxSpeed int
	length   float64
	width    float64
	colour   color.NRGBA
	blur     float64
}

func newRainfall(rng *rand.Rand, spec rainfallSpec, width, height int) *rainfall {
	r := new(rainfall)
	r.length = spec.length
	r.width = spec.width
	r.colour = spec.colour
	r.blur = spec.blur
	r.drops = make([]raindrop, spec.count)
	for i := range r.drops {
		r.drops[i] = raindrop{
			x:     float64(rng.Intn(width)),
			y:     float64(util.RandRange(rng, 0, height)),
			speed: float64(util.RandRange(rng, spec.minSpeed, spec.maxSpeed)),
		}
	}
	return r
}

// advance moves a drop down by its speed. Once it has left the bottom edge it
// re-enters above the top at a new column, keeping its speed.
func (d *raindrop) advance(rng *rand.Rand, width, height int, length float64) {
	d.y += d.speed
	if d.y > float64(height) {
		d.y = -length
		d.x = float64(rng.Intn(width))
	}
}

// render draws the drops at their current positions, then advances them.
func (r *rainfall) render(rng *rand.Rand, width, height int) *Layer {
	l := NewLayer(width, height)
	for i := range r.drops {
		d := &r.drops[i]
		l.Line(d.x, d.y, d.x, d.y+r.length, r.width, r.colour)
		d.advance(rng, width, height, r.length)
	}
	if r.blur > 0 {
		return l.Blur(r.blur)
	}
	return l
}

// Rainy is a dark sky with two layers of falling rain: slow, blurred drops
// behind and fast, sharp drops in front.
type Rainy struct {
	rng        *rand.Rand
	base       *Frame
	background *rainfall
	foreground *rainfall
}

// NewRainy creates an instance of a Rainy animation.
func NewRainy(rng *rand.Rand, width, height int) *Rainy {
	r := new(Rainy)
	r.rng = rng
	r.base = rainSky.Render(width, height)
	r.background = newRainfall(rng, backgroundRain, width, height)
	r.foreground = newRainfall(rng, foregroundRain, width, height)
	return r
}

// CalculateFrame creates a new Frame instance.
func (r *Rainy) CalculateFrame(index int) *Frame {
	f := r.base.Clone()
	b := f.Bounds()
	f.Composite(r.background.render(r.rng, b.Dx(), b.Dy()))
	f.Composite(r.foreground.render(r.rng, b.Dx(), b.Dy()))
	return f
}
