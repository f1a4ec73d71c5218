package backdrop

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/matt-g-everett/weatherapp/util"
)

const (
	cloudyFrames = 40

	mistMargin    = 200
	mistBlobs     = 50
	mistMinRadius = 40
	mistMaxRadius = 100
	mistBlur      = 30
)

var (
	cloudySky  = Gradient{Top: RGB{100, 110, 120}, Bottom: RGB{180, 190, 200}}
	mistColour = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
)

// Cloudy is a muted sky with a soft band of mist drifting one pixel per frame.
//
// Cropping a sliding window from a fixed texture does not wrap back to frame 0,
// so the loop shows a jump at its boundary. With seamless set, each frame is a
// cross-fade between the window at offset index+frames and the one at index,
// which makes the frame after the last identical to the first.
type Cloudy struct {
	base     *Frame
	mist     *Layer
	width    int
	height   int
	frames   int
	seamless bool
	ramp     []float64
}

// NewCloudy creates an instance of a Cloudy animation.
func NewCloudy(rng *rand.Rand, width, height, frames int, seamless bool) *Cloudy {
	c := new(Cloudy)
	c.base = cloudySky.Render(width, height)
	c.width = width
	c.height = height
	c.frames = frames
	c.seamless = seamless
	if seamless {
		c.ramp = util.GenerateRamp(frames + 1)
	}
	c.mist = mistTexture(rng, width+mistMargin, height)
	return c
}

// mistTexture scatters faint discs over the upper half of an oversized layer
// and blurs them into a continuous haze.
func mistTexture(rng *rand.Rand, width, height int) *Layer {
	l := NewLayer(width, height)
	for i := 0; i < mistBlobs; i++ {
		x := util.RandRange(rng, 0, width)
		y := util.RandRange(rng, 0, height/2)
		r := util.RandRange(rng, mistMinRadius, mistMaxRadius)
		l.FillCircle(float64(x), float64(y), float64(r), mistColour)
	}
	return l.Blur(mistBlur)
}

func (c *Cloudy) window(offset int) *Frame {
	f := c.base.Clone()
	f.Composite(c.mist.Crop(image.Rect(offset, 0, offset+c.width, c.height)))
	return f
}

// CalculateFrame creates a new Frame instance.
func (c *Cloudy) CalculateFrame(index int) *Frame {
	if !c.seamless {
		return c.window(index)
	}

	ahead := c.window(index + c.frames)
	if index == 0 {
		return ahead
	}
	return ahead.InterpolateFrame(c.window(index), c.ramp[index])
}
