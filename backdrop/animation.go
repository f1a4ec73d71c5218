package backdrop

import (
	"math/rand"
	"time"
)

// Canvas size of every background animation.
const (
	Width  = 400
	Height = 600
)

// An Animation renders the frames of one background scene. Implementations
// own all of their mutable state (particles, textures) and may advance it on
// every call, so frames must be requested in order starting at 0.
type Animation interface {
	CalculateFrame(index int) *Frame
}

// Sequence is a finished, loopable run of frames.
type Sequence struct {
	Name      string
	Frames    []*Frame
	Delay     time.Duration
	LoopCount int
}

// Scene describes how to build one named background.
type Scene struct {
	Name   string
	Frames int
	Delay  time.Duration
	New    func(rng *rand.Rand, opts Options) Animation
}

// Options tune scene construction.
type Options struct {
	Width          int
	Height         int
	SeamlessClouds bool
}

// DefaultOptions returns the canvas size used for the shipped assets.
func DefaultOptions() Options {
	return Options{Width: Width, Height: Height}
}

// Scenes lists the four backgrounds in generation order.
var Scenes = []Scene{
	{Name: "sunny", Frames: sunnyFrames, Delay: 100 * time.Millisecond, New: func(rng *rand.Rand, o Options) Animation {
		return NewSunny(o.Width, o.Height)
	}},
	{Name: "rainy", Frames: rainyFrames, Delay: 50 * time.Millisecond, New: func(rng *rand.Rand, o Options) Animation {
		return NewRainy(rng, o.Width, o.Height)
	}},
	{Name: "cloudy", Frames: cloudyFrames, Delay: 100 * time.Millisecond, New: func(rng *rand.Rand, o Options) Animation {
		return NewCloudy(rng, o.Width, o.Height, cloudyFrames, o.SeamlessClouds)
	}},
	{Name: "default", Frames: twilightFrames, Delay: 150 * time.Millisecond, New: func(rng *rand.Rand, o Options) Animation {
		return NewTwilight(o.Width, o.Height)
	}},
}

// Render builds a fresh Animation for the scene and collects its frames.
func (s Scene) Render(rng *rand.Rand, opts Options) *Sequence {
	a := s.New(rng, opts)
	seq := &Sequence{
		Name:   s.Name,
		Frames: make([]*Frame, 0, s.Frames),
		Delay:  s.Delay,
	}
	for i := 0; i < s.Frames; i++ {
		seq.Frames = append(seq.Frames, a.CalculateFrame(i))
	}

	return seq
}
