// Package icons draws the static condition icons shown next to the
// temperature. Shapes are laid out on a unit square and scaled to the
// requested size.
package icons

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownIcon is returned for a name with no drawing.
var ErrUnknownIcon = errors.New("unknown icon")

// DefaultSize is the edge length of the shipped PNGs.
const DefaultSize = 128

// Names lists every icon in the order WriteAll saves them.
var Names = []string{"thunder", "rain", "snow", "mist", "sun", "cloud"}

var painters = map[string]func(dc *gg.Context){
	"thunder": drawThunder,
	"rain":    drawRain,
	"snow":    drawSnow,
	"mist":    drawMist,
	"sun":     drawSun,
	"cloud":   drawCloud,
}

// Palette.
var (
	sunYellow  = mustHex("#ffd34e")
	sunOrange  = mustHex("#ffa52e")
	cloudLight = mustHex("#eef2f7")
	cloudDark  = mustHex("#8a94a6")
	rainBlue   = mustHex("#5aa9ff")
	boltYellow = mustHex("#ffe14d")
	snowWhite  = mustHex("#ffffff")
	mistGrey   = mustHex("#c9d1dc")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Draw renders the named icon on a transparent square of the given size.
func Draw(name string, size int) (image.Image, error) {
	paint, ok := painters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon size %d: must be positive", size)
	}

	return render(paint, size).Image(), nil
}

func render(paint func(dc *gg.Context), size int) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.Scale(float64(size), float64(size))
	dc.SetLineCapRound()
	paint(dc)
	return dc
}

// setLineWidth sets a stroke width in unit-square coordinates. gg does not
// scale line widths with the transform.
func setLineWidth(dc *gg.Context, w float64) {
	dc.SetLineWidth(w * float64(dc.Width()))
}

// WriteAll saves every icon as dir/<name>.png and returns the paths.
func WriteAll(dir string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size %d: must be positive", size)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(Names))
	for _, name := range Names {
		dc := render(painters[name], size)
		path := filepath.Join(dir, name+".png")
		if err := dc.SavePNG(path); err != nil {
			return paths, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// cloud draws the shared cloud body, with its base centred on cx.
func cloud(dc *gg.Context, cx, cy, scale float64, c colorful.Color) {
	dc.SetColor(c)
	dc.DrawCircle(cx-0.17*scale, cy, 0.15*scale)
	dc.DrawCircle(cx+0.02*scale, cy-0.09*scale, 0.2*scale)
	dc.DrawCircle(cx+0.2*scale, cy+0.02*scale, 0.13*scale)
	dc.DrawRoundedRectangle(cx-0.32*scale, cy, 0.65*scale, 0.15*scale, 0.075*scale)
	dc.Fill()
}

func drawSun(dc *gg.Context) {
	const cx, cy = 0.5, 0.5

	dc.SetColor(sunOrange)
	setLineWidth(dc, 0.05)
	for k := 0; k < 8; k++ {
		a := float64(k) * math.Pi / 4
		dc.DrawLine(cx+0.27*math.Cos(a), cy+0.27*math.Sin(a), cx+0.4*math.Cos(a), cy+0.4*math.Sin(a))
		dc.Stroke()
	}

	dc.SetColor(sunYellow)
	dc.DrawCircle(cx, cy, 0.2)
	dc.Fill()
}

func drawCloud(dc *gg.Context) {
	// A sun peeking out from behind.
	dc.SetColor(sunYellow)
	dc.DrawCircle(0.66, 0.36, 0.15)
	dc.Fill()

	cloud(dc, 0.47, 0.55, 1.1, cloudLight)
}

func drawRain(dc *gg.Context) {
	cloud(dc, 0.5, 0.4, 1, cloudLight)

	dc.SetColor(rainBlue)
	setLineWidth(dc, 0.045)
	for _, x := range []float64{0.32, 0.5, 0.68} {
		dc.DrawLine(x+0.03, 0.66, x-0.03, 0.84)
		dc.Stroke()
	}
}

func drawThunder(dc *gg.Context) {
	cloud(dc, 0.5, 0.38, 1, cloudDark)

	dc.SetColor(boltYellow)
	dc.MoveTo(0.54, 0.5)
	dc.LineTo(0.38, 0.72)
	dc.LineTo(0.49, 0.72)
	dc.LineTo(0.43, 0.92)
	dc.LineTo(0.63, 0.64)
	dc.LineTo(0.52, 0.64)
	dc.LineTo(0.6, 0.5)
	dc.ClosePath()
	dc.Fill()
}

func drawSnow(dc *gg.Context) {
	cloud(dc, 0.5, 0.38, 1, cloudLight)

	dc.SetColor(snowWhite)
	setLineWidth(dc, 0.025)
	for _, p := range [][2]float64{{0.32, 0.72}, {0.5, 0.8}, {0.68, 0.72}} {
		for k := 0; k < 3; k++ {
			a := float64(k) * math.Pi / 3
			dx, dy := 0.055*math.Cos(a), 0.055*math.Sin(a)
			dc.DrawLine(p[0]-dx, p[1]-dy, p[0]+dx, p[1]+dy)
			dc.Stroke()
		}
	}
}

func drawMist(dc *gg.Context) {
	dc.SetColor(mistGrey)
	setLineWidth(dc, 0.06)
	for i, y := range []float64{0.3, 0.43, 0.56, 0.69} {
		inset := 0.06 * float64(i%2)
		dc.DrawLine(0.18+inset, y, 0.82-inset, y)
		dc.Stroke()
	}
}
