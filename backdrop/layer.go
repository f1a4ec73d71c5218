package backdrop

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// A Layer is a transparent raster that shapes are painted into before it is
// composited over a Frame. Painting replaces covered pixels instead of
// blending with what an earlier shape left on the same layer.
type Layer struct {
	img *image.NRGBA
	z   vector.Rasterizer
}

// NewLayer creates a fully transparent Layer.
func NewLayer(width, height int) *Layer {
	l := new(Layer)
	l.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	return l
}

func wrapLayer(img *image.NRGBA) *Layer {
	l := new(Layer)
	l.img = img
	return l
}

// Image exposes the underlying raster.
func (l *Layer) Image() *image.NRGBA {
	return l.img
}

// Bounds returns the layer rectangle.
func (l *Layer) Bounds() image.Rectangle {
	return l.img.Bounds()
}

// FillCircle paints a solid disc centred on the pixel at cx, cy.
func (l *Layer) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	cx += 0.5
	cy += 0.5
	l.paint(cx-r, cy-r, cx+r, cy+r, c, func(ox, oy float32) {
		x, y, rr := float32(cx)-ox, float32(cy)-oy, float32(r)
		k := float32(kappa) * rr
		l.z.MoveTo(x+rr, y)
		l.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
		l.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
		l.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
		l.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
		l.z.ClosePath()
	})
}

// Line paints a straight segment of the given width with butt ends.
func (l *Layer) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	x1, y1, x2, y2 = x1+0.5, y1+0.5, x2+0.5, y2+0.5
	nx, ny := -dy/length*width/2, dx/length*width/2
	xs := []float64{x1 + nx, x2 + nx, x2 - nx, x1 - nx}
	ys := []float64{y1 + ny, y2 + ny, y2 - ny, y1 - ny}
	minX, maxX := minMax(xs)
	minY, maxY := minMax(ys)
	l.paint(minX, minY, maxX, maxY, c, func(ox, oy float32) {
		l.z.MoveTo(float32(xs[0])-ox, float32(ys[0])-oy)
		for i := 1; i < len(xs); i++ {
			l.z.LineTo(float32(xs[i])-ox, float32(ys[i])-oy)
		}
		l.z.ClosePath()
	})
}

// paint rasterises the path built by trace into a coverage mask the size of
// the clipped bounding box and writes c into the covered pixels.
func (l *Layer) paint(x0, y0, x1, y1 float64, c color.NRGBA, trace func(ox, oy float32)) {
	box := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1))+1, int(math.Ceil(y1))+1)
	clip := box.Intersect(l.img.Bounds())
	if clip.Empty() {
		return
	}

	w, h := box.Dx(), box.Dy()
	l.z.Reset(w, h)
	trace(float32(box.Min.X), float32(box.Min.Y))
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	l.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			m := mask.AlphaAt(x-box.Min.X, y-box.Min.Y).A
			if m == 0 {
				continue
			}
			i := l.img.PixOffset(x, y)
			d := l.img.Pix[i : i+4 : i+4]
			if m >= 0xfe {
				d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
				continue
			}
			d[0] = mix(d[0], c.R, m)
			d[1] = mix(d[1], c.G, m)
			d[2] = mix(d[2], c.B, m)
			d[3] = mix(d[3], c.A, m)
		}
	}
}

// Blur returns a Gaussian-blurred copy of the layer.
func (l *Layer) Blur(sigma float64) *Layer {
	return wrapLayer(imaging.Blur(l.img, sigma))
}

// Crop returns a copy of the region r, rebased to the origin.
func (l *Layer) Crop(r image.Rectangle) *Layer {
	return wrapLayer(imaging.Crop(l.img, r))
}

func mix(dst, src, m uint8) uint8 {
	return uint8((uint32(dst)*uint32(255-m) + uint32(src)*uint32(m) + 127) / 255)
}

func minMax(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
