package backdrop

import (
	"image"
	"image/color"
	"sort"
)

const (
	bucketBits  = 5
	bucketCount = 1 << (3 * bucketBits)
	maxColours  = 256
)

func bucketOf(r, g, b uint8) int {
	const shift = 8 - bucketBits
	return int(r>>shift)<<(2*bucketBits) | int(g>>shift)<<bucketBits | int(b>>shift)
}

// A quantizer maps true-colour frames onto one shared palette built from the
// most frequent colour buckets across every frame of a sequence.
type quantizer struct {
	palette color.Palette
	cache   []int16
}

func newQuantizer(frames []*Frame) *quantizer {
	counts := make([]int, bucketCount)
	sums := make([][3]int, bucketCount)
	for _, f := range frames {
		pix := f.img.Pix
		for i := 0; i+3 < len(pix); i += 4 {
			k := bucketOf(pix[i], pix[i+1], pix[i+2])
			counts[k]++
			sums[k][0] += int(pix[i])
			sums[k][1] += int(pix[i+1])
			sums[k][2] += int(pix[i+2])
		}
	}

	used := make([]int, 0, 1024)
	for k, n := range counts {
		if n > 0 {
			used = append(used, k)
		}
	}
	sort.SliceStable(used, func(i, j int) bool {
		return counts[used[i]] > counts[used[j]]
	})
	if len(used) > maxColours {
		used = used[:maxColours]
	}

	q := new(quantizer)
	q.palette = make(color.Palette, 0, len(used))
	for _, k := range used {
		n := counts[k]
		q.palette = append(q.palette, color.RGBA{
			R: uint8(sums[k][0] / n),
			G: uint8(sums[k][1] / n),
			B: uint8(sums[k][2] / n),
			A: 0xff,
		})
	}
	if len(q.palette) == 0 {
		q.palette = append(q.palette, color.RGBA{A: 0xff})
	}

	q.cache = make([]int16, bucketCount)
	for i := range q.cache {
		q.cache[i] = -1
	}
	return q
}

// paletted converts a frame using the nearest palette entry per bucket.
func (q *quantizer) paletted(f *Frame) *image.Paletted {
	b := f.Bounds()
	out := image.NewPaletted(b, q.palette)
	pix := f.img.Pix
	for i, j := 0, 0; i+3 < len(pix); i, j = i+4, j+1 {
		k := bucketOf(pix[i], pix[i+1], pix[i+2])
		if q.cache[k] < 0 {
			c := color.RGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: 0xff}
			q.cache[k] = int16(q.palette.Index(c))
		}
		out.Pix[j] = uint8(q.cache[k])
	}
	return out
}
