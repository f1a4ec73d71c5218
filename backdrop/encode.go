package backdrop

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Encode writes the sequence as a looping GIF.
func Encode(w io.Writer, seq *Sequence) error {
	if len(seq.Frames) == 0 {
		return fmt.Errorf("encode %s: no frames", seq.Name)
	}

	q := newQuantizer(seq.Frames)
	delay := int(seq.Delay / (10 * time.Millisecond))
	b := seq.Frames[0].Bounds()
	g := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(seq.Frames)),
		Delay:     make([]int, 0, len(seq.Frames)),
		LoopCount: seq.LoopCount,
		Config: image.Config{
			ColorModel: q.palette,
			Width:      b.Dx(),
			Height:     b.Dy(),
		},
	}
	for _, f := range seq.Frames {
		g.Image = append(g.Image, q.paletted(f))
		g.Delay = append(g.Delay, delay)
	}

	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("encode %s: %w", seq.Name, err)
	}
	return nil
}

// Save writes the sequence to dir/<name>.gif, replacing any earlier file.
func Save(dir string, seq *Sequence) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path = filepath.Join(dir, seq.Name+".gif")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := Encode(f, seq); err != nil {
		return "", err
	}
	return path, nil
}
