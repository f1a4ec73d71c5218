package backdrop

import (
	"log/slog"
	"math/rand"
	"time"
)

// Generator renders every scene to disk, one after another.
type Generator struct {
	outDir string
	opts   Options
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates an instance of a Generator writing into outDir.
func NewGenerator(outDir string, rng *rand.Rand, opts Options, logger *slog.Logger) *Generator {
	g := new(Generator)
	g.outDir = outDir
	g.opts = opts
	g.rng = rng
	g.logger = logger
	return g
}

// Run generates the scenes in order and stops at the first failure. Files
// written before the failure are left in place.
func (g *Generator) Run() error {
	for _, s := range Scenes {
		start := time.Now()
		seq := s.Render(g.rng, g.opts)
		path, err := Save(g.outDir, seq)
		if err != nil {
			return err
		}
		g.logger.Info("background generated",
			"scene", s.Name,
			"path", path,
			"frames", len(seq.Frames),
			"delay", seq.Delay,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return nil
}
