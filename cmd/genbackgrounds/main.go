// Command genbackgrounds renders the animated weather backgrounds and the
// condition icons the web UI serves.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/matt-g-everett/weatherapp/backdrop"
	"github.com/matt-g-everett/weatherapp/icons"
	"github.com/matt-g-everett/weatherapp/observability"
)

func main() {
	outDir := flag.String("out", "assets/backgrounds", "Directory the GIF backgrounds are written to.")
	iconDir := flag.String("icons", "assets/icons", "Directory the PNG icons are written to; empty skips icons.")
	seed := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock.")
	seamless := flag.Bool("seamless-clouds", false, "Cross-fade the cloudy loop so it wraps without a jump.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	logger := observability.NewLogger(*logLevel, "text")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Debug("generating backgrounds", "seed", *seed, "out", *outDir)

	opts := backdrop.DefaultOptions()
	opts.SeamlessClouds = *seamless
	g := backdrop.NewGenerator(*outDir, rand.New(rand.NewSource(*seed)), opts, logger)
	if err := g.Run(); err != nil {
		logger.Error("background generation failed", "error", err)
		os.Exit(1)
	}

	if *iconDir == "" {
		return
	}
	paths, err := icons.WriteAll(*iconDir, icons.DefaultSize)
	if err != nil {
		logger.Error("icon generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("icons generated", "dir", *iconDir, "count", len(paths))
}
