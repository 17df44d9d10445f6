package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int
	Height        int
	TotalPixels   int           // Total number of pixels rendered
	Tiles         int           // Number of tiles the frame was split into
	Workers       int           // Number of parallel workers
	FailedRays    int           // Primary rays whose shading returned an error
	MeanLuminance float64       // Mean clamped pixel luminance
	StdLuminance  float64       // Standard deviation of clamped pixel luminance
	Duration      time.Duration // Wall time of the render
}

// TileStats is the per-tile part of RenderStats
type TileStats struct {
	Pixels     int
	FailedRays int
}

// merge accumulates one tile's counters
func (s *RenderStats) merge(tile TileStats) {
	s.TotalPixels += tile.Pixels
	s.FailedRays += tile.FailedRays
}

// setLuminance fills the luminance mean and standard deviation
func (s *RenderStats) setLuminance(luminance []float64) {
	switch len(luminance) {
	case 0:
		return
	case 1:
		s.MeanLuminance = luminance[0]
		return
	}
	s.MeanLuminance, s.StdLuminance = stat.MeanStdDev(luminance, nil)
}
