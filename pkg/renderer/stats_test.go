package renderer

import (
	"math"
	"testing"
)

func TestRenderStats_SetLuminance(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{0.4}, 0.4, 0},
		{"four values", []float64{1, 2, 3, 4}, 2.5, math.Sqrt(5.0 / 3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stats RenderStats
			stats.setLuminance(tt.values)

			if math.Abs(stats.MeanLuminance-tt.wantMean) > 1e-12 {
				t.Errorf("Expected mean %f, got %f", tt.wantMean, stats.MeanLuminance)
			}
			if math.Abs(stats.StdLuminance-tt.wantStd) > 1e-12 {
				t.Errorf("Expected std-dev %f, got %f", tt.wantStd, stats.StdLuminance)
			}
		})
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var stats RenderStats
	stats.merge(TileStats{Pixels: 16, FailedRays: 2})
	stats.merge(TileStats{Pixels: 8})

	if stats.TotalPixels != 24 || stats.FailedRays != 2 {
		t.Errorf("Expected 24 pixels and 2 failed rays, got %d and %d", stats.TotalPixels, stats.FailedRays)
	}
}
