package shading

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// fixedSurface reports a hit at a fixed distance, or a miss
type fixedSurface struct {
	name     string
	distance float64
	hit      bool
}

func (f *fixedSurface) Intersect(ray core.Ray) (core.Hit, bool) {
	return core.Hit{Distance: f.distance, Normal: core.NewVec3(0, 0, 1)}, f.hit
}

func (f *fixedSurface) Shade(ctx Context) (core.Vec3, error) {
	return core.Vec3{}, nil
}

func TestNearestHit(t *testing.T) {
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	near := &fixedSurface{name: "near", distance: 2.0, hit: true}
	far := &fixedSurface{name: "far", distance: 5.0, hit: true}
	miss := &fixedSurface{name: "miss", hit: false}
	behind := &fixedSurface{name: "behind", distance: -1.0, hit: true}
	zero := &fixedSurface{name: "zero", distance: 0, hit: true}
	tie := &fixedSurface{name: "tie", distance: 2.0, hit: true}

	tests := []struct {
		name         string
		surfaces     []Surface
		wantSurface  *fixedSurface
		wantDistance float64
	}{
		{"far then near", []Surface{far, near}, near, 2.0},
		{"near then far", []Surface{near, far}, near, 2.0},
		{"only far", []Surface{miss, far}, far, 5.0},
		{"all miss", []Surface{miss}, nil, math.Inf(1)},
		{"empty", nil, nil, math.Inf(1)},
		{"non-positive distances ignored", []Surface{behind, zero, far}, far, 5.0},
		{"ties keep first", []Surface{tie, near}, tie, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface, hit, isHit := NearestHit(ray, tt.surfaces)

			if hit.Distance != tt.wantDistance {
				t.Errorf("Expected distance %f, got %f", tt.wantDistance, hit.Distance)
			}

			if tt.wantSurface == nil {
				if isHit || surface != nil {
					t.Errorf("Expected miss, got %v", surface)
				}
				if !hit.Normal.IsZero() {
					t.Errorf("Expected zero normal on miss, got %v", hit.Normal)
				}
				return
			}

			if !isHit {
				t.Fatal("Expected hit, got miss")
			}
			if got := surface.(*fixedSurface); got != tt.wantSurface {
				t.Errorf("Expected surface %q, got %q", tt.wantSurface.name, got.name)
			}
		})
	}
}
