package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NearestHit scans surfaces in order and returns the one hit closest to the
// ray origin. Ties keep the earlier surface. On a miss the returned hit has an
// infinite distance and a zero normal.
func NearestHit(ray core.Ray, surfaces []Surface) (Surface, core.Hit, bool) {
	var nearest Surface
	closest := core.Hit{Distance: math.Inf(1)}

	for _, surface := range surfaces {
		hit, ok := surface.Intersect(ray)
		if !ok || hit.Distance <= 0 {
			continue
		}
		if hit.Distance < closest.Distance {
			closest = hit
			nearest = surface
		}
	}

	return nearest, closest, nearest != nil
}
