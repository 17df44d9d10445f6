package core

import "math"

// slabEpsilon pads bounds so flat meshes keep a non-empty slab
const slabEpsilon = 1e-9

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABBFromPoints creates an AABB that bounds all given points, padded by slabEpsilon
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Vec3{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = Vec3{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	pad := Splat(slabEpsilon)
	return AABB{Min: lo.Subtract(pad), Max: hi.Add(pad)}
}

// Hit reports whether the ray enters the box anywhere in [0, +inf)
func (b AABB) Hit(ray Ray) bool {
	tMin, tMax := 0.0, math.Inf(1)

	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], direction[axis]

		// Parallel to this slab: the origin must already lie inside it
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return false
			}
			continue
		}

		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
