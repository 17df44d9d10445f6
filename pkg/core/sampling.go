package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleHemisphere returns a unit direction drawn from the half space z >= 0
// and then rotated by the normal, interpreted as Euler angles.
func SampleHemisphere(normal Vec3, sampler Sampler) (Vec3, error) {
	u := sampler.Get3D()
	local := NewVec3(2*u.X-1, 2*u.Y-1, u.Z)

	dir, err := local.Normalize()
	if err != nil {
		return Vec3{}, err
	}
	return dir.Rotate(normal), nil
}
