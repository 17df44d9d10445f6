package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// planeSurface is an infinite plane N·P = offset used to build test scenes
type planeSurface struct {
	normal core.Vec3
	offset float64
	shader Shader
}

func (p *planeSurface) Intersect(ray core.Ray) (core.Hit, bool) {
	denom := p.normal.Dot(ray.Direction)
	if denom == 0 {
		return core.Hit{}, false
	}
	t := (p.offset - p.normal.Dot(ray.Origin)) / denom
	if t <= 0 {
		return core.Hit{}, false
	}
	return core.Hit{Distance: t, Normal: p.normal}, true
}

func (p *planeSurface) Shade(ctx Context) (core.Vec3, error) {
	return p.shader.Shade(ctx)
}

// termsShader runs the shading pipeline with fixed terms and counts evaluations
type termsShader struct {
	terms Terms
	calls int
}

func (s *termsShader) Shade(ctx Context) (core.Vec3, error) {
	s.calls++
	return Evaluate(ctx, s.terms)
}

// fixedSampler always returns the same sample
type fixedSampler struct {
	value core.Vec3
}

func (f fixedSampler) Get1D() float64   { return f.value.X }
func (f fixedSampler) Get3D() core.Vec3 { return f.value }

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
