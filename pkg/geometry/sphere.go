package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material shading.Shader
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material shading.Shader) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the smaller positive root. The direction is expected to
// be unit length.
func (s *Sphere) Intersect(ray core.Ray) (core.Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic with a = 1: t² + bt + c = 0
	b := 2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius
	delta := b*b - 4*c

	// Tangent rays count as misses
	if delta <= 0 {
		return core.Hit{}, false
	}

	sqrtD := math.Sqrt(delta)
	t1 := (-b + sqrtD) / 2
	t2 := (-b - sqrtD) / 2

	// t2 <= t1; an origin inside the sphere has only t1 in front of it
	if t1 <= 0 {
		return core.Hit{}, false
	}

	t := t2
	if t <= 0 {
		t = t1
	}
	normal := ray.At(t).Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.Hit{Distance: t, Normal: normal}, true
}

// Shade evaluates the sphere's material
func (s *Sphere) Shade(ctx shading.Context) (core.Vec3, error) {
	return s.Material.Shade(ctx)
}

// Validate checks the radius and material
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, s.Radius)
	}
	return validateMaterial(s.Material)
}
