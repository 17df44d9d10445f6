package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Plane represents an infinite plane N·P + Distance = 0
type Plane struct {
	Normal   core.Vec3      // Unit normal
	Distance float64        // Offset from the origin along the normal
	Material shading.Shader // Material of the plane
}

// NewPlane creates a new plane. The normal is normalized; a zero normal is
// kept as-is and reported by Validate.
func NewPlane(normal core.Vec3, distance float64, material shading.Shader) *Plane {
	if unit, err := normal.Normalize(); err == nil {
		normal = unit
	}
	return &Plane{
		Normal:   normal,
		Distance: distance,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the plane.
// Only a strictly negative signed distance counts as a hit; it is returned negated.
func (p *Plane) Intersect(ray core.Ray) (core.Hit, bool) {
	dotDir := p.Normal.Dot(ray.Direction)
	if dotDir == 0 {
		return core.Hit{}, false
	}

	dist := (p.Normal.Dot(ray.Origin) + p.Distance) / dotDir
	if dist >= 0 {
		return core.Hit{}, false
	}

	return core.Hit{Distance: -dist, Normal: p.Normal}, true
}

// Shade evaluates the plane's material with the stored plane normal
func (p *Plane) Shade(ctx shading.Context) (core.Vec3, error) {
	ctx.Normal = p.Normal
	return p.Material.Shade(ctx)
}

// Validate checks the normal and material
func (p *Plane) Validate() error {
	if p.Normal.IsZero() {
		return ErrInvalidNormal
	}
	return validateMaterial(p.Material)
}
