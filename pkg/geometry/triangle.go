package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// parallelEpsilon rejects rays nearly parallel to the triangle plane
const parallelEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3      // The three vertices
	Material   shading.Shader // Material of the triangle
	normal     core.Vec3      // Cached unit face normal, zero for degenerate triangles
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material shading.Shader) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	// Precompute normal for efficiency
	t.computeNormal()

	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	// Normal is the cross product of the two edges
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Zero-area triangles keep a zero normal and never pass the parallel test
	if normal, err := edge1.Cross(edge2).Normalize(); err == nil {
		t.normal = normal
	}
}

// Intersect tests the triangle's plane, then checks the hit point against
// each edge. The returned normal is the negated face normal.
func (t *Triangle) Intersect(ray core.Ray) (core.Hit, bool) {
	n := t.normal

	normalDotDir := n.Dot(ray.Direction)
	if math.Abs(normalDotDir) < parallelEpsilon {
		return core.Hit{}, false
	}

	// Distance to the plane N·P = N·V0
	dist := (n.Dot(t.V0) - n.Dot(ray.Origin)) / normalDotDir
	if dist < 0 {
		return core.Hit{}, false
	}

	p := ray.At(dist)

	// Inside test: P must be on the inner side of all three edges
	if n.Dot(t.V1.Subtract(t.V0).Cross(p.Subtract(t.V0))) < 0 {
		return core.Hit{}, false
	}
	if n.Dot(t.V2.Subtract(t.V1).Cross(p.Subtract(t.V1))) < 0 {
		return core.Hit{}, false
	}
	if n.Dot(t.V0.Subtract(t.V2).Cross(p.Subtract(t.V2))) < 0 {
		return core.Hit{}, false
	}

	return core.Hit{Distance: dist, Normal: n.Negate()}, true
}

// Shade evaluates the triangle's material
func (t *Triangle) Shade(ctx shading.Context) (core.Vec3, error) {
	return t.Material.Shade(ctx)
}

// Validate checks the material. Degenerate triangles are legal: they are never hit.
func (t *Triangle) Validate() error {
	return validateMaterial(t.Material)
}

// IsDegenerate reports whether the triangle has zero area
func (t *Triangle) IsDegenerate() bool {
	return t.normal.IsZero()
}
