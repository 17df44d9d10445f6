package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// TriangleMesh represents a collection of triangles sharing one material.
// Rays that miss the mesh bounds are rejected before the linear triangle scan.
type TriangleMesh struct {
	triangles []*Triangle
	material  shading.Shader
	bounds    core.AABB
}

// TriangleMeshOptions contains optional vertex transforms, applied in field order
type TriangleMeshOptions struct {
	Precision *int       // Round vertex coordinates to this many decimals
	Rotation  *core.Vec3 // Euler rotation (radians) around Center
	Center    *core.Vec3 // Center point for rotation
	Offset    *core.Vec3 // Translation added after rotation
	Scale     float64    // Uniform scale applied last (0 means 1)
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material for all triangles
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, material shading.Shader, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			workingVertices[i] = options.transform(vertex)
		}
	}

	numTriangles := len(faces) / 3
	triangles := make([]*Triangle, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		// Bounds check
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(workingVertices))
			}
		}

		triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], material)
	}

	return &TriangleMesh{
		triangles: triangles,
		material:  material,
		bounds:    core.NewAABBFromPoints(workingVertices...),
	}, nil
}

// transform applies rounding, rotation, translation and scale to a vertex
func (o *TriangleMeshOptions) transform(vertex core.Vec3) core.Vec3 {
	if o.Precision != nil {
		vertex = vertex.Round(*o.Precision)
	}
	if o.Rotation != nil {
		// Translate to center, rotate, then translate back
		if o.Center != nil {
			vertex = vertex.Subtract(*o.Center)
		}
		vertex = vertex.Rotate(*o.Rotation)
		if o.Center != nil {
			vertex = vertex.Add(*o.Center)
		}
	}
	if o.Offset != nil {
		vertex = vertex.Add(*o.Offset)
	}
	if o.Scale != 0 {
		vertex = vertex.Multiply(o.Scale)
	}
	return vertex
}

// Intersect tests every triangle and keeps the nearest positive hit
func (tm *TriangleMesh) Intersect(ray core.Ray) (core.Hit, bool) {
	if !tm.bounds.Hit(ray) {
		return core.Hit{}, false
	}

	closest := core.Hit{Distance: math.Inf(1)}
	hitAnything := false

	for _, triangle := range tm.triangles {
		hit, ok := triangle.Intersect(ray)
		if ok && hit.Distance > 0 && hit.Distance < closest.Distance {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Shade evaluates the mesh material
func (tm *TriangleMesh) Shade(ctx shading.Context) (core.Vec3, error) {
	return tm.material.Shade(ctx)
}

// Validate checks that the mesh has triangles and a valid material
func (tm *TriangleMesh) Validate() error {
	if len(tm.triangles) == 0 {
		return ErrEmptyMesh
	}
	return validateMaterial(tm.material)
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetDegenerateCount returns the number of zero-area triangles
func (tm *TriangleMesh) GetDegenerateCount() int {
	count := 0
	for _, t := range tm.triangles {
		if t.IsDegenerate() {
			count++
		}
	}
	return count
}
