package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// unitQuad returns two triangles covering [0,1]x[0,1] at z = 0
func unitQuad() ([]core.Vec3, []int) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	faces := []int{0, 1, 2, 0, 2, 3}
	return vertices, faces
}

func TestTriangleMesh_Construction(t *testing.T) {
	vertices, faces := unitQuad()

	mesh, err := NewTriangleMesh(vertices, faces, &flatShader{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.GetTriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.GetTriangleCount())
	}
	if mesh.GetDegenerateCount() != 0 {
		t.Errorf("Expected no degenerate triangles, got %d", mesh.GetDegenerateCount())
	}
	if err := mesh.Validate(); err != nil {
		t.Errorf("Expected valid mesh, got %v", err)
	}
}

func TestTriangleMesh_InvalidFaces(t *testing.T) {
	vertices, _ := unitQuad()

	tests := []struct {
		name  string
		faces []int
	}{
		{"not a multiple of three", []int{0, 1}},
		{"index out of range", []int{0, 1, 4}},
		{"negative index", []int{0, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangleMesh(vertices, tt.faces, &flatShader{}, nil)
			if !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("Expected ErrInvalidMesh, got %v", err)
			}
		})
	}
}

func TestTriangleMesh_EmptyIsInvalid(t *testing.T) {
	mesh, err := NewTriangleMesh(nil, nil, &flatShader{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := mesh.Validate(); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Expected ErrEmptyMesh, got %v", err)
	}
}

func TestTriangleMesh_IntersectNearest(t *testing.T) {
	vertices := []core.Vec3{
		// Far triangle at z = -5
		core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5),
		// Near triangle at z = -2
		core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2),
	}
	faces := []int{0, 1, 2, 3, 4, 5}

	mesh, err := NewTriangleMesh(vertices, faces, &flatShader{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, isHit := mesh.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("Expected nearest t=2, got t=%f", hit.Distance)
	}

	if _, isHit := mesh.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); isHit {
		t.Error("Expected miss for ray pointing away")
	}
}

func TestTriangleMesh_Options(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0.004, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}
	precision := 2
	offset := core.NewVec3(1, 0, 0)

	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2}, &flatShader{}, &TriangleMeshOptions{
		Precision: &precision,
		Offset:    &offset,
		Scale:     2,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	triangle := mesh.triangles[0]
	expected := []core.Vec3{
		core.NewVec3(2, 0, 0),
		core.NewVec3(4, 0, 0),
		core.NewVec3(2, 2, 0),
	}
	for i, got := range []core.Vec3{triangle.V0, triangle.V1, triangle.V2} {
		if !vecNear(got, expected[i], 1e-12) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], got)
		}
	}
}

func TestTriangleMesh_RotationAroundCenter(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(1, 1, 0),
	}
	center := core.NewVec3(1, 0, 0)
	rotation := core.NewVec3(0, 0, math.Pi/2)

	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2}, &flatShader{}, &TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	triangle := mesh.triangles[0]
	if !vecNear(triangle.V0, center, 1e-12) {
		t.Errorf("Expected center vertex to stay fixed, got %v", triangle.V0)
	}
	if !vecNear(triangle.V1, core.NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected rotated vertex (1,1,0), got %v", triangle.V1)
	}
}

func TestTriangleMesh_BoundsRejectMiss(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
	}
	offset := core.NewVec3(0, 0, -1)

	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2}, &flatShader{}, &TriangleMeshOptions{Offset: &offset})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	bounds := mesh.bounds
	if bounds.Min.Z > -3 || bounds.Max.Z < -3 {
		t.Errorf("Expected bounds to contain the offset plane z=-3, got %v", bounds)
	}

	if _, ok := mesh.Intersect(core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected ray outside the bounds to miss")
	}

	hit, ok := mesh.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected ray through the flat mesh to hit")
	}
	if math.Abs(hit.Distance-3) > 1e-9 {
		t.Errorf("Expected distance 3, got %f", hit.Distance)
	}
}
