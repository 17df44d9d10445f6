package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// octahedron is used by the mesh scene when no mesh file is given
var octahedron = &loaders.MeshData{
	Vertices: []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	},
	Faces: []int{
		0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
		2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
	},
}

// NewMeshScene places a triangle mesh on a checkered ground. Vertices are
// rounded to two decimals, offset, then scaled. An empty meshPath uses a
// built-in octahedron.
func NewMeshScene(meshPath string) (*Scene, error) {
	data := octahedron
	if meshPath != "" {
		var err error
		data, err = loaders.LoadMesh(meshPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh: %w", err)
		}
	}

	camera := shading.Camera{Position: core.NewVec3(0, 0, 0.8)}
	light := shading.NewWhiteLight(core.NewVec3(5, 5, 5))
	s := New(camera, light, Sky, Config{Width: 480, Height: 360, FOV: 1})

	precision := 2
	offset := core.NewVec3(-0.2, 0, -1)
	meshShader := material.NewDefaultShader(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 1, 1), 60, 0.2)

	mesh, err := geometry.NewTriangleMesh(data.Vertices, data.Faces, meshShader, &geometry.TriangleMeshOptions{
		Precision: &precision,
		Offset:    &offset,
		Scale:     0.5,
	})
	if err != nil {
		return nil, err
	}

	ground := material.NewTexturedDefaultShader(
		material.NewConstant(core.NewVec3(0.1, 0.1, 0.1)),
		material.NewSquareTexture(0.2, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0)),
		material.NewConstant(core.NewVec3(1, 1, 1)),
		100, 0.5,
	)

	s.Add(mesh, geometry.NewPlane(core.NewVec3(0, 1, 0), 0.6, ground))

	return s, nil
}
