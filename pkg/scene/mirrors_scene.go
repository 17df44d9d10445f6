package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// NewMirrorsScene creates two facing mirror walls with a row of spheres
// between them, so the reflection budget is visible as a finite corridor
func NewMirrorsScene() *Scene {
	camera := shading.Camera{Position: core.NewVec3(0, 0.2, 1.5)}
	light := shading.NewWhiteLight(core.NewVec3(0, 3, 1))
	s := New(camera, light, Sky, Config{Width: 480, Height: 360, FOV: 1.2})
	s.Params.MaxReflections = 6

	mirror := material.NewDefaultShader(core.NewVec3(0.02, 0.02, 0.02), core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(1, 1, 1), 200, 0.9)
	floor := material.NewTexturedDiffuseShader(
		material.NewConstant(core.NewVec3(0.1, 0.1, 0.1)),
		material.NewSquareTexture(0.25, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2)),
		0.1,
	)

	// Walls at x = -1 and x = 1 facing each other
	s.Add(
		geometry.NewPlane(core.NewVec3(1, 0, 0), 1, mirror),
		geometry.NewPlane(core.NewVec3(-1, 0, 0), 1, mirror),
		geometry.NewPlane(core.NewVec3(0, 1, 0), 0.5, floor),
	)

	colors := []core.Vec3{
		core.NewVec3(0.8, 0.1, 0.1),
		core.NewVec3(0.1, 0.8, 0.1),
		core.NewVec3(0.1, 0.1, 0.8),
	}
	for i, color := range colors {
		center := core.NewVec3(-0.5+0.5*float64(i), -0.3, -1-0.4*float64(i))
		shader := material.NewDefaultShader(color.Multiply(0.1), color, core.NewVec3(1, 1, 1), 100, 0.2)
		s.Add(geometry.NewSphere(center, 0.2, shader))
	}

	return s
}
