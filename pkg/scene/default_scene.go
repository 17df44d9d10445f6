package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Sky is the background color shared by the built-in scenes
var Sky = core.NewVec3(0.41, 0.72, 1)

// NewDefaultScene creates three spheres, a triangle and a checkered ground
// plane lit by a single white light
func NewDefaultScene() *Scene {
	camera := shading.Camera{Position: core.NewVec3(0, 0, 0.8)}
	light := shading.NewWhiteLight(core.NewVec3(5, 5, 5))
	s := New(camera, light, Sky, Config{Width: 480, Height: 360, FOV: 1})

	// Create materials
	redMatte := material.NewDiffuseShader(core.NewVec3(0.1, 0, 0), core.NewVec3(0.7, 0, 0), 0.1)
	purpleGloss := material.NewDefaultShader(core.NewVec3(0.1, 0, 0.1), core.NewVec3(0.7, 0, 0.7), core.NewVec3(1, 1, 1), 100, 0.1)
	greenGloss := material.NewDefaultShader(core.NewVec3(0, 0.1, 0), core.NewVec3(0, 0.6, 0), core.NewVec3(1, 1, 1), 100, 0.3)
	whiteMatte := material.NewDiffuseShader(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(1, 1, 1), 0)

	checker := material.NewSquareTexture(0.2, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	ground := material.NewTexturedDefaultShader(
		material.NewConstant(core.NewVec3(0.1, 0.1, 0.1)),
		checker,
		material.NewConstant(core.NewVec3(1, 1, 1)),
		100, 0.5,
	)

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.2, 0, -1), 0.7, redMatte),
		geometry.NewSphere(core.NewVec3(0.1, -0.3, 0), 0.1, purpleGloss),
		geometry.NewSphere(core.NewVec3(-0.3, 0, 0), 0.15, greenGloss),
		geometry.NewTriangle(core.NewVec3(0, 1, 1.5), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), whiteMatte),
		geometry.NewPlane(core.NewVec3(0, 1, 0), 0.6, ground),
	)

	return s
}
