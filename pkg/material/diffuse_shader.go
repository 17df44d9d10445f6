package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// DiffuseShader is a matte material: ambient and Lambertian terms, no highlight
type DiffuseShader struct {
	Ambient    Texture
	Diffuse    Texture
	Reflection float64
}

// NewDiffuseShader creates a diffuse shader with solid colors
func NewDiffuseShader(ambient, diffuse core.Vec3, reflection float64) *DiffuseShader {
	return NewTexturedDiffuseShader(NewConstant(ambient), NewConstant(diffuse), reflection)
}

// NewTexturedDiffuseShader creates a diffuse shader from textures
func NewTexturedDiffuseShader(ambient, diffuse Texture, reflection float64) *DiffuseShader {
	return &DiffuseShader{Ambient: ambient, Diffuse: diffuse, Reflection: reflection}
}

// Shade implements shading.Shader
func (s *DiffuseShader) Shade(ctx shading.Context) (core.Vec3, error) {
	return shading.Evaluate(ctx, shading.Terms{
		Ambient:    s.Ambient.Evaluate(ctx.Point),
		Diffuse:    s.Diffuse.Evaluate(ctx.Point),
		Reflection: s.Reflection,
	})
}

// Validate checks textures and reflection
func (s *DiffuseShader) Validate() error {
	if err := validateTextures(s.Ambient, s.Diffuse); err != nil {
		return err
	}
	return validateReflection(s.Reflection)
}
