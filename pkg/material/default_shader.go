package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// DefaultShader is a Phong-style material with ambient, diffuse and Blinn
// specular terms plus an optional mirror reflection
type DefaultShader struct {
	Ambient    Texture // Color without lighting
	Diffuse    Texture // Color under lighting
	Specular   Texture // Highlight color
	Shininess  float64 // Highlight exponent (applied as Shininess/4 to N·H)
	Reflection float64 // Mix factor between own color and reflection
}

// NewDefaultShader creates a default shader with solid colors
func NewDefaultShader(ambient, diffuse, specular core.Vec3, shininess, reflection float64) *DefaultShader {
	return NewTexturedDefaultShader(NewConstant(ambient), NewConstant(diffuse), NewConstant(specular), shininess, reflection)
}

// NewTexturedDefaultShader creates a default shader from textures
func NewTexturedDefaultShader(ambient, diffuse, specular Texture, shininess, reflection float64) *DefaultShader {
	return &DefaultShader{
		Ambient:    ambient,
		Diffuse:    diffuse,
		Specular:   specular,
		Shininess:  shininess,
		Reflection: reflection,
	}
}

// Shade implements shading.Shader
func (s *DefaultShader) Shade(ctx shading.Context) (core.Vec3, error) {
	return shading.Evaluate(ctx, shading.Terms{
		Ambient:     s.Ambient.Evaluate(ctx.Point),
		Diffuse:     s.Diffuse.Evaluate(ctx.Point),
		Specular:    s.Specular.Evaluate(ctx.Point),
		Shininess:   s.Shininess,
		HasSpecular: true,
		Reflection:  s.Reflection,
	})
}

// Validate checks textures, shininess and reflection
func (s *DefaultShader) Validate() error {
	if err := validateTextures(s.Ambient, s.Diffuse, s.Specular); err != nil {
		return err
	}
	if math.IsNaN(s.Shininess) || s.Shininess < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidShininess, s.Shininess)
	}
	return validateReflection(s.Reflection)
}
