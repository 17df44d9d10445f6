package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// GlassShader is reserved for a refractive material. It can be placed in a
// scene description but scene validation rejects it.
type GlassShader struct {
	Ambient    Texture
	Diffuse    Texture
	Reflection float64
}

// NewGlassShader creates a glass shader with solid colors
func NewGlassShader(ambient, diffuse core.Vec3, reflection float64) *GlassShader {
	return &GlassShader{Ambient: NewConstant(ambient), Diffuse: NewConstant(diffuse), Reflection: reflection}
}

// Shade always fails with ErrUnsupportedShader
func (s *GlassShader) Shade(ctx shading.Context) (core.Vec3, error) {
	return core.Vec3{}, ErrUnsupportedShader
}

// Validate always fails with ErrUnsupportedShader
func (s *GlassShader) Validate() error {
	return ErrUnsupportedShader
}
