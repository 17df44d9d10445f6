package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

var (
	ErrInvalidRadius = errors.New("sphere radius must be positive")
	ErrInvalidNormal = errors.New("plane normal must be non-zero")
	ErrInvalidMesh   = errors.New("invalid triangle mesh")
	ErrEmptyMesh     = errors.New("triangle mesh has no triangles")
	ErrMissingShader = errors.New("surface has no shader")
)

// Validator is implemented by surfaces and shaders that check their
// parameters at scene construction time
type Validator interface {
	Validate() error
}

var (
	_ shading.Surface = (*Sphere)(nil)
	_ shading.Surface = (*Plane)(nil)
	_ shading.Surface = (*Triangle)(nil)
	_ shading.Surface = (*TriangleMesh)(nil)
)

func validateMaterial(material shading.Shader) error {
	if material == nil {
		return ErrMissingShader
	}
	if v, ok := material.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("shader: %w", err)
		}
	}
	return nil
}
