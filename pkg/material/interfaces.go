package material

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidColor      = errors.New("color component outside [0, 1]")
	ErrInvalidTexture    = errors.New("invalid texture")
	ErrInvalidReflection = errors.New("reflection factor outside [0, 1]")
	ErrInvalidShininess  = errors.New("shininess must be non-negative")
	ErrUnsupportedShader = errors.New("shader is not supported by the renderer")
)

// Validator is implemented by shaders and textures that can check their
// parameters before rendering starts
type Validator interface {
	Validate() error
}

// validateTextures validates each texture that supports it
func validateTextures(textures ...Texture) error {
	for _, t := range textures {
		if t == nil {
			return fmt.Errorf("%w: missing texture", ErrInvalidTexture)
		}
		if v, ok := t.(Validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateReflection(reflection float64) error {
	if math.IsNaN(reflection) || reflection < 0 || reflection > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidReflection, reflection)
	}
	return nil
}
