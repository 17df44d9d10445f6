package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

var (
	// ErrUnknownScene is returned when a scene name is not registered
	ErrUnknownScene = errors.New("unknown scene")
	// ErrInvalidConfig is returned for non-positive image dimensions or field of view
	ErrInvalidConfig = errors.New("invalid scene configuration")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World  *shading.World // Surfaces, light, sky and camera
	Params shading.Params // Recursion budget and lighting mode
	Config Config         // Image size and projection
}

// Config contains the image and projection settings
type Config struct {
	Width  int     // Image width
	Height int     // Image height
	FOV    float64 // Distance from the camera to the virtual screen; larger is narrower
}

// New creates an empty scene with a camera, a white light and a sky color
func New(camera shading.Camera, light shading.Light, sky core.Vec3, config Config) *Scene {
	return &Scene{
		World: &shading.World{
			Surfaces:   make([]shading.Surface, 0),
			Light:      light,
			Background: sky,
			Camera:     camera,
		},
		Params: shading.DefaultParams(),
		Config: config,
	}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...shading.Surface) {
	s.World.Surfaces = append(s.World.Surfaces, surfaces...)
}

// Validate checks the configuration, the render parameters and every surface
// together with its shader
func (s *Scene) Validate() error {
	if s.Config.Width <= 0 || s.Config.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, s.Config.Width, s.Config.Height)
	}
	if !(s.Config.FOV > 0) {
		return fmt.Errorf("%w: field of view %g", ErrInvalidConfig, s.Config.FOV)
	}
	if err := s.Params.Validate(); err != nil {
		return err
	}

	for i, surface := range s.World.Surfaces {
		if surface == nil {
			return fmt.Errorf("surface %d: %w", i, geometry.ErrMissingShader)
		}
		if v, ok := surface.(geometry.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("surface %d (%T): %w", i, surface, err)
			}
		}
	}

	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, surface := range s.World.Surfaces {
		switch obj := surface.(type) {
		case *geometry.TriangleMesh:
			count += obj.GetTriangleCount()
		default:
			count++
		}
	}
	return count
}

// GetDegenerateCount returns the number of zero-area triangles, which can never be hit
func (s *Scene) GetDegenerateCount() int {
	count := 0
	for _, surface := range s.World.Surfaces {
		switch obj := surface.(type) {
		case *geometry.TriangleMesh:
			count += obj.GetDegenerateCount()
		case *geometry.Triangle:
			if obj.IsDegenerate() {
				count++
			}
		}
	}
	return count
}
