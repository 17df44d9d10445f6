package shading

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	// ErrInvalidParams is returned for a negative budget or unknown lighting mode
	ErrInvalidParams = errors.New("invalid render parameters")
	// ErrNoSampler is returned when indirect lighting is requested without a sampler
	ErrNoSampler = errors.New("indirect lighting requires a sampler")
)

// Light is a single point light with separate ambient, diffuse and specular colors
type Light struct {
	Position core.Vec3
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// NewWhiteLight creates a light at position with all color terms set to white
func NewWhiteLight(position core.Vec3) Light {
	white := core.NewVec3(1, 1, 1)
	return Light{Position: position, Ambient: white, Diffuse: white, Specular: white}
}

// Camera is the viewer position. Direction is carried for scene authors but
// is not used by shading or by the pinhole projection.
type Camera struct {
	Position  core.Vec3
	Direction core.Vec3
}

// World is the read-only scene context shared by every shading call
type World struct {
	Surfaces   []Surface
	Light      Light
	Background core.Vec3 // Sky color seen by rays that escape the scene
	Camera     Camera
}
