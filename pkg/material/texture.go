package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for shaders
type Texture interface {
	// Evaluate returns the color at a point in world space
	Evaluate(point core.Vec3) core.Vec3
}

// Constant provides a uniform color
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a new constant color texture
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

// Evaluate returns the color regardless of position
func (c *Constant) Evaluate(point core.Vec3) core.Vec3 {
	return c.Color
}

// Validate checks that the color is finite and inside [0, 1]
func (c *Constant) Validate() error {
	return validateColor(c.Color)
}

// SquareTexture is a 3D checkerboard of cubes with edge length Size
type SquareTexture struct {
	Size float64
	Odd  core.Vec3 // Color of cells whose rounded coordinates sum to an odd number
	Even core.Vec3
}

// NewSquareTexture creates a checkerboard texture
func NewSquareTexture(size float64, odd, even core.Vec3) *SquareTexture {
	return &SquareTexture{Size: size, Odd: odd, Even: even}
}

// Evaluate picks a color from the parity of the rounded, scaled coordinates
func (s *SquareTexture) Evaluate(point core.Vec3) core.Vec3 {
	scaled := point.Divide(s.Size)
	sum := math.RoundToEven(scaled.X) + math.RoundToEven(scaled.Y) + math.RoundToEven(scaled.Z)
	if math.Mod(math.Abs(sum), 2) == 1 {
		return s.Odd
	}
	return s.Even
}

// Validate checks the cell size and both colors
func (s *SquareTexture) Validate() error {
	if !(s.Size > 0) || math.IsInf(s.Size, 0) {
		return fmt.Errorf("%w: square size %g must be positive", ErrInvalidTexture, s.Size)
	}
	if err := validateColor(s.Odd); err != nil {
		return err
	}
	return validateColor(s.Even)
}

func validateColor(c core.Vec3) error {
	for _, component := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(component) || component < 0 || component > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidColor, c)
		}
	}
	return nil
}
