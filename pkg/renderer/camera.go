package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole looking down -Z. The virtual screen spans x in [-1, 1]
// and y in [1/ratio, -1/ratio] at distance fov in front of the camera, with
// the first and last pixel centers on the screen edges.
type Camera struct {
	origin core.Vec3
	width  int
	height int
	fov    float64
	ratio  float64
}

// NewCamera creates a camera for an image of width x height pixels
func NewCamera(position core.Vec3, width, height int, fov float64) *Camera {
	return &Camera{
		origin: position,
		width:  width,
		height: height,
		fov:    fov,
		ratio:  float64(width) / float64(height),
	}
}

// ScreenPoint returns the screen coordinates of pixel (i, j), j = 0 being the top row
func (c *Camera) ScreenPoint(i, j int) (float64, float64) {
	x := linspace(-1, 1, c.width, i)
	y := linspace(1/c.ratio, -1/c.ratio, c.height, j)
	return x, y
}

// GetRay returns the origin and (unnormalized) direction through pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	x, y := c.ScreenPoint(i, j)
	pixel := core.NewVec3(x, y, -c.fov).Add(c.origin)
	return core.NewRay(c.origin, pixel.Subtract(c.origin))
}

// linspace returns the k-th of n evenly spaced values from start to stop inclusive
func linspace(start, stop float64, n, k int) float64 {
	if n <= 1 {
		return start
	}
	return start + (stop-start)*float64(k)/float64(n-1)
}
