package shading

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Shader computes outgoing radiance for a hit
type Shader interface {
	Shade(ctx Context) (core.Vec3, error)
}

// Surface is a primitive that can be intersected and shaded
type Surface interface {
	// Intersect returns the nearest positive hit along ray, if any
	Intersect(ray core.Ray) (core.Hit, bool)
	// Shade evaluates the surface's own shader at a hit
	Shade(ctx Context) (core.Vec3, error)
}

// Context describes one hit being shaded
type Context struct {
	Direction core.Vec3    // Unit direction of the incoming ray
	Point     core.Vec3    // Hit point
	Normal    core.Vec3    // Unit surface normal at Point
	World     *World       // Scene being rendered
	Params    Params       // Remaining recursion budget
	Channel   Channel      // Lighting terms to evaluate
	Sampler   core.Sampler // Random source for indirect lighting, may be nil in direct mode
}

// at returns a context for a new hit that shares world, channel and sampler
func (ctx Context) at(direction, point, normal core.Vec3, params Params) Context {
	return Context{
		Direction: direction,
		Point:     point,
		Normal:    normal,
		World:     ctx.World,
		Params:    params,
		Channel:   ctx.Channel,
		Sampler:   ctx.Sampler,
	}
}
