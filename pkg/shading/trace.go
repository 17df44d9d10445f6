package shading

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TraceRay returns the color seen along a ray. The direction is normalized
// before intersection, so all distances are in world units.
func TraceRay(origin, direction core.Vec3, world *World, params Params, channel Channel, sampler core.Sampler) (core.Vec3, error) {
	ray, err := core.NewUnitRay(origin, direction)
	if err != nil {
		return core.Vec3{}, err
	}

	surface, hit, isHit := NearestHit(ray, world.Surfaces)
	if !isHit {
		return world.Background, nil
	}

	ctx := Context{
		Direction: ray.Direction,
		Point:     ray.At(hit.Distance),
		Normal:    hit.Normal,
		World:     world,
		Params:    params,
		Channel:   channel,
		Sampler:   sampler,
	}
	return surface.Shade(ctx)
}
