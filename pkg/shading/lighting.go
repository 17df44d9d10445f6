package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ShadowBias offsets secondary ray origins along the normal to avoid self-intersection
const ShadowBias = 1e-5

// Terms are the material properties sampled at a hit point
type Terms struct {
	Ambient     core.Vec3 // Color without lighting
	Diffuse     core.Vec3 // Color under lighting
	Specular    core.Vec3 // Highlight color, used only when HasSpecular is set
	Shininess   float64   // Highlight exponent
	HasSpecular bool      // Whether the Blinn highlight is evaluated
	Reflection  float64   // Mix factor for the mirror reflection, in [0, 1]
}

// Evaluate runs the Whitted shading pipeline for one hit: shadow test,
// ambient, diffuse and specular terms, then the recursive mirror reflection.
func Evaluate(ctx Context, terms Terms) (core.Vec3, error) {
	world := ctx.World
	shifted := ctx.Point.Add(ctx.Normal.Multiply(ShadowBias))

	toLight, shadowed, err := shadowTest(ctx.Point, shifted, world)
	if err != nil {
		return core.Vec3{}, err
	}

	// Hard shadows: no ambient and no reflection either
	if ctx.Params.Lighting == LightingDirect && shadowed {
		return core.Vec3{}, nil
	}

	illumination := core.Vec3{}

	if ctx.Channel.Includes(ChannelAmbient) {
		illumination = illumination.Add(terms.Ambient.MultiplyVec(world.Light.Ambient))
	}

	// The lighting accumulator also drives the specular term, so it is
	// computed whenever diffuse or specular output is requested.
	var lighting core.Vec3
	if ctx.Channel.Includes(ChannelDiffuse) || (terms.HasSpecular && ctx.Channel.Includes(ChannelSpecular)) {
		lighting, err = diffuseLighting(ctx, toLight, shadowed)
		if err != nil {
			return core.Vec3{}, err
		}
	}

	if ctx.Channel.Includes(ChannelDiffuse) {
		illumination = illumination.Add(terms.Diffuse.MultiplyVec(lighting))
	}

	if terms.HasSpecular && ctx.Channel.Includes(ChannelSpecular) {
		specular, err := specularHighlight(ctx, terms, toLight, lighting)
		if err != nil {
			return core.Vec3{}, err
		}
		illumination = illumination.Add(specular)
	}

	if ctx.Params.MaxReflections > 0 && terms.Reflection > 0 {
		reflection, err := reflect(ctx, shifted)
		if err != nil {
			return core.Vec3{}, err
		}
		illumination = illumination.Add(reflection.Multiply(terms.Reflection))
	}

	return illumination, nil
}

// shadowTest returns the unit direction toward the light and whether any
// surface sits between the point and the light.
func shadowTest(point, shifted core.Vec3, world *World) (core.Vec3, bool, error) {
	toLight, err := world.Light.Position.Subtract(shifted).Normalize()
	if err != nil {
		return core.Vec3{}, false, err
	}

	_, hit, _ := NearestHit(core.NewRay(shifted, toLight), world.Surfaces)
	lightDistance := world.Light.Position.Subtract(point).Length()

	return toLight, hit.Distance < lightDistance, nil
}

// diffuseLighting accumulates the incoming light used by the diffuse and specular terms
func diffuseLighting(ctx Context, toLight core.Vec3, shadowed bool) (core.Vec3, error) {
	lighting := core.Vec3{}

	if ctx.Params.indirect() {
		indirect, err := indirectLighting(ctx)
		if err != nil {
			return core.Vec3{}, err
		}
		lighting = lighting.Add(indirect)
	}

	if ctx.Params.direct() && !shadowed {
		lambert := math.Max(0, toLight.Dot(ctx.Normal))
		lighting = lighting.Add(ctx.World.Light.Diffuse.Multiply(lambert))
	}

	return lighting, nil
}

// specularHighlight computes the Blinn term scaled by the diffuse lighting accumulator
func specularHighlight(ctx Context, terms Terms, toLight, lighting core.Vec3) (core.Vec3, error) {
	toCamera, err := ctx.World.Camera.Position.Subtract(ctx.Point).Normalize()
	if err != nil {
		return core.Vec3{}, err
	}
	half, err := toLight.Add(toCamera).Normalize()
	if err != nil {
		return core.Vec3{}, err
	}

	intensity := core.RealPow(ctx.Normal.Dot(half), terms.Shininess/4)
	return terms.Specular.MultiplyVec(lighting).Multiply(intensity), nil
}

// reflect traces the mirror direction and shades whatever it hits with that
// surface's own shader and one less reflection.
func reflect(ctx Context, shifted core.Vec3) (core.Vec3, error) {
	d := ctx.Direction
	mirrored, err := d.Subtract(ctx.Normal.Multiply(2 * d.Dot(ctx.Normal))).Normalize()
	if err != nil {
		return core.Vec3{}, err
	}

	ray := core.NewRay(shifted, mirrored)
	surface, hit, isHit := NearestHit(ray, ctx.World.Surfaces)
	if !isHit {
		return ctx.World.Background, nil
	}

	return surface.Shade(ctx.at(mirrored, ray.At(hit.Distance), hit.Normal, ctx.Params.reflected()))
}

// indirectLighting estimates bounce light by averaging hemisphere samples
// around the normal. Each sample shades the surface it hits with the diffuse
// channel only and one less indirect bounce.
func indirectLighting(ctx Context) (core.Vec3, error) {
	if ctx.Sampler == nil {
		return core.Vec3{}, ErrNoSampler
	}

	world := ctx.World
	params := ctx.Params.bounced()
	origin := ctx.Point.Add(ctx.Normal.Multiply(ShadowBias))
	sum := core.Vec3{}

	for i := 0; i < ctx.Params.IndirectSamples; i++ {
		dir, err := core.SampleHemisphere(ctx.Normal, ctx.Sampler)
		if err != nil {
			// A degenerate sample contributes nothing
			continue
		}

		ray := core.NewRay(origin, dir)
		surface, hit, isHit := NearestHit(ray, world.Surfaces)
		if !isHit {
			sum = sum.Add(world.Background)
			continue
		}

		point := ray.At(hit.Distance)
		sample := ctx.at(dir, point, hit.Normal, params)
		sample.Channel = ChannelDiffuse

		radiance, err := surface.Shade(sample)
		if err != nil {
			return core.Vec3{}, err
		}

		toLight, err := world.Light.Position.Subtract(point.Add(hit.Normal.Multiply(ShadowBias))).Normalize()
		if err != nil {
			return core.Vec3{}, err
		}
		sum = sum.Add(radiance.Multiply(math.Max(0, toLight.Dot(hit.Normal))))
	}

	return sum.Divide(float64(ctx.Params.IndirectSamples)), nil
}
