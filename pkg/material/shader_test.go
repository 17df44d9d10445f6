package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// overheadContext is a hit at the origin on an up-facing surface, lit and
// viewed from directly above in an otherwise empty world
func overheadContext(channel shading.Channel) shading.Context {
	world := &shading.World{
		Light:      shading.NewWhiteLight(core.NewVec3(0, 5, 0)),
		Background: core.NewVec3(0.41, 0.72, 1),
		Camera:     shading.Camera{Position: core.NewVec3(0, 1, 0)},
	}
	return shading.Context{
		Direction: core.NewVec3(0, -1, 0),
		Point:     core.Vec3{},
		Normal:    core.NewVec3(0, 1, 0),
		World:     world,
		Params:    shading.Params{},
		Channel:   channel,
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestDefaultShader_Shade(t *testing.T) {
	shader := NewDefaultShader(
		core.NewVec3(0.1, 0, 0.1),
		core.NewVec3(0.7, 0, 0.7),
		core.NewVec3(1, 1, 1),
		100, 0.1,
	)

	tests := []struct {
		channel  shading.Channel
		expected core.Vec3
	}{
		{shading.ChannelAmbient, core.NewVec3(0.1, 0, 0.1)},
		{shading.ChannelDiffuse, core.NewVec3(0.7, 0, 0.7)},
		{shading.ChannelSpecular, core.NewVec3(1, 1, 1)},
		{shading.ChannelAll, core.NewVec3(1.8, 1, 1.8)},
	}

	for _, tt := range tests {
		t.Run(tt.channel.String(), func(t *testing.T) {
			color, err := shader.Shade(overheadContext(tt.channel))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !vecNear(color, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestDiffuseShader_HasNoHighlight(t *testing.T) {
	shader := NewDiffuseShader(core.NewVec3(0.1, 0, 0), core.NewVec3(0.7, 0, 0), 0)

	color, err := shader.Shade(overheadContext(shading.ChannelSpecular))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if color != (core.Vec3{}) {
		t.Errorf("Expected no specular output, got %v", color)
	}

	color, err = shader.Shade(overheadContext(shading.ChannelAll))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !vecNear(color, core.NewVec3(0.8, 0, 0), 1e-9) {
		t.Errorf("Expected ambient plus diffuse, got %v", color)
	}
}

func TestDiffuseShader_ReflectsSky(t *testing.T) {
	shader := NewDiffuseShader(core.Vec3{}, core.Vec3{}, 0.5)
	ctx := overheadContext(shading.ChannelAll)
	ctx.Params.MaxReflections = 1

	color, err := shader.Shade(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := ctx.World.Background.Multiply(0.5)
	if !vecNear(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestTexturedShader_UsesPosition(t *testing.T) {
	checker := NewSquareTexture(0.5, core.NewVec3(1, 1, 1), core.Vec3{})
	shader := NewTexturedDefaultShader(checker, NewConstant(core.Vec3{}), NewConstant(core.Vec3{}), 100, 0)

	ctx := overheadContext(shading.ChannelAmbient)
	even, err := shader.Shade(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ctx.Point = core.NewVec3(0.5, 0, 0)
	odd, err := shader.Shade(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if even != (core.Vec3{}) || odd != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected black then white cells, got %v and %v", even, odd)
	}
}

func TestShader_Validate(t *testing.T) {
	tests := []struct {
		name    string
		shader  Validator
		wantErr error
	}{
		{"default valid", NewDefaultShader(core.Vec3{}, core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 100, 0.5), nil},
		{"default negative shininess", NewDefaultShader(core.Vec3{}, core.Vec3{}, core.Vec3{}, -1, 0), ErrInvalidShininess},
		{"default reflection above one", NewDefaultShader(core.Vec3{}, core.Vec3{}, core.Vec3{}, 1, 1.5), ErrInvalidReflection},
		{"diffuse bad color", NewDiffuseShader(core.NewVec3(-1, 0, 0), core.Vec3{}, 0), ErrInvalidColor},
		{"diffuse missing texture", NewTexturedDiffuseShader(nil, NewConstant(core.Vec3{}), 0), ErrInvalidTexture},
		{"glass rejected", NewGlassShader(core.Vec3{}, core.Vec3{}, 0), ErrUnsupportedShader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shader.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGlassShader_ShadeFails(t *testing.T) {
	_, err := NewGlassShader(core.Vec3{}, core.Vec3{}, 0).Shade(overheadContext(shading.ChannelAll))
	if !errors.Is(err, ErrUnsupportedShader) {
		t.Errorf("Expected ErrUnsupportedShader, got %v", err)
	}
}
