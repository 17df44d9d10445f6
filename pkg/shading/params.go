package shading

import (
	"fmt"
	"strings"
)

// LightingMode selects which lighting paths contribute to the diffuse term
type LightingMode int

const (
	// LightingDirect uses the point light only; shadows are hard and black
	LightingDirect LightingMode = iota
	// LightingIndirect uses hemisphere-sampled bounce light only
	LightingIndirect
	// LightingGlobal combines direct and indirect lighting
	LightingGlobal
)

var lightingNames = map[LightingMode]string{
	LightingDirect:   "direct",
	LightingIndirect: "indirect",
	LightingGlobal:   "global",
}

func (m LightingMode) String() string {
	if name, ok := lightingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LightingMode(%d)", int(m))
}

// ParseLightingMode converts a case-insensitive name into a LightingMode
func ParseLightingMode(name string) (LightingMode, error) {
	for mode, n := range lightingNames {
		if strings.EqualFold(name, n) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown lighting mode %q", name)
}

// Channel restricts shading to a single lighting term or all of them
type Channel int

const (
	ChannelAll Channel = iota
	ChannelAmbient
	ChannelDiffuse
	ChannelSpecular
)

var channelNames = map[Channel]string{
	ChannelAll:      "all",
	ChannelAmbient:  "ambient",
	ChannelDiffuse:  "diffuse",
	ChannelSpecular: "specular",
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Includes reports whether term should be evaluated under this channel
func (c Channel) Includes(term Channel) bool {
	return c == ChannelAll || c == term
}

// ParseChannel converts a case-insensitive name into a Channel
func ParseChannel(name string) (Channel, error) {
	for channel, n := range channelNames {
		if strings.EqualFold(name, n) {
			return channel, nil
		}
	}
	return 0, fmt.Errorf("unknown render channel %q", name)
}

// Params is the recursion and sampling budget for one shading evaluation.
// It is always passed by value: a recursive call receives a modified copy and
// the caller's budget is left untouched.
type Params struct {
	MaxReflections     int          // Remaining mirror bounces
	IndirectMaxBounces int          // Remaining indirect diffuse bounces
	IndirectSamples    int          // Hemisphere samples per indirect estimate
	Lighting           LightingMode // Direct, indirect or global lighting
}

// DefaultParams returns sensible default values
func DefaultParams() Params {
	return Params{
		MaxReflections:     3,
		IndirectMaxBounces: 1,
		IndirectSamples:    16,
		Lighting:           LightingDirect,
	}
}

// Validate checks that no budget is negative and the lighting mode is known
func (p Params) Validate() error {
	if p.MaxReflections < 0 || p.IndirectMaxBounces < 0 || p.IndirectSamples < 0 {
		return fmt.Errorf("%w: budgets must be non-negative, got %+v", ErrInvalidParams, p)
	}
	if _, ok := lightingNames[p.Lighting]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidParams, p.Lighting)
	}
	return nil
}

// reflected returns the budget for a mirror bounce
func (p Params) reflected() Params {
	p.MaxReflections--
	return p
}

// bounced returns the budget for one indirect diffuse bounce.
// Indirect samples never spawn mirror reflections.
func (p Params) bounced() Params {
	p.MaxReflections = 0
	p.IndirectMaxBounces--
	return p
}

// direct reports whether the point light contributes in this mode
func (p Params) direct() bool {
	return p.Lighting != LightingIndirect
}

// indirect reports whether hemisphere sampling contributes in this mode
func (p Params) indirect() bool {
	return p.Lighting != LightingDirect && p.IndirectMaxBounces > 0 && p.IndirectSamples > 0
}
