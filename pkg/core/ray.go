package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewUnitRay creates a ray whose direction is normalized
func NewUnitRay(origin, direction Vec3) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Hit is the result of a ray-surface intersection
type Hit struct {
	Distance float64 // Distance along the ray
	Normal   Vec3    // Surface normal at the hit point
}
