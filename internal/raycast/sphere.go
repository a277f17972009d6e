package raycast

import (
	"fmt"
	"math"
)

// Geometry is anything the engine can trace rays against.
type Geometry interface {
	// Intersect returns the ray parameter t of the hit, or ok=false on a miss.
	Intersect(origin, dir Vec4) (t Real, ok bool)
	// Normal returns the unit surface normal (a direction) at a world-space point.
	Normal(p Vec4) Vec4
}

// Sphere is the canonical unit sphere at the object-space origin, placed in the
// world by Object. ObjectInv is computed once at construction.
type Sphere struct {
	Object    Mat4 // object->world
	ObjectInv Mat4 // world->object
}

// NewSphere builds a sphere of the given radius centred at center.
func NewSphere(center Vec4, radius Real) *Sphere {
	M := Translation(center).Mul(Scale(Direction(radius, radius, radius)))
	return NewSphereTransform(M)
}

// NewSphereTransform places the unit sphere with an arbitrary object->world matrix.
func NewSphereTransform(object Mat4) *Sphere {
	s := &Sphere{
		Object:    object,
		ObjectInv: object.Inverse(),
	}
	DebugLog("Created sphere: %s", s.Object)
	return s
}

// NewEllipsoid scales the unit sphere per axis, rotates it and moves it to center.
func NewEllipsoid(center, radii Vec4, angles Rot3) (*Sphere, error) {
	if !(radii.X > 0 && radii.Y > 0 && radii.Z > 0) {
		return nil, fmt.Errorf("sphere radii must be >0 on all axes, got %+v", radii)
	}
	M := Translation(center).Mul(rotFromAngles(angles)).Mul(Scale(radii))
	return NewSphereTransform(M), nil
}

// Intersect solves |o + t·d|² = 1 in object space.
// Roots are ordered t0 <= t1; t1 < 0 is a miss (sphere behind the ray),
// t0 < 0 means the origin is inside and the exit t1 is returned.
func (s *Sphere) Intersect(origin, dir Vec4) (Real, bool) {
	o := s.ObjectInv.MulVec(origin)
	d := s.ObjectInv.MulVec(dir)

	a := d.Dot(d)
	b := 2 * d.Dot(o)
	c := o.Dot(o) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// Normal maps p back through ObjectInv and normalizes it.
// Only exact for uniform scale; ObjectInv.Transpose() is the correct normal
// transform for non-uniform scale.
func (s *Sphere) Normal(p Vec4) Vec4 {
	v := s.ObjectInv.MulVec(p)
	return Direction(v.X, v.Y, v.Z).Normalized()
}
