package raycast

import "math"

// Vec4 is a homogeneous 3D vector: W == 1 for a position, W == 0 for a direction.
type Vec4 struct {
	X, Y, Z, W Real
}

func Position(x, y, z Real) Vec4  { return Vec4{x, y, z, 1} }
func Direction(x, y, z Real) Vec4 { return Vec4{x, y, z, 0} }

// IsPosition reports whether v is tagged as a position.
func (v Vec4) IsPosition() bool { return v.W != 0 }

// Add: a position plus anything is a position, two directions stay a direction.
func (a Vec4) Add(b Vec4) Vec4 {
	w := Real(0)
	if a.W != 0 || b.W != 0 {
		w = 1
	}
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, w}
}

// Sub always yields a direction (position - position is the vector between them).
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, 0} }
func (v Vec4) Mul(s Real) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W} }

// Dot returns the 3-component dot product; W is ignored.
func (a Vec4) Dot(b Vec4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product, tagged as a direction.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

// Mag returns the Euclidean length of the xyz part.
func (v Vec4) Mag() Real { return math.Sqrt(v.Dot(v)) }

// Normalized divides xyz by the magnitude and keeps W.
// A zero vector yields NaN components; callers must not pass one.
func (v Vec4) Normalized() Vec4 {
	l := v.Mag()
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W}
}

// Reverse negates xyz and keeps W.
func (v Vec4) Reverse() Vec4 { return Vec4{-v.X, -v.Y, -v.Z, v.W} }

// At returns component i (0..3 => x,y,z,w).
func (v Vec4) At(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vector index must be 0..3")
}

// Set assigns component i (0..3 => x,y,z,w).
func (v *Vec4) Set(i int, x Real) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panic("vector index must be 0..3")
	}
}
