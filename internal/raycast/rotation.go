package raycast

import "math"

// Angles in radians for rotations about the coordinate axes.
type Rot3 struct {
	X, Y, Z Real
}

func RotX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.D[5], M.D[6] = c, -s
	M.D[9], M.D[10] = s, c
	return M
}

func RotY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.D[0], M.D[2] = c, s
	M.D[8], M.D[10] = -s, c
	return M
}

func RotZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.D[0], M.D[1] = c, -s
	M.D[4], M.D[5] = s, c
	return M
}

// Compose rotation from angles (X first, then Y, then Z).
func rotFromAngles(r Rot3) Mat4 {
	R := I4()
	R = RotX(r.X).Mul(R)
	R = RotY(r.Y).Mul(R)
	R = RotZ(r.Z).Mul(R)
	return R
}

// orbitPosition rotates pos about the vertical axis through target.
func orbitPosition(pos, target Vec4, angle Real) Vec4 {
	M := Translation(target).Mul(RotY(angle)).Mul(Translation(target.Reverse()))
	return M.MulVec(pos)
}
