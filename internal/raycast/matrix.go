package raycast

import (
	"fmt"
	"math"
	"strings"
)

// 4×4 matrix, flat and row-major: D[r*4+c].
type Mat4 struct {
	D [16]Real
}

func I4() Mat4 {
	return Mat4{D: [16]Real{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// At returns the element at row r, column c. Out of range indices panic.
func (A Mat4) At(r, c int) Real {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		panic("matrix index out of bounds")
	}
	return A.D[r*4+c]
}

// Set assigns the element at row r, column c. Out of range indices panic.
func (A *Mat4) Set(r, c int, v Real) {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		panic("matrix index out of bounds")
	}
	A.D[r*4+c] = v
}

// Translation moves positions by t (directions are unaffected).
func Translation(t Vec4) Mat4 {
	M := I4()
	M.D[3], M.D[7], M.D[11] = t.X, t.Y, t.Z
	return M
}

// Scale is a non-uniform scale along x, y, z.
func Scale(s Vec4) Mat4 {
	M := I4()
	M.D[0], M.D[5], M.D[10] = s.X, s.Y, s.Z
	return M
}

// Camera builds the camera->world matrix from an orthonormal basis and a position.
// Columns are right, up, forward, position; its inverse maps world into camera space.
func Camera(forward, right, up, pos Vec4) Mat4 {
	return Mat4{D: [16]Real{
		right.X, up.X, forward.X, pos.X,
		right.Y, up.Y, forward.Y, pos.Y,
		right.Z, up.Z, forward.Z, pos.Z,
		0, 0, 0, 1,
	}}
}

// Look places a camera at pos facing target with +Y as the world up hint.
func Look(pos, target Vec4) Mat4 {
	return LookUp(pos, target, Direction(0, 1, 0))
}

// LookUp is Look with an explicit up hint. When the view direction is parallel
// to the hint, the world Z axis is used instead.
func LookUp(pos, target, upHint Vec4) Mat4 {
	forward := target.Sub(pos).Normalized()
	right := upHint.Cross(forward)
	if right.Mag() < 1e-12 {
		right = Direction(0, 0, -1).Cross(forward)
	}
	right = right.Normalized()
	up := forward.Cross(right)
	return Camera(forward, right, up, pos)
}

// Perspective is a projection matrix for a horizontal field of view in degrees.
// Camera-space depth -near..-far maps to 0..1 after the perspective divide.
func Perspective(fovDeg, near, far Real) Mat4 {
	s := 1 / math.Tan((fovDeg/2)*math.Pi/180)
	fn := far - near
	var M Mat4
	M.D[0] = s
	M.D[5] = s
	M.D[10] = -far / fn
	M.D[11] = -far * near / fn
	M.D[14] = -1
	return M
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.D[r*4+k] * B.D[k*4+c]
			}
			R.D[r*4+c] = sum
		}
	}
	return R
}

func (A Mat4) MulVec(v Vec4) Vec4 {
	d := &A.D
	return Vec4{
		d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.D[r*4+c] = A.D[c*4+r]
		}
	}
	return R
}

// minor3 is the determinant of A with row r and column c removed.
func (A Mat4) minor3(r, c int) Real {
	var m [9]Real
	n := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			m[n] = A.D[i*4+j]
			n++
		}
	}
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse uses the adjugate: all 16 cofactors, the determinant from the first
// row expansion, then adj/det. A singular matrix returns the identity.
func (A Mat4) Inverse() Mat4 {
	var cof [16]Real
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sign := Real(1)
			if (r+c)&1 == 1 {
				sign = -1
			}
			cof[r*4+c] = sign * A.minor3(r, c)
		}
	}
	det := A.D[0]*cof[0] + A.D[1]*cof[1] + A.D[2]*cof[2] + A.D[3]*cof[3]
	if det == 0 {
		DebugLog("Inverse: singular matrix, returning identity")
		return I4()
	}
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.D[r*4+c] = cof[c*4+r] / det
		}
	}
	return R
}

func (A Mat4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		sb.WriteString("[ ")
		for c := 0; c < 4; c++ {
			fmt.Fprintf(&sb, "%.3f ", A.D[r*4+c])
		}
		sb.WriteString("]")
	}
	return sb.String()
}
