package msfl2d

import (
	"fmt"
	"math"
)

/// This function is used to ensure that a floating point number is not a NaN or infinity.
func MsflIsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

///////////////////////////////////////////////////////////////////////////////
/// A 2D column vector. Vec2D is an immutable value: every operation returns
/// a new vector. Equality is exact floating-point equality (a == b).
///////////////////////////////////////////////////////////////////////////////
type Vec2D struct {
	X, Y float64
}

func MakeVec2D(xIn, yIn float64) Vec2D {
	return Vec2D{
		X: xIn,
		Y: yIn,
	}
}

/// Useful constant
var Vec2D_zero = MakeVec2D(0, 0)

/// Add a vector to this vector.
func (v Vec2D) Add(other Vec2D) Vec2D {
	return MakeVec2D(v.X+other.X, v.Y+other.Y)
}

/// Subtract a vector from this vector.
func (v Vec2D) Sub(other Vec2D) Vec2D {
	return MakeVec2D(v.X-other.X, v.Y-other.Y)
}

/// Negate this vector.
func (v Vec2D) Neg() Vec2D {
	return MakeVec2D(-v.X, -v.Y)
}

/// Multiply this vector by a scalar.
func (v Vec2D) Mul(s float64) Vec2D {
	return MakeVec2D(v.X*s, v.Y*s)
}

/// Divide this vector by a scalar.
func (v Vec2D) Div(s float64) Vec2D {
	return MakeVec2D(v.X/s, v.Y/s)
}

/// Get the length of this vector (the norm).
func (v Vec2D) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

/// Get the length squared.
func (v Vec2D) NormSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/// Same direction with a length of 1. The zero vector has no direction and
/// is returned unchanged.
func (v Vec2D) Normalized() Vec2D {
	length := v.Norm()
	if length == 0 {
		return Vec2D_zero
	}

	invLength := 1.0 / length
	return MakeVec2D(v.X*invLength, v.Y*invLength)
}

/// Rotate the vector counter-clockwise around the origin. Angle in radians.
func (v Vec2D) Rotate(angle float64) Vec2D {
	s, c := math.Sincos(angle)
	return MakeVec2D(
		v.X*c-v.Y*s,
		v.X*s+v.Y*c,
	)
}

/// Rotate the point counter-clockwise around center. Angle in radians.
func (v Vec2D) RotateAround(angle float64, center Vec2D) Vec2D {
	return v.Sub(center).Rotate(angle).Add(center)
}

/// Signed graduation of the foot of this point on the line. The value is
/// not clamped to the two points defining the line.
func (v Vec2D) Project(line Line) float64 {
	return Vec2DDot(v.Sub(line.GetOrigin()), line.GetVec())
}

/// Does this vector contain finite coordinates?
func (v Vec2D) IsValid() bool {
	return MsflIsValid(v.X) && MsflIsValid(v.Y)
}

/// Get the skew vector such that dot(skew_vec, other) == cross(vec, other)
func (v Vec2D) Skew() Vec2D {
	return MakeVec2D(-v.Y, v.X)
}

func (v Vec2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

/// Perform the dot product on two vectors.
func Vec2DDot(a, b Vec2D) float64 {
	return a.X*b.X + a.Y*b.Y
}

/// Perform the cross product on two vectors. In 2D this produces a scalar.
func Vec2DCross(a, b Vec2D) float64 {
	return a.X*b.Y - a.Y*b.X
}

/// Determinant of the 2x2 matrix [a b]. Same as Vec2DCross.
func Vec2DDet(a, b Vec2D) float64 {
	return Vec2DCross(a, b)
}

/// Perform the cross product on a vector and a scalar. In 2D this produces
/// a vector.
func Vec2DCrossVectorScalar(a Vec2D, s float64) Vec2D {
	return MakeVec2D(s*a.Y, -s*a.X)
}

/// Perform the cross product on a scalar and a vector. In 2D this produces
/// a vector.
func Vec2DCrossScalarVector(s float64, a Vec2D) Vec2D {
	return MakeVec2D(-s*a.Y, s*a.X)
}

func Vec2DDistance(a, b Vec2D) float64 {
	return a.Sub(b).Norm()
}

func Vec2DDistanceSquared(a, b Vec2D) float64 {
	c := a.Sub(b)
	return Vec2DDot(c, c)
}

/// Two vectors are collinear when their cross product is exactly zero.
func Vec2DCollinear(a, b Vec2D) bool {
	return Vec2DCross(a, b) == 0
}

/// Average of a list of points. The empty list averages to the origin.
func Vec2DAverage(points []Vec2D) Vec2D {
	if len(points) == 0 {
		return Vec2D_zero
	}

	sum := Vec2D_zero
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Div(float64(len(points)))
}
