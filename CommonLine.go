package msfl2d

import "fmt"

/// Position of a point relative to an oriented line.
type LineSide uint8

const (
	LineSide_middle LineSide = iota
	LineSide_left
	LineSide_right
)

func (s LineSide) String() string {
	switch s {
	case LineSide_left:
		return "LEFT"
	case LineSide_right:
		return "RIGHT"
	default:
		return "MIDDLE"
	}
}

///////////////////////////////////////////////////////////////////////////////
/// An infinite line going through two distinct points.
///
/// The line carries a graduation: its origin is p1 and its unit is the
/// normalized direction p1 -> p2, so graduations are true distances from p1.
///////////////////////////////////////////////////////////////////////////////
type Line struct {
	p1, p2 Vec2D
}

/// Build the line going through p1 and p2. Fails with ErrGeometry when the
/// two points are equal.
func MakeLine(p1, p2 Vec2D) (Line, error) {
	if p1 == p2 {
		return Line{}, geometryErrorf("cannot build a line from two identical points %v", p1)
	}

	return Line{p1: p1, p2: p2}, nil
}

/// Build the line going through origin with the given direction.
func MakeLineFromDirectorVector(origin, dir Vec2D) (Line, error) {
	return MakeLine(origin, origin.Add(dir))
}

func (line Line) GetP1() Vec2D {
	return line.p1
}

func (line Line) GetP2() Vec2D {
	return line.p2
}

/// Side of p relative to the line oriented from p1 to p2.
func (line Line) Side(p Vec2D) LineSide {
	orient := Vec2DCross(line.p2.Sub(line.p1), p.Sub(line.p1))
	if orient > 0 {
		return LineSide_left
	}
	if orient < 0 {
		return LineSide_right
	}
	return LineSide_middle
}

func (line Line) IsVertical() bool {
	return line.p1.X == line.p2.X
}

func (line Line) IsHorizontal() bool {
	return line.p1.Y == line.p2.Y
}

/// Y coordinate of the point of the line with the given X. Undefined for
/// vertical lines.
func (line Line) FindY(x float64) (float64, error) {
	if line.IsVertical() {
		return 0, geometryErrorf("cannot find y on the vertical line %v", line)
	}

	d := line.p2.Sub(line.p1)
	return line.p1.Y + (x-line.p1.X)*d.Y/d.X, nil
}

/// X coordinate of the point of the line with the given Y. Undefined for
/// horizontal lines.
func (line Line) FindX(y float64) (float64, error) {
	if line.IsHorizontal() {
		return 0, geometryErrorf("cannot find x on the horizontal line %v", line)
	}

	d := line.p2.Sub(line.p1)
	return line.p1.X + (y-line.p1.Y)*d.X/d.Y, nil
}

/// Normalized direction vector of the line.
func (line Line) GetVec() Vec2D {
	return line.p2.Sub(line.p1).Normalized()
}

/// Slope of the line, as in y = slope * x + zero.
func (line Line) GetSlope() (float64, error) {
	if line.IsVertical() {
		return 0, geometryErrorf("the vertical line %v has no slope", line)
	}

	d := line.p2.Sub(line.p1)
	return d.Y / d.X, nil
}

/// Y-intercept of the line, as in y = slope * x + zero.
/// Not to be confused with GetOrigin.
func (line Line) GetZero() (float64, error) {
	slope, err := line.GetSlope()
	if err != nil {
		return 0, err
	}

	return line.p1.Y - slope*line.p1.X, nil
}

/// Origin of the graduation of the line (its first point).
func (line Line) GetOrigin() Vec2D {
	return line.p1
}

/// Coordinates of the point at graduation g.
func (line Line) GetCooGrad(g float64) Vec2D {
	return line.p1.Add(line.GetVec().Mul(g))
}

/// Graduation of the foot of p on the line.
func (line Line) GetGradCoo(p Vec2D) float64 {
	return p.Project(line)
}

/// Whether p lies exactly on the line.
func (line Line) Has(p Vec2D) bool {
	if line.IsVertical() {
		x, _ := line.FindX(p.Y)
		return x == p.X
	}

	y, _ := line.FindY(p.X)
	return y == p.Y
}

func (line Line) String() string {
	return fmt.Sprintf("Line[%v -> %v]", line.p1, line.p2)
}

/// Intersection point of two lines. Fails with ErrGeometry when the lines
/// are collinear (parallel or identical) since there is no unique point.
func LineIntersection(l1, l2 Line) (Vec2D, error) {
	x1, y1 := l1.p1.X, l1.p1.Y
	x2, y2 := l1.p2.X, l1.p2.Y
	x3, y3 := l2.p1.X, l2.p1.Y
	x4, y4 := l2.p2.X, l2.p2.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Vec2D{}, geometryErrorf("no unique intersection between %v and %v", l1, l2)
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4

	return MakeVec2D(
		(a*(x3-x4)-(x1-x2)*b)/denom,
		(a*(y3-y4)-(y1-y2)*b)/denom,
	), nil
}

/// Whether two lines are the same set of points: collinear directions and
/// the origin of l1 lying on l2.
func LineOverlap(l1, l2 Line) bool {
	if !Vec2DCollinear(l1.GetVec(), l2.GetVec()) {
		return false
	}

	return l2.Has(l1.GetOrigin())
}
