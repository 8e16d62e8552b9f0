package msfl2d

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
/// A closed 1D interval [Min, Max]. A Segment does not know which line it
/// belongs to; see LineSegment for that.
///////////////////////////////////////////////////////////////////////////////
type Segment struct {
	Min, Max float64
}

/// Build a segment from its two end points, in any order.
func MakeSegment(p1, p2 float64) Segment {
	if p1 > p2 {
		return Segment{Min: p2, Max: p1}
	}

	return Segment{Min: p1, Max: p2}
}

func (s Segment) Length() float64 {
	return s.Max - s.Min
}

func (s Segment) IsEmpty() bool {
	return s.Length() == 0
}

func (s Segment) Contains(x float64) bool {
	return x >= s.Min && x <= s.Max
}

func (s Segment) String() string {
	return fmt.Sprintf("[%g, %g]", s.Min, s.Max)
}

/// Shared portion of two segments, or the empty segment (0, 0) when they do
/// not overlap. Touching segments do not overlap.
///
/// The "first" segment is the one with the lowest Min. The overlap starts at
/// the Min of the second one and stops at the lowest Max, so a segment fully
/// contained in the other one is returned whole.
func SegmentIntersection(s1, s2 Segment) Segment {
	first, second := s2, s1
	if s1.Min < s2.Min {
		first, second = s1, s2
	}

	if first.Max > second.Min {
		return MakeSegment(second.Min, math.Min(first.Max, second.Max))
	}

	return Segment{}
}

///////////////////////////////////////////////////////////////////////////////
/// A segment bound to a line: Segment is expressed in Line's graduation.
/// Used for polygon edges, projections and contact regions.
///////////////////////////////////////////////////////////////////////////////
type LineSegment struct {
	Segment Segment
	Line    Line
}

func MakeLineSegment(segment Segment, line Line) LineSegment {
	return LineSegment{
		Segment: segment,
		Line:    line,
	}
}

/// Build the segment [p1, p2]. Its line has p1 as origin, so the segment
/// spans [0, |p2 - p1|].
func MakeLineSegmentFromPoints(p1, p2 Vec2D) (LineSegment, error) {
	line, err := MakeLine(p1, p2)
	if err != nil {
		return LineSegment{}, err
	}

	return MakeLineSegment(MakeSegment(0, p2.Sub(p1).Norm()), line), nil
}

func (ls LineSegment) Length() float64 {
	return ls.Segment.Length()
}

/// Global coordinates of the two end points of the segment.
func (ls LineSegment) Coordinates() (Vec2D, Vec2D) {
	return ls.Line.GetCooGrad(ls.Segment.Min), ls.Line.GetCooGrad(ls.Segment.Max)
}

/// A vector with the direction and the length of the segment.
func (ls LineSegment) GetVec() Vec2D {
	return ls.Line.GetVec().Mul(ls.Segment.Length())
}

/// Graduation, on the segment's own line, of the intersection point between
/// the segment and a line. Fails with ErrGeometry when there is no such point.
func (ls LineSegment) IntersectionGrad(line Line) (float64, error) {
	p, err := LineIntersection(ls.Line, line)
	if err != nil {
		return 0, geometryErrorf("no intersection between the segment %v and %v", ls, line)
	}

	grad := ls.Line.GetGradCoo(p)
	if !ls.Segment.Contains(grad) {
		return 0, geometryErrorf("no intersection between the segment %v and %v", ls, line)
	}

	return grad, nil
}

/// Intersection point between the segment and a line. Fails with
/// ErrGeometry when the line misses the segment or is parallel to it.
func (ls LineSegment) Intersection(line Line) (Vec2D, error) {
	p, err := LineIntersection(ls.Line, line)
	if err != nil {
		return Vec2D{}, geometryErrorf("no intersection between the segment %v and %v", ls, line)
	}

	if !ls.Segment.Contains(ls.Line.GetGradCoo(p)) {
		return Vec2D{}, geometryErrorf("no intersection between the segment %v and %v", ls, line)
	}

	return p, nil
}

func (ls LineSegment) String() string {
	return fmt.Sprintf("%v on %v", ls.Segment, ls.Line)
}

/// Shared portion of two segments lying on the same line. Fails with
/// ErrGeometry when the lines differ.
func LineSegmentIntersection(s1, s2 LineSegment) (LineSegment, error) {
	if !LineOverlap(s1.Line, s2.Line) {
		return LineSegment{}, geometryErrorf("line segments must be on the same line to intersect")
	}

	return MakeLineSegment(SegmentIntersection(s1.Segment, s2.Segment), s1.Line), nil
}
