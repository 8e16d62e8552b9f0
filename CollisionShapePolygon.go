package msfl2d

import "math"

/// A convex polygon. Vertices are stored relative to the polygon centroid
/// (their average is the origin) and are listed clockwise, so the interior of
/// the polygon is to the right of each edge.
/// The global position of a vertex is its local position rotated by the shape
/// rotation, plus the shape position.

type ConvexPolygon struct {
	BaseShape

	M_vertices []Vec2D
}

/// Build a polygon from vertices already expressed relative to center. Their
/// average must be the origin.
func NewConvexPolygon(vertices []Vec2D, center Vec2D) (*ConvexPolygon, error) {
	if len(vertices) < 3 {
		return nil, geometryErrorf("a polygon needs at least 3 vertices, got %d", len(vertices))
	}

	avg := Vec2DAverage(vertices)
	if avg.Norm() > Msfl_validationTolerance {
		return nil, geometryErrorf("the vertices of a polygon must be centered on the origin, their average is %v", avg)
	}

	return newConvexPolygon(vertices, center)
}

/// Build a polygon from vertices in world coordinates. The shape position is
/// the average of the vertices.
func NewConvexPolygonFromVertices(vertices []Vec2D) (*ConvexPolygon, error) {
	if len(vertices) < 3 {
		return nil, geometryErrorf("a polygon needs at least 3 vertices, got %d", len(vertices))
	}

	center := Vec2DAverage(vertices)
	relative := make([]Vec2D, len(vertices))
	for i, v := range vertices {
		relative[i] = v.Sub(center)
	}

	return newConvexPolygon(relative, center)
}

/// Build a regular polygon of count vertices inscribed in the circle of the
/// given radius. The top edge is horizontal.
func NewRegularPolygon(count int, radius float64, center Vec2D) (*ConvexPolygon, error) {
	if count < 3 {
		return nil, geometryErrorf("a polygon needs at least 3 vertices, got %d", count)
	}
	if !(radius > 0) || !MsflIsValid(radius) {
		return nil, geometryErrorf("the radius of a regular polygon must be positive, got %g", radius)
	}

	step := 2.0 * Msfl_pi / float64(count)
	start := Msfl_pi/2.0 + step/2.0

	vertices := make([]Vec2D, count)
	for i := 0; i < count; i++ {
		s, c := math.Sincos(start - float64(i)*step)
		vertices[i] = MakeVec2D(radius*c, radius*s)
	}

	// Sin/cos noise: snap the average back on the origin.
	avg := Vec2DAverage(vertices)
	for i := range vertices {
		vertices[i] = vertices[i].Sub(avg)
	}

	return newConvexPolygon(vertices, center)
}

func newConvexPolygon(vertices []Vec2D, center Vec2D) (*ConvexPolygon, error) {
	for i, v := range vertices {
		if !v.IsValid() {
			return nil, geometryErrorf("the vertex %d is not finite: %v", i, v)
		}
		if v == vertices[(i+1)%len(vertices)] {
			return nil, geometryErrorf("the vertices %d and %d are identical", i, (i+1)%len(vertices))
		}
	}

	poly := &ConvexPolygon{
		BaseShape: BaseShape{
			M_type:     Shape_Type.E_polygon,
			M_position: center,
		},
		M_vertices: append([]Vec2D(nil), vertices...),
	}

	if !poly.IsConvex() {
		return nil, geometryErrorf("the polygon %v is not convex or not clockwise", vertices)
	}

	return poly, nil
}

func (poly ConvexPolygon) NbVertices() int {
	return len(poly.M_vertices)
}

/// Vertices relative to the shape center, without rotation.
func (poly ConvexPolygon) GetLocalVertices() []Vec2D {
	return append([]Vec2D(nil), poly.M_vertices...)
}

func (poly ConvexPolygon) GetGlobalVertex(index int) (Vec2D, error) {
	if index < 0 || index >= len(poly.M_vertices) {
		return Vec2D{}, geometryErrorf("vertex index %d out of range [0, %d)", index, len(poly.M_vertices))
	}

	return poly.M_vertices[index].Rotate(poly.M_rotation).Add(poly.M_position), nil
}

func (poly ConvexPolygon) GetGlobalVertices() []Vec2D {
	res := make([]Vec2D, len(poly.M_vertices))
	for i, v := range poly.M_vertices {
		res[i] = v.Rotate(poly.M_rotation).Add(poly.M_position)
	}

	return res
}

/// A polygon is convex (and clockwise) when, at every vertex, going from the
/// previous neighbour to the next one never turns the wrong way. Collinear
/// vertices are accepted.
func (poly ConvexPolygon) IsConvex() bool {
	count := len(poly.M_vertices)
	if count < 3 {
		return false
	}

	for i := 0; i < count; i++ {
		v := poly.M_vertices[i]
		prev := poly.M_vertices[(i+count-1)%count]
		next := poly.M_vertices[(i+1)%count]

		if Vec2DCross(prev.Sub(v), next.Sub(v)) < 0 {
			return false
		}
	}

	return true
}

func (poly ConvexPolygon) Project(line Line) LineSegment {
	min := math.Inf(1)
	max := math.Inf(-1)

	for _, v := range poly.GetGlobalVertices() {
		g := v.Project(line)
		min = math.Min(min, g)
		max = math.Max(max, g)
	}

	return MakeLineSegment(MakeSegment(min, max), line)
}

/// Points on an edge are inside.
func (poly ConvexPolygon) IsPointInside(p Vec2D) bool {
	vertices := poly.GetGlobalVertices()
	expected := LineSide_middle

	for i := range vertices {
		edge, err := MakeLine(vertices[i], vertices[(i+1)%len(vertices)])
		if err != nil {
			return false
		}

		side := edge.Side(p)
		if side == LineSide_middle {
			continue
		}

		if expected == LineSide_middle {
			expected = side
		} else if side != expected {
			return false
		}
	}

	return true
}

/// Edge i goes from vertex i to vertex i+1, in global coordinates.
func (poly ConvexPolygon) GetGlobalEdge(index int) (LineSegment, error) {
	p1, err := poly.GetGlobalVertex(index)
	if err != nil {
		return LineSegment{}, err
	}

	p2, _ := poly.GetGlobalVertex((index + 1) % len(poly.M_vertices))

	return MakeLineSegmentFromPoints(p1, p2)
}

/// Area of the polygon (shoelace formula).
func (poly ConvexPolygon) ComputeArea() float64 {
	area := 0.0
	count := len(poly.M_vertices)
	for i := 0; i < count; i++ {
		area += Vec2DCross(poly.M_vertices[i], poly.M_vertices[(i+1)%count])
	}

	return math.Abs(area) / 2.0
}
