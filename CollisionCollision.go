package msfl2d

import "math"

/// Outcome of a SAT test between two polygons.
/// The reference polygon owns the axis of minimum penetration, the incident
/// polygon is the other one. MinPenetrationVector is a unit vector pointing
/// from the reference polygon toward the incident one: moving the incident
/// polygon by MinPenetrationVector * Depth separates the two shapes.
type SATResult struct {
	Collide bool

	MinPenetrationVector Vec2D
	Depth                float64

	/// World coordinates, at most Msfl_maxContactPoints. A collision without
	/// contact point is valid.
	ContactPoints []Vec2D

	ReferenceShape PolygonShape
	IncidentShape  PolygonShape
	ReferenceBody  *Body
	IncidentBody   *Body

	/// The edge of the reference polygon the contacts were clipped against.
	ReferenceSide LineSegment
}

func MakeSATResult() SATResult {
	return SATResult{}
}

func (result SATResult) NbContactPoints() int {
	return len(result.ContactPoints)
}

/// Candidate contact points: every vertex of the incident polygon plus the
/// intersections of its edges with the two lines orthogonal to the reference
/// edge through its end points.
func clipCandidates(refStart, refEnd, normal Vec2D, incident PolygonShape) []Vec2D {
	vertices := incident.GetGlobalVertices()
	candidates := append([]Vec2D(nil), vertices...)

	var sides [2]Line
	var err error
	if sides[0], err = MakeLineFromDirectorVector(refStart, normal); err != nil {
		return candidates
	}
	if sides[1], err = MakeLineFromDirectorVector(refEnd, normal); err != nil {
		return candidates
	}

	for i := range vertices {
		edge, err := MakeLineSegmentFromPoints(vertices[i], vertices[(i+1)%len(vertices)])
		if err != nil {
			continue
		}

		for _, side := range sides {
			// Parallel edges and misses are expected here.
			p, err := edge.Intersection(side)
			if err != nil {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	return candidates
}

/// Keep the candidates that lie on the inner side of the reference edge and
/// within its extent, then the deepest ones (at most Msfl_maxContactPoints,
/// duplicates removed).
func clipContactPoints(refStart, refEnd Vec2D, candidates []Vec2D) ([]Vec2D, error) {
	refLine, err := MakeLine(refStart, refEnd)
	if err != nil {
		return nil, err
	}
	length := refEnd.Sub(refStart).Norm()

	kept := make([]Vec2D, 0, len(candidates))
	distances := make([]float64, 0, len(candidates))
	maxDistance := math.Inf(-1)

	for _, p := range candidates {
		if refLine.Side(p) == LineSide_left {
			continue
		}

		g := refLine.GetGradCoo(p)
		if rg := roundDigits(g); rg < 0 || rg > roundDigits(length) {
			continue
		}

		d := roundDigits(Vec2DDistanceSquared(p, refLine.GetCooGrad(g)))
		kept = append(kept, p)
		distances = append(distances, d)
		maxDistance = math.Max(maxDistance, d)
	}

	points := make([]Vec2D, 0, Msfl_maxContactPoints)
	for i, p := range kept {
		if distances[i] != maxDistance || containsRoundedPoint(points, p) {
			continue
		}

		points = append(points, p)
		if len(points) == Msfl_maxContactPoints {
			break
		}
	}

	return points, nil
}

func containsRoundedPoint(points []Vec2D, p Vec2D) bool {
	for _, q := range points {
		if roundDigits(q.X) == roundDigits(p.X) && roundDigits(q.Y) == roundDigits(p.Y) {
			return true
		}
	}

	return false
}
