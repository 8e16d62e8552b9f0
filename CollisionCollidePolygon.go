package msfl2d

// Candidate separating axis: an edge of the reference polygon.
type satAxis struct {
	ref, inc PolygonShape

	start, end Vec2D
	normal     Vec2D

	direction Vec2D
	depth     float64
	rounded   float64

	// Average signed distance of the incident vertices along the normal,
	// rounded like depths.
	facing float64
}

/// Detect a collision between two convex polygons using the Separating Axis
/// Theorem. Every edge normal of both polygons is tested; a single axis on
/// which the projections do not overlap proves the polygons are disjoint.
/// The axis of minimum penetration selects the reference polygon and edge,
/// the incident polygon is then clipped against that edge to find at most
/// two contact points.
/// Both shapes must be attached to a body. Each contact point found is
/// counted on the incident body.
func CollidePolygons(a, b PolygonShape) (SATResult, error) {
	if a == nil || b == nil {
		return SATResult{}, simulationErrorf("cannot collide a nil shape")
	}
	if a.GetBody() == nil || b.GetBody() == nil {
		return SATResult{}, simulationErrorf("cannot collide shapes that do not belong to a body")
	}

	var best satAxis
	found := false

	for _, pair := range [2][2]PolygonShape{{a, b}, {b, a}} {
		ref, inc := pair[0], pair[1]
		refVertices := ref.GetGlobalVertices()
		incVertices := inc.GetGlobalVertices()

		for i := range refVertices {
			start := refVertices[i]
			end := refVertices[(i+1)%len(refVertices)]
			edge := end.Sub(start)
			normal := MakeVec2D(-edge.Y, edge.X).Normalized()

			axis, err := MakeLineFromDirectorVector(start, normal)
			if err != nil {
				return SATResult{}, internalErrorf("degenerate edge %d of %v: %v", i, refVertices, err)
			}

			refProj := ref.Project(axis)
			incProj := inc.Project(axis)

			overlap, err := LineSegmentIntersection(refProj, incProj)
			if err != nil {
				return SATResult{}, internalErrorf("projections on %v are not on the same line: %v", axis, err)
			}

			if overlap.Length() == 0 {
				return MakeSATResult(), nil
			}

			push := refProj.Segment.Max - incProj.Segment.Min
			pull := incProj.Segment.Max - refProj.Segment.Min

			candidate := satAxis{
				ref:       ref,
				inc:       inc,
				start:     start,
				end:       end,
				normal:    normal,
				direction: normal,
				depth:     push,
			}
			if pull < push {
				candidate.direction = normal.Neg()
				candidate.depth = pull
			}
			candidate.rounded = roundDigits(candidate.depth)

			for _, w := range incVertices {
				candidate.facing += Vec2DDot(w.Sub(start), normal)
			}
			candidate.facing = roundDigits(candidate.facing / float64(len(incVertices)))

			if !found ||
				candidate.rounded < best.rounded ||
				(candidate.rounded == best.rounded && candidate.facing > best.facing) {
				best = candidate
				found = true
			}
		}
	}

	if !found {
		return MakeSATResult(), nil
	}

	points, err := clipContactPoints(best.start, best.end, clipCandidates(best.start, best.end, best.normal, best.inc))
	if err != nil {
		return SATResult{}, internalErrorf("cannot clip against the reference edge: %v", err)
	}

	side, _ := MakeLineSegmentFromPoints(best.start, best.end)

	incBody := best.inc.GetBody()
	incBody.addCollidingPoints(len(points))

	return SATResult{
		Collide:              true,
		MinPenetrationVector: best.direction,
		Depth:                best.depth,
		ContactPoints:        points,
		ReferenceShape:       best.ref,
		IncidentShape:        best.inc,
		ReferenceBody:        best.ref.GetBody(),
		IncidentBody:         incBody,
		ReferenceSide:        side,
	}, nil
}
