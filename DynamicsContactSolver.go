package msfl2d

import "math"

/// Resolve a collision found by CollidePolygons.
/// For each contact point, the velocities of the two bodies along the
/// penetration vector after the impact are computed from the conservation
/// of momentum and the average bounciness of the bodies. The matching forces
/// are registered on the bodies and take effect on their next integration.
/// The bodies are then moved apart so that they no longer overlap.
/// Nothing happens when the result has no contact point or when both bodies
/// are static.
func ResolveCollision(result SATResult, dt float64) error {
	if !result.Collide || len(result.ContactPoints) == 0 {
		return nil
	}

	if len(result.ContactPoints) > Msfl_maxContactPoints {
		return internalErrorf("a collision has at most %d contact points, got %d", Msfl_maxContactPoints, len(result.ContactPoints))
	}
	if result.ReferenceBody == nil || result.IncidentBody == nil {
		return internalErrorf("the collision result does not reference both bodies")
	}
	if !(dt > 0) {
		return simulationErrorf("the time step must be positive, got %g", dt)
	}

	ref := result.ReferenceBody
	inc := result.IncidentBody
	if ref.IsStatic() && inc.IsStatic() {
		return nil
	}

	for _, point := range result.ContactPoints {
		if err := resolvePointCollision(result, point, dt); err != nil {
			return err
		}
		resolveFriction(result, point, dt)
	}

	separateBodies(result)
	return nil
}

func resolvePointCollision(result SATResult, point Vec2D, dt float64) error {
	ref := result.ReferenceBody
	inc := result.IncidentBody
	n := result.MinPenetrationVector

	nbPoints := len(result.ContactPoints)
	if nbPoints == 0 || nbPoints > Msfl_maxContactPoints {
		return internalErrorf("cannot share a collision between %d contact points", nbPoints)
	}

	// Share of each mass taken by this contact point.
	refMass := ref.GetMass() / float64(nbPoints)
	incMass := inc.GetMass() / float64(max(inc.GetCollidingPointCount(), 1))

	refSpeed := Vec2DDot(ref.GetVelocity(), n)
	incSpeed := Vec2DDot(inc.GetVelocity(), n)

	// Already moving apart.
	if incSpeed-refSpeed >= 0 {
		return nil
	}

	e := (ref.GetBounciness() + inc.GetBounciness()) / 2.0

	var refAfter, incAfter float64
	switch {
	case ref.IsStatic():
		refAfter = refSpeed
		incAfter = refSpeed - e*(incSpeed-refSpeed)
	case inc.IsStatic():
		incAfter = incSpeed
		refAfter = incSpeed - e*(refSpeed-incSpeed)
	default:
		momentum := refMass*refSpeed + incMass*incSpeed
		total := refMass + incMass
		refAfter = (momentum + incMass*e*(incSpeed-refSpeed)) / total
		incAfter = (momentum + refMass*e*(refSpeed-incSpeed)) / total
	}

	if !ref.IsStatic() {
		force := n.Mul(refMass * (refAfter - refSpeed) / dt)
		ref.RegisterForceAt(force, point.Sub(ref.GetCenter()))
	}
	if !inc.IsStatic() {
		force := n.Mul(incMass * (incAfter - incSpeed) / dt)
		inc.RegisterForceAt(force, point.Sub(inc.GetCenter()))
	}

	return nil
}

// TODO: apply a Coulomb tangential impulse bounded by the averaged body friction.
func resolveFriction(result SATResult, point Vec2D, dt float64) {}

/// Move the bodies apart along the penetration vector. A static body never
/// moves. Otherwise each body takes a share of the correction proportional
/// to its speed toward the other one, and nothing happens when neither
/// body is approaching.
func separateBodies(result SATResult) {
	ref := result.ReferenceBody
	inc := result.IncidentBody
	correction := result.MinPenetrationVector.Mul(result.Depth)

	switch {
	case ref.IsStatic() && inc.IsStatic():
		return
	case ref.IsStatic():
		inc.Move(inc.GetCenter().Add(correction))
		return
	case inc.IsStatic():
		ref.Move(ref.GetCenter().Sub(correction))
		return
	}

	axis := inc.GetCenter().Sub(ref.GetCenter()).Normalized()
	refApproach := math.Max(0, Vec2DDot(ref.GetVelocity(), axis))
	incApproach := math.Max(0, -Vec2DDot(inc.GetVelocity(), axis))

	total := refApproach + incApproach
	if total == 0 {
		return
	}

	ref.Move(ref.GetCenter().Sub(correction.Mul(refApproach / total)))
	inc.Move(inc.GetCenter().Add(correction.Mul(incApproach / total)))
}
