package msfl2d

/// Collision filtering data of a body.
type Filter struct {
	/// The collision category bits. Normally you would just set one bit.
	CategoryBits uint16

	/// The collision mask bits. This states the categories that this
	/// body would accept for collision.
	MaskBits uint16

	/// Collision groups allow a certain group of bodies to never collide (negative)
	/// or always collide (positive). Zero means no collision group. Non-zero group
	/// filtering always wins against the mask bits.
	GroupIndex int16
}

func MakeFilter() Filter {
	return Filter{
		CategoryBits: 0x0001,
		MaskBits:     0xFFFF,
		GroupIndex:   0,
	}
}

/// Implement this interface to provide collision filtering. In other words,
/// you can implement this interface if you want finer control over which
/// bodies are tested for collision.
type ContactFilterInterface interface {
	ShouldCollide(bodyA *Body, bodyB *Body) bool
}

/// Implement this interface to get collision results. The listener is called
/// for every collision found by a world update, before and after resolution.
/// This is the place to grab the geometry of a collision for debug overlays.
type ContactListenerInterface interface {
	/// Called when a collision has been detected, before it is resolved.
	/// Note: this is called even when the number of contact points is zero.
	PreSolve(result *SATResult)

	/// Called once the collision has been resolved. The forces registered by
	/// the resolution are visible on the bodies.
	PostSolve(result *SATResult)
}

/// Callback for World.QueryPoint. Return false to terminate the query.
type QueryCallback func(body *Body, shape Shape) bool

type ContactFilter struct {
}

// Return true if collision detection should be performed between these two bodies.
// If you implement your own collision filter you may want to build from this implementation.
func (cf *ContactFilter) ShouldCollide(bodyA *Body, bodyB *Body) bool {
	filterA := bodyA.GetFilter()
	filterB := bodyB.GetFilter()

	if filterA.GroupIndex == filterB.GroupIndex && filterA.GroupIndex != 0 {
		return filterA.GroupIndex > 0
	}

	collide := (filterA.MaskBits&filterB.CategoryBits) != 0 && (filterA.CategoryBits&filterB.MaskBits) != 0
	return collide
}
