package msfl2d

import "math"

/// A body definition holds the data needed to construct a body. Shapes are
/// added to a body after construction.
type BodyDef struct {

	/// Static bodies never move and have a mass of zero.
	Static bool

	/// Mass of a dynamic body, in kilograms. Must be positive.
	Mass float64

	/// Restitution, in [0, 1].
	Bounciness float64

	/// Friction coefficient, in [0, 1].
	Friction float64

	/// Initial linear velocity.
	Velocity Vec2D

	/// Initial angular velocity, in radians per second.
	AngularVelocity float64

	Filter Filter

	/// Use this to store application specific body data.
	UserData interface{}
}

/// This constructor sets the body definition default values.
func MakeBodyDef() BodyDef {
	return BodyDef{
		Static:          false,
		Mass:            Msfl_defaultMass,
		Bounciness:      Msfl_defaultBounciness,
		Friction:        Msfl_defaultBodyFriction,
		Velocity:        Vec2D_zero,
		AngularVelocity: 0.0,
		Filter:          MakeFilter(),
	}
}

/// A force registered on a body for the next integration. Point is relative
/// to the body center; the zero point means the force applies at the center.
type Force struct {
	Force Vec2D
	Point Vec2D
}

///////////////////////////////////////////////////////////////////////////////
/// A rigid body: a set of shapes moving together.
///
/// The position of a body is the plain (not mass weighted) average of the
/// positions of its shapes. Shapes keep their global position; moving or
/// rotating the body moves and rotates every shape.
///////////////////////////////////////////////////////////////////////////////
type Body struct {
	M_shapes []Shape

	M_position Vec2D
	M_rotation float64

	M_velocity        Vec2D
	M_angularVelocity float64

	M_mass       float64
	M_bounciness float64
	M_friction   float64
	M_isStatic   bool

	M_forces []Force

	/// Number of contact points involving this body as the incident one, in
	/// the current step.
	M_collidingPointCount int

	M_filter   Filter
	M_userData interface{}

	M_id    BodyID
	M_world *World
}

/// A dynamic body with the default mass, bounciness and friction.
func NewBody() *Body {
	body, _ := NewBodyFromDef(MakeBodyDef())
	return body
}

func NewBodyFromDef(def BodyDef) (*Body, error) {
	body := &Body{
		M_velocity:        def.Velocity,
		M_angularVelocity: def.AngularVelocity,
		M_mass:            Msfl_defaultMass,
		M_filter:          def.Filter,
		M_userData:        def.UserData,
	}

	if err := body.SetBounciness(def.Bounciness); err != nil {
		return nil, err
	}
	if err := body.SetFriction(def.Friction); err != nil {
		return nil, err
	}

	if def.Static {
		body.SetStatic(true)
	} else if err := body.SetMass(def.Mass); err != nil {
		return nil, err
	}

	return body, nil
}

func (body Body) GetID() BodyID {
	return body.M_id
}

/// The world this body belongs to, or nil.
func (body Body) GetWorld() *World {
	return body.M_world
}

///////////////////////////////////////////////////////////////////////////////
// Shapes
///////////////////////////////////////////////////////////////////////////////

/// Attach a shape to this body. A shape belongs to a single body for its
/// whole life.
func (body *Body) AddShape(shape Shape) error {
	if shape == nil {
		return simulationErrorf("cannot add a nil shape")
	}
	if shape.GetBody() != nil {
		return simulationErrorf("the shape already belongs to a body")
	}

	if err := shape.setBody(body); err != nil {
		return err
	}

	body.M_shapes = append(body.M_shapes, shape)
	body.updateCenter()
	return nil
}

func (body *Body) RemoveShape(index int) error {
	if err := body.checkShapeIndex(index); err != nil {
		return err
	}

	shape := body.M_shapes[index]
	if err := shape.setBody(nil); err != nil {
		return err
	}

	body.M_shapes = append(body.M_shapes[:index], body.M_shapes[index+1:]...)
	body.updateCenter()
	return nil
}

func (body Body) GetShape(index int) (Shape, error) {
	if err := body.checkShapeIndex(index); err != nil {
		return nil, err
	}

	return body.M_shapes[index], nil
}

func (body Body) GetShapes() []Shape {
	return append([]Shape(nil), body.M_shapes...)
}

func (body Body) NbShapes() int {
	return len(body.M_shapes)
}

/// Set the global position of one shape.
func (body *Body) MoveShape(index int, position Vec2D) error {
	if err := body.checkShapeIndex(index); err != nil {
		return err
	}

	body.M_shapes[index].SetPosition(position)
	body.updateCenter()
	return nil
}

/// Set the rotation of one shape around its own center.
func (body *Body) RotateShape(index int, angle float64) error {
	if err := body.checkShapeIndex(index); err != nil {
		return err
	}

	body.M_shapes[index].SetRotation(angle)
	return nil
}

func (body Body) checkShapeIndex(index int) error {
	if index < 0 || index >= len(body.M_shapes) {
		return simulationErrorf("shape index %d out of range [0, %d)", index, len(body.M_shapes))
	}

	return nil
}

func (body *Body) updateCenter() {
	if len(body.M_shapes) == 0 {
		return
	}

	positions := make([]Vec2D, len(body.M_shapes))
	for i, shape := range body.M_shapes {
		positions[i] = shape.GetPosition()
	}

	body.M_position = Vec2DAverage(positions)
}

///////////////////////////////////////////////////////////////////////////////
// Position
///////////////////////////////////////////////////////////////////////////////

func (body Body) GetCenter() Vec2D {
	return body.M_position
}

func (body Body) GetPosition() Vec2D {
	return body.M_position
}

func (body Body) GetRotation() float64 {
	return body.M_rotation
}

/// Move the body so that its center is at position. Every shape is
/// translated by the same amount.
func (body *Body) Move(position Vec2D) {
	delta := position.Sub(body.M_position)

	for _, shape := range body.M_shapes {
		shape.SetPosition(shape.GetPosition().Add(delta))
	}

	if len(body.M_shapes) == 0 {
		body.M_position = position
		return
	}
	body.updateCenter()
}

/// Rotate the body around its own center. Angle in radians, counter-clockwise.
func (body *Body) Rotate(angle float64) {
	body.RotateAround(angle, body.M_position)
}

/// Rotate the body around a pivot. Each shape spins by angle around its own
/// center and its position turns around the pivot.
func (body *Body) RotateAround(angle float64, center Vec2D) {
	for _, shape := range body.M_shapes {
		shape.SetRotation(shape.GetRotation() + angle)
		shape.SetPosition(shape.GetPosition().RotateAround(angle, center))
	}

	body.M_rotation = wrapAngle(body.M_rotation + angle)
	body.updateCenter()
}

///////////////////////////////////////////////////////////////////////////////
// Kinematics
///////////////////////////////////////////////////////////////////////////////

func (body Body) GetVelocity() Vec2D {
	return body.M_velocity
}

/// Ignored for static bodies.
func (body *Body) SetVelocity(v Vec2D) {
	if body.M_isStatic {
		return
	}

	body.M_velocity = v
}

func (body Body) GetAngularVelocity() float64 {
	return body.M_angularVelocity
}

/// Ignored for static bodies.
func (body *Body) SetAngularVelocity(w float64) {
	if body.M_isStatic {
		return
	}

	body.M_angularVelocity = w
}

/// Velocity of a point of the body, relative to its center: linear velocity
/// plus the tangential velocity due to the rotation.
func (body Body) GetPointVelocity(point Vec2D) Vec2D {
	return body.M_velocity.Add(Vec2DCrossScalarVector(body.M_angularVelocity, point))
}

///////////////////////////////////////////////////////////////////////////////
// Physical properties
///////////////////////////////////////////////////////////////////////////////

func (body Body) GetMass() float64 {
	return body.M_mass
}

/// Static bodies keep a mass of zero whatever the value given.
func (body *Body) SetMass(mass float64) error {
	if body.M_isStatic {
		body.M_mass = 0
		return nil
	}

	if !(mass > 0) || !MsflIsValid(mass) {
		return simulationErrorf("the mass of a dynamic body must be positive, got %g", mass)
	}

	body.M_mass = mass
	return nil
}

/// Moment of inertia of the disc having the same area as the mass. This is
/// an approximation, not the inertia of the actual shapes.
func (body Body) GetInertia() float64 {
	if body.M_isStatic || body.M_mass == 0 {
		return 0
	}

	r := math.Sqrt(body.M_mass / Msfl_pi)
	return Msfl_pi * r * r * r * r / 4.0
}

func (body Body) GetBounciness() float64 {
	return body.M_bounciness
}

func (body *Body) SetBounciness(bounciness float64) error {
	if !(bounciness >= 0 && bounciness <= 1) {
		return simulationErrorf("bounciness must be in [0, 1], got %g", bounciness)
	}

	body.M_bounciness = bounciness
	return nil
}

func (body Body) GetFriction() float64 {
	return body.M_friction
}

func (body *Body) SetFriction(friction float64) error {
	if !(friction >= 0 && friction <= 1) {
		return simulationErrorf("friction must be in [0, 1], got %g", friction)
	}

	body.M_friction = friction
	return nil
}

func (body Body) IsStatic() bool {
	return body.M_isStatic
}

/// A static body has no mass, no velocity and ignores forces. Turning a
/// static body dynamic gives it the default mass.
func (body *Body) SetStatic(flag bool) {
	body.M_isStatic = flag

	if flag {
		body.M_mass = 0
		body.M_velocity = Vec2D_zero
		body.M_angularVelocity = 0
		body.M_forces = nil
		return
	}

	if body.M_mass == 0 {
		body.M_mass = Msfl_defaultMass
	}
}

func (body Body) GetFilter() Filter {
	return body.M_filter
}

func (body *Body) SetFilter(filter Filter) {
	body.M_filter = filter
}

func (body Body) GetUserData() interface{} {
	return body.M_userData
}

func (body *Body) SetUserData(data interface{}) {
	body.M_userData = data
}

func (body Body) GetCollidingPointCount() int {
	return body.M_collidingPointCount
}

func (body *Body) addCollidingPoints(count int) {
	body.M_collidingPointCount += count
}

func (body *Body) resetCollidingPoints() {
	body.M_collidingPointCount = 0
}

///////////////////////////////////////////////////////////////////////////////
// Forces
///////////////////////////////////////////////////////////////////////////////

/// Register a force applied at the center of the body. The force is scaled
/// by the mass, so a constant acceleration such as gravity can be given
/// as is.
func (body *Body) RegisterForce(force Vec2D) {
	if body.M_isStatic {
		return
	}

	body.M_forces = append(body.M_forces, Force{
		Force: force.Mul(body.M_mass),
		Point: Vec2D_zero,
	})
}

/// Register a force applied at a point relative to the center of the body.
func (body *Body) RegisterForceAt(force Vec2D, point Vec2D) {
	if body.M_isStatic {
		return
	}

	body.M_forces = append(body.M_forces, Force{
		Force: force,
		Point: point,
	})
}

func (body *Body) ResetForces() {
	body.M_forces = body.M_forces[:0]
}

func (body Body) GetForces() []Force {
	return append([]Force(nil), body.M_forces...)
}

/// Integrate the registered forces over dt, then move and rotate the body.
/// Forces are not cleared.
func (body *Body) ApplyForces(dt float64) {
	if body.M_isStatic {
		return
	}

	for _, f := range body.M_forces {
		body.M_velocity = body.M_velocity.Add(f.Force.Mul(dt).Div(body.M_mass))

		if f.Point != Vec2D_zero {
			torque := Vec2DCross(f.Point, f.Force)
			body.M_angularVelocity += torque * dt / body.GetInertia()
		}
	}

	body.Move(body.M_position.Add(body.M_velocity.Mul(dt)))

	if angle := body.M_angularVelocity * dt; angle != 0 {
		body.Rotate(angle)
	}
}
