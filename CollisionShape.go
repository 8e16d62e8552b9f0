package msfl2d

/// A shape is used for collision detection. Shapes are attached to exactly one
/// Body, which moves and rotates them.

var Shape_Type = struct {
	E_polygon   uint8
	E_typeCount uint8
}{
	E_polygon:   0,
	E_typeCount: 1,
}

type Shape interface {
	/// Get the type of this shape.
	GetType() uint8

	/// Project the shape on a line. The result is expressed in the line's
	/// graduation.
	Project(line Line) LineSegment

	/// Test a point (world coordinates) for containment in this shape. Points
	/// on the boundary are inside.
	IsPointInside(p Vec2D) bool

	/// Global position of the shape center.
	GetPosition() Vec2D
	SetPosition(position Vec2D)

	/// Rotation of the shape around its center, in radians.
	GetRotation() float64
	SetRotation(angle float64)

	/// The body owning this shape, or nil when not attached yet.
	GetBody() *Body

	setBody(body *Body) error
}

/// A shape with a finite list of vertices. This is what the SAT detector
/// works on.
type PolygonShape interface {
	Shape

	NbVertices() int

	/// Global position of the vertex at the given index.
	GetGlobalVertex(index int) (Vec2D, error)

	/// Global positions of every vertex, in order.
	GetGlobalVertices() []Vec2D
}

/// Common state of every shape.
type BaseShape struct {
	M_type uint8

	M_position Vec2D
	M_rotation float64

	/// Non-owning back reference, set once when the shape is added to a body.
	M_body *Body
}

func (shape BaseShape) GetType() uint8 {
	return shape.M_type
}

func (shape BaseShape) GetPosition() Vec2D {
	return shape.M_position
}

func (shape *BaseShape) SetPosition(position Vec2D) {
	shape.M_position = position
}

func (shape BaseShape) GetRotation() float64 {
	return shape.M_rotation
}

func (shape *BaseShape) SetRotation(angle float64) {
	shape.M_rotation = wrapAngle(angle)
}

func (shape BaseShape) GetBody() *Body {
	return shape.M_body
}

func (shape *BaseShape) setBody(body *Body) error {
	if body != nil && shape.M_body != nil && shape.M_body != body {
		return simulationErrorf("the shape already belongs to another body")
	}

	shape.M_body = body
	return nil
}
