package msfl2d

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

/// Identifier of a body inside a world. Never zero.
type BodyID uint64

/// The world manages all physics entities and runs the simulation.
/// A world is not safe for concurrent use.

var World_Flags = struct {
	E_locked int
}{
	E_locked: 0x0001,
}

type World struct {
	M_flags int

	M_bodies map[BodyID]*Body
	M_order  []BodyID // insertion order, drives pair testing

	/// Applied to every dynamic body at each update, scaled by its mass.
	M_constantForce Vec2D

	/// Friction of the environment. Kept for hosts; the integration does not
	/// use it.
	M_friction float64

	M_rng    *rand.Rand
	M_logger *zap.Logger

	M_contactFilter   ContactFilterInterface
	M_contactListener ContactListenerInterface

	M_profile   Profile
	M_stepCount uint64
}

type WorldOption func(*World)

/// Set the constant force (gravity) of the world.
func WithGravity(gravity Vec2D) WorldOption {
	return func(w *World) { w.M_constantForce = gravity }
}

/// Set the friction of the environment. Must be in [0, 1].
func WithFriction(friction float64) WorldOption {
	return func(w *World) { w.M_friction = friction }
}

/// Seed the generator of body IDs, for reproducible runs.
func WithSeed(seed uint64) WorldOption {
	return func(w *World) { w.M_rng = rand.New(rand.NewPCG(seed, seed)) }
}

func WithLogger(logger *zap.Logger) WorldOption {
	return func(w *World) {
		if logger != nil {
			w.M_logger = logger
		}
	}
}

func NewWorld(opts ...WorldOption) (*World, error) {
	world := &World{
		M_bodies:        make(map[BodyID]*Body),
		M_constantForce: MakeVec2D(Msfl_defaultGravityX, Msfl_defaultGravityY),
		M_friction:      Msfl_defaultFriction,
		M_logger:        zap.NewNop(),
		M_contactFilter: &ContactFilter{},
		M_profile:       MakeProfile(),
	}

	for _, opt := range opts {
		opt(world)
	}

	if world.M_rng == nil {
		seed := rand.Uint64()
		world.M_rng = rand.New(rand.NewPCG(seed, seed))
	}

	if err := world.SetFriction(world.M_friction); err != nil {
		return nil, err
	}

	return world, nil
}

func (world World) IsLocked() bool {
	return (world.M_flags & World_Flags.E_locked) == World_Flags.E_locked
}

func (world World) GetLogger() *zap.Logger {
	return world.M_logger
}

func (world World) GetConstantForce() Vec2D {
	return world.M_constantForce
}

func (world *World) SetConstantForce(force Vec2D) {
	world.M_constantForce = force
}

func (world World) GetFriction() float64 {
	return world.M_friction
}

func (world *World) SetFriction(friction float64) error {
	if !(friction >= 0 && friction <= 1) {
		return simulationErrorf("friction must be in [0, 1], got %g", friction)
	}

	world.M_friction = friction
	return nil
}

/// Register a filter deciding which pairs of bodies are tested. A nil filter
/// restores the default one, based on the bodies' Filter.
func (world *World) SetContactFilter(filter ContactFilterInterface) {
	if filter == nil {
		filter = &ContactFilter{}
	}

	world.M_contactFilter = filter
}

func (world *World) SetContactListener(listener ContactListenerInterface) {
	world.M_contactListener = listener
}

func (world World) GetProfile() Profile {
	return world.M_profile
}

/// Number of updates performed so far.
func (world World) GetStepCount() uint64 {
	return world.M_stepCount
}

///////////////////////////////////////////////////////////////////////////////
// Bodies
///////////////////////////////////////////////////////////////////////////////

/// Insert a body in the world and return its new identifier.
func (world *World) AddBody(body *Body) (BodyID, error) {
	if world.IsLocked() {
		return 0, simulationErrorf("cannot add a body while the world is updating")
	}
	if body == nil {
		return 0, simulationErrorf("cannot add a nil body")
	}
	if body.M_world != nil {
		return 0, simulationErrorf("the body already belongs to a world (id %d)", body.M_id)
	}

	id := world.newBodyID()

	body.M_id = id
	body.M_world = world
	world.M_bodies[id] = body
	world.M_order = append(world.M_order, id)

	world.M_logger.Debug("body added",
		zap.Uint64("id", uint64(id)),
		zap.Int("shapes", body.NbShapes()),
		zap.Bool("static", body.IsStatic()),
	)

	return id, nil
}

func (world *World) newBodyID() BodyID {
	for {
		id := BodyID(world.M_rng.Uint64())
		if id == 0 {
			continue
		}
		if _, ok := world.M_bodies[id]; ok {
			continue
		}

		return id
	}
}

func (world *World) RemoveBody(id BodyID) error {
	if world.IsLocked() {
		return simulationErrorf("cannot remove a body while the world is updating")
	}

	body, ok := world.M_bodies[id]
	if !ok {
		return simulationErrorf("no body with id %d", id)
	}

	delete(world.M_bodies, id)
	for i, other := range world.M_order {
		if other == id {
			world.M_order = append(world.M_order[:i], world.M_order[i+1:]...)
			break
		}
	}

	body.M_id = 0
	body.M_world = nil

	world.M_logger.Debug("body removed", zap.Uint64("id", uint64(id)))
	return nil
}

func (world World) GetBody(id BodyID) (*Body, error) {
	body, ok := world.M_bodies[id]
	if !ok {
		return nil, simulationErrorf("no body with id %d", id)
	}

	return body, nil
}

/// A copy of the body map. Bodies themselves are shared.
func (world World) GetBodies() map[BodyID]*Body {
	res := make(map[BodyID]*Body, len(world.M_bodies))
	for id, body := range world.M_bodies {
		res[id] = body
	}

	return res
}

/// Identifiers of the bodies, in insertion order.
func (world World) GetBodyIDs() []BodyID {
	return append([]BodyID(nil), world.M_order...)
}

func (world World) NbBodies() int {
	return len(world.M_bodies)
}

/// Call callback for every shape containing p, in body insertion order.
func (world World) QueryPoint(p Vec2D, callback QueryCallback) {
	for _, id := range world.M_order {
		body := world.M_bodies[id]
		for _, shape := range body.M_shapes {
			if !shape.IsPointInside(p) {
				continue
			}
			if !callback(body, shape) {
				return
			}
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Simulation
///////////////////////////////////////////////////////////////////////////////

/// Advance the simulation by dt seconds.
///
/// Bodies first integrate the forces registered during the previous update.
/// Forces are then cleared and the constant force is registered again. Every
/// pair of bodies is finally tested for collision, in insertion order, and
/// collisions are resolved: the resolution forces take effect on the next
/// update, while the bodies are separated right away.
///
/// dt is not clamped. Callers should skip updates after a long pause rather
/// than pass a large time step.
func (world *World) Update(dt float64) error {
	if world.IsLocked() {
		return simulationErrorf("the world is already updating")
	}
	if !(dt > 0) {
		return simulationErrorf("the time step must be positive, got %g", dt)
	}

	stepStart := time.Now()
	step := MakeTimeStep(dt)

	world.M_flags |= World_Flags.E_locked
	defer func() { world.M_flags &= ^World_Flags.E_locked }()

	bodies := make([]*Body, len(world.M_order))
	for i, id := range world.M_order {
		bodies[i] = world.M_bodies[id]
	}

	// Integrate velocities and positions.
	{
		start := time.Now()
		for _, body := range bodies {
			body.ApplyForces(step.Dt)
		}

		for _, body := range bodies {
			body.ResetForces()
			body.RegisterForce(world.M_constantForce)
			body.resetCollidingPoints()
		}
		world.M_profile.Integrate = time.Since(start)
	}

	var collide, solve time.Duration
	collisions := 0

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bodyA, bodyB := bodies[i], bodies[j]

			if bodyA.IsStatic() && bodyB.IsStatic() {
				continue
			}
			if !world.M_contactFilter.ShouldCollide(bodyA, bodyB) {
				continue
			}

			for _, shapeA := range bodyA.M_shapes {
				polyA, ok := shapeA.(PolygonShape)
				if !ok {
					continue
				}

				for _, shapeB := range bodyB.M_shapes {
					polyB, ok := shapeB.(PolygonShape)
					if !ok {
						continue
					}

					start := time.Now()
					result, err := CollidePolygons(polyA, polyB)
					collide += time.Since(start)
					if err != nil {
						return errors.Wrapf(err, "collision between bodies %d and %d", bodyA.M_id, bodyB.M_id)
					}

					if !result.Collide {
						continue
					}
					collisions++

					world.M_logger.Debug("collision",
						zap.Uint64("reference", uint64(result.ReferenceBody.M_id)),
						zap.Uint64("incident", uint64(result.IncidentBody.M_id)),
						zap.Float64("depth", result.Depth),
						zap.Int("points", result.NbContactPoints()),
					)

					if world.M_contactListener != nil {
						world.M_contactListener.PreSolve(&result)
					}

					start = time.Now()
					err = ResolveCollision(result, step.Dt)
					solve += time.Since(start)
					if err != nil {
						return errors.Wrapf(err, "resolution between bodies %d and %d", bodyA.M_id, bodyB.M_id)
					}

					if world.M_contactListener != nil {
						world.M_contactListener.PostSolve(&result)
					}
				}
			}
		}
	}

	world.M_stepCount++
	world.M_profile.Collide = collide
	world.M_profile.Solve = solve
	world.M_profile.Step = time.Since(stepStart)

	world.M_logger.Debug("step",
		zap.Uint64("step", world.M_stepCount),
		zap.Int("bodies", len(bodies)),
		zap.Int("collisions", collisions),
		zap.Duration("integrate", world.M_profile.Integrate),
		zap.Duration("collide", world.M_profile.Collide),
		zap.Duration("solve", world.M_profile.Solve),
		zap.Duration("total", world.M_profile.Step),
	)

	return nil
}
