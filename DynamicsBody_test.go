package msfl2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	msfl2d "github.com/MyselfLeo/msfl2D"
)

func TestBodyDefaults(t *testing.T) {
	body := msfl2d.NewBody()

	require.False(t, body.IsStatic())
	require.Equal(t, 1.0, body.GetMass())
	require.Equal(t, 0.5, body.GetBounciness())
	require.Equal(t, 0.5, body.GetFriction())
	require.Equal(t, msfl2d.Vec2D_zero, body.GetVelocity())
	require.Equal(t, msfl2d.MakeFilter(), body.GetFilter())
	require.Nil(t, body.GetWorld())
	require.Zero(t, body.GetID())
}

func TestBodySetterValidation(t *testing.T) {
	body := msfl2d.NewBody()

	require.ErrorIs(t, body.SetBounciness(1.5), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.SetBounciness(-0.1), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.SetFriction(2), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.SetFriction(math.NaN()), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.SetMass(0), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.SetMass(-3), msfl2d.ErrSimulation)

	require.NoError(t, body.SetBounciness(1))
	require.NoError(t, body.SetFriction(0))
	require.NoError(t, body.SetMass(12))
	require.Equal(t, 12.0, body.GetMass())

	_, err := msfl2d.NewBodyFromDef(msfl2d.BodyDef{Mass: 1, Bounciness: 3})
	require.ErrorIs(t, err, msfl2d.ErrSimulation)
}

func TestBodyStatic(t *testing.T) {
	body := msfl2d.NewBody()
	body.SetVelocity(vec(1, 2))
	body.RegisterForce(vec(0, -9.8))

	body.SetStatic(true)
	require.True(t, body.IsStatic())
	require.Zero(t, body.GetMass())
	require.Equal(t, msfl2d.Vec2D_zero, body.GetVelocity())
	require.Empty(t, body.GetForces())

	// Mass stays zero, velocities and forces are ignored.
	require.NoError(t, body.SetMass(5))
	require.Zero(t, body.GetMass())
	body.SetVelocity(vec(3, 3))
	body.RegisterForce(vec(1, 0))
	body.RegisterForceAt(vec(1, 0), vec(0, 1))
	require.Equal(t, msfl2d.Vec2D_zero, body.GetVelocity())
	require.Empty(t, body.GetForces())

	body.SetStatic(false)
	require.Equal(t, 1.0, body.GetMass())
}

func TestBodyCenterIsShapeAverage(t *testing.T) {
	body := bodyWith(t, square(t, 0, 0, 1), square(t, 4, 2, 0.5))
	require.Equal(t, vec(2, 1), body.GetCenter())
	require.Equal(t, 2, body.NbShapes())

	require.NoError(t, body.MoveShape(1, vec(2, 0)))
	require.Equal(t, vec(1, 0), body.GetCenter())

	require.NoError(t, body.RemoveShape(0))
	require.Equal(t, vec(2, 0), body.GetCenter())
	require.Len(t, body.GetShapes(), 1)

	_, err := body.GetShape(1)
	require.ErrorIs(t, err, msfl2d.ErrSimulation)
	require.ErrorIs(t, body.RemoveShape(3), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.MoveShape(-1, vec(0, 0)), msfl2d.ErrSimulation)
	require.ErrorIs(t, body.RotateShape(1, 0), msfl2d.ErrSimulation)
}

func TestBodyRemovedShapeCanBeReused(t *testing.T) {
	poly := square(t, 0, 0, 1)
	first := bodyWith(t, poly)
	require.NoError(t, first.RemoveShape(0))
	require.Nil(t, poly.GetBody())

	second := bodyWith(t, poly)
	require.Same(t, second, poly.GetBody())
}

func TestBodyMove(t *testing.T) {
	a := square(t, 0, 0, 1)
	b := square(t, 4, 0, 1)
	body := bodyWith(t, a, b)

	body.Move(vec(2, 5))
	require.Equal(t, vec(2, 5), body.GetCenter())
	require.Equal(t, vec(0, 5), a.GetPosition())
	require.Equal(t, vec(4, 5), b.GetPosition())
}

func TestBodyRotate(t *testing.T) {
	a := square(t, -1, 0, 0.5)
	b := square(t, 1, 0, 0.5)
	body := bodyWith(t, a, b)

	body.Rotate(math.Pi / 2)

	require.InDelta(t, 0, a.GetPosition().X, 1e-12)
	require.InDelta(t, -1, a.GetPosition().Y, 1e-12)
	require.InDelta(t, 0, b.GetPosition().X, 1e-12)
	require.InDelta(t, 1, b.GetPosition().Y, 1e-12)
	require.InDelta(t, math.Pi/2, a.GetRotation(), 1e-12)
	require.InDelta(t, math.Pi/2, b.GetRotation(), 1e-12)
	require.InDelta(t, math.Pi/2, body.GetRotation(), 1e-12)
	require.InDelta(t, 0, body.GetCenter().X, 1e-12)
	require.InDelta(t, 0, body.GetCenter().Y, 1e-12)

	body.RotateAround(math.Pi, vec(0, 2))
	require.InDelta(t, 0, a.GetPosition().X, 1e-12)
	require.InDelta(t, 5, a.GetPosition().Y, 1e-12)

	require.NoError(t, body.RotateShape(0, 0.25))
	require.Equal(t, 0.25, a.GetRotation())
}

func TestBodyRegisterForce(t *testing.T) {
	body := msfl2d.NewBody()
	require.NoError(t, body.SetMass(2))

	body.RegisterForce(vec(0, -9.8))
	body.RegisterForceAt(vec(1, 0), vec(0, 1))

	require.Equal(t, []msfl2d.Force{
		{Force: vec(0, -19.6), Point: msfl2d.Vec2D_zero},
		{Force: vec(1, 0), Point: vec(0, 1)},
	}, body.GetForces())

	body.ResetForces()
	require.Empty(t, body.GetForces())
}

func TestBodyApplyForces(t *testing.T) {
	body := bodyWith(t, square(t, 0, 10, 1))
	require.NoError(t, body.SetMass(4))

	body.RegisterForce(vec(0, -10))
	body.ApplyForces(0.5)

	require.Equal(t, vec(0, -5), body.GetVelocity())
	require.Equal(t, vec(0, 7.5), body.GetCenter())
	require.Zero(t, body.GetAngularVelocity())

	// Forces are kept until reset.
	require.Len(t, body.GetForces(), 1)
}

func TestBodyApplyForcesTorque(t *testing.T) {
	poly := square(t, 0, 0, 1)
	body := bodyWith(t, poly)

	// Unit mass: the equivalent disc has an inertia of 1/(4π).
	require.InDelta(t, 1/(4*math.Pi), body.GetInertia(), 1e-12)

	body.RegisterForceAt(vec(0, 1), vec(1, 0))
	body.ApplyForces(0.1)

	require.InDelta(t, 0.4*math.Pi, body.GetAngularVelocity(), 1e-9)
	require.InDelta(t, 0.04*math.Pi, poly.GetRotation(), 1e-9)
	require.InDelta(t, 0.1, body.GetVelocity().Y, 1e-12)
}

func TestBodyPointVelocity(t *testing.T) {
	body := msfl2d.NewBody()
	body.SetVelocity(vec(1, 0))
	body.SetAngularVelocity(2)

	v := body.GetPointVelocity(vec(0, 1))
	require.Equal(t, vec(-1, 0), v)
}
