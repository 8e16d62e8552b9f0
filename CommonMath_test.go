package msfl2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	msfl2d "github.com/MyselfLeo/msfl2D"
)

func TestVec2DRotateRoundTrip(t *testing.T) {
	points := []msfl2d.Vec2D{vec(3, -2), vec(0, 1), vec(-7.5, 0.25), vec(1e3, 1e-3)}
	angles := []float64{0, 0.1, math.Pi / 2, math.Pi, -2.5, 10}

	for _, p := range points {
		for _, a := range angles {
			back := p.Rotate(a).Rotate(-a)
			require.InDelta(t, p.X, back.X, 1e-9, "x of %v rotated by %g", p, a)
			require.InDelta(t, p.Y, back.Y, 1e-9, "y of %v rotated by %g", p, a)
		}
	}
}

func TestVec2DRotateCounterClockwise(t *testing.T) {
	r := vec(1, 0).Rotate(math.Pi / 2)
	require.InDelta(t, 0, r.X, 1e-12)
	require.InDelta(t, 1, r.Y, 1e-12)

	r = vec(2, 1).RotateAround(math.Pi, vec(1, 1))
	require.InDelta(t, 0, r.X, 1e-12)
	require.InDelta(t, 1, r.Y, 1e-12)
}

func TestVec2DProducts(t *testing.T) {
	a, b := vec(1, 2), vec(3, 4)

	require.Equal(t, 11.0, msfl2d.Vec2DDot(a, b))
	require.Equal(t, -2.0, msfl2d.Vec2DCross(a, b))
	require.Equal(t, msfl2d.Vec2DCross(a, b), msfl2d.Vec2DDet(a, b))
	require.Equal(t, vec(-4, 2), msfl2d.Vec2DCrossScalarVector(2, a))
	require.Equal(t, vec(4, -2), msfl2d.Vec2DCrossVectorScalar(a, 2))
	require.True(t, msfl2d.Vec2DCollinear(vec(1, 1), vec(-2, -2)))
	require.False(t, msfl2d.Vec2DCollinear(vec(1, 1), vec(-2, 2)))
}

func TestVec2DNormalized(t *testing.T) {
	n := vec(3, 4).Normalized()
	require.InDelta(t, 1, n.Norm(), 1e-12)
	require.InDelta(t, 0.6, n.X, 1e-12)
	require.InDelta(t, 0.8, n.Y, 1e-12)

	require.Equal(t, msfl2d.Vec2D_zero, msfl2d.Vec2D_zero.Normalized())
}

func TestVec2DProject(t *testing.T) {
	line, err := msfl2d.MakeLine(vec(1, 1), vec(3, 1))
	require.NoError(t, err)

	require.Equal(t, 4.0, vec(5, 7).Project(line))
	require.Equal(t, -2.0, vec(-1, -3).Project(line))
}

func TestVec2DAverage(t *testing.T) {
	require.Equal(t, msfl2d.Vec2D_zero, msfl2d.Vec2DAverage(nil))
	require.Equal(t, vec(1, 2), msfl2d.Vec2DAverage([]msfl2d.Vec2D{vec(0, 0), vec(2, 4)}))
	require.False(t, vec(math.NaN(), 0).IsValid())
	require.True(t, vec(1, -1).IsValid())
}
