package msfl2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	msfl2d "github.com/MyselfLeo/msfl2D"
)

func vec(x, y float64) msfl2d.Vec2D {
	return msfl2d.MakeVec2D(x, y)
}

// Axis aligned square of half side h centered on (cx, cy), built from exact
// vertices.
func square(t *testing.T, cx, cy, h float64) *msfl2d.ConvexPolygon {
	t.Helper()

	poly, err := msfl2d.NewConvexPolygonFromVertices([]msfl2d.Vec2D{
		vec(cx-h, cy+h),
		vec(cx+h, cy+h),
		vec(cx+h, cy-h),
		vec(cx-h, cy-h),
	})
	require.NoError(t, err)
	return poly
}

func bodyWith(t *testing.T, shapes ...msfl2d.Shape) *msfl2d.Body {
	t.Helper()

	body := msfl2d.NewBody()
	for _, shape := range shapes {
		require.NoError(t, body.AddShape(shape))
	}
	return body
}

func staticBodyWith(t *testing.T, shapes ...msfl2d.Shape) *msfl2d.Body {
	t.Helper()

	body := bodyWith(t, shapes...)
	body.SetStatic(true)
	return body
}
