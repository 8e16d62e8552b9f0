package msfl2d_test

import (
	"bytes"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	msfl2d "github.com/MyselfLeo/msfl2D"
	"github.com/MyselfLeo/msfl2D/scene"
	"github.com/MyselfLeo/msfl2D/trace"
)

func runDropScene(t *testing.T, steps int) (string, *trace.Recorder, *msfl2d.World, map[string]msfl2d.BodyID) {
	t.Helper()

	s, err := scene.LoadFile("scene/testdata/drop.yaml")
	require.NoError(t, err)

	world, ids, err := s.Build()
	require.NoError(t, err)

	recorder := trace.NewRecorder(ids)
	for step := 0; step < steps; step++ {
		require.NoError(t, world.Update(1.0/60.0))
		require.NoError(t, recorder.Record(step, world))
	}

	var buf bytes.Buffer
	require.NoError(t, recorder.WriteText(&buf))
	return buf.String(), recorder, world, ids
}

func TestDeterministicReplay(t *testing.T) {
	expected, expectedRec, _, _ := runDropScene(t, 120)
	output, outputRec, world, ids := runDropScene(t, 120)

	if output != expected {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(output),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("Replay of the same scene diverged: \n%s", text)
	}
	require.Equal(t, expectedRec.Digest(), outputRec.Digest())

	// Same seed, same body IDs.
	_, _, _, otherIDs := runDropScene(t, 0)
	require.Equal(t, ids, otherIDs)

	floor, err := world.GetBody(ids["floor"])
	require.NoError(t, err)
	require.Equal(t, vec(0, -0.5), floor.GetCenter())

	// Everything dynamic fell onto the floor and stays above it.
	for _, name := range []string{"box", "hexagon"} {
		body, err := world.GetBody(ids[name])
		require.NoError(t, err)

		for _, shape := range body.GetShapes() {
			poly, ok := shape.(msfl2d.PolygonShape)
			require.True(t, ok)
			require.Greater(t, minY(poly.GetGlobalVertices()), -0.5, name)
		}
		require.Less(t, body.GetCenter().Y, 4.0, name)
	}
}
