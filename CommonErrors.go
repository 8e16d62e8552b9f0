package msfl2d

import "github.com/pkg/errors"

/// Error taxonomy of the engine. Every error returned by this package wraps
/// one of these sentinels, so callers can match with errors.Is.
var (
	/// Invalid geometric construction or query: degenerate line, undefined
	/// slope or intercept, missing intersection, non-convex polygon, out-of-range
	/// vertex index.
	ErrGeometry = errors.New("msfl2d: geometry error")

	/// Invalid physical parameter: bounciness or friction outside [0, 1],
	/// non-positive mass or time step, missing body or shape.
	ErrSimulation = errors.New("msfl2d: simulation error")

	/// An algorithm invariant was violated.
	ErrInternal = errors.New("msfl2d: internal error")
)

func geometryErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrGeometry, format, args...)
}

func simulationErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSimulation, format, args...)
}

func internalErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternal, format, args...)
}
