package msfl2d

import "math"

const Msfl_pi = math.Pi

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

// Collision

/// The maximum number of contact points between two convex shapes. Do
/// not change this value.
const Msfl_maxContactPoints = 2

/// Number of decimal digits kept when comparing penetration depths and contact
/// distances. Anything below is treated as floating noise.
const Msfl_roundingDigits = 6

/// Tolerance used when checking that pre-centered vertices average to the origin.
const Msfl_validationTolerance = 1e-9

// Dynamics

/// Default constant force applied to every body of a world (gravity).
const Msfl_defaultGravityX = 0.0
const Msfl_defaultGravityY = -9.8

/// Default friction of the environment.
const Msfl_defaultFriction = 0.1

/// Default mass of a dynamic body, in kilograms.
const Msfl_defaultMass = 1.0

/// Default restitution of a body.
const Msfl_defaultBounciness = 0.5

/// Default friction coefficient of a body.
const Msfl_defaultBodyFriction = 0.5

/// Rotations are kept in [-Msfl_maxAngle, Msfl_maxAngle].
const Msfl_maxAngle = 2.0 * Msfl_pi

/// Round x to Msfl_roundingDigits decimal digits.
func roundDigits(x float64) float64 {
	scale := math.Pow(10, Msfl_roundingDigits)
	return math.Round(x*scale) / scale
}

/// Wrap an angle into [-Msfl_maxAngle, Msfl_maxAngle].
func wrapAngle(angle float64) float64 {
	return math.Mod(angle, Msfl_maxAngle)
}
