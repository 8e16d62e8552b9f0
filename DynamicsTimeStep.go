package msfl2d

import "time"

/// Profiling data of the last world update.
type Profile struct {
	Step      time.Duration
	Integrate time.Duration
	Collide   time.Duration
	Solve     time.Duration
}

func MakeProfile() Profile {
	return Profile{}
}

/// This is an internal structure.
type TimeStep struct {
	Dt    float64 // time step
	InvDt float64 // inverse time step (0 if dt == 0).
}

func MakeTimeStep(dt float64) TimeStep {
	step := TimeStep{Dt: dt}
	if dt > 0 {
		step.InvDt = 1.0 / dt
	}

	return step
}
