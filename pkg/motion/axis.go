// Package motion computes trapezoidal move profiles for a single axis.
// Every algorithm is written once against a units.UnitSet, so the same
// code drives linear and rotary axes.
package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/formicidae-tracker/syunit/pkg/units"
	"golang.org/x/exp/constraints"
)

// Axis describes the kinematic limits of a single axis: it never
// exceeds MaxVelocity and ramps at MaxAcceleration, moving a load of
// Inertia.
type Axis[
	T units.Unit,
	D units.Derivable[T, V],
	V units.Rate[T, D, A],
	A units.Accelerating[T, V, J, I, F],
	J units.Integrable[T, A],
	F units.ForceOf[I, A],
	I units.InertiaOf[A, F],
] struct {
	Set             units.UnitSet[T, D, V, A, J, F, I]
	MaxVelocity     V
	MaxAcceleration A
	Inertia         I
}

// NewAxis returns an Axis in the unit set of set. Velocity and
// acceleration must be strictly positive and finite, inertia positive
// or zero.
func NewAxis[
	T units.Unit,
	D units.Derivable[T, V],
	V units.Rate[T, D, A],
	A units.Accelerating[T, V, J, I, F],
	J units.Integrable[T, A],
	F units.ForceOf[I, A],
	I units.InertiaOf[A, F],
](set units.UnitSet[T, D, V, A, J, F, I], maxVelocity V, maxAcceleration A, inertia I) (Axis[T, D, V, A, J, F, I], error) {
	var errs []error
	if maxVelocity <= 0 || units.IsFinite(maxVelocity) == false {
		errs = append(errs, fmt.Errorf("max velocity %s must be strictly positive", maxVelocity))
	}
	if maxAcceleration <= 0 || units.IsFinite(maxAcceleration) == false {
		errs = append(errs, fmt.Errorf("max acceleration %s must be strictly positive", maxAcceleration))
	}
	if inertia < 0 || units.IsFinite(inertia) == false {
		errs = append(errs, fmt.Errorf("inertia %s must be positive", inertia))
	}
	if len(errs) > 0 {
		return Axis[T, D, V, A, J, F, I]{}, fmt.Errorf("invalid %s axis: %w", set.Name(), errors.Join(errs...))
	}
	return Axis[T, D, V, A, J, F, I]{
		Set:             set,
		MaxVelocity:     maxVelocity,
		MaxAcceleration: maxAcceleration,
		Inertia:         inertia,
	}, nil
}

func sqrt[N constraints.Float](v N) N {
	return N(math.Sqrt(float64(v)))
}

// AccelerationTime is the time needed to reach MaxVelocity from rest.
func (a Axis[T, D, V, A, J, F, I]) AccelerationTime() T {
	return a.Set.RampTime(a.MaxVelocity, a.MaxAcceleration)
}

// AccelerationDistance is the distance covered while reaching
// MaxVelocity from rest.
func (a Axis[T, D, V, A, J, F, I]) AccelerationDistance() D {
	return units.Shrink(a.Set.Distance(a.MaxVelocity, a.AccelerationTime()), 2)
}

// ramp splits a move of length d in its acceleration and cruise
// phases. Short moves never reach MaxVelocity and have no cruise.
func (a Axis[T, D, V, A, J, F, I]) ramp(d D) (accel, cruise T, peak V) {
	dist := units.Abs(d)
	if dist == 0 {
		return 0, 0, 0
	}
	ta := a.AccelerationTime()
	da := a.AccelerationDistance()
	if dist >= da+da {
		return ta, a.Set.TravelTime(dist-da-da, a.MaxVelocity), a.MaxVelocity
	}
	r := sqrt(units.Ratio(dist, da+da))
	return units.Scale(ta, r), 0, units.Scale(a.MaxVelocity, r)
}

// MoveTime returns the duration of a move of length d starting and
// ending at rest.
func (a Axis[T, D, V, A, J, F, I]) MoveTime(d D) T {
	accel, cruise, _ := a.ramp(d)
	return accel + accel + cruise
}

// PeakVelocity returns the highest velocity reached during a move of
// length d.
func (a Axis[T, D, V, A, J, F, I]) PeakVelocity(d D) V {
	_, _, peak := a.ramp(d)
	return peak
}

// DistanceAfter returns the distance covered t after leaving rest, for
// a move long enough to never decelerate.
func (a Axis[T, D, V, A, J, F, I]) DistanceAfter(t T) D {
	if t <= 0 {
		return 0
	}
	ta := a.AccelerationTime()
	if t <= ta {
		return units.Shrink(a.Set.Distance(a.Set.VelocityAfter(a.MaxAcceleration, t), t), 2)
	}
	return a.AccelerationDistance() + a.Set.Distance(a.MaxVelocity, t-ta)
}

// RequiredForce returns the force needed to accelerate Inertia at
// MaxAcceleration.
func (a Axis[T, D, V, A, J, F, I]) RequiredForce() F {
	return a.Set.Force(a.Inertia, a.MaxAcceleration)
}

// SpeedLimited returns a copy of a whose MaxVelocity is scaled by f. With
// FactorMin the axis cannot move and any non-null move takes forever.
func (a Axis[T, D, V, A, J, F, I]) SpeedLimited(f units.Factor) Axis[T, D, V, A, J, F, I] {
	res := a
	res.MaxVelocity = units.ScaleBy(a.MaxVelocity, f)
	return res
}

// Move plans the move from one position to another.
func (a Axis[T, D, V, A, J, F, I]) Move(from, to units.Position[D]) Profile[T, D, V, A, J, F, I] {
	accel, cruise, peak := a.ramp(to.Sub(from))
	return Profile[T, D, V, A, J, F, I]{
		From:         from,
		To:           to,
		Accel:        accel,
		Cruise:       cruise,
		Peak:         peak,
		Acceleration: a.MaxAcceleration,
		set:          a.Set,
	}
}
