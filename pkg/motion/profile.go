package motion

import (
	"fmt"
	"math"

	"github.com/formicidae-tracker/syunit/pkg/units"
)

// Profile is a planned move: it accelerates for Accel, cruises at Peak
// for Cruise, then decelerates for Accel again, starting and ending at
// rest.
type Profile[
	T units.Unit,
	D units.Derivable[T, V],
	V units.Rate[T, D, A],
	A units.Accelerating[T, V, J, I, F],
	J units.Integrable[T, A],
	F units.ForceOf[I, A],
	I units.InertiaOf[A, F],
] struct {
	From, To     units.Position[D]
	Accel        T
	Cruise       T
	Peak         V
	Acceleration A

	set units.UnitSet[T, D, V, A, J, F, I]
}

// MaxSamples bounds the number of samples Samples returns.
const MaxSamples = 1 << 24

// Sample is the state of a Profile at a given time.
type Sample[T units.Unit, D units.Unit, V units.Unit] struct {
	Time     T
	Position units.Position[D]
	Velocity V
}

func (p Profile[T, D, V, A, J, F, I]) Duration() T {
	return p.Accel + p.Accel + p.Cruise
}

// Distance is the signed distance from From to To.
func (p Profile[T, D, V, A, J, F, I]) Distance() D {
	return p.To.Sub(p.From)
}

// Direction is CW for moves towards greater positions, CCW otherwise.
func (p Profile[T, D, V, A, J, F, I]) Direction() units.Direction {
	if p.To.Less(p.From) {
		return units.CCW
	}
	return units.CW
}

func (p Profile[T, D, V, A, J, F, I]) ramp(t T) D {
	return units.Shrink(p.set.Distance(p.set.VelocityAfter(p.Acceleration, t), t), 2)
}

// travelled returns the unsigned distance covered at t.
func (p Profile[T, D, V, A, J, F, I]) travelled(t T) D {
	t = units.Clamp(t, 0, p.Duration())
	switch {
	case t <= p.Accel:
		return p.ramp(t)
	case t <= p.Accel+p.Cruise:
		return p.ramp(p.Accel) + p.set.Distance(p.Peak, t-p.Accel)
	default:
		return units.Abs(p.Distance()) - p.ramp(p.Duration()-t)
	}
}

// PositionAt returns the position reached at t. It is From before the
// move starts and To once it ends.
func (p Profile[T, D, V, A, J, F, I]) PositionAt(t T) units.Position[D] {
	if t >= p.Duration() {
		return p.To
	}
	if p.Direction() == units.CCW {
		return p.From.Minus(p.travelled(t))
	}
	return p.From.Add(p.travelled(t))
}

// VelocityAt returns the signed velocity at t.
func (p Profile[T, D, V, A, J, F, I]) VelocityAt(t T) V {
	if t <= 0 || t >= p.Duration() {
		return 0
	}
	var v V
	switch {
	case t <= p.Accel:
		v = p.set.VelocityAfter(p.Acceleration, t)
	case t <= p.Accel+p.Cruise:
		v = p.Peak
	default:
		v = p.set.VelocityAfter(p.Acceleration, p.Duration()-t)
	}
	if p.Direction() == units.CCW {
		return -v
	}
	return v
}

// Samples returns the state of the profile every period, ending with
// the final state. It returns nil if period is not strictly positive,
// the move never ends, or it would need more than MaxSamples samples.
func (p Profile[T, D, V, A, J, F, I]) Samples(period T) []Sample[T, D, V] {
	duration := p.Duration()
	if period <= 0 || units.IsFinite(duration) == false {
		return nil
	}
	count := math.Ceil(float64(duration) / float64(period))
	if count >= MaxSamples || math.IsNaN(count) {
		return nil
	}
	n := int(count)
	res := make([]Sample[T, D, V], 0, n+1)
	for i := 0; i < n; i++ {
		t := units.Scale(period, float32(i))
		res = append(res, Sample[T, D, V]{Time: t, Position: p.PositionAt(t), Velocity: p.VelocityAt(t)})
	}
	return append(res, Sample[T, D, V]{Time: duration, Position: p.To})
}

func (p Profile[T, D, V, A, J, F, I]) String() string {
	return fmt.Sprintf("%s -> %s in %s (peak %s)", p.From, p.To, p.Duration(), p.Peak)
}
