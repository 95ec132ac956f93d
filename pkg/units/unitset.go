package units

// Derivable is a quantity whose rate of change over time T is R.
type Derivable[T, R any] interface {
	Unit
	Per(T) R
	At(R) T
}

// Integrable is a rate over time T whose integral is Q.
type Integrable[T, Q any] interface {
	Unit
	Over(T) Q
}

// Rate is a middle rung of a ladder: the rate of Q and the quantity
// whose rate is R.
type Rate[T, Q, R any] interface {
	Derivable[T, R]
	Integrable[T, Q]
}

// ForceOf is a force producing an acceleration A on an inertia I.
type ForceOf[I, A any] interface {
	Unit
	DivInertia(I) A
	DivAcceleration(A) I
}

// InertiaOf is an inertia producing the force F under an acceleration
// A.
type InertiaOf[A, F any] interface {
	Unit
	MulAcceleration(A) F
}

// Accelerating is the acceleration rung, bridging the time ladder and
// the force/inertia triangle.
type Accelerating[T, V, J, I, F any] interface {
	Rate[T, V, J]
	MulInertia(I) F
}

// UnitSet bundles the concrete types of a coherent family of units:
// time T, distance D, velocity V, acceleration A, jolt J, force F and
// inertia I. The position type of the family is Position[D]. The
// constraints require every relation between them, so an inconsistent
// set does not compile. A UnitSet carries no data.
type UnitSet[
	T Unit,
	D Derivable[T, V],
	V Rate[T, D, A],
	A Accelerating[T, V, J, I, F],
	J Integrable[T, A],
	F ForceOf[I, A],
	I InertiaOf[A, F],
] struct{}

type (
	// MetricMM is the linear family centered on millimeters.
	MetricMM = UnitSet[Seconds, Millimeters, MMPerSecond, MMPerSecond2, MMPerSecond3, Newtons, Kilograms]
	// Rotary is the rotary family centered on radians.
	Rotary = UnitSet[Seconds, Radians, RadPerSecond, RadPerSecond2, RadPerSecond3, NewtonMeters, KgMeter2]
)

// Name returns the symbol of the distance unit of the set.
func (UnitSet[T, D, V, A, J, F, I]) Name() string {
	var d D
	return d.Symbol()
}

func (UnitSet[T, D, V, A, J, F, I]) Origin() Position[D] {
	return Position[D]{}
}

func (UnitSet[T, D, V, A, J, F, I]) Position(d D) Position[D] {
	return At(d)
}

// Velocity returns d / t.
func (UnitSet[T, D, V, A, J, F, I]) Velocity(d D, t T) V {
	return d.Per(t)
}

// Distance returns v * t.
func (UnitSet[T, D, V, A, J, F, I]) Distance(v V, t T) D {
	return v.Over(t)
}

// IntegrateVelocity returns t * v.
func (UnitSet[T, D, V, A, J, F, I]) IntegrateVelocity(t T, v V) D {
	return v.Over(t)
}

// TravelTime returns d / v.
func (UnitSet[T, D, V, A, J, F, I]) TravelTime(d D, v V) T {
	return d.At(v)
}

func (UnitSet[T, D, V, A, J, F, I]) Acceleration(v V, t T) A {
	return v.Per(t)
}

func (UnitSet[T, D, V, A, J, F, I]) VelocityAfter(a A, t T) V {
	return a.Over(t)
}

func (UnitSet[T, D, V, A, J, F, I]) IntegrateAcceleration(t T, a A) V {
	return a.Over(t)
}

// RampTime returns the time needed to reach v under acceleration a.
func (UnitSet[T, D, V, A, J, F, I]) RampTime(v V, a A) T {
	return v.At(a)
}

func (UnitSet[T, D, V, A, J, F, I]) Jolt(a A, t T) J {
	return a.Per(t)
}

func (UnitSet[T, D, V, A, J, F, I]) AccelerationAfter(j J, t T) A {
	return j.Over(t)
}

func (UnitSet[T, D, V, A, J, F, I]) IntegrateJolt(t T, j J) A {
	return j.Over(t)
}

func (UnitSet[T, D, V, A, J, F, I]) JoltTime(a A, j J) T {
	return a.At(j)
}

// Force returns i * a.
func (UnitSet[T, D, V, A, J, F, I]) Force(i I, a A) F {
	return i.MulAcceleration(a)
}

// AccelerationFrom returns f / i.
func (UnitSet[T, D, V, A, J, F, I]) AccelerationFrom(f F, i I) A {
	return f.DivInertia(i)
}

// InertiaFrom returns f / a.
func (UnitSet[T, D, V, A, J, F, I]) InertiaFrom(f F, a A) I {
	return f.DivAcceleration(a)
}
