package units

import "math"

// Conversion is a fixed-ratio conversion between two unit systems:
// b = a * k.
type Conversion[A, B Unit] struct {
	k float32
}

// NewConversion returns the conversion b = a * k. k must be finite and
// non-zero for the conversion to be invertible.
func NewConversion[A, B Unit](k float32) Conversion[A, B] {
	return Conversion[A, B]{k: k}
}

var (
	InchesToMillimeters = NewConversion[Inches, Millimeters](25.4)
	DegreesToRadians    = NewConversion[Degrees, Radians](math.Pi / 180.0)
)

func (c Conversion[A, B]) Factor() float32 {
	return c.k
}

func (c Conversion[A, B]) To(a A) B {
	return B(float32(a) * c.k)
}

func (c Conversion[A, B]) From(b B) A {
	return A(float32(b) / c.k)
}

// Inverse returns the conversion from B to A.
func (c Conversion[A, B]) Inverse() Conversion[B, A] {
	return Conversion[B, A]{k: 1.0 / c.k}
}

// InertiaReduction relates an inertia I to its reduced form R seen
// through a linear ratio L. Inertias scale with the square of the
// ratio: r = i * ratio² * k.
type InertiaReduction[I, L, R Unit] struct {
	k float32
}

func NewInertiaReduction[I, L, R Unit](k float32) InertiaReduction[I, L, R] {
	return InertiaReduction[I, L, R]{k: k}
}

// KilogramsAtRadius reduces a mass moving at a radius in millimeters
// to the moment of inertia around the axis.
var KilogramsAtRadius = NewInertiaReduction[Kilograms, Millimeters, KgMeter2](1e-6)

func (r InertiaReduction[I, L, R]) Reduce(inertia I, ratio L) R {
	l := float32(ratio)
	return R(float32(inertia) * l * l * r.k)
}

func (r InertiaReduction[I, L, R]) Extend(reduced R, ratio L) I {
	l := float32(ratio)
	return I(float32(reduced) / l / l / r.k)
}
