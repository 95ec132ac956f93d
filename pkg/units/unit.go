// Package units provides distinct float32 unit types for physical
// quantities and the fixed set of arithmetic relationships between
// them. Relationships are methods on the unit types, so a mismatch
// such as dividing Radians by MMPerSecond is rejected at compile time.
package units

//go:generate go run ../../cmd/unitgen --input units.yaml --output units_gen.go

import (
	"math"
	"strconv"
)

// Unit is implemented by every quantity type of this package. All
// units share a float32 representation and differ only by identity.
type Unit interface {
	~float32
	// Symbol is the suffix used when displaying the unit, e.g. "mm".
	Symbol() string
	String() string
}

// Additive is satisfied by units closed under + and -. Every Unit is
// additive; Position is not a Unit and therefore never is.
type Additive interface {
	Unit
}

func Zero[U Unit]() U {
	return 0
}

func Infinity[U Unit]() U {
	return U(math.Inf(1))
}

func NegInfinity[U Unit]() U {
	return U(math.Inf(-1))
}

func NaN[U Unit]() U {
	return U(math.NaN())
}

func Abs[U Unit](u U) U {
	return U(math.Abs(float64(u)))
}

// Powi raises u to an integer power.
func Powi[U Unit](u U, exp int) U {
	return U(math.Pow(float64(u), float64(exp)))
}

func Powf[U Unit](u U, exp float32) U {
	return U(math.Pow(float64(u), float64(exp)))
}

// Sin returns the sine of the raw value. Trigonometric functions do
// not re-wrap their result, angle-ness is not tracked through them.
func Sin[U Unit](u U) float32 {
	return float32(math.Sin(float64(u)))
}

func Cos[U Unit](u U) float32 {
	return float32(math.Cos(float64(u)))
}

func Tan[U Unit](u U) float32 {
	return float32(math.Tan(float64(u)))
}

// IsFinite returns true if u is neither NaN nor infinite.
func IsFinite[U Unit](u U) bool {
	f := float64(u)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNormal returns true if u is neither zero, infinite, subnormal nor
// NaN.
func IsNormal[U Unit](u U) bool {
	if IsFinite(u) == false || u == 0 {
		return false
	}
	return math.Abs(float64(u)) >= smallestNormal
}

const smallestNormal = 0x1p-126

func IsNaN[U Unit](u U) bool {
	return math.IsNaN(float64(u))
}

// IsSignNegative returns true if the sign bit is set, including for
// -0 and negative NaN.
func IsSignNegative[U Unit](u U) bool {
	return math.Signbit(float64(u))
}

func IsSignPositive[U Unit](u U) bool {
	return !math.Signbit(float64(u))
}

// Min returns the smaller of a and b. If one of them is NaN, the
// other is returned.
func Min[U Unit](a, b U) U {
	if IsNaN(a) || b < a {
		return b
	}
	return a
}

// Max returns the bigger of a and b. If one of them is NaN, the other
// is returned.
func Max[U Unit](a, b U) U {
	if IsNaN(a) || b > a {
		return b
	}
	return a
}

// MinRef returns the pointer to the smaller value, a on ties.
func MinRef[U Unit](a, b *U) *U {
	if *a > *b {
		return b
	}
	return a
}

// MaxRef returns the pointer to the bigger value, a on ties.
func MaxRef[U Unit](a, b *U) *U {
	if *a < *b {
		return b
	}
	return a
}

// Clamp bounds u to [low;high].
func Clamp[U Unit](u, low, high U) U {
	return Min(Max(u, low), high)
}

// Scale multiplies u by a bare scalar.
func Scale[U Unit](u U, f float32) U {
	return U(float32(u) * f)
}

// Shrink divides u by a bare scalar.
func Shrink[U Unit](u U, f float32) U {
	return U(float32(u) / f)
}

// Ratio divides two values of the same unit, yielding a bare scalar.
func Ratio[U Unit](a, b U) float32 {
	return float32(a) / float32(b)
}

func ScaleBy[U Unit](u U, f Factor) U {
	return U(float32(u) * f.Float32())
}

// Sum adds all values together, returning zero for no values.
func Sum[U Additive](values ...U) U {
	var res U
	for _, v := range values {
		res += v
	}
	return res
}

func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func format[U Unit](u U) string {
	return formatValue(float32(u)) + u.Symbol()
}

func goString(name string, v float32) string {
	return name + "(" + formatValue(v) + ")"
}
