package units

import (
	"encoding/json"
	"fmt"
	"math"
)

// Factor is a unitless scalar bounded to [0;1]. The zero value is a
// valid Factor of 0. Values can only be built through NewFactor,
// TryFactor or ParseFactor, which all enforce the bounds.
type Factor struct {
	v float32
}

var (
	FactorMin  = factor(0.0)
	FactorHalf = factor(0.5)
	FactorMax  = factor(1.0)
)

func factor(v float32) Factor {
	return Factor{v: v}
}

func inFactorRange(v float32) bool {
	return v >= 0.0 && v <= 1.0
}

// NewFactor returns a Factor of value v. It panics if v is not in
// [0;1] (NaN included).
func NewFactor(v float32) Factor {
	f, ok := TryFactor(v)
	if ok == false {
		panic(fmt.Sprintf("factor value %v is out of bounds [0;1]", v))
	}
	return f
}

// TryFactor returns a Factor of value v, or false if v is not in
// [0;1].
func TryFactor(v float32) (Factor, bool) {
	if inFactorRange(v) == false {
		return Factor{}, false
	}
	return factor(v), true
}

// ParseFactor reads a Factor from text. Errors wrap ErrSyntax for
// malformed numbers and ErrOutOfRange for numbers outside of [0;1].
func ParseFactor(s string) (Factor, error) {
	v, err := parseValue(s, "")
	if err == nil && inFactorRange(v) == false {
		err = ErrOutOfRange
	}
	if err != nil {
		return Factor{}, &ParseError{Type: "Factor", Input: s, Err: err}
	}
	return factor(v), nil
}

func (f Factor) Float32() float32 {
	return f.v
}

// Mul returns the product of two factors. The result goes through
// NewFactor like any other runtime value.
func (f Factor) Mul(o Factor) Factor {
	return NewFactor(f.v * o.v)
}

// Duty scales the factor to the full uint16 range.
func (f Factor) Duty() uint16 {
	return f.DutyFor(math.MaxUint16)
}

// DutyFor scales the factor to [0;max], rounding to the nearest
// integer.
func (f Factor) DutyFor(max uint16) uint16 {
	return uint16(math.Round(float64(max) * float64(f.v)))
}

func (f Factor) String() string {
	return formatValue(f.v)
}

func (f Factor) GoString() string {
	return goString("Factor", f.v)
}

func (f Factor) MarshalYAML() (interface{}, error) {
	return f.v, nil
}

func (f *Factor) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v float32
	if err := unmarshal(&v); err != nil {
		return err
	}
	return f.set(v)
}

func (f Factor) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.v)
}

func (f *Factor) UnmarshalJSON(data []byte) error {
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return f.set(v)
}

func (f *Factor) set(v float32) error {
	res, ok := TryFactor(v)
	if ok == false {
		return &ParseError{Type: "Factor", Input: formatValue(v), Err: ErrOutOfRange}
	}
	*f = res
	return nil
}
