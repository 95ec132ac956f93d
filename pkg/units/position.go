package units

import (
	"encoding/json"
	"fmt"
)

// Position is an absolute location along the dimension of D, stored as
// its offset D from the origin. Positions do not add to each other:
// subtracting two of them yields a D, and only a D can move a
// Position.
type Position[D Unit] struct {
	offset D
}

type (
	PositionMM  = Position[Millimeters]
	PositionRad = Position[Radians]
)

// At returns the position located at d from the origin.
func At[D Unit](d D) Position[D] {
	return Position[D]{offset: d}
}

// Diff returns the distance to travel from start to end.
func Diff[D Unit](start, end Position[D]) D {
	return end.Sub(start)
}

// Offset returns the distance between the origin and p.
func (p Position[D]) Offset() D {
	return p.offset
}

func (p Position[D]) Float32() float32 {
	return float32(p.offset)
}

// Sub returns the distance from o to p.
func (p Position[D]) Sub(o Position[D]) D {
	return p.offset - o.offset
}

// Add returns p moved by d.
func (p Position[D]) Add(d D) Position[D] {
	return Position[D]{offset: p.offset + d}
}

// Minus returns p moved back by d.
func (p Position[D]) Minus(d D) Position[D] {
	return Position[D]{offset: p.offset - d}
}

func (p *Position[D]) AddAssign(d D) {
	p.offset += d
}

func (p *Position[D]) SubAssign(d D) {
	p.offset -= d
}

func (p Position[D]) Neg() Position[D] {
	return Position[D]{offset: -p.offset}
}

func (p Position[D]) Abs() Position[D] {
	return Position[D]{offset: Abs(p.offset)}
}

func (p Position[D]) Scale(f float32) Position[D] {
	return Position[D]{offset: Scale(p.offset, f)}
}

func (p Position[D]) ScaleBy(f Factor) Position[D] {
	return Position[D]{offset: ScaleBy(p.offset, f)}
}

func (p Position[D]) IsFinite() bool {
	return IsFinite(p.offset)
}

func (p Position[D]) IsNaN() bool {
	return IsNaN(p.offset)
}

func (p Position[D]) Less(o Position[D]) bool {
	return p.offset < o.offset
}

func (p Position[D]) Min(o Position[D]) Position[D] {
	return Position[D]{offset: Min(p.offset, o.offset)}
}

func (p Position[D]) Max(o Position[D]) Position[D] {
	return Position[D]{offset: Max(p.offset, o.offset)}
}

func (p Position[D]) String() string {
	return p.offset.String()
}

func (p Position[D]) GoString() string {
	return goString("Position["+typeName(p.offset)+"]", float32(p.offset))
}

// ParsePosition reads a position from the textual form of its offset.
func ParsePosition[D Unit](s string) (Position[D], error) {
	d, err := Parse[D](s)
	if err != nil {
		return Position[D]{}, err
	}
	return At(d), nil
}

func (p Position[D]) MarshalYAML() (interface{}, error) {
	return float32(p.offset), nil
}

func (p *Position[D]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v float32
	if err := unmarshal(&v); err != nil {
		return err
	}
	p.offset = D(v)
	return nil
}

func (p Position[D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(float32(p.offset))
}

func (p *Position[D]) UnmarshalJSON(data []byte) error {
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	p.offset = D(v)
	return nil
}
