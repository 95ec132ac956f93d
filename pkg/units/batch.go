package units

import (
	"fmt"

	"golang.org/x/exp/slices"
)

func checkLengths(a, b int) error {
	if a != b {
		return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, a, b)
	}
	return nil
}

// AddUnits adds rhs to base index by index.
func AddUnits[U Additive](base, rhs []U) ([]U, error) {
	if err := checkLengths(len(base), len(rhs)); err != nil {
		return nil, err
	}
	res := make([]U, len(base))
	for i := range base {
		res[i] = base[i] + rhs[i]
	}
	return res, nil
}

// SubUnits subtracts rhs from base index by index.
func SubUnits[U Additive](base, rhs []U) ([]U, error) {
	if err := checkLengths(len(base), len(rhs)); err != nil {
		return nil, err
	}
	res := make([]U, len(base))
	for i := range base {
		res[i] = base[i] - rhs[i]
	}
	return res, nil
}

// OffsetPositions moves each position by the distance of the same
// index.
func OffsetPositions[D Unit](positions []Position[D], distances []D) ([]Position[D], error) {
	if err := checkLengths(len(positions), len(distances)); err != nil {
		return nil, err
	}
	res := make([]Position[D], len(positions))
	for i := range positions {
		res[i] = positions[i].Add(distances[i])
	}
	return res, nil
}

// DiffPositions returns end[i] - start[i] for every index.
func DiffPositions[D Unit](start, end []Position[D]) ([]D, error) {
	if err := checkLengths(len(start), len(end)); err != nil {
		return nil, err
	}
	res := make([]D, len(start))
	for i := range start {
		res[i] = end[i].Sub(start[i])
	}
	return res, nil
}

// EqualUnits reports whether a and b have the same length and equal
// values at every index. It stops at the first mismatch.
func EqualUnits[U Unit](a, b []U) bool {
	return slices.Equal(a, b)
}

func EqualPositions[D Unit](a, b []Position[D]) bool {
	return slices.EqualFunc(a, b, func(x, y Position[D]) bool {
		return x.offset == y.offset
	})
}

// PositionsFromOffsets interprets raw distances as positions from the
// origin.
func PositionsFromOffsets[D Unit](offsets []D) []Position[D] {
	res := make([]Position[D], len(offsets))
	for i, o := range offsets {
		res[i] = At(o)
	}
	return res
}

// OffsetsFromPositions returns the distance of each position from the
// origin.
func OffsetsFromPositions[D Unit](positions []Position[D]) []D {
	res := make([]D, len(positions))
	for i, p := range positions {
		res[i] = p.offset
	}
	return res
}
