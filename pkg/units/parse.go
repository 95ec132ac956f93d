package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a unit value from its textual form. It accepts any
// float literal understood by strconv.ParseFloat, optionally followed
// by the unit symbol, so that String() output parses back.
func Parse[U Unit](s string) (U, error) {
	var zero U
	v, err := parseValue(s, zero.Symbol())
	if err != nil {
		return zero, &ParseError{Type: typeName(zero), Input: s, Err: err}
	}
	return U(v), nil
}

// MustParse is like Parse but panics on error. It is intended for
// literals in tests and static tables.
func MustParse[U Unit](s string) U {
	u, err := Parse[U](s)
	if err != nil {
		panic(err.Error())
	}
	return u
}

func parseValue(s, symbol string) (float32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && len(symbol) > 0 && strings.HasSuffix(s, symbol) {
		// "NaN" must not lose its last rune to a "N" symbol.
		v, err = strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, symbol)), 32)
	}
	if err == nil {
		return float32(v), nil
	}
	var nerr *strconv.NumError
	if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
		return 0, ErrOutOfRange
	}
	return 0, ErrSyntax
}

func typeName(v any) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
