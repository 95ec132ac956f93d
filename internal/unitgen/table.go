// Package unitgen reads the unit table describing the unit types and
// their relations, and renders the corresponding Go source.
package unitgen

import (
	"errors"
	"fmt"
	"go/token"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

type UnitDef struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Doc    string `yaml:"doc,omitempty"`
}

// Ladder is a chain of units where each rung is the rate of change of
// the previous one over Time.
type Ladder struct {
	Time  string   `yaml:"time"`
	Rungs []string `yaml:"rungs"`
}

// Triangle relates a force, an inertia and an acceleration:
// force = inertia * acceleration * factor.
type Triangle struct {
	Force        string  `yaml:"force"`
	Inertia      string  `yaml:"inertia"`
	Acceleration string  `yaml:"acceleration"`
	Factor       float64 `yaml:"factor,omitempty"`
}

// Radial relates a rotary unit to a linear one through a radius:
// linear = rotary * radius.
type Radial struct {
	Rotary string `yaml:"rotary"`
	Linear string `yaml:"linear"`
	Radius string `yaml:"radius"`
}

type Table struct {
	Package   string     `yaml:"package"`
	Units     []UnitDef  `yaml:"units"`
	Ladders   []Ladder   `yaml:"ladders"`
	Triangles []Triangle `yaml:"triangles"`
	Radials   []Radial   `yaml:"radials"`
}

func ParseTable(data []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.UnmarshalStrict(data, t); err != nil {
		return nil, err
	}
	for i := range t.Triangles {
		if t.Triangles[i].Factor == 0.0 {
			t.Triangles[i].Factor = 1.0
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func ReadTable(filename string) (*Table, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("invalid unit table '%s': %w", filename, err)
	}
	return t, nil
}

type methodKey struct {
	receiver, name string
}

type validator struct {
	units   map[string]bool
	methods map[methodKey]bool
	rates   map[string]string
	errs    []error
}

func (v *validator) errorf(format string, args ...interface{}) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) checkUnit(context, name string) {
	if v.units[name] == false {
		v.errorf("%s: unknown unit '%s'", context, name)
	}
}

// checkRateCycles reports rates that lead back to their own unit
// through several ladders. A unit has at most one rate, so following
// it either ends or loops.
func (v *validator) checkRateCycles(ladders []Ladder) {
	reported := make(map[string]bool)
	for _, l := range ladders {
		for _, start := range l.Rungs {
			if reported[start] == true {
				continue
			}
			cur, ok := v.rates[start]
			for steps := 0; ok == true && cur != start && steps < len(v.rates); steps++ {
				cur, ok = v.rates[cur]
			}
			if ok == false || cur != start {
				continue
			}
			cycle := []string{start}
			for u := v.rates[start]; u != start; u = v.rates[u] {
				cycle = append(cycle, u)
			}
			for _, u := range cycle {
				reported[u] = true
			}
			v.errorf("ladders: rates form a cycle %s -> %s", strings.Join(cycle, " -> "), start)
		}
	}
}

func (v *validator) declare(context, receiver, method string) {
	k := methodKey{receiver, method}
	if v.methods[k] == true {
		v.errorf("%s: %s.%s is already declared", context, receiver, method)
	}
	v.methods[k] = true
}

// Validate checks that every relation references declared units, that
// ladders are acyclic, alone and together, and that no two relations declare the same
// method on a unit.
func (t *Table) Validate() error {
	v := &validator{
		units:   make(map[string]bool),
		methods: make(map[methodKey]bool),
		rates:   make(map[string]string),
	}

	if token.IsIdentifier(t.Package) == false {
		v.errorf("invalid package name '%s'", t.Package)
	}

	for _, u := range t.Units {
		if token.IsExported(u.Name) == false || token.IsIdentifier(u.Name) == false {
			v.errorf("unit '%s': name must be an exported identifier", u.Name)
		}
		if v.units[u.Name] == true {
			v.errorf("unit '%s' is declared twice", u.Name)
		}
		v.units[u.Name] = true
	}

	for i, l := range t.Ladders {
		context := fmt.Sprintf("ladders[%d]", i)
		v.checkUnit(context, l.Time)
		if len(l.Rungs) < 2 {
			v.errorf("%s: needs at least two rungs", context)
		}
		seen := map[string]bool{l.Time: true}
		for _, r := range l.Rungs {
			v.checkUnit(context, r)
			if seen[r] == true {
				v.errorf("%s: '%s' appears twice, ladder must be acyclic", context, r)
			}
			seen[r] = true
		}
		for j := 1; j < len(l.Rungs); j++ {
			v.declare(context, l.Rungs[j-1], "Per")
			v.declare(context, l.Rungs[j-1], "At")
			v.declare(context, l.Rungs[j], "Over")
			if _, ok := v.rates[l.Rungs[j-1]]; ok == false {
				v.rates[l.Rungs[j-1]] = l.Rungs[j]
			}
		}
	}
	v.checkRateCycles(t.Ladders)

	for i, tr := range t.Triangles {
		context := fmt.Sprintf("triangles[%d]", i)
		v.checkUnit(context, tr.Force)
		v.checkUnit(context, tr.Inertia)
		v.checkUnit(context, tr.Acceleration)
		if tr.Factor <= 0.0 {
			v.errorf("%s: factor must be strictly positive", context)
		}
		v.declare(context, tr.Force, "DivInertia")
		v.declare(context, tr.Force, "DivAcceleration")
		v.declare(context, tr.Inertia, "MulAcceleration")
		v.declare(context, tr.Acceleration, "MulInertia")
	}

	for i, r := range t.Radials {
		context := fmt.Sprintf("radials[%d]", i)
		v.checkUnit(context, r.Rotary)
		v.checkUnit(context, r.Linear)
		v.checkUnit(context, r.Radius)
		v.declare(context, r.Rotary, "Linear")
		v.declare(context, r.Linear, "Rotary")
	}

	return errors.Join(v.errs...)
}
