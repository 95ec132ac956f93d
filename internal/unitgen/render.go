package unitgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

type rung struct {
	Quantity, Rate, Time string
}

type renderData struct {
	Source    string
	Package   string
	Units     []UnitDef
	Rungs     []rung
	Triangles []Triangle
	Radials   []Radial
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 32)
}

var funcs = template.FuncMap{
	"factor": formatFactor,
}

var unitTemplate = template.Must(template.New("units").Funcs(funcs).Parse(`// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{range .Units}}
// {{.Name}} represents {{.Doc}} ({{.Symbol}}).
type {{.Name}} float32

func ({{.Name}}) Symbol() string { return "{{.Symbol}}" }

func (u {{.Name}}) String() string { return format(u) }

func (u {{.Name}}) GoString() string { return goString("{{.Name}}", float32(u)) }
{{end}}
{{- range .Rungs}}
// Per returns the rate of change q / t.
func (q {{.Quantity}}) Per(t {{.Time}}) {{.Rate}} {
	return {{.Rate}}(float32(q) / float32(t))
}

// At returns the time needed to cover q at rate r.
func (q {{.Quantity}}) At(r {{.Rate}}) {{.Time}} {
	return {{.Time}}(float32(q) / float32(r))
}

// Over returns the quantity accumulated at rate r during t.
func (r {{.Rate}}) Over(t {{.Time}}) {{.Quantity}} {
	return {{.Quantity}}(float32(r) * float32(t))
}
{{end}}
{{- range .Triangles}}
// DivInertia returns the acceleration f produces on i.
func (f {{.Force}}) DivInertia(i {{.Inertia}}) {{.Acceleration}} {
	return {{.Acceleration}}(float32(f) / float32(i){{if ne .Factor 1.0}} / {{factor .Factor}}{{end}})
}

// DivAcceleration returns the inertia f accelerates at a.
func (f {{.Force}}) DivAcceleration(a {{.Acceleration}}) {{.Inertia}} {
	return {{.Inertia}}(float32(f) / float32(a){{if ne .Factor 1.0}} / {{factor .Factor}}{{end}})
}

// MulAcceleration returns the force needed to accelerate i at a.
func (i {{.Inertia}}) MulAcceleration(a {{.Acceleration}}) {{.Force}} {
	return {{.Force}}(float32(i) * float32(a){{if ne .Factor 1.0}} * {{factor .Factor}}{{end}})
}

// MulInertia returns the force needed to accelerate i at a.
func (a {{.Acceleration}}) MulInertia(i {{.Inertia}}) {{.Force}} {
	return {{.Force}}(float32(a) * float32(i){{if ne .Factor 1.0}} * {{factor .Factor}}{{end}})
}
{{end}}
{{- range .Radials}}
// Linear returns the linear equivalent of r at the given radius.
func (r {{.Rotary}}) Linear(radius {{.Radius}}) {{.Linear}} {
	return {{.Linear}}(float32(r) * float32(radius))
}

// Rotary returns the rotary equivalent of l at the given radius.
func (l {{.Linear}}) Rotary(radius {{.Radius}}) {{.Rotary}} {
	return {{.Rotary}}(float32(l) / float32(radius))
}
{{end}}`))

// Render produces the gofmt-ed Go source declaring the units and
// relations of t. source is the name of the table file, quoted in the
// generated header.
func Render(t *Table, source string) ([]byte, error) {
	data := renderData{
		Source:    source,
		Package:   t.Package,
		Units:     t.Units,
		Triangles: t.Triangles,
		Radials:   t.Radials,
	}
	for _, l := range t.Ladders {
		for i := 1; i < len(l.Rungs); i++ {
			data.Rungs = append(data.Rungs, rung{
				Quantity: l.Rungs[i-1],
				Rate:     l.Rungs[i],
				Time:     l.Time,
			})
		}
	}

	buf := bytes.NewBuffer(nil)
	if err := unitTemplate.Execute(buf, data); err != nil {
		return nil, err
	}
	res, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code is invalid: %w", err)
	}
	return res, nil
}
