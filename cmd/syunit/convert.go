package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/formicidae-tracker/syunit/internal/profile"
	"github.com/formicidae-tracker/syunit/pkg/units"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type converter func(s string, radius units.Millimeters) (from, to fmt.Stringer, err error)

func convertWith[A, B units.Unit](f func(A, units.Millimeters) B) converter {
	return func(s string, radius units.Millimeters) (fmt.Stringer, fmt.Stringer, error) {
		a, err := units.Parse[A](s)
		if err != nil {
			return nil, nil, err
		}
		return a, f(a, radius), nil
	}
}

type conversion struct {
	convert     converter
	needsRadius bool
}

var conversions = map[string]conversion{
	"in-mm": {convert: convertWith(func(v units.Inches, _ units.Millimeters) units.Millimeters {
		return units.InchesToMillimeters.To(v)
	})},
	"mm-in": {convert: convertWith(func(v units.Millimeters, _ units.Millimeters) units.Inches {
		return units.InchesToMillimeters.From(v)
	})},
	"deg-rad": {convert: convertWith(func(v units.Degrees, _ units.Millimeters) units.Radians {
		return units.DegreesToRadians.To(v)
	})},
	"rad-deg": {convert: convertWith(func(v units.Radians, _ units.Millimeters) units.Degrees {
		return units.DegreesToRadians.From(v)
	})},
	"rad-mm":         {convert: convertWith(units.Radians.Linear), needsRadius: true},
	"mm-rad":         {convert: convertWith(units.Millimeters.Rotary), needsRadius: true},
	"rad/s-mm/s":     {convert: convertWith(units.RadPerSecond.Linear), needsRadius: true},
	"mm/s-rad/s":     {convert: convertWith(units.MMPerSecond.Rotary), needsRadius: true},
	"rad/s^2-mm/s^2": {convert: convertWith(units.RadPerSecond2.Linear), needsRadius: true},
	"mm/s^2-rad/s^2": {convert: convertWith(units.MMPerSecond2.Rotary), needsRadius: true},
	"rad/s^3-mm/s^3": {convert: convertWith(units.RadPerSecond3.Linear), needsRadius: true},
	"mm/s^3-rad/s^3": {convert: convertWith(units.MMPerSecond3.Rotary), needsRadius: true},
}

type ConversionName string

func (n *ConversionName) Complete(match string) []flags.Completion {
	res := make([]flags.Completion, 0, len(conversions))
	for name, c := range conversions {
		if strings.HasPrefix(name, match) == false {
			continue
		}
		description := ""
		if c.needsRadius {
			description = "requires a radius"
		}
		res = append(res, flags.Completion{Item: name, Description: description})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Item < res[j].Item })
	return res
}

func conversionNames() string {
	names := make([]string, 0, len(conversions))
	for name := range conversions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type ConvertCommand struct {
	Radius  float32        `long:"radius" short:"r" description:"radius in mm for rotary/linear conversions, defaults to the profile radius"`
	Profile flags.Filename `long:"profile" short:"p" description:"machine profile providing the default radius, defaults to the user profile"`
	Args    struct {
		Conversion ConversionName `positional-arg-name:"conversion"`
		Values     []string       `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ConvertCommand) radius() (units.Millimeters, error) {
	if c.Radius != 0 {
		return units.Millimeters(c.Radius), nil
	}
	path := string(c.Profile)
	if len(path) == 0 {
		path = profile.DefaultPath()
	}
	p, err := profile.Read(path, os.Stderr)
	if err != nil {
		return 0, fmt.Errorf("no --radius and no usable profile: %w", err)
	}
	if p.Radius == 0 {
		return 0, errors.New("no --radius and profile radius is not set")
	}
	logrus.WithFields(logrus.Fields{
		"profile": path,
		"radius":  p.Radius,
	}).Info("using profile radius")
	return p.Radius, nil
}

func (c *ConvertCommand) Execute(args []string) (err error) {
	_, span := otel.Tracer(instrumentationName).Start(context.Background(),
		"syunit/Convert")
	span.SetAttributes(attribute.String("conversion", string(c.Args.Conversion)))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, "syunit error")
			span.RecordError(err)
		}
		span.End()
	}()

	conv, ok := conversions[string(c.Args.Conversion)]
	if ok == false {
		return fmt.Errorf("unknown conversion '%s', available: %s", c.Args.Conversion, conversionNames())
	}

	var radius units.Millimeters
	if conv.needsRadius == true {
		if radius, err = c.radius(); err != nil {
			return err
		}
	}

	for _, v := range c.Args.Values {
		from, to, err := conv.convert(v, radius)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s = %s\n", from, to)
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("convert",
		"converts values between units",
		"converts values between imperial and metric units, degrees and radians, or rotary and linear units through a radius. Available conversions: "+conversionNames(),
		&ConvertCommand{})
	if err != nil {
		panic(err.Error())
	}
}
