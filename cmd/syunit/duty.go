package main

import (
	"context"
	"fmt"
	"io"

	"github.com/formicidae-tracker/syunit/pkg/units"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// textPWM is a PWM output printing the duties it is set to.
type textPWM struct {
	max    uint16
	factor units.Factor
	out    io.Writer
}

func (p *textPWM) MaxDuty() uint16 {
	return p.max
}

func (p *textPWM) SetDuty(duty uint16) error {
	_, err := fmt.Fprintf(p.out, "%s -> %d/%d\n", p.factor, duty, p.max)
	return err
}

type DutyCommand struct {
	Max  uint16 `long:"max" short:"m" description:"maximal duty of the output" default:"65535"`
	Args struct {
		Factors []string `positional-arg-name:"factor"`
	} `positional-args:"yes" required:"yes"`
}

func (c *DutyCommand) Execute(args []string) (err error) {
	_, span := otel.Tracer(instrumentationName).Start(context.Background(),
		"syunit/Duty")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, "syunit error")
			span.RecordError(err)
		}
		span.End()
	}()

	pwm := &textPWM{max: c.Max, out: stdout}
	for _, s := range c.Args.Factors {
		f, err := units.ParseFactor(s)
		if err != nil {
			return err
		}
		pwm.factor = f
		if err := units.ApplyDuty(pwm, f); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("duty",
		"converts factors to PWM duties",
		"converts factors in [0;1] to the duty of a PWM output, rounded to the nearest integer",
		&DutyCommand{})
	if err != nil {
		panic(err.Error())
	}
}
