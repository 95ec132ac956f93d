package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/formicidae-tracker/syunit/internal/profile"
	"github.com/formicidae-tracker/syunit/pkg/motion"
	"github.com/formicidae-tracker/syunit/pkg/units"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type MoveCommand struct {
	Profile flags.Filename `long:"profile" short:"p" description:"machine profile to use, defaults to the user profile"`
	Period  float32        `long:"period" description:"sampling period in seconds, no sampling if 0" default:"0"`
	Output  flags.Filename `long:"output" short:"o" description:"file to save samples to, existing files are never overwritten"`
	Args    struct {
		From string `positional-arg-name:"from"`
		To   string `positional-arg-name:"to"`
	} `positional-args:"yes" required:"yes"`
}

func (c *MoveCommand) profilePath() string {
	if len(c.Profile) == 0 {
		return profile.DefaultPath()
	}
	return string(c.Profile)
}

func (c *MoveCommand) Execute(args []string) (err error) {
	_, span := otel.Tracer(instrumentationName).Start(context.Background(),
		"syunit/Move")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, "syunit error")
			span.RecordError(err)
		}
		span.End()
	}()

	p, err := profile.Read(c.profilePath(), os.Stderr)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("system", string(p.System)))

	switch p.System {
	case profile.MetricMM:
		return runMove(c, p, units.MetricMM{})
	case profile.Rotary:
		return runMove(c, p, units.Rotary{})
	}
	return fmt.Errorf("unsupported system '%s'", p.System)
}

func runMove[
	T units.Unit,
	D units.Derivable[T, V],
	V units.Rate[T, D, A],
	A units.Accelerating[T, V, J, I, F],
	J units.Integrable[T, A],
	F units.ForceOf[I, A],
	I units.InertiaOf[A, F],
](c *MoveCommand, p *profile.Profile, set units.UnitSet[T, D, V, A, J, F, I]) error {
	axis, err := profile.NewAxis(p, set)
	if err != nil {
		return err
	}
	from, err := units.ParsePosition[D](c.Args.From)
	if err != nil {
		return err
	}
	to, err := units.ParsePosition[D](c.Args.To)
	if err != nil {
		return err
	}

	move := axis.Move(from, to)
	motor := move.Direction()
	if p.Direction == units.CCW {
		motor = motor.Reversed()
	}
	logrus.WithFields(logrus.Fields{
		"system":      set.Name(),
		"speed-limit": p.Limit(),
		"accel-time":  axis.AccelerationTime(),
	}).Info("planned move")

	fmt.Fprintf(stdout, "move:      %s\n", move)
	fmt.Fprintf(stdout, "phases:    %s accel, %s cruise\n", move.Accel, move.Cruise)
	fmt.Fprintf(stdout, "direction: %s (signal %d)\n", motor, motor.U8())
	fmt.Fprintf(stdout, "force:     %s\n", axis.RequiredForce())

	if c.Period <= 0 {
		return nil
	}
	period := T(c.Period)
	samples := move.Samples(period)
	if samples == nil {
		if units.IsFinite(move.Duration()) == false {
			return fmt.Errorf("move from %s to %s never ends", from, to)
		}
		return fmt.Errorf("sampling a %s move every %s needs more than %d samples",
			move.Duration(), period, motion.MaxSamples)
	}

	var out io.Writer = stdout
	if len(c.Output) > 0 {
		f, name, err := profile.CreateFileWithoutOverwrite(string(c.Output))
		if err != nil {
			return err
		}
		defer f.Close()
		logrus.WithField("file", name).Info("saving samples")
		out = f
	}
	fmt.Fprintf(out, "# time position velocity\n")
	for _, s := range samples {
		fmt.Fprintf(out, "%s %s %s\n", s.Time, s.Position, s.Velocity)
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("move",
		"plans a move",
		"plans a move between two positions with the limits of a machine profile",
		&MoveCommand{})
	if err != nil {
		panic(err.Error())
	}
}
