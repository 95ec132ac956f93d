package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/formicidae-tracker/syunit/internal/unitgen"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Input   flags.Filename `long:"input" short:"i" description:"unit table to read" default:"units.yaml"`
	Output  flags.Filename `long:"output" short:"o" description:"go file to write, stdout if empty"`
	Verbose []bool         `long:"verbose" short:"v" description:"enable verbose output"`
}

func Execute() error {
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}
	if len(opts.Verbose) > 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}

	log := logrus.WithField("group", "unitgen")

	table, err := unitgen.ReadTable(string(opts.Input))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":     opts.Input,
		"units":     len(table.Units),
		"ladders":   len(table.Ladders),
		"triangles": len(table.Triangles),
		"radials":   len(table.Radials),
	}).Debug("read unit table")

	src, err := unitgen.Render(table, filepath.Base(string(opts.Input)))
	if err != nil {
		return fmt.Errorf("could not render '%s': %w", opts.Input, err)
	}

	if len(opts.Output) == 0 {
		_, err = os.Stdout.Write(src)
		return err
	}

	if err := ioutil.WriteFile(string(opts.Output), src, 0644); err != nil {
		return fmt.Errorf("could not write '%s': %w", opts.Output, err)
	}
	log.WithField("output", opts.Output).Info("generated units")
	return nil
}

func main() {
	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			return
		}
		logrus.WithError(err).Error("unitgen failed")
		os.Exit(1)
	}
}
