package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Verbose []bool `long:"verbose" short:"v" description:"enable verbose output, repeat for more"`
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)

const instrumentationName = "github.com/formicidae-tracker/syunit/cmd/syunit"

var stdout io.Writer = os.Stdout

func setUpLogging() {
	switch len(opts.Verbose) {
	case 0:
		logrus.SetLevel(logrus.WarnLevel)
	case 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func Execute() error {
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		setUpLogging()
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}
	_, err := parser.Parse()
	return err
}

func main() {
	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			io.WriteString(stdout, ferr.Message+"\n")
			return
		}
		logrus.WithError(err).Error("syunit failed")
		os.Exit(1)
	}
}
