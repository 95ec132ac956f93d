package main

import (
	"fmt"

	"github.com/formicidae-tracker/syunit/internal/profile"
)

type VersionCommand struct {
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintf(stdout, "syunit version %s\n", profile.SYUNIT_VERSION)
	return nil
}

func init() {
	_, err := parser.AddCommand("version",
		"print version",
		"prints version on stdout",
		&VersionCommand{})
	if err != nil {
		panic(err.Error())
	}
}
