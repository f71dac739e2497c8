// Package pauseforkcli parses the pausefork command line.
package pauseforkcli

import (
	"errors"
	"flag"

	"replitools/internal/clibase"
)

// Options holds all pausefork flags.
type Options struct {
	clibase.Common
	PauseFile  string
	LeftForks  string
	RightForks string
}

const describe = "annotate pause sites with replication-fork coordinates"

// NewFlagSet returns the configured flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, describe)
}

// ParseArgs registers and parses all flags and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.PauseFile, "pauses", "", "pause table with detectIndex and pauseSite columns [*]")
	fs.StringVar(&opt.LeftForks, "left-forks", "", "left-moving fork table, 8 columns, no header [*]")
	fs.StringVar(&opt.RightForks, "right-forks", "", "right-moving fork table, 8 columns, no header [*]")
	clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.PauseFile == "" {
		return opt, errors.New("--pauses is required")
	}
	if opt.LeftForks == "" {
		return opt, errors.New("--left-forks is required")
	}
	if opt.RightForks == "" {
		return opt, errors.New("--right-forks is required")
	}
	return opt, clibase.Validate(&opt.Common)
}
