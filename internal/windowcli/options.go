// Package windowcli parses the windowcount command line.
package windowcli

import (
	"errors"
	"flag"

	"replitools/core/windows"
	"replitools/internal/clibase"
)

// Options holds all windowcount flags.
type Options struct {
	clibase.Common
	FaiFile    string
	EventsFile string
	Window     int
	Slide      int
}

const describe = "count genomic events per sliding window"

// NewFlagSet returns the configured flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, describe)
}

// ParseArgs registers and parses all flags and validates the result.
// Slide defaults to the window size (non-overlapping windows).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.FaiFile, "fai", "", "FASTA index (.fai) with contig sizes [*]")
	fs.StringVar(&opt.EventsFile, "events", "", "event table (contig, position) with header [*]")
	fs.IntVar(&opt.Window, "window", 0, "window size in bases [*]")
	fs.IntVar(&opt.Slide, "slide", 0, "slide step in bases (0 = window size) [0]")
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

	if opt.FaiFile == "" {
		return opt, errors.New("--fai is required")
	}
	if opt.EventsFile == "" {
		return opt, errors.New("--events is required")
	}
	if opt.Slide == 0 {
		opt.Slide = opt.Window
	}
	if err := windows.Validate(opt.Window, opt.Slide); err != nil {
		return opt, err
	}
	return opt, clibase.Validate(&opt.Common)
}
