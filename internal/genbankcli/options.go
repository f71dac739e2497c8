// Package genbankcli parses the bed2genbank command line.
package genbankcli

import (
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strconv"

	"replitools/internal/clibase"
)

// Options holds all bed2genbank flags.
type Options struct {
	clibase.Common
	FastaFile string
	BedFile   string
	Region    string
}

// ParsedRegion is a decoded chr:start-end slice request.
type ParsedRegion struct {
	Contig string
	Start  int
	End    int
}

const describe = "convert FASTA + BED annotations to GenBank records"

var regionRe = regexp.MustCompile(`^(\S+):(\d+)-(\d+)$`)

// NewFlagSet returns the configured flag set.
func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, describe)
}

// ParseArgs registers and parses all flags and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.FastaFile, "fasta", "", "reference FASTA file [*]")
	fs.StringVar(&opt.BedFile, "bed", "", "BED annotation file [*]")
	fs.StringVar(&opt.Region, "region", "", "restrict output to chr:start-end")
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

	if opt.FastaFile == "" {
		return opt, errors.New("--fasta is required")
	}
	if opt.BedFile == "" {
		return opt, errors.New("--bed is required")
	}
	if opt.Region != "" {
		if _, err := ParseRegion(opt.Region); err != nil {
			return opt, err
		}
	}
	return opt, clibase.Validate(&opt.Common)
}

// ParseRegion parses a chr:start-end string.
func ParseRegion(s string) (ParsedRegion, error) {
	m := regionRe.FindStringSubmatch(s)
	if m == nil {
		return ParsedRegion{}, fmt.Errorf("invalid region %q (expected chr:start-end)", s)
	}
	start, _ := strconv.Atoi(m[2])
	end, _ := strconv.Atoi(m[3])
	if end < start {
		return ParsedRegion{}, fmt.Errorf("invalid region %q: end before start", s)
	}
	return ParsedRegion{Contig: m[1], Start: start, End: end}, nil
}
