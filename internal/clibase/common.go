// Package clibase holds the CLI fields and flags shared by every tool.
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"replitools/internal/version"
)

// Common is the flag surface every tool carries.
type Common struct {
	Output  string
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", "", "output file path, '-' for stdout [*]")
	fs.StringVar(&c.Output, "o", "", "alias of --output")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings and status messages [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
}

// Validate applies the shared invariants.
func Validate(c *Common) error {
	if c.Output == "" {
		return errors.New("--output is required")
	}
	return nil
}

// NewFlagSet returns a ContinueOnError flag set whose usage prints the
// standard banner for name with its one-line description.
func NewFlagSet(name, describe string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Version: %s

Usage of %s:
`, name, describe, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
