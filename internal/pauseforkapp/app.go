// Package pauseforkapp wires the pausefork pipeline: load both fork tables
// and the pause table, match, synthesize orphan forks, write one TSV.
package pauseforkapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"replitools/core/forkmatch"
	"replitools/core/forktable"
	"replitools/core/pausetable"
	"replitools/internal/cmdutil"
	"replitools/internal/logutil"
	"replitools/internal/pauseforkcli"
	"replitools/internal/version"
	"replitools/internal/writers"
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := pauseforkcli.NewFlagSet("pausefork")
	fs.SetOutput(io.Discard)

	opts, err := pauseforkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cmdutil.ReplayUsage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ReplayUsage(fs, outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pausefork version %s\n", version.Version)
		return 0
	}

	logger := logutil.New(stderr, opts.Quiet)

	left, err := forktable.Load(opts.LeftForks, forktable.Left)
	if err != nil {
		logger.Error(err)
		return 2
	}
	right, err := forktable.Load(opts.RightForks, forktable.Right)
	if err != nil {
		logger.Error(err)
		return 2
	}
	pauses, err := pausetable.Load(opts.PauseFile)
	if err != nil {
		logger.Error(err)
		return 2
	}
	if ctx.Err() != nil {
		return 130
	}

	matched, dropped := forkmatch.Annotate(pauses, left, right)
	used := forkmatch.UsedKeys(matched)
	orphans := forkmatch.Orphans(left, right, used)

	out, closeOut, err := cmdutil.OpenOutput(opts.Output, outw)
	if err != nil {
		logger.Error(err)
		return 3
	}

	idxPos := pauses.DetectIndexPos()
	in, done := writers.StartTSV(out, outputColumns(pauses.Columns), 64)
	for _, r := range matched {
		in <- renderRow(pauses.Columns, idxPos, r)
	}
	for _, r := range orphans {
		in <- renderRow(pauses.Columns, idxPos, r)
	}
	close(in)

	if werr := <-done; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		logger.Error(werr)
		return 3
	}
	if err := closeOut(); err != nil {
		logger.Error(err)
		return 3
	}

	logger.Infof("skipped %d pause records with no fork overlap", dropped)
	logger.Infof("wrote %d rows (%d matched, %d synthesized) to %s",
		len(matched)+len(orphans), len(matched), len(orphans), opts.Output)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
