// Package genbankapp wires the bed2genbank pipeline: FASTA contigs plus
// BED annotations in, GenBank records out, optionally sliced to a region.
package genbankapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"replitools/core/bedfeat"
	"replitools/core/genbank"
	"replitools/core/tabular"
	"replitools/internal/cmdutil"
	"replitools/internal/genbankcli"
	"replitools/internal/logutil"
	"replitools/internal/version"
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := genbankcli.NewFlagSet("bed2genbank")
	fs.SetOutput(io.Discard)

	opts, err := genbankcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cmdutil.ReplayUsage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ReplayUsage(fs, outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bed2genbank version %s\n", version.Version)
		return 0
	}

	logger := logutil.New(stderr, opts.Quiet)

	recs, byName, err := readFasta(opts.FastaFile)
	if err != nil {
		logger.Error(err)
		return 2
	}

	entries, skipped, err := bedfeat.Load(opts.BedFile, logger.Warnf)
	if err != nil {
		logger.Error(err)
		return 2
	}
	for _, e := range entries {
		rec, ok := byName[e.Chrom]
		if !ok {
			logger.Warnf("contig %q not in FASTA; skipping feature", e.Chrom)
			skipped++
			continue
		}
		rec.Features = append(rec.Features, e.Feature)
	}
	if skipped > 0 {
		logger.Warnf("skipped %d annotation rows", skipped)
	}
	if ctx.Err() != nil {
		return 130
	}

	if opts.Region != "" {
		reg, _ := genbankcli.ParseRegion(opts.Region)
		rec, ok := byName[reg.Contig]
		if !ok {
			logger.Errorf("region %s: %v", opts.Region, tabular.ErrMissingContig)
			return 2
		}
		recs = []*genbank.Record{rec.Slice(reg.Start, reg.End)}
	}

	out, closeOut, err := cmdutil.OpenOutput(opts.Output, outw)
	if err != nil {
		logger.Error(err)
		return 3
	}
	if err := genbank.Write(out, recs); err != nil {
		logger.Error(err)
		return 3
	}
	if err := closeOut(); err != nil {
		logger.Error(err)
		return 3
	}

	if opts.Region != "" {
		logger.Infof("extracted region %s to %s", opts.Region, opts.Output)
	} else {
		names := make([]string, len(recs))
		for i, r := range recs {
			names[i] = r.Name
		}
		logger.Infof("wrote %d records (%s) to %s", len(recs), strings.Join(names, ", "), opts.Output)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
