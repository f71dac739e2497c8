// Package windowapp wires the windowcount pipeline: contig sizes from a
// FASTA index, an event table, and a sliding-window count per contig.
package windowapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/biogo/hts/fai"

	"replitools/core/windows"
	"replitools/internal/cmdutil"
	"replitools/internal/logutil"
	"replitools/internal/version"
	"replitools/internal/windowcli"
	"replitools/internal/writers"
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := windowcli.NewFlagSet("windowcount")
	fs.SetOutput(io.Discard)

	opts, err := windowcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cmdutil.ReplayUsage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ReplayUsage(fs, outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "windowcount version %s\n", version.Version)
		return 0
	}

	logger := logutil.New(stderr, opts.Quiet)
	if opts.Slide > opts.Window {
		logger.Warnf("slide (%d) exceeds window (%d); windows will leave gaps", opts.Slide, opts.Window)
	}

	contigs, err := readContigs(opts.FaiFile)
	if err != nil {
		logger.Error(err)
		return 2
	}
	events, err := windows.LoadEvents(opts.EventsFile, logger.Warnf)
	if err != nil {
		logger.Error(err)
		return 2
	}
	if ctx.Err() != nil {
		return 130
	}

	out, closeOut, err := cmdutil.OpenOutput(opts.Output, outw)
	if err != nil {
		logger.Error(err)
		return 3
	}

	in, done := writers.StartTSV(out, []string{"contig", "start_window", "end_window", "event_count"}, 64)
	total := 0
	for _, c := range contigs {
		logger.Infof("contig %s: length %d, %d events", c.Name, c.Length, len(events[c.Name]))
		for _, w := range windows.Count([]windows.Contig{c}, events, opts.Window, opts.Slide) {
			in <- []string{w.Contig, strconv.Itoa(w.Start), strconv.Itoa(w.End), strconv.Itoa(w.Count)}
			total++
		}
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

	logger.Infof("wrote %d windows for %d contigs to %s", total, len(contigs), opts.Output)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// readContigs loads contig names and lengths from a samtools faidx index,
// in on-disk order of the indexed FASTA.
func readContigs(path string) ([]windows.Contig, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	idx, err := fai.ReadFrom(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	recs := make([]fai.Record, 0, len(idx))
	for _, r := range idx {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Start < recs[j].Start })

	contigs := make([]windows.Contig, len(recs))
	for i, r := range recs {
		contigs[i] = windows.Contig{Name: r.Name, Length: r.Length}
	}
	return contigs, nil
}
