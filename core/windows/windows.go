// Package windows counts point events per sliding genomic window.
package windows

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"replitools/core/tabular"
)

// Contig is a reference sequence with its length.
type Contig struct {
	Name   string
	Length int
}

// Window is one counted interval [Start,End) on a contig.
type Window struct {
	Contig string
	Start  int
	End    int
	Count  int
}

// LoadEvents reads a header-bearing events table (contig, position, ...).
// Malformed rows are reported through warnf and skipped; position parse
// failures are likewise non-fatal here, per the partial-failure policy of
// the window counter.
func LoadEvents(path string, warnf func(format string, args ...interface{})) (map[string][]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	events := make(map[string][]int)
	sc := bufio.NewScanner(fh)
	ln := 0
	header := true
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			warnf("%s:%d: %v (%d columns); skipping", path, ln, tabular.ErrMalformedRow, len(f))
			continue
		}
		pos, err := strconv.Atoi(f[1])
		if err != nil {
			warnf("%s:%d: %v: position %q; skipping", path, ln, tabular.ErrParse, f[1])
			continue
		}
		events[f[0]] = append(events[f[0]], pos)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Count slides a window of size window by slide across every contig and
// counts events with start ≤ pos < end. The final window of a contig is
// truncated at the contig end.
func Count(contigs []Contig, events map[string][]int, window, slide int) []Window {
	var out []Window
	for _, c := range contigs {
		pos := events[c.Name]
		for start := 0; start < c.Length; start += slide {
			end := start + window
			if end > c.Length {
				end = c.Length
			}
			n := 0
			for _, p := range pos {
				if start <= p && p < end {
					n++
				}
			}
			out = append(out, Window{Contig: c.Name, Start: start, End: end, Count: n})
		}
	}
	return out
}

// Validate applies the shared window/slide invariants.
func Validate(window, slide int) error {
	if window <= 0 {
		return fmt.Errorf("window size must be positive, got %d", window)
	}
	if slide <= 0 {
		return fmt.Errorf("slide size must be positive, got %d", slide)
	}
	return nil
}
