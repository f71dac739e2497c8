// Package forktable loads replication-fork interval tables.
package forktable

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"replitools/core/tabular"
)

// Direction tags every interval of a fork table: L for the left-fork file,
// R for the right-fork file.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
)

// ForkInterval is one row of a fork table. Start ≤ End; a zero-length
// interval (Start == End) is a valid, degenerate match target.
type ForkInterval struct {
	ReadID    string
	Contig    string
	Start     int
	End       int
	Strand    string // "+", "-", or tabular.Unset
	ReadStart int
	ReadEnd   int
	Direction Direction
}

// Load parses a headerless, whitespace-delimited fork table. Columns:
// contig, start, end, readID, contig (repeated), readStart, readEnd, strand
// code. Non-numeric start/end is fatal; no rows are filtered. File order is
// preserved, which the matcher relies on for its first-match tie-break.
func Load(path string, dir Direction) ([]ForkInterval, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []ForkInterval
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 8 {
			return nil, fmt.Errorf("%s:%d bad field count (%d < 8): %w", path, ln, len(f), tabular.ErrMalformedRow)
		}
		iv := ForkInterval{
			Contig:    f[0],
			ReadID:    f[3],
			Strand:    mapStrand(f[7]),
			Direction: dir,
		}
		if iv.Start, err = strconv.Atoi(f[1]); err != nil {
			return nil, fmt.Errorf("%s:%d bad fork start %q: %w", path, ln, f[1], tabular.ErrParse)
		}
		if iv.End, err = strconv.Atoi(f[2]); err != nil {
			return nil, fmt.Errorf("%s:%d bad fork end %q: %w", path, ln, f[2], tabular.ErrParse)
		}
		if iv.ReadStart, err = strconv.Atoi(f[5]); err != nil {
			return nil, fmt.Errorf("%s:%d bad read start %q: %w", path, ln, f[5], tabular.ErrParse)
		}
		if iv.ReadEnd, err = strconv.Atoi(f[6]); err != nil {
			return nil, fmt.Errorf("%s:%d bad read end %q: %w", path, ln, f[6], tabular.ErrParse)
		}
		list = append(list, iv)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func mapStrand(code string) string {
	switch code {
	case "fwd":
		return "+"
	case "rev":
		return "-"
	}
	return tabular.Unset
}
