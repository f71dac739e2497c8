// Package pausetable loads pause-site tables: whitespace-delimited, one
// header row, optional #-comment lines before or after the header.
package pausetable

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"replitools/core/tabular"
)

// Column names the loader requires in the header row.
const (
	DetectIndexCol = "detectIndex"
	PauseSiteCol   = "pauseSite"
)

// Record is one pause row. Values holds every original column in header
// order; DetectIndex, ReadID and PauseSite are typed views into it.
type Record struct {
	DetectIndex string
	ReadID      string // first underscore field of DetectIndex
	PauseSite   int
	Values      []string
}

// Table is a fully materialized pause file.
type Table struct {
	Columns []string
	Records []Record
}

// Load reads a pause table. Missing required columns and unparseable
// pauseSite values are fatal: silently dropping a pause record would break
// the one-output-per-fork guarantee downstream.
func Load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	t := &Table{}
	idxCol, siteCol := -1, -1
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if t.Columns == nil {
			t.Columns = f
			for i, c := range f {
				switch c {
				case DetectIndexCol:
					idxCol = i
				case PauseSiteCol:
					siteCol = i
				}
			}
			if idxCol < 0 {
				return nil, fmt.Errorf("%s: no %s column: %w", path, DetectIndexCol, tabular.ErrMissingColumn)
			}
			if siteCol < 0 {
				return nil, fmt.Errorf("%s: no %s column: %w", path, PauseSiteCol, tabular.ErrMissingColumn)
			}
			continue
		}
		if len(f) < len(t.Columns) {
			return nil, fmt.Errorf("%s:%d bad field count (%d < %d): %w", path, ln, len(f), len(t.Columns), tabular.ErrMalformedRow)
		}
		r := Record{DetectIndex: f[idxCol], Values: f}
		if r.PauseSite, err = strconv.Atoi(f[siteCol]); err != nil {
			return nil, fmt.Errorf("%s:%d bad pauseSite %q: %w", path, ln, f[siteCol], tabular.ErrParse)
		}
		r.ReadID = strings.SplitN(r.DetectIndex, "_", 2)[0]
		if r.ReadID == "" {
			return nil, fmt.Errorf("%s:%d empty read ID in detectIndex %q", path, ln, r.DetectIndex)
		}
		t.Records = append(t.Records, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("%s: no header row: %w", path, tabular.ErrMissingColumn)
	}
	return t, nil
}

// DetectIndexPos returns the position of the detectIndex column.
func (t *Table) DetectIndexPos() int {
	for i, c := range t.Columns {
		if c == DetectIndexCol {
			return i
		}
	}
	return -1
}
