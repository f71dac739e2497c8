// Package tabular holds the error taxonomy and the unset sentinel shared by
// the flat-table loaders and writers.
package tabular

import "errors"

// Unset marks a cell whose value was never assigned. It is written verbatim
// to output tables and is distinct from every valid coordinate and strand.
const Unset = "NA"

var (
	// ErrParse reports a non-numeric coordinate field.
	ErrParse = errors.New("unparseable numeric field")
	// ErrMissingColumn reports a required column absent from a header row.
	ErrMissingColumn = errors.New("required column missing")
	// ErrMalformedRow reports a data row with too few columns.
	ErrMalformedRow = errors.New("malformed row")
	// ErrMissingContig reports a contig referenced but absent from the reference.
	ErrMissingContig = errors.New("contig not in reference")
)
