// Package genbank models annotated sequence records and serializes them as
// GenBank flat files.
package genbank

import "fmt"

// Qualifier is a single /key=value annotation on a feature.
type Qualifier struct {
	Key   string
	Value string
}

// Feature is an annotation over a record interval. Coordinates are 0-based
// half-open; the writer converts to GenBank's 1-based inclusive form.
type Feature struct {
	Kind       string // gene, tRNA, centromere, repeat_region, misc_feature
	Start      int
	End        int
	Strand     int8 // +1 or -1
	Qualifiers []Qualifier
}

// Record is one contig with its sequence and features.
type Record struct {
	Name       string
	Definition string
	Seq        []byte
	Features   []Feature
}

// Slice extracts [start,end) as a new record. Only features fully inside
// the region are kept, rebased to the slice origin; the record is renamed
// {name}_{start}_{end}.
func (r *Record) Slice(start, end int) *Record {
	if start < 0 {
		start = 0
	}
	if start > len(r.Seq) {
		start = len(r.Seq)
	}
	if end > len(r.Seq) {
		end = len(r.Seq)
	}
	if end < start {
		end = start
	}
	sub := &Record{
		Name:       fmt.Sprintf("%s_%d_%d", r.Name, start, end),
		Definition: fmt.Sprintf("Subsequence from %s:%d-%d", r.Name, start, end),
		Seq:        append([]byte(nil), r.Seq[start:end]...),
	}
	for _, f := range r.Features {
		if f.Start < start || f.End > end {
			continue
		}
		f.Start -= start
		f.End -= start
		sub.Features = append(sub.Features, f)
	}
	return sub
}
