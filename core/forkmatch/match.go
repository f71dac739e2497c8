// Package forkmatch attaches fork coordinates to pause records and
// synthesizes records for forks no pause record consumed.
package forkmatch

import (
	"fmt"

	"replitools/core/forktable"
	"replitools/core/pausetable"
)

// Assignment is the fork half of an annotated record.
type Assignment struct {
	Direction forktable.Direction
	ForkStart int
	ForkEnd   int
	Strand    string
	Contig    string
	ReadStart int
	ReadEnd   int
	AlignLen  int
}

// Result is one output row: a matched pause record (Pause non-nil,
// Keep true) or a synthesized orphan-fork record (Pause nil, Keep false).
type Result struct {
	Pause       *pausetable.Record
	ReadID      string
	Assign      Assignment
	Keep        bool
	DetectIndex string
}

// Match finds the fork interval covering p's pause site. Both tables are
// scanned linearly and the first interval with the same read ID and
// start ≤ site ≤ end (inclusive on both bounds) wins. The left table is
// consulted first and short-circuits the right one: a site inside both a
// left and a right fork of the same read is always classified L.
func Match(p pausetable.Record, left, right []forktable.ForkInterval) (Assignment, bool) {
	if a, ok := scan(p, left); ok {
		return a, true
	}
	return scan(p, right)
}

func scan(p pausetable.Record, forks []forktable.ForkInterval) (Assignment, bool) {
	for _, f := range forks {
		if f.ReadID != p.ReadID {
			continue
		}
		if f.Start <= p.PauseSite && p.PauseSite <= f.End {
			return Assignment{
				Direction: f.Direction,
				ForkStart: f.Start,
				ForkEnd:   f.End,
				Strand:    f.Strand,
				Contig:    f.Contig,
				ReadStart: f.ReadStart,
				ReadEnd:   f.ReadEnd,
				AlignLen:  f.ReadEnd,
			}, true
		}
	}
	return Assignment{}, false
}

// Annotate matches every pause record in input order. Records with no
// covering fork are dropped; their count is returned.
func Annotate(t *pausetable.Table, left, right []forktable.ForkInterval) (matched []Result, dropped int) {
	for i := range t.Records {
		p := &t.Records[i]
		a, ok := Match(*p, left, right)
		if !ok {
			dropped++
			continue
		}
		matched = append(matched, Result{
			Pause:       p,
			ReadID:      p.ReadID,
			Assign:      a,
			Keep:        true,
			DetectIndex: DetectIndex(p.ReadID, a),
		})
	}
	return matched, dropped
}

// DetectIndex rebuilds the composite record identifier from an assignment.
// It is pure and shared by matched and synthesized records, so every output
// row carries the same identifier shape regardless of provenance.
func DetectIndex(readID string, a Assignment) string {
	return fmt.Sprintf("%s_%s_%d_%d_%s_%s_%d_%d",
		readID, a.Contig, a.ReadStart, a.ReadEnd, a.Strand, a.Direction, a.ForkStart, a.ForkEnd)
}
