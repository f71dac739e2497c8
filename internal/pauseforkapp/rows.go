package pauseforkapp

import (
	"strconv"

	"replitools/core/forkmatch"
	"replitools/core/forktable"
	"replitools/core/tabular"
)

// augmentColumns are appended after the original pause columns, in this
// fixed order.
var augmentColumns = []string{
	"left_fork_start", "left_fork_end",
	"right_fork_start", "right_fork_end",
	"direction", "strand", "alignLen", "contig", "start_read", "end_read",
	"keep",
}

func outputColumns(pauseCols []string) []string {
	return append(append([]string(nil), pauseCols...), augmentColumns...)
}

// renderRow serializes one result. Matched rows pass the original pause
// cells through; synthesized rows carry the unset sentinel there. The
// detectIndex cell is always the reconstructed identifier.
func renderRow(pauseCols []string, idxPos int, r forkmatch.Result) []string {
	row := make([]string, 0, len(pauseCols)+len(augmentColumns))
	if r.Pause != nil {
		row = append(row, r.Pause.Values[:len(pauseCols)]...)
	} else {
		for range pauseCols {
			row = append(row, tabular.Unset)
		}
	}
	row[idxPos] = r.DetectIndex

	a := r.Assign
	lfs, lfe, rfs, rfe := tabular.Unset, tabular.Unset, tabular.Unset, tabular.Unset
	if a.Direction == forktable.Left {
		lfs, lfe = strconv.Itoa(a.ForkStart), strconv.Itoa(a.ForkEnd)
	} else {
		rfs, rfe = strconv.Itoa(a.ForkStart), strconv.Itoa(a.ForkEnd)
	}
	row = append(row,
		lfs, lfe, rfs, rfe,
		string(a.Direction), a.Strand,
		strconv.Itoa(a.AlignLen), a.Contig,
		strconv.Itoa(a.ReadStart), strconv.Itoa(a.ReadEnd),
		strconv.FormatBool(r.Keep),
	)
	return row
}
