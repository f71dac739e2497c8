package forkmatch

import "replitools/core/forktable"

// UsedKey identifies a fork interval already attached to a pause record.
type UsedKey struct {
	ReadID    string
	Start     int
	End       int
	Direction forktable.Direction
}

// key derives the UsedKey of a matched result.
func key(r Result) UsedKey {
	return UsedKey{
		ReadID:    r.ReadID,
		Start:     r.Assign.ForkStart,
		End:       r.Assign.ForkEnd,
		Direction: r.Assign.Direction,
	}
}

// UsedKeys collects the fork keys consumed by matched results. Built in a
// dedicated pass strictly after matching so the orphan bookkeeping never
// races a half-finished match set.
func UsedKeys(matched []Result) map[UsedKey]struct{} {
	used := make(map[UsedKey]struct{}, len(matched))
	for _, r := range matched {
		used[key(r)] = struct{}{}
	}
	return used
}

// Orphans synthesizes one keep=false record per fork interval absent from
// used, in table order (left table first). Together with the matched set
// this puts every input fork in the output exactly once.
func Orphans(left, right []forktable.ForkInterval, used map[UsedKey]struct{}) []Result {
	var out []Result
	for _, f := range append(append([]forktable.ForkInterval(nil), left...), right...) {
		k := UsedKey{ReadID: f.ReadID, Start: f.Start, End: f.End, Direction: f.Direction}
		if _, ok := used[k]; ok {
			continue
		}
		a := Assignment{
			Direction: f.Direction,
			ForkStart: f.Start,
			ForkEnd:   f.End,
			Strand:    f.Strand,
			Contig:    f.Contig,
			ReadStart: f.ReadStart,
			ReadEnd:   f.ReadEnd,
			AlignLen:  f.ReadEnd,
		}
		out = append(out, Result{
			ReadID:      f.ReadID,
			Assign:      a,
			Keep:        false,
			DetectIndex: DetectIndex(f.ReadID, a),
		})
	}
	return out
}
