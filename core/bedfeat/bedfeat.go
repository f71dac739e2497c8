// Package bedfeat parses extended BED annotation tables into GenBank
// features. The extension carries tRNA type/sequence and gene name columns
// past the standard six, so this is a custom loader rather than a strict
// BED6 reader.
package bedfeat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"replitools/core/genbank"
	"replitools/core/tabular"
)

// kindFor maps BED labels to GenBank feature kinds. Centromeric annotation
// vocabulary from the source data; anything unknown becomes misc_feature.
var kindFor = map[string]string{
	"gene":     "gene",
	"tRNA":     "tRNA",
	"dh":       "misc_feature",
	"dg":       "misc_feature",
	"cnt1":     "repeat_region",
	"cnt2":     "repeat_region",
	"cnt3":     "repeat_region",
	"imr_chr1": "centromere",
	"imr_chr2": "centromere",
	"imr_chr3": "centromere",
}

// Entry is one parsed annotation row.
type Entry struct {
	Chrom   string
	Feature genbank.Feature
}

// Load parses path. Rows with fewer than six columns or unparseable
// coordinates are reported through warnf and skipped; the skip count is
// returned. An optional leading header row (first field "chrom...") is
// detected and ignored.
func Load(path string, warnf func(format string, args ...interface{})) ([]Entry, int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = fh.Close() }()

	var (
		entries []Entry
		skipped int
		first   = true
	)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if first {
			first = false
			if strings.HasPrefix(strings.ToLower(f[0]), "chrom") {
				continue
			}
		}
		if len(f) < 6 {
			warnf("%s:%d: %v (%d columns); skipping", path, ln, tabular.ErrMalformedRow, len(f))
			skipped++
			continue
		}
		start, err1 := strconv.Atoi(f[1])
		end, err2 := strconv.Atoi(f[2])
		if err1 != nil || err2 != nil {
			warnf("%s:%d: %v; skipping", path, ln, tabular.ErrParse)
			skipped++
			continue
		}
		entries = append(entries, Entry{
			Chrom:   f[0],
			Feature: buildFeature(f, start, end),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return entries, skipped, nil
}

func buildFeature(f []string, start, end int) genbank.Feature {
	label := f[3]
	strand := int8(-1)
	if f[5] == "+" {
		strand = 1
	}
	col := func(i int) string {
		if len(f) > i {
			return f[i]
		}
		return "None"
	}
	trnaType, trnaSeq, geneName := col(6), col(7), col(8)

	kind, ok := kindFor[label]
	if !ok {
		kind = "misc_feature"
	}
	ft := genbank.Feature{
		Kind:       kind,
		Start:      start,
		End:        end,
		Strand:     strand,
		Qualifiers: []genbank.Qualifier{{Key: "label", Value: label}},
	}
	if geneName != "" && geneName != "None" {
		ft.Qualifiers = append(ft.Qualifiers, genbank.Qualifier{Key: "gene", Value: geneName})
	}
	switch {
	case label == "tRNA":
		ft.Qualifiers = append(ft.Qualifiers, genbank.Qualifier{
			Key: "product", Value: fmt.Sprintf("tRNA-%s(%s)", trnaType, trnaSeq),
		})
	case label == "gene" && geneName != "" && geneName != "None":
		ft.Qualifiers = append(ft.Qualifiers, genbank.Qualifier{
			Key: "note", Value: "protein-coding gene " + geneName,
		})
	}
	return ft
}
