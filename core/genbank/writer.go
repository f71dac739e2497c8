package genbank

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	featureIndent   = 21 // column where locations and qualifiers start
	originLineBases = 60
	originGroup     = 10
)

// Write serializes records as a GenBank flat file, one entry per record.
func Write(w io.Writer, recs []*Record) error {
	for _, r := range recs {
		if err := writeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, r *Record) error {
	date := strings.ToUpper(time.Now().Format("02-Jan-2006"))
	if _, err := fmt.Fprintf(w, "LOCUS       %-16s %d bp    DNA     linear   UNA %s\n", r.Name, len(r.Seq), date); err != nil {
		return err
	}
	def := r.Definition
	if def == "" {
		def = r.Name
	}
	if _, err := fmt.Fprintf(w, "DEFINITION  %s\n", def); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ACCESSION   %s\n", r.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "FEATURES             Location/Qualifiers"); err != nil {
		return err
	}
	for _, f := range r.Features {
		if err := writeFeature(w, f); err != nil {
			return err
		}
	}
	if err := writeOrigin(w, r.Seq); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

func writeFeature(w io.Writer, f Feature) error {
	loc := fmt.Sprintf("%d..%d", f.Start+1, f.End)
	if f.Strand < 0 {
		loc = "complement(" + loc + ")"
	}
	if _, err := fmt.Fprintf(w, "     %-16s%s\n", f.Kind, loc); err != nil {
		return err
	}
	pad := strings.Repeat(" ", featureIndent)
	for _, q := range f.Qualifiers {
		if _, err := fmt.Fprintf(w, "%s/%s=\"%s\"\n", pad, q.Key, q.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeOrigin(w io.Writer, seq []byte) error {
	if _, err := fmt.Fprintln(w, "ORIGIN"); err != nil {
		return err
	}
	lower := strings.ToLower(string(seq))
	for off := 0; off < len(lower); off += originLineBases {
		end := off + originLineBases
		if end > len(lower) {
			end = len(lower)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%9d", off+1)
		for g := off; g < end; g += originGroup {
			ge := g + originGroup
			if ge > end {
				ge = end
			}
			b.WriteByte(' ')
			b.WriteString(lower[g:ge])
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
