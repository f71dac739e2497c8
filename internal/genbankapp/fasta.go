package genbankapp

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"replitools/core/genbank"
)

// readFasta loads every contig, preserving file order and indexing by name.
func readFasta(path string) ([]*genbank.Record, map[string]*genbank.Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()

	r := fasta.NewReader(fh, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var recs []*genbank.Record
	byName := make(map[string]*genbank.Record)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		rec := &genbank.Record{
			Name:       s.Name(),
			Definition: s.Description(),
			Seq:        []byte(s.Seq.String()),
		}
		recs = append(recs, rec)
		byName[rec.Name] = rec
	}
	if err := sc.Error(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("%s: no FASTA records", path)
	}
	return recs, byName, nil
}
