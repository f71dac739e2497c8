package genbankapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, fn, data string) string {
	t.Helper()
	p := filepath.Join(dir, fn)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return p
}

const testFasta = ">chrI test contig\n" +
	"ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT\n" +
	">chrII\n" +
	"TTTTAAAACCCCGGGG\n"

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", testFasta)
	bed := write(t, dir, "ann.bed", ""+
		"chrI\t5\t15\tgene\t0\t+\tNone\tNone\tabc1\n"+
		"chrI\t20\t30\ttRNA\t0\t-\tAla\tAGC\tNone\n"+
		"chrMissing\t0\t5\tgene\t0\t+\n")
	out := filepath.Join(dir, "out.gb")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--fasta", fa, "--bed", bed, "--output", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	gb := string(data)
	for _, want := range []string{
		"LOCUS       chrI",
		"LOCUS       chrII",
		"     gene            6..15",
		"     tRNA            complement(21..30)",
		`/product="tRNA-Ala(AGC)"`,
		"ORIGIN",
	} {
		if !strings.Contains(gb, want) {
			t.Fatalf("output missing %q:\n%s", want, gb)
		}
	}
	// Unknown contig is a warning, not an error.
	if !strings.Contains(stderr.String(), "chrMissing") {
		t.Fatalf("expected skip warning for chrMissing, stderr=%s", stderr.String())
	}
}

func TestRegionMode(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", testFasta)
	bed := write(t, dir, "ann.bed", ""+
		"chrI\t12\t18\tdg\t0\t+\n"+ // inside the slice
		"chrI\t0\t8\tgene\t0\t+\n") // outside
	out := filepath.Join(dir, "out.gb")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--fasta", fa, "--bed", bed, "--region", "chrI:10-30", "--output", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	data, _ := os.ReadFile(out)
	gb := string(data)
	if !strings.Contains(gb, "LOCUS       chrI_10_30") {
		t.Fatalf("sliced record not renamed:\n%s", gb)
	}
	if strings.Contains(gb, "LOCUS       chrII") {
		t.Fatalf("region mode must emit a single record:\n%s", gb)
	}
	// 12..18 rebased to the slice origin: 3..8 one-based.
	if !strings.Contains(gb, "     misc_feature    3..8") {
		t.Fatalf("feature not rebased:\n%s", gb)
	}
	if strings.Contains(gb, "     gene") {
		t.Fatalf("feature outside region leaked into output:\n%s", gb)
	}
}

func TestRegionBeyondContigEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", testFasta)
	bed := write(t, dir, "ann.bed", "chrI\t5\t15\tgene\t0\t+\n")
	out := filepath.Join(dir, "out.gb")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--fasta", fa, "--bed", bed, "--region", "chrI:5000-6000", "--output", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	data, _ := os.ReadFile(out)
	gb := string(data)
	if !strings.Contains(gb, "0 bp") {
		t.Fatalf("region past the contig end should yield an empty record:\n%s", gb)
	}
	if strings.Contains(gb, "     gene") {
		t.Fatalf("no feature fits in an empty slice:\n%s", gb)
	}
}

func TestRegionMissingContigIsFatal(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", testFasta)
	bed := write(t, dir, "ann.bed", "chrI\t5\t15\tgene\t0\t+\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"--fasta", fa, "--bed", bed, "--region", "chrX:0-10",
		"--output", filepath.Join(dir, "out.gb"),
	}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}

func TestBadRegionFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--fasta", "a", "--bed", "b", "--region", "chrI-10-30", "--output", "o"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}
