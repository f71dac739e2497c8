package pauseforkapp

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

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	pauses := write(t, dir, "pauses.txt", ""+
		"# pause calls\n"+
		"detectIndex pauseSite\n"+
		"readA_chr1_10_90_+_NA_NA_NA 50\n")
	left := write(t, dir, "left.txt", "chr1 40 60 readA chr1 10 90 fwd\n")
	right := write(t, dir, "right.txt", "chr2 5 25 readB chr2 0 70 rev\n")
	out := filepath.Join(dir, "out.txt")

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"--pauses", pauses,
		"--left-forks", left,
		"--right-forks", right,
		"--output", out,
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + matched + orphan, got %d lines:\n%s", len(lines), data)
	}

	wantHeader := "detectIndex\tpauseSite\t" +
		"left_fork_start\tleft_fork_end\tright_fork_start\tright_fork_end\t" +
		"direction\tstrand\talignLen\tcontig\tstart_read\tend_read\tkeep"
	if lines[0] != wantHeader {
		t.Fatalf("bad header:\n got: %q\nwant: %q", lines[0], wantHeader)
	}

	wantMatched := "readA_chr1_10_90_+_L_40_60\t50\t40\t60\tNA\tNA\tL\t+\t90\tchr1\t10\t90\ttrue"
	if lines[1] != wantMatched {
		t.Fatalf("bad matched row:\n got: %q\nwant: %q", lines[1], wantMatched)
	}

	wantOrphan := "readB_chr2_0_70_-_R_5_25\tNA\tNA\tNA\t5\t25\tR\t-\t70\tchr2\t0\t70\tfalse"
	if lines[2] != wantOrphan {
		t.Fatalf("bad orphan row:\n got: %q\nwant: %q", lines[2], wantOrphan)
	}
}

func TestLeftPriorityEndToEnd(t *testing.T) {
	dir := t.TempDir()
	pauses := write(t, dir, "pauses.txt", "detectIndex pauseSite\nreadA_chr1_10_90_+_NA_NA_NA 50\n")
	left := write(t, dir, "left.txt", "chr1 40 60 readA chr1 10 90 fwd\n")
	// Overlaps the same site; must lose to the left fork.
	right := write(t, dir, "right.txt", "chr1 30 70 readA chr1 10 90 fwd\n")
	out := filepath.Join(dir, "out.txt")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--pauses", pauses, "--left-forks", left, "--right-forks", right, "--output", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	data, _ := os.ReadFile(out)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// Matched as L, and the untouched right fork is synthesized.
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[1], "\tL\t") || !strings.Contains(lines[1], "readA_chr1_10_90_+_L_40_60") {
		t.Fatalf("pause not classified L: %q", lines[1])
	}
	if !strings.Contains(lines[2], "\tfalse") || !strings.Contains(lines[2], "\tR\t") {
		t.Fatalf("right fork not synthesized: %q", lines[2])
	}
}

func TestBadForkCoordinateIsFatal(t *testing.T) {
	dir := t.TempDir()
	pauses := write(t, dir, "pauses.txt", "detectIndex pauseSite\nreadA_x 50\n")
	left := write(t, dir, "left.txt", "chr1 forty 60 readA chr1 10 90 fwd\n")
	right := write(t, dir, "right.txt", "")

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"--pauses", pauses, "--left-forks", left, "--right-forks", right,
		"--output", filepath.Join(dir, "out.txt"),
	}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("want exit 2 on parse error, got %d", code)
	}
}

func TestMissingRequiredFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--pauses", "p.txt"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--version"}, &stdout, &stderr)
	if code != 0 || !strings.Contains(stdout.String(), "pausefork version") {
		t.Fatalf("version output %q (exit %d)", stdout.String(), code)
	}
}
