// Package cmdutil holds the run-loop plumbing shared by the tool apps.
package cmdutil

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"replitools/internal/writers"
)

// ReplayUsage re-renders usage onto outw after a -h or a parse error and
// flushes it, tolerating a closed downstream pipe. Returns code, or 0/3 on
// pipe/flush outcomes.
func ReplayUsage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// OpenOutput opens path for writing, treating "-" as stdout. The returned
// close func is a no-op for stdout.
func OpenOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
