// Package writers serializes result tables. Writers run on their own
// goroutine and receive rows over a channel, so apps can stream rows as
// they are produced and collect a single error at the end.
package writers

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken or closed pipe.
// Downstream consumers like `head` closing early is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// StartTSV starts a goroutine writing a header row followed by one
// tab-joined line per received row. Close the channel to flush; the error
// channel yields exactly one value.
func StartTSV(out io.Writer, columns []string, bufSize int) (chan<- []string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan []string, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		if _, err := bw.WriteString(strings.Join(columns, "\t") + "\n"); err != nil {
			drain(in)
			done <- err
			return
		}
		for row := range in {
			if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
				drain(in)
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}

func drain(in <-chan []string) {
	for range in {
	}
}
