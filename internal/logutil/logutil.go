// Package logutil builds the per-app logger.
package logutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Quiet keeps errors only, so --quiet
// suppresses skipped-row warnings and status chatter but never diagnostics.
func New(w io.Writer, quiet bool) *log.Logger {
	l := log.New(w)
	if quiet {
		l.SetLevel(log.ErrorLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return l
}
