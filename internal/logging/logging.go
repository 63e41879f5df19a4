// Package logging builds the diagnostic logger. Diagnostics are off
// unless --debug is given; then they go to w as funcr key/value lines.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Verbosity is the V level diagnostics are logged at.
const Verbosity = 1

// New returns a logger writing to w when debug is set and a discarding
// logger otherwise.
func New(w io.Writer, debug bool) logr.Logger {
	if !debug {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity: Verbosity,
		LogCaller: funcr.None,
	}).WithName("procinspect")
}
