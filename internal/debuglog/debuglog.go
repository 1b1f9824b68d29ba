// Package debuglog builds the optional per-package log streams used by
// pathfinding and layout. A nil *log.Logger means the stream is off.
package debuglog

import (
	"io"
	"log"
)

// New returns a logger writing to w with the given prefix, or nil when w is nil.
func New(prefix string, w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}

// Printf writes to l when the stream is enabled.
func Printf(l *log.Logger, format string, args ...interface{}) {
	if l != nil {
		l.Printf(format, args...)
	}
}
