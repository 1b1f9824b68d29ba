package pathfinding

import (
	"io"
	"log"

	"github.com/katalvlaran/gridpath/internal/debuglog"
)

const logPrefix = "[pathfinding] "

var (
	opsLogger   *log.Logger // endpoints rejected by FindPath
	diagLogger  *log.Logger // one summary line per search
	traceLogger *log.Logger // every node taken off the open set
)

// SetLogWriters configures the ops, diag and trace streams of FindPath.
// Pass nil for any writer to disable that stream.
func SetLogWriters(ops, diag, trace io.Writer) {
	opsLogger = debuglog.New(logPrefix, ops)
	diagLogger = debuglog.New(logPrefix, diag)
	traceLogger = debuglog.New(logPrefix, trace)
}

func opsf(format string, args ...interface{})   { debuglog.Printf(opsLogger, format, args...) }
func diagf(format string, args ...interface{})  { debuglog.Printf(diagLogger, format, args...) }
func tracef(format string, args ...interface{}) { debuglog.Printf(traceLogger, format, args...) }
