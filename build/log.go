// Package build provides the log backend wiring shared by every
// subsystem logger in this module, mirroring the teacher's daemon/log.go
// pattern one level down so it can be reused by both cmd/squeaknoded and
// tests.
package build

import (
	"io"
	"os"

	"github.com/btcsuite/btclog"
)

// LogWriter wraps a possibly-nil log rotator pipe so that logging can
// begin (to stdout only) before the rotator is initialized, and
// afterwards fans out to both stdout and the rotated file.
type LogWriter struct {
	RotatorPipe *io.PipeWriter
}

// Write writes p to stdout and, once initialized, to the rotator pipe.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	if w.RotatorPipe != nil {
		w.RotatorPipe.Write(p)
	}
	return os.Stdout.Write(p)
}

// NewSubLogger creates a new subsystem logger via genLogger (typically a
// *btclog.Backend's Logger method value), with the subsystem tag
// prefixed to every line.
func NewSubLogger(subsystem string, genLogger func(string) btclog.Logger) btclog.Logger {
	logger := genLogger(subsystem)
	logger.SetLevel(btclog.LevelInfo)
	return logger
}
