package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/connmgr"
	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/jzernik/squeaknode/bitcoinrpc"
	"github.com/jzernik/squeaknode/controller"
	"github.com/jzernik/squeaknode/exchange"
	"github.com/jzernik/squeaknode/lightningrpc"
	"github.com/jzernik/squeaknode/netmgr"
	"github.com/jzernik/squeaknode/peer"
	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

var (
	logWriter = &LogWriter{}

	backendLog = btclog.NewBackend(logWriter)
	logRotator *rotator.Rotator

	sqkdLog = NewSubLogger("SQKD", backendLog.Logger)
	strLog  = NewSubLogger("STOR", backendLog.Logger)
	perLog  = NewSubLogger("PEER", backendLog.Logger)
	netLog  = NewSubLogger("NETM", backendLog.Logger)
	excLog  = NewSubLogger("EXCH", backendLog.Logger)
	btcnLog = NewSubLogger("BTCN", backendLog.Logger)
	lndgLog = NewSubLogger("LNDG", backendLog.Logger)
	cmgrLog = NewSubLogger("CMGR", backendLog.Logger)
	sqkcLog = NewSubLogger("SQKC", backendLog.Logger)
)

var subsystemLoggers = map[string]btclog.Logger{
	"SQKD": sqkdLog,
	"STOR": strLog,
	"PEER": perLog,
	"NETM": netLog,
	"EXCH": excLog,
	"BTCN": btcnLog,
	"LNDG": lndgLog,
	"CMGR": cmgrLog,
	"SQKC": sqkcLog,
}

func init() {
	store.UseLogger(strLog)
	peer.UseLogger(perLog)
	netmgr.UseLogger(netLog)
	exchange.UseLogger(excLog)
	bitcoinrpc.UseLogger(btcnLog)
	lightningrpc.UseLogger(lndgLog)
	connmgr.UseLogger(cmgrLog)
	squeak.UseLogger(sqkcLog)
	controller.UseLogger(sqkdLog)
}

// Log returns the top-level "SQKD" subsystem logger, for use by
// cmd/squeaknoded and the controller package.
func Log() btclog.Logger {
	return sqkdLog
}

// Backend returns the shared logging backend, for callers that need to
// create additional ad-hoc loggers.
func Backend() *btclog.Backend {
	return backendLog
}

// InitLogRotator initializes the log rotator to write to logFile,
// creating roll files alongside it. It must be called before any logging
// output is expected to reach disk; until then, output goes to stdout
// only.
func InitLogRotator(logFile string, maxLogFileSizeKB int, maxLogFiles int) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("build: create log directory: %w", err)
	}

	r, err := rotator.New(logFile, int64(maxLogFileSizeKB*1024), false, maxLogFiles)
	if err != nil {
		return fmt.Errorf("build: create log rotator: %w", err)
	}

	pr, pw := io.Pipe()
	go r.Run(pr)

	logWriter.RotatorPipe = pw
	logRotator = r
	return nil
}

// SetLogLevel sets the logging level for a single named subsystem.
// Unknown subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets logLevel on every registered subsystem.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}
