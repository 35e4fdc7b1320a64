package utils

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

var (
	zeroLogger      *zerolog.Logger
	zeroLoggerLevel = zerolog.InfoLevel
	zeroLoggerLock  sync.Mutex

	consoleOutput io.Writer = os.Stderr
	fileOutputs   []io.Writer
)

// SetLogVerbosity sets the log level from a 0..5 verbosity:
// 0 silent, 1 error, 2 warn, 3 info, 4 debug, 5 trace.
func SetLogVerbosity(verbosity int) {
	zeroLoggerLock.Lock()
	defer zeroLoggerLock.Unlock()

	zeroLoggerLevel = verbosityToLevel(verbosity)
	if zeroLogger != nil {
		l := zeroLogger.Level(zeroLoggerLevel)
		zeroLogger = &l
	}
}

func verbosityToLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.Disabled
	case verbosity >= 5:
		return zerolog.TraceLevel
	default:
		return zerolog.Level(4 - verbosity)
	}
}

// SetLogOutput replaces the console output of the logger. Mostly for tests.
func SetLogOutput(w io.Writer) {
	zeroLoggerLock.Lock()
	defer zeroLoggerLock.Unlock()

	consoleOutput = w
	zeroLogger = nil
}

// AddLogFile tees the log into a rotating file.
// rotateSize is in megabytes and rotateMaxAge in days.
func AddLogFile(filePath string, rotateSize, rotateCount, rotateMaxAge int) {
	zeroLoggerLock.Lock()
	defer zeroLoggerLock.Unlock()

	fileOutputs = append(fileOutputs, &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    rotateSize,
		MaxBackups: rotateCount,
		MaxAge:     rotateMaxAge,
		Compress:   true,
	})
	zeroLogger = nil
}

// Logger returns the process wide logger.
func Logger() *zerolog.Logger {
	zeroLoggerLock.Lock()
	defer zeroLoggerLock.Unlock()

	if zeroLogger == nil {
		console := zerolog.ConsoleWriter{Out: consoleOutput, TimeFormat: time.RFC3339, NoColor: consoleOutput != os.Stderr}
		writers := append([]io.Writer{console}, fileOutputs...)
		l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(zeroLoggerLevel).
			With().Timestamp().
			Logger()
		zeroLogger = &l
	}
	return zeroLogger
}
