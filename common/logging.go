package common

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportCaller:    false,
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Prefix:          "eyengine",
})

// SetLogLevel adjusts the minimum level emitted by the package logger.
//
// Parameters:
//   - level: one of "debug", "info", "warn", "error" (unknown values fall back to info)
func SetLogLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
}

// LogDebug logs a formatted message at debug level.
func LogDebug(format string, args ...any) {
	logger.Debugf(format, args...)
}

// LogInfo logs a formatted message at info level.
func LogInfo(format string, args ...any) {
	logger.Infof(format, args...)
}

// LogWarn logs a formatted message at warn level.
func LogWarn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// LogError logs a formatted message at error level.
func LogError(format string, args ...any) {
	logger.Errorf(format, args...)
}

// LogFatal logs a formatted message at error level and exits the process.
func LogFatal(format string, args ...any) {
	logger.Fatalf(format, args...)
}
