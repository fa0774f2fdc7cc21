// Package log provides a thread-safe, structured logging infrastructure for adapter diagnostics.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/viper"
)

// Setup initializes the logging subsystem, including formatting, severity level and sinks, based on global configuration.
// Degradation warnings (missing cookie jars, failed extractions, auth-gated lookups) are contract
// behavior, so stderr is always a sink; logs.write additionally appends to a dated session file.
func Setup() error {
	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	out := io.Writer(os.Stderr)
	if viper.GetBool(key.LogsWrite) {
		filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
		path := filepath.Join(where.Logs(), filename)

		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(out, f)
	}
	logrus.SetOutput(out)

	return nil
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend.

func Panic(args ...interface{}) {
	logrus.Panic(args...)
}
func Panicf(format string, args ...interface{}) {
	logrus.Panicf(format, args...)
}
func Fatal(args ...interface{}) {
	logrus.Fatal(args...)
}
func Fatalf(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}
func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
func Trace(args ...interface{}) {
	logrus.Trace(args...)
}
func Tracef(format string, args ...interface{}) {
	logrus.Tracef(format, args...)
}
