/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for the Akaylee TestKit. Provides structured
orchestration diagnostics with configurable level, format and optional file
output. Report output never goes through the logger; this is strictly the
runner's diagnostic channel.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// LogFormat represents the logging format.
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger.
type LoggerConfig struct {
	Level     string    `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // empty disables file output
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides diagnostic logging for the testkit runtime.
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
}

// NewLogger creates a new logger instance. A nil config selects info-level
// custom-formatted stderr logging without file output.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:  "info",
			Format: LogFormatCustom,
			Colors: true,
		}
	}
	l := &Logger{
		config: config,
		logger: logrus.New(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the underlying logrus logger.
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(l.config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: true,
			Colors:    l.config.Colors,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}

	// The report owns stdout; diagnostics stay on stderr.
	l.logger.SetOutput(os.Stderr)

	if l.config.OutputDir != "" {
		if err := l.setupFileOutput(); err != nil {
			return err
		}
	}
	return nil
}

// setupFileOutput mirrors diagnostics into a timestamped log file.
func (l *Logger) setupFileOutput() error {
	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("akaylee-testkit_%s.log", timestamp)
	path := filepath.Join(l.config.OutputDir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return nil
}

// Close closes the logger's file handle, if any.
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		return l.fileHandle.Close()
	}
	return nil
}

// GetLogger returns the underlying logrus logger.
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Runtime-specific logging methods

// LogRunStart logs the beginning of a run with its identifying fields.
func (l *Logger) LogRunStart(runID string, order string, seed uint64, suites int) {
	l.logger.WithFields(logrus.Fields{
		"run_id": runID,
		"order":  order,
		"seed":   seed,
		"suites": suites,
	}).Info("Run started")
}

// LogSuite logs the completion of a suite with its counters.
func (l *Logger) LogSuite(name string, passed, skipped, failed int64, wall string) {
	l.logger.WithFields(logrus.Fields{
		"suite":   name,
		"passed":  passed,
		"skipped": skipped,
		"failed":  failed,
		"wall":    wall,
	}).Info("Suite executed")
}

// LogTest logs a single test outcome.
func (l *Logger) LogTest(suiteName, testName, result string, wall string) {
	l.logger.WithFields(logrus.Fields{
		"suite":  suiteName,
		"test":   testName,
		"result": result,
		"wall":   wall,
	}).Debug("Test executed")
}
