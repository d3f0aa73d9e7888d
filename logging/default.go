package logging

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// DefaultLogger is a structured logger implementation backed by logrus.
// Debug/Info -> stdout, Warn/Error -> stderr via logrus's standard writer.
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger creates a new logrus-backed logger at info level
func NewDefaultLogger() *DefaultLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &DefaultLogger{entry: logrus.NewEntry(l)}
}

func mergeFields(fields []Fields) logrus.Fields {
	merged := make(logrus.Fields)
	for _, f := range fields {
		maps.Copy(merged, map[string]any(f))
	}
	return merged
}

// Debug logs a debug message
func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.entry.WithFields(mergeFields(fields)).Debug(msg)
}

// Info logs an info message
func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.entry.WithFields(mergeFields(fields)).Info(msg)
}

// Warn logs a warning message
func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.entry.WithFields(mergeFields(fields)).Warn(msg)
}

// Error logs an error with its message
func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	entry := d.entry.WithFields(mergeFields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

// WithFields returns a logger with preset fields
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{entry: d.entry.WithFields(logrus.Fields(fields))}
}

// SetLevel sets the minimum log level
func (d *DefaultLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		d.entry.Logger.SetLevel(logrus.DebugLevel)
	case InfoLevel:
		d.entry.Logger.SetLevel(logrus.InfoLevel)
	case WarnLevel:
		d.entry.Logger.SetLevel(logrus.WarnLevel)
	case ErrorLevel:
		d.entry.Logger.SetLevel(logrus.ErrorLevel)
	}
}
