// File: timer.go
// Title: Performance Timer
// Description: Implements a performance timer for measuring operation
//              durations with checkpoint support. Used by the parsing
//              engine to report per-parse timing in log output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
		stopped:   false,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields[key] = value
	return t
}

// WithFields adds multiple fields to be logged when the timer completes
func (t *Timer) WithFields(fields Fields) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// StartTime returns the time the timer was started
func (t *Timer) StartTime() time.Time {
	return t.startTime
}

// IsRunning returns true if the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	message := t.operation + " completed"
	t.addTimingFields(elapsed)
	t.emit(t.level, message, nil)

	return elapsed
}

// StopWithError stops the timer and logs an error with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	message := t.operation + " failed"
	t.addTimingFields(elapsed)
	t.emit(LevelWarn, message, err)

	return elapsed
}

// Checkpoint logs an intermediate timing measurement without stopping the timer
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}

	checkpointFields := Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_ms": float64(t.Elapsed().Nanoseconds()) / 1000000,
	}

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			checkpointFields[k] = v
		}
	}

	t.logger.Trace(t.operation+" checkpoint", checkpointFields)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// addTimingFields attaches duration information to the completion fields
func (t *Timer) addTimingFields(elapsed time.Duration) {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1000000
	t.fields["duration"] = elapsed.String()
}

// emit writes the completion message through the attached logger
func (t *Timer) emit(level Level, message string, err error) {
	if t.logger == nil {
		return
	}

	if err != nil {
		t.logger.WarnWithErr(message, err, t.fields)
		return
	}

	switch level {
	case LevelTrace:
		t.logger.Trace(message, t.fields)
	case LevelDebug:
		t.logger.Debug(message, t.fields)
	case LevelInfo:
		t.logger.Info(message, t.fields)
	case LevelWarn:
		t.logger.Warn(message, t.fields)
	case LevelError:
		t.logger.Error(message, t.fields)
	default:
		t.logger.Debug(message, t.fields)
	}
}
