// File: doc.go
// Title: Logging Package Documentation
// Description: Documents the structured logging system used across the
//              packrat library with levels, fields, and formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package log provides structured, leveled logging for the packrat library.

Loggers are immutable: the With* methods return clones so a component can
derive its own logger without affecting others:

	logger := pkrlog.GetDefault().WithField("component", "peg-engine")
	logger.Debug("parse started", pkrlog.Fields{"tokens": n})

Output formats include JSON (production) and text (development). The
LogError method understands the structured errors of core/error and picks
the log level from the error severity. Timers measure operation durations
with optional checkpoints:

	timer := logger.StartTimer("parse")
	defer timer.Stop()
*/
package log
