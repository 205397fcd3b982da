// File: doc.go
// Title: Error Package Documentation
// Description: Documents the structured error system of the packrat
//              library with codes, severity levels, and error chaining.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package error provides a structured error system for the packrat library.

Errors carry a machine-readable code, a severity level, contextual details,
and a captured stack trace while remaining fully compatible with Go's
standard error interface and errors.Unwrap chains.

Typical usage:

	err := pkrerror.New("unexpected token").
		WithCode(pkrerror.CodeUnexpectedToken).
		WithOperation("parse").
		WithDetail("row", 3).
		WithDetail("column", 14)

Severity is derived from the code unless set explicitly, which lets the
logging package choose appropriate log levels automatically.
*/
package error
