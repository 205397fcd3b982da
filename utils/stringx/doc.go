// File: doc.go
// Title: String Utilities Package Documentation
// Description: Documents the stringx package with its string helper
//              functions used across the packrat library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package stringx provides string helper functions that extend the standard
library for the needs of the packrat parsing library.

The helpers cover blank-string detection for input validation, safe
truncation for log output, and line splitting with mixed line endings.
All functions are Unicode-safe and allocation-conscious.
*/
package stringx
