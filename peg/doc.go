// File: doc.go
// Title: PEG Package Documentation
// Description: Documents the high-level packrat engine API that wraps
//              the parsing core with configuration and logging.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package peg provides the high-level interface to the packrat parsing
engine. It wires the parsing core in peg/parser together with structured
logging, per-session correlation IDs, and configuration loading:

	engine, err := peg.New(peg.Options{
		LogLevel:  pkrlog.LevelDebug,
		MaxTokens: 1 << 16,
	})
	result, err := engine.ParseString("alpha, beta, gamma", parser.NameList)

Engine options can also be built from a TOML or YAML configuration file
via OptionsFromConfig. Each session receives its own UUID so log output
from independent parses stays attributable.
*/
package peg
