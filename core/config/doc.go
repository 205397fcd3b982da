// File: doc.go
// Title: Configuration Package Documentation
// Description: Documents the configuration loading system with TOML/YAML
//              support and environment variable overlay.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package config provides configuration loading for the packrat library.

Configuration can be read from TOML or YAML files (auto-detected by file
extension) or from embedded strings. Values are accessed through typed
getters with dot-notation keys:

	cfg, err := config.Load("packrat.toml")
	level := cfg.GetString("engine.log_level", "info")
	max := cfg.GetInt("engine.max_tokens", 65536)

Environment variables override file values. The key engine.log_level maps
to ENGINE_LOG_LEVEL, or PACKRAT_ENGINE_LOG_LEVEL when an EnvPrefix of
"PACKRAT" is configured.
*/
package config
