// File: peg.go
// Title: Packrat Engine Interface
// Description: Provides the high-level engine API around the parsing
//              core: configured session creation, convenience parsing
//              from source strings, structured logging with per-session
//              correlation IDs, and configuration-file integration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial engine implementation

package peg

import (
	"github.com/google/uuid"

	pkrconfig "github.com/msto63/packrat/core/config"
	pkrerror "github.com/msto63/packrat/core/error"
	pkrlog "github.com/msto63/packrat/core/log"
	pkrparser "github.com/msto63/packrat/peg/parser"
)

// DefaultMaxTokens is the default upper bound on token stream length
const DefaultMaxTokens = 65536

// Engine coordinates parser sessions with shared configuration and logging
type Engine struct {
	logger  *pkrlog.Logger
	options Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *pkrlog.Logger

	// LogLevel is the minimum level applied to the engine logger. The zero
	// value selects the info default; trace-level output is enabled through
	// TraceEnabled, which also lowers the logger to trace.
	LogLevel pkrlog.Level

	// MaxTokens limits the length of accepted token streams (default: 65536)
	MaxTokens int

	// TraceEnabled turns on memo hit/miss tracing inside sessions
	TraceEnabled bool
}

// New creates a new packrat engine with the specified options
func New(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:    pkrlog.GetDefault(),
		LogLevel:  pkrlog.LevelInfo,
		MaxTokens: DefaultMaxTokens,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
		}
		if provided.MaxTokens > 0 {
			options.MaxTokens = provided.MaxTokens
		}
		options.TraceEnabled = provided.TraceEnabled
	}

	// Memo tracing is emitted at trace level, so enabling it lowers the logger
	if options.TraceEnabled && options.LogLevel > pkrlog.LevelTrace {
		options.LogLevel = pkrlog.LevelTrace
	}

	logger := options.Logger.
		WithLevel(options.LogLevel).
		WithField("component", "peg-engine")

	engine := &Engine{
		logger:  logger,
		options: options,
	}

	logger.Debug("packrat engine initialized", pkrlog.Fields{
		"maxTokens":    options.MaxTokens,
		"traceEnabled": options.TraceEnabled,
	})

	return engine, nil
}

// OptionsFromConfig builds engine options from a configuration instance.
// Recognized keys: engine.log_level, engine.max_tokens, engine.trace.
// Trace-level logging is selected through engine.trace; engine.log_level
// covers the debug..fatal range.
func OptionsFromConfig(cfg *pkrconfig.Config) Options {
	options := Options{
		MaxTokens: cfg.GetInt("engine.max_tokens", DefaultMaxTokens),
	}

	if level, err := pkrlog.ParseLevel(cfg.GetString("engine.log_level", "info")); err == nil {
		options.LogLevel = level
	}

	options.TraceEnabled = cfg.GetBool("engine.trace", false)

	return options
}

// NewSession creates a parser session over the given token stream. Each
// session gets its own correlation ID so log output from concurrent
// sessions stays attributable.
func (e *Engine) NewSession(tokens []pkrparser.Token) (*pkrparser.Session, error) {
	if len(tokens) > e.options.MaxTokens {
		return nil, pkrerror.New("token stream exceeds maximum length").
			WithCode(pkrerror.CodeInvalidInput).
			WithOperation("peg.NewSession").
			WithDetail("tokens", len(tokens)).
			WithDetail("max", e.options.MaxTokens)
	}

	sessionID := uuid.NewString()
	sessionLogger := e.logger.WithField("session_id", sessionID)

	sessionLogger.Debug("session created", pkrlog.Fields{
		"tokens": len(tokens),
	})

	return pkrparser.NewSessionWithConfig(tokens, pkrparser.SessionConfig{
		Logger: sessionLogger,
		Trace:  e.options.TraceEnabled,
	}), nil
}

// Parse applies a rule to a token stream in a fresh session. It returns
// the rule's outcome; the error is non-nil only for unrecoverable
// conditions (structured parse errors or invalid input).
func (e *Engine) Parse(tokens []pkrparser.Token, rule *pkrparser.Rule) (pkrparser.Result, error) {
	session, err := e.NewSession(tokens)
	if err != nil {
		return pkrparser.NoMatch(), err
	}

	timer := e.logger.StartTimer("parse").
		WithField("rule", rule.Name()).
		WithField("tokens", len(tokens))

	result, err := session.Apply(rule)
	if err != nil {
		timer.StopWithError(err)
		return pkrparser.NoMatch(), err
	}
	timer.Stop()

	stats := session.MemoStats()
	e.logger.Debug("parse finished", pkrlog.Fields{
		"rule":        rule.Name(),
		"matched":     result.Matched(),
		"tokenReads":  session.TokenReads(),
		"memoHits":    stats.Hits,
		"memoEntries": stats.Entries,
	})

	return result, nil
}

// ParseString tokenizes a source string with the reference lexer and
// applies a rule to the resulting stream
func (e *Engine) ParseString(input string, rule *pkrparser.Rule) (pkrparser.Result, error) {
	tokens, err := pkrparser.TokenizeInput(input)
	if err != nil {
		e.logger.WarnWithErr("tokenization failed", err)
		return pkrparser.NoMatch(), err
	}

	return e.Parse(tokens, rule)
}

// MaxTokens returns the configured token stream limit
func (e *Engine) MaxTokens() int {
	return e.options.MaxTokens
}
