// File: peg_test.go
// Title: Packrat Engine Unit Tests
// Description: Tests for the engine facade: option handling, session
//              creation with the token stream limit, parsing from token
//              streams and source strings, and configuration integration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial test suite

package peg

import (
	"bytes"
	"testing"

	pkrconfig "github.com/msto63/packrat/core/config"
	pkrerror "github.com/msto63/packrat/core/error"
	pkrlog "github.com/msto63/packrat/core/log"
	pkrparser "github.com/msto63/packrat/peg/parser"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Options
		wantMaxTokens int
	}{
		{
			name:          "Default options",
			opts:          nil,
			wantMaxTokens: DefaultMaxTokens,
		},
		{
			name:          "Custom token limit",
			opts:          []Options{{MaxTokens: 128}},
			wantMaxTokens: 128,
		},
		{
			name:          "Zero limit falls back to default",
			opts:          []Options{{MaxTokens: 0}},
			wantMaxTokens: DefaultMaxTokens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if engine.MaxTokens() != tt.wantMaxTokens {
				t.Errorf("Expected max tokens %d, got %d", tt.wantMaxTokens, engine.MaxTokens())
			}
		})
	}
}

func TestNew_AppliesLogLevel(t *testing.T) {
	t.Run("Option level filters engine output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		base := pkrlog.NewWithConfig(pkrlog.Config{
			Level:  pkrlog.LevelTrace,
			Format: pkrlog.FormatJSON,
			Output: buf,
		})

		engine, err := New(Options{Logger: base, LogLevel: pkrlog.LevelError})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		tokens, err := pkrparser.TokenizeInput("foo")
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		if _, err := engine.Parse(tokens, pkrparser.Identifier); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		// Session creation and timing messages are debug level
		if buf.Len() != 0 {
			t.Errorf("Expected debug output suppressed at error level, got %s", buf.String())
		}
	})

	t.Run("Trace option lowers the logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		base := pkrlog.NewWithConfig(pkrlog.Config{
			Level:  pkrlog.LevelError,
			Format: pkrlog.FormatJSON,
			Output: buf,
		})

		engine, err := New(Options{Logger: base, TraceEnabled: true})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		tokens, err := pkrparser.TokenizeInput("foo")
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		if _, err := engine.Parse(tokens, pkrparser.Identifier); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if buf.Len() == 0 {
			t.Error("Expected trace-enabled engine to emit debug output")
		}
	})
}

func TestEngine_NewSession_Limit(t *testing.T) {
	engine, err := New(Options{MaxTokens: 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tokens, err := pkrparser.TokenizeInput("a b c")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	_, err = engine.NewSession(tokens)
	if err == nil {
		t.Fatal("Expected error for oversized stream, got nil")
	}
	if !pkrerror.HasCode(err, pkrerror.CodeInvalidInput) {
		t.Errorf("Expected invalid input code, got %v", err)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tokens, err := pkrparser.TokenizeInput("foo")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	result, err := engine.Parse(tokens, pkrparser.Identifier)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Matched() {
		t.Error("Expected identifier to match")
	}
	if result.Value() != 0 {
		t.Errorf("Expected token index 0, got %v", result.Value())
	}
}

func TestEngine_ParseString(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		input     string
		rule      *pkrparser.Rule
		wantMatch bool
		wantErr   bool
	}{
		{
			name:      "Matching input",
			input:     "alpha, beta",
			rule:      pkrparser.NameList,
			wantMatch: true,
		},
		{
			name:      "Non-matching input",
			input:     "42",
			rule:      pkrparser.Identifier,
			wantMatch: false,
		},
		{
			name:    "Lexical error",
			input:   "foo @",
			rule:    pkrparser.Identifier,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.ParseString(tt.input, tt.rule)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  pkrconfig.Format
		want    Options
	}{
		{
			name: "TOML configuration",
			content: `[engine]
log_level = "debug"
max_tokens = 1024
trace = true
`,
			format: pkrconfig.FormatTOML,
			want: Options{
				LogLevel:     pkrlog.LevelDebug,
				MaxTokens:    1024,
				TraceEnabled: true,
			},
		},
		{
			name: "YAML configuration",
			content: `engine:
  log_level: warn
  max_tokens: 256
`,
			format: pkrconfig.FormatYAML,
			want: Options{
				LogLevel:  pkrlog.LevelWarn,
				MaxTokens: 256,
			},
		},
		{
			name:    "Missing keys use defaults",
			content: `[other]`,
			format:  pkrconfig.FormatTOML,
			want: Options{
				LogLevel:  pkrlog.LevelInfo,
				MaxTokens: DefaultMaxTokens,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pkrconfig.LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("Config load failed: %v", err)
			}

			options := OptionsFromConfig(cfg)

			if options.LogLevel != tt.want.LogLevel {
				t.Errorf("Expected log level %v, got %v", tt.want.LogLevel, options.LogLevel)
			}
			if options.MaxTokens != tt.want.MaxTokens {
				t.Errorf("Expected max tokens %d, got %d", tt.want.MaxTokens, options.MaxTokens)
			}
			if options.TraceEnabled != tt.want.TraceEnabled {
				t.Errorf("Expected trace %v, got %v", tt.want.TraceEnabled, options.TraceEnabled)
			}
		})
	}
}
