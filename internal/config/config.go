// Package config loads analyzer settings from a TOML file.
//
// Every field is optional; absent fields leave the built-in defaults
// untouched, which is why the boolean fields are pointers.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"csyntax/internal/context"
	"csyntax/internal/frontend/lexer"
)

// FileConfig mirrors the on-disk TOML layout.
//
//	include_comments = false
//	strict_statements = true
//	terminator = "blank"
//	extra_keywords = ["foreach", "typeof"]
type FileConfig struct {
	IncludeComments  *bool    `toml:"include_comments"`
	StrictStatements *bool    `toml:"strict_statements"`
	Terminator       string   `toml:"terminator"`
	ExtraKeywords    []string `toml:"extra_keywords"`
}

// Load reads and parses a TOML config file.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML config bytes.
func Parse(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Terminator != "" && cfg.Terminator != "end" && cfg.Terminator != "blank" {
		return nil, fmt.Errorf("invalid terminator %q: want \"end\" or \"blank\"", cfg.Terminator)
	}
	return &cfg, nil
}

// Apply overlays the file settings onto analyzer options. Fields absent
// from the file leave the options as they were.
func (c *FileConfig) Apply(opts *context.Options) {
	if c.IncludeComments != nil {
		opts.IncludeComments = *c.IncludeComments
	}
	if c.StrictStatements != nil {
		opts.StrictStatements = *c.StrictStatements
	}
	if len(c.ExtraKeywords) > 0 {
		base := opts.Dialect
		if base == nil {
			base = lexer.DefaultDialect()
		}
		opts.Dialect = base.WithKeywords(c.ExtraKeywords)
	}
}
