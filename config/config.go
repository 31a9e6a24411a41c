// Package config loads the YAML configuration of the startup generator.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"goa.design/chunkstartup"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/codegen/startup"
	"goa.design/chunkstartup/runtime/globals"
	"goa.design/clue/log"
	"gopkg.in/yaml.v3"
)

// Log formats.
const (
	LogFormatTerminal = "terminal"
	LogFormatText     = "text"
	LogFormatJSON     = "json"
)

type (
	// Config is the generator configuration.
	Config struct {
		// AsyncChunkLoading selects promise based loading. Nil means true.
		AsyncChunkLoading *bool `yaml:"asyncChunkLoading,omitempty"`
		// Target is the deployment target, "node" renders ids as relative
		// paths.
		Target string `yaml:"target,omitempty"`
		// Environment describes the output environment.
		Environment EnvironmentConfig `yaml:"environment"`
		// Symbols overrides runtime symbol names.
		Symbols globals.Symbols `yaml:"symbols,omitempty"`
		// Verify parses every generated module.
		Verify bool `yaml:"verify"`
		// Minify strips insignificant whitespace from generated modules.
		Minify bool `yaml:"minify"`
		// Log configures logging.
		Log LogConfig `yaml:"log"`
	}

	// EnvironmentConfig describes the output environment.
	EnvironmentConfig struct {
		ArrowFunction bool `yaml:"arrowFunction"`
	}

	// LogConfig configures clue logging.
	LogConfig struct {
		// Format is one of terminal, text or json. Empty means terminal.
		Format string `yaml:"format,omitempty"`
		Debug  bool   `yaml:"debug"`
	}
)

// Default returns the default configuration.
func Default() *Config {
	async := true
	return &Config{
		AsyncChunkLoading: &async,
		Verify:            true,
		Log:               LogConfig{Format: LogFormatTerminal},
	}
}

// Load reads the configuration at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the log format and symbol overrides.
func (c *Config) Validate() error {
	var errs []error
	switch c.Log.Format {
	case "", LogFormatTerminal, LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	for _, f := range []struct{ name, value string }{
		{"startup", c.Symbols.Startup},
		{"ensureChunk", c.Symbols.EnsureChunk},
		{"ensureChunkIncludeEntries", c.Symbols.EnsureChunkIncludeEntries},
		{"require", c.Symbols.Require},
		{"aggregateWait", c.Symbols.AggregateWait},
	} {
		if strings.ContainsAny(f.value, "\n\r") {
			errs = append(errs, fmt.Errorf("symbols.%s: must be a single line", f.name))
		}
	}
	return errors.Join(errs...)
}

// Async reports whether promise based loading is enabled.
func (c *Config) Async() bool {
	return c.AsyncChunkLoading == nil || *c.AsyncChunkLoading
}

// Options returns the plugin options described by c. Telemetry fields are
// left for the caller to fill.
func (c *Config) Options() chunkstartup.Options {
	async := c.Async()
	return chunkstartup.Options{
		AsyncChunkLoading: &async,
		Target:            startup.Target(c.Target),
		Symbols:           c.Symbols,
		Environment:       jstemplate.Environment{ArrowFunction: c.Environment.ArrowFunction},
		Verify:            c.Verify,
		Minify:            c.Minify,
	}
}

// LogContext returns ctx configured with the clue log settings of c.
func (c *Config) LogContext(ctx context.Context) context.Context {
	format := log.FormatTerminal
	switch c.Log.Format {
	case LogFormatText:
		format = log.FormatText
	case LogFormatJSON:
		format = log.FormatJSON
	}
	ctx = log.Context(ctx, log.WithFormat(format))
	if c.Log.Debug {
		ctx = log.Context(ctx, log.WithDebug())
	}
	return ctx
}
