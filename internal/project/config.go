package project

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory unless an explicit
// path is given.
const ConfigFileName = "safenum.toml"

// Defaults is the [defaults] section of safenum.toml.
type Defaults struct {
	ResultType string `toml:"result_type"`
	Color      string `toml:"color"`
}

// Config carries tool-level settings. Zero value means "no file found".
type Config struct {
	Defaults Defaults `toml:"defaults"`
}

// ErrBadResultType indicates that [defaults].result_type names no known type.
var ErrBadResultType = errors.New("unknown result_type")

var knownResultTypes = map[string]bool{
	"int8": true, "int16": true, "int32": true, "int64": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
}

// Load reads a config file. A missing file is not an error: the zero Config
// is returned so callers fall back to built-in defaults.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("defaults") {
		return Config{}, nil
	}
	if rt := strings.TrimSpace(cfg.Defaults.ResultType); rt != "" && !knownResultTypes[rt] {
		return Config{}, fmt.Errorf("%s: %w: %q", path, ErrBadResultType, rt)
	}
	return cfg, nil
}

// ResultType returns the configured default result type, or fallback.
func (c Config) ResultType(fallback string) string {
	if rt := strings.TrimSpace(c.Defaults.ResultType); rt != "" {
		return rt
	}
	return fallback
}

// Color returns the configured color mode, or fallback.
func (c Config) Color(fallback string) string {
	if m := strings.TrimSpace(c.Defaults.Color); m != "" {
		return m
	}
	return fallback
}
