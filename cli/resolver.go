package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/blockconf/lang"
	"github.com/ardnew/blockconf/source"
)

// loadTOML is a [kong.ConfigurationLoader] for TOML configuration files.
//
// Top-level keys name flags. Hyphens and underscores are interchangeable, so
// both spellings below set --log-level:
//
//	log-level = "debug"
//	log_format = "json"
//	indent = 4
//
// Tables and arrays are ignored. Command-line flags override configuration
// values.
func loadTOML(r io.Reader) (kong.Resolver, error) {
	doc, err := source.DecodeTOML(r)
	if err != nil {
		return nil, err
	}

	cfg := make(config, doc.Len())

	for key, value := range doc.All() {
		if v, ok := flagValue(value); ok {
			cfg[strings.ReplaceAll(key, "_", "-")] = v
		}
	}

	return cfg, nil
}

// flagValue converts a scalar configuration value to the form kong expects.
func flagValue(value any) (any, bool) {
	switch v := value.(type) {
	case string, bool:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return lang.Float(v).String(), true
	default:
		return nil, false
	}
}

// config implements [kong.Resolver] over a flat map keyed by flag name.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}
