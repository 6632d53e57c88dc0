package source

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"log/slog"
	"strings"
)

// Format identifies the syntax of an input document.
type Format uint8

// Supported input formats.
const (
	FormatTOML Format = iota // toml
	FormatYAML               // yaml
	FormatJSON               // json
)

// DefaultFormat is the input format used when none is given.
const DefaultFormat = FormatTOML

// Formats returns the names of all supported formats.
func Formats() []string {
	names := make([]string, 0, FormatJSON+1)
	for f := FormatTOML; f <= FormatJSON; f++ {
		names = append(names, f.String())
	}

	return names
}

// ParseFormat returns the format with the given case-insensitive name.
// "yml" is accepted as an alias of "yaml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return DefaultFormat, ErrUnknownFormat.With(
		slog.String("format", name),
		slog.String("want", strings.Join(Formats(), "|")),
	)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}
