// Package cmd implements the blockconf subcommands: convert renders a
// document to a file, eval evaluates a single constant expression.
package cmd

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/blockconf/lang"
	"github.com/ardnew/blockconf/source"
)

var (
	// FormatsIdentifier is the kong variable identifier listing the supported
	// input formats.
	FormatsIdentifier = "formats"

	// MaxDepthIdentifier is the kong variable identifier containing the
	// default maximum nesting depth.
	MaxDepthIdentifier = "maxDepth"

	// IndentIdentifier is the kong variable identifier containing the default
	// number of spaces per nesting level.
	IndentIdentifier = "indent"

	// ReservedIdentifier is the kong variable identifier containing the
	// default reserved key of the constant section.
	ReservedIdentifier = "reserved"
)

// Vars returns the kong variables referenced by the command flags.
func Vars() kong.Vars {
	return kong.Vars{
		FormatsIdentifier:  strings.Join(source.Formats(), ", "),
		MaxDepthIdentifier: strconv.Itoa(lang.DefaultMaxDepth),
		IndentIdentifier:   strconv.Itoa(lang.DefaultIndent),
		ReservedIdentifier: lang.DefaultReservedKey,
	}
}
