// Package cli contains the command line interface for blockconf.
//
// # Usage
//
// The default command converts a document read from standard input:
//
//	blockconf -o app.conf < app.toml
//	blockconf --format yaml --input app.yaml -o app.conf
//
// The eval command evaluates one expression:
//
//	blockconf eval '@(r 2 pow)' -D r=5
//	blockconf eval 'pi r r * *' --input app.toml
//
// # Configuration
//
// Flag defaults are read from config.json and config.toml in the user
// configuration directory (for example ~/.config/blockconf). In config.toml
// top-level keys name flags, with '-' and '_' interchangeable:
//
//	log_level = "debug"
//	indent = 4
//
// Command-line flags take precedence.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorize text output (default when a terminal)
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profile kind (allocs, block, clock, cpu, ...)
//   - --pprof-dir: output directory (default: user cache dir + /pprof)
package cli
