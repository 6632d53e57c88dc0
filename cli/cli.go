package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/blockconf/cli/cmd"
	"github.com/ardnew/blockconf/pkg"
)

// Configuration file names looked up in [pkg.ConfigDir].
const (
	configJSON = "config.json"
	configTOML = "config.toml"
)

// CLI is the top-level command-line interface for blockconf.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit."`

	Convert cmd.Convert `cmd:"" default:"withargs" help:"Convert a document to begin/end blocks (default)."`
	Eval    cmd.Eval    `cmd:""                    help:"Evaluate a postfix constant expression."`
}

// Run executes the blockconf CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// terminates early, for example after printing help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{"version": pkg.Name + " " + pkg.Version}.
		CloneWith(cmd.Vars()).
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure the logger before kong parses, so that parse errors are
	// reported in the requested format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pkg.ConfigPath(configJSON)),
		kong.Configuration(loadTOML, pkg.ConfigPath(configTOML)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ktx.BindTo(ctx, (*context.Context)(nil))

	cli.Log.start(ctx)

	// no-op unless built with tag pprof and a mode is selected
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
