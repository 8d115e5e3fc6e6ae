package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arith/cli/cmd"
	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
	"github.com/ardnew/arith/pkg"
)

// CLI is the top-level command-line interface for arith.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Checked bool `default:"false" help:"Report integer overflow as an error instead of wrapping" negatable:""`
	Cache   bool `default:"true"  help:"Reuse parsed programs with identical source"              negatable:""`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Tokens cmd.Tokens `cmd:"" help:"Print the token stream of a program"`
	AST    cmd.AST    `cmd:"" help:"Print the syntax tree of a program" name:"ast"`
	REPL   cmd.REPL   `cmd:"" help:"Start an interactive session"       name:"repl"`

	Run cmd.Run `cmd:"" default:"withargs" help:"Run programs"`
}

// Run executes the arith CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		"version":               pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier:    configFilePath,
		cmd.CacheIdentifier:     cacheDir(),
		cmd.NamespaceIdentifier: baseConfig,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags are applied before parsing so that parse errors and
	// configuration warnings are already formatted as requested.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(baseConfig), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOptions(ctx,
		lang.WithLogger(log.Default()),
		lang.WithCheckedArithmetic(cli.Checked),
		lang.WithCache(cli.Cache),
	)

	return ktx.Run(ctx, &cli)
}
