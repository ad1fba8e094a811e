package cmd

import (
	"context"
	"io"
	"os"

	"github.com/grovetools/hyprdispatch/cli"
	"github.com/grovetools/hyprdispatch/command"
	"github.com/grovetools/hyprdispatch/config"
	"github.com/grovetools/hyprdispatch/logging"
	"github.com/grovetools/hyprdispatch/pkg/dispatch"
	"github.com/grovetools/hyprdispatch/pkg/hyprctl"
	"github.com/grovetools/hyprdispatch/pkg/session"
	"github.com/grovetools/hyprdispatch/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ProgramName is the command name used in help and diagnostics.
const ProgramName = "hyprdispatch"

const longHelp = `Run Hyprland control actions in the order they are given.

The target instance comes from HYPRLAND_INSTANCE_SIGNATURE. When it is unset,
the first entry of $XDG_RUNTIME_DIR/hypr (in lexical order) is used and
exported to every hyprctl process.

Execution stops at the first action that fails.`

const examples = `hyprdispatch --workspace 3
hyprdispatch --workspace 2 --fullscreen toggle
hyprdispatch --monitor DP-1 --move-window 4 --workspace 4
hyprdispatch --print-signature`

// Options are the process-level inputs of a run.
type Options struct {
	Env    config.Environment
	Stdout io.Writer
	Stderr io.Writer
	// Builder overrides the command builder, e.g. to substitute an executor.
	Builder *command.SafeBuilder
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Builder == nil {
		o.Builder = command.NewSafeBuilder()
	}
	return o
}

type runner struct {
	opts    Options
	verbose bool
}

// NewRootCmd creates the hyprdispatch command.
func NewRootCmd(opts Options) *cobra.Command {
	r := &runner{opts: opts.withDefaults()}
	return r.command()
}

func (r *runner) command() *cobra.Command {
	cmd := cli.NewStandardCommand(ProgramName+" [options]", "Dispatch ordered actions to a running Hyprland instance")
	cmd.Long = longHelp
	cmd.Example = examples
	cmd.SetOut(r.opts.Stdout)
	cmd.SetErr(r.opts.Stderr)
	DefineFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		inv, err := ParseArgs(cmd.Flags(), args)
		if err != nil {
			return err
		}
		r.verbose = inv.Verbose

		switch {
		case inv.Help:
			return cmd.Help()
		case inv.Version:
			cli.PrintVersion(r.opts.Stdout, ProgramName, version.GetInfo())
			return nil
		}
		return r.run(cmd.Context(), inv)
	}
	return cmd
}

func (r *runner) run(ctx context.Context, inv Invocation) error {
	env := r.opts.Env
	logOpts := logging.Options{
		Verbose:       inv.Verbose,
		LevelOverride: env.Get(config.EnvLogLevel),
		Stderr:        r.opts.Stderr,
	}

	// The logging section lives in the config file, so loading it is
	// logged through a bootstrap logger.
	bootstrap, closeBootstrap := logging.New("config", logging.Config{}, logOpts)
	cfg, cfgPath, err := loadConfig(env, inv.ConfigPath, bootstrap)
	_ = closeBootstrap()
	if err != nil {
		return err
	}

	var logCfg logging.Config
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		return err
	}
	logger, closeLogger := logging.New(ProgramName, logCfg, logOpts)
	defer closeLogger()

	logger.WithFields(logrus.Fields{
		"config":  cfgPath,
		"tool":    cfg.ControlTool,
		"actions": inv.Queue.Len(),
	}).Debug("Starting dispatch")

	client, err := hyprctl.NewClientWithBuilder(cfg.ControlTool, r.opts.Builder, logger.WithField("component", "hyprctl"))
	if err != nil {
		return err
	}

	sess, err := session.NewResolver(env, logger.WithField("component", "session")).Resolve()
	if err != nil {
		return err
	}

	client, err = client.WithEnv(sess.ChildEnv()...)
	if err != nil {
		return err
	}

	d := dispatch.New(client, cli.NewProgressReporter(r.opts.Stdout), logger.WithField("component", "dispatch"))
	_, err = d.Run(ctx, sess, inv.Queue)
	return err
}

func loadConfig(env config.Environment, explicit string, logger *logrus.Entry) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		return cfg, explicit, err
	}
	return config.LoadDefault(env, logger)
}

// Execute runs the command with args and returns the process exit code.
// Errors are reported on opts.Stderr.
func Execute(ctx context.Context, args []string, opts Options) int {
	r := &runner{opts: opts.withDefaults()}
	cmd := r.command()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		cli.NewErrorHandler(r.opts.Stderr, ProgramName, r.verbose).Handle(err)
	}
	return cli.ExitCode(err)
}
