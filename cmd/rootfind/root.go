package main

import (
	"os"

	"github.com/spf13/cobra"

	"rootfind/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
	envFile   string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "rootfind",
		Short: "Compare bisection, Newton and secant root finding",
		Long: "rootfind runs the bisection, Newton and secant methods on nonlinear\n" +
			"equations and reports iteration counts, roots and convergence rates.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, &opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error); default $ROOTFIND_LOG_LEVEL")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json); default $ROOTFIND_LOG_FORMAT")
	f.StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before flags are resolved; missing files are ignored")

	cmd.AddCommand(
		newCompareCmd(),
		newSolveCmd(),
		newTraceCmd(),
		newScenariosCmd(),
		newServeCmd(),
	)
	return cmd
}

// setup loads the env file and configures logging. Flags set on the command
// line win over the environment.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	if err := loadDotEnv(opts.envFile); err != nil {
		return err
	}
	levelName := flagOrEnv(cmd, "log-level", opts.logLevel, envLogLevel)
	formatName := flagOrEnv(cmd, "log-format", opts.logFormat, envLogFormat)

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(formatName)
	if err != nil {
		return err
	}
	logging.Init(level, logFormat, cmd.ErrOrStderr())
	logging.New("cli").Debug("configured", "command", cmd.Name(), "level", level, "format", logFormat)
	return nil
}

// flagOrEnv returns the flag value when set explicitly, else the
// environment variable, else the flag default.
func flagOrEnv(cmd *cobra.Command, name, value, env string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return value
}
