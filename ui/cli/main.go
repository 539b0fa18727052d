// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Quadsolver using the Cobra
// library. It defines the root command, its flags and the main entry point
// for execution.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toeirei/quadsolver/internal/config"
	"github.com/toeirei/quadsolver/internal/core"
	"github.com/toeirei/quadsolver/internal/i18n"
	"github.com/toeirei/quadsolver/internal/input"
	"github.com/toeirei/quadsolver/internal/logging"
	"github.com/toeirei/quadsolver/internal/report"
	"github.com/toeirei/quadsolver/internal/tui"
)

// rootOptions is the state shared between the root command and its
// subcommands for a single execution.
type rootOptions struct {
	cfgFile   string
	verbose   bool
	appConfig config.Config
	mode      input.Mode
	color     report.ColorMode
}

// Execute runs the CLI entrypoint. The main package should call this function
// and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quadsolver",
		Short: "Quadsolver solves a*x^2 + b*x + c = 0 for integer coefficients.",
		Long: `Quadsolver asks for the coefficients a, b and c, validates them and
prints the real roots of a*x^2 + b*x + c = 0, or explains why there are none.

Input is read from line prompts, or from an interactive screen with a live
preview of the equation when running in a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	defaults := config.Defaults()
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolP("version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", defaults["language"].(string), fmt.Sprintf("Language of prompts and reports %v", i18n.LocaleCodes()))
	cmd.PersistentFlags().String("mode", defaults["mode"].(string), `Input mode: "auto", "prompt" or "interactive"`)
	cmd.PersistentFlags().String("color", defaults["color"].(string), `Colored reports: "auto", "always" or "never"`)
	cmd.PersistentFlags().Bool("alt-screen", defaults["alt_screen"].(bool), "Run the interactive screen in the alternate screen buffer")
	cmd.PersistentFlags().String("log-level", defaults["log_level"].(string), `Log level: "debug", "info", "warn" or "error"`)

	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))

	return cmd
}

func setupDefaultServices(cmd *cobra.Command, opts *rootOptions) error {
	logging.SetOutput(cmd.ErrOrStderr())

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	opts.appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(opts.appConfig.LogLevel); err != nil {
		return err
	}
	if opts.verbose {
		logging.SetDebug(true)
	}

	if !i18n.IsSupported(opts.appConfig.Language) {
		logging.Warnf("unsupported language %q, falling back to en", opts.appConfig.Language)
		opts.appConfig.Language = "en"
	}
	i18n.Init(opts.appConfig.Language)

	if opts.mode, err = input.ParseMode(opts.appConfig.Mode); err != nil {
		return err
	}
	if opts.color, err = report.ParseColorMode(opts.appConfig.Color); err != nil {
		return err
	}

	logging.Debugf("config: %+v", opts.appConfig)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func runSolve(cmd *cobra.Command, opts *rootOptions) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	mode := opts.mode.Resolve(func() bool { return input.IsTerminal(in, out) })
	logging.Debugf("input mode: %s", mode)

	collector := newCollector(mode, in, out, opts.appConfig.AltScreen)
	printer := report.NewPrinter(out, opts.color)

	err := core.Run(cmd.Context(), collector, printer)
	if errors.Is(err, input.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.aborted"))
	}
	return err
}

func newCollector(mode input.Mode, in io.Reader, out io.Writer, altScreen bool) input.Collector {
	if mode != input.ModeInteractive {
		return input.NewPromptCollector(in, out)
	}

	tuiOpts := []tui.Option{tui.WithAltScreen(altScreen)}
	// bubbletea manages the real terminal itself; only redirect it when the
	// command was given other streams.
	if in != io.Reader(os.Stdin) || out != io.Writer(os.Stdout) {
		tuiOpts = append(tuiOpts, tui.WithIO(in, out))
	}
	return tui.NewCollector(tuiOpts...)
}
