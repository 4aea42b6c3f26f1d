package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"calculator/app"
	"calculator/calculator"
	"calculator/hal"
	"calculator/internal/buildinfo"

	"github.com/spf13/cobra"
)

type options struct {
	headless bool
	hz       int
	ticks    uint64
	scale    int
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "calculator",
		Short: "A small desktop calculator",
		Long: `A desktop calculator with digit and operator buttons.

With --headless no window is opened: keys are read from stdin
(Enter or '=' evaluates, Backspace deletes, Escape clears) and
every result is printed on its own line.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.headless, "headless", false, "Run without a window, reading keys from stdin.")
	f.IntVar(&opts.hz, "hz", 60, "Tick rate in headless mode.")
	f.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = until stdin is exhausted).")
	f.IntVar(&opts.scale, "scale", 2, "Window scale factor.")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error.")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of calculator",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calculator %s\n", buildinfo.Long())
		},
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func run(ctx context.Context, opts options) error {
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	logger.Debug("starting", "version", buildinfo.Short(), "headless", opts.headless)

	if opts.headless {
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{
			Hz:    opts.hz,
			Ticks: opts.ticks,
			Input: os.Stdin,
		}, app.Stepper(app.Config{Logger: logger, Echo: os.Stdout}))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(hal.WindowConfig{
		Title: calculator.Title,
		Scale: opts.scale,
	}, app.Stepper(app.Config{Logger: logger}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
