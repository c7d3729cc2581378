//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"keynav/app"
	"keynav/hal"
	"keynav/internal/buildinfo"
	"keynav/navkit/input"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "keynav",
		Short:        "Five-button gesture and menu navigation on a 128x64 panel",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open a window; arrows move, enter selects, shift+arrow long-presses
  keynav

  # Run in the terminal
  keynav term

  # Replay a press script without a window and print the last frame
  keynav headless --fast --ticks 200 --script "DOWN@100-150,CENTER@700+60" --dump
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cfg, hal.WindowConfig{})
		},
	}

	f := cmd.PersistentFlags()
	f.Uint32Var(&cfg.Thresholds.LongPress, "long", cfg.Thresholds.LongPress, "Hold time in ms that must be exceeded for a long press")
	f.Uint32Var(&cfg.Thresholds.Short, "short", cfg.Thresholds.Short, "Longest press in ms that still counts as a click")
	f.Uint32Var(&cfg.Thresholds.Double, "double", cfg.Thresholds.Double, "Double-click window in ms")
	f.BoolVar(&cfg.Debug, "debug", false, "Log every gesture")
	f.BoolVar(&cfg.ResetOnBack, "reset-on-back", false, "Put the menu cursor at the top after going back")
	f.IntVar(&cfg.MaxLogLines, "log-lines", cfg.MaxLogLines, "Lines kept by the event log screen")

	cmd.AddCommand(newWindowCmd(&cfg))
	cmd.AddCommand(newTermCmd(&cfg))
	cmd.AddCommand(newHeadlessCmd(&cfg))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newApp(cfg app.Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error { return app.New(h, cfg) }
}

func runWindow(cfg app.Config, wc hal.WindowConfig) error {
	return hal.RunWindow(newApp(cfg), wc)
}

func newWindowCmd(cfg *app.Config) *cobra.Command {
	var wc hal.WindowConfig
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the panel in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(*cfg, wc)
		},
	}
	cmd.Flags().IntVar(&wc.Scale, "scale", 4, "Window pixels per panel pixel")
	cmd.Flags().IntVar(&wc.TPS, "tps", 100, "Poll rate in ticks per second")
	return cmd
}

func newTermCmd(cfg *app.Config) *cobra.Command {
	var tc hal.TermConfig
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show the panel in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return hal.RunTerminal(cmd.Context(), newApp(*cfg), tc)
		},
	}
	cmd.Flags().IntVar(&tc.Hz, "hz", 60, "Poll rate")
	cmd.Flags().DurationVar(&tc.Hold, "hold", 0, "How long a key press holds its button (0 = default)")
	cmd.Flags().IntVar(&tc.LogLines, "log", 4, "Log lines shown under the panel")
	return cmd
}

func newHeadlessCmd(cfg *app.Config) *cobra.Command {
	var (
		hc     hal.HeadlessConfig
		script string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run on a virtual clock without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presses, err := input.ParseScript(script)
			if err != nil {
				return err
			}
			hc.Script = presses
			hc.Out = cmd.OutOrStdout()
			return hal.RunHeadless(cmd.Context(), newApp(*cfg), hc)
		},
	}
	cmd.Flags().IntVar(&hc.Hz, "hz", 100, "Tick rate")
	cmd.Flags().Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N ticks (0 = run forever)")
	cmd.Flags().Uint32Var(&hc.StepMillis, "step", 0, "Virtual ms per tick (0 = 1000/hz)")
	cmd.Flags().BoolVar(&hc.Fast, "fast", false, "Run ticks back to back")
	cmd.Flags().StringVar(&script, "script", "", "Press schedule: NAME@START-END or NAME@START+DUR, comma separated")
	cmd.Flags().BoolVar(&hc.Dump, "dump", false, "Print the last frame on exit")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
