package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *types.Config

	rootCmd := &cobra.Command{
		Use:          project.Name,
		Short:        "Calculator engine exposed as MCP tools over stdio",
		Version:      project.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if _, err := logging.Setup(cmd.ErrOrStderr(), loaded.LogLevel, loaded.LogFormat); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve calculator tools over stdio (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "press <keys>...",
			Short: "Press keys on a fresh calculator and print the resulting state as JSON",
			Example: "  calc-mcp press '2+3*4='\n" +
				"  calc-mcp press 1 . 5 '×' 2 =",
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPress(cmd, strings.Join(args, " "))
			},
		},
	)

	return rootCmd
}

func runServe(ctx context.Context, cfg *types.Config) error {
	if err := server.NewCalcServer(cfg).Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runPress(cmd *cobra.Command, script string) error {
	keys, err := keypad.Parse(script)
	if err != nil {
		return fmt.Errorf("failed to parse keys: %w", err)
	}

	engine := calculator.New()
	if err := keypad.Press(engine, keys); err != nil {
		return fmt.Errorf("failed to press keys: %w", err)
	}
	state := engine.Snapshot()

	out, err := json.MarshalIndent(results.PressKeysResult{
		Keys:    keypad.Format(keys),
		Count:   len(keys),
		State:   results.NewCalculatorStateResult(state),
		History: results.NewHistoryResult(state.History),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
