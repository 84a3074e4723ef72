package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kumaryash98110-netizen/investcore/internal/cli/calc"
	"github.com/kumaryash98110-netizen/investcore/internal/cli/config"
	"github.com/kumaryash98110-netizen/investcore/internal/cli/holdings"
	"github.com/kumaryash98110-netizen/investcore/internal/cli/leads"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rc := &config.RootConfig{}

	cmd := &cobra.Command{
		Use:           "investcore",
		Short:         "Investcore — financial calculators and lead/holding records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags; empty values defer to the config file.
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.Storage, "storage", "", "Storage backend: memory|sqlite|redis")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite database path")
	cmd.PersistentFlags().StringVar(&rc.RedisAddr, "redis", "", "Redis address (host:port)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := rc.Resolve()
		if err != nil {
			return err
		}
		setupLogging(cfg.Logging.Level)
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		calc.New(),
		leads.New(rc),
		holdings.New(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("investcore (dev)")
		},
	})

	return cmd
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
