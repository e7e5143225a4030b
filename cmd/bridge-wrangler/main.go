package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rick-Wilson/bridge-wrangler/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bridge-wrangler",
	Short: "bridge-wrangler - PBN deal wrangling for bridge teachers",
	Long: `bridge-wrangler reworks PBN deal files for bridge teaching and club play.

It rotates deals so a chosen seat holds the interesting hand, filters
and renumbers boards, replicates blocks for duplicate sessions,
rewrites event names, converts to LIN, and reports double-dummy
analysis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.ResolvePath(configPath))
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if cfg.Logging.Format != "json" {
			zapCfg.Encoding = "console"
		}
		level := zapcore.InfoLevel
		if err := level.Set(cfg.Logging.Level); err != nil {
			return fmt.Errorf("bad logging level %q: %w", cfg.Logging.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)

		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultFile+" or $"+config.EnvConfigPath+")")

	// Add commands to root
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(replicateCmd)
	rootCmd.AddCommand(toLinCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
