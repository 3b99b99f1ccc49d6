package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bnema/vidqa/config"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
)

var version = "dev"

var (
	cfgFile string
	verbose bool
)

type contextKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vidqa",
	Short:         "vidqa - video quality analysis",
	Long:          "Acquires videos from files or platforms, scores sampled frames and the audio track, and renders quality reports.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger.Init(verbose, cfg.LogJSON)

		cmd.SetContext(context.WithValue(cmd.Context(), contextKey{}, cfg))
		return nil
	},
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(contextKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(tokenCmd)
}
