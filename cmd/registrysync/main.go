package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"registrySync/internal/config"
	"registrySync/internal/model"
)

func main() {
	root := &cobra.Command{
		Use:          "registrysync",
		Short:        "Populate and verify the Curve pool registry",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	depositCmd := &cobra.Command{
		Use:   "deposit-pools",
		Short: "Register underlying tokens and gauges of deposit pools",
		RunE:  syncCommand(model.RunDepositPools),
	}
	addSyncFlags(depositCmd)
	root.AddCommand(depositCmd)

	swapCmd := &cobra.Command{
		Use:   "swap-pools",
		Short: "Register LP tokens, underlying tokens and capabilities of swap pools",
		RunE:  syncCommand(model.RunSwapPools),
	}
	addSyncFlags(swapCmd)
	root.AddCommand(swapCmd)

	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Print the built sync table without touching the chain",
		RunE:  runDataset,
	}
	datasetCmd.Flags().String("format", config.FormatText, "output format (text, json, yaml)")
	datasetCmd.Flags().StringSlice("pool", nil, "restrict to named pools (comma-separated)")
	datasetCmd.Flags().String("out", "", "write to file instead of stdout")
	datasetCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(datasetCmd)

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Check that every dataset token is a deployed ERC20",
		RunE:  runTokens,
	}
	tokensCmd.Flags().String("rpc", "", "Ethereum RPC URL")
	tokensCmd.Flags().String("format", config.FormatText, "output format (text, json)")
	tokensCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(tokensCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "Ethereum RPC URL")
	cmd.Flags().String("registry", "", "pool registry contract address")
	cmd.Flags().String("private-key", "", "hex private key of the registry owner")
	cmd.Flags().StringSlice("pool", nil, "restrict to named pools (comma-separated)")
	cmd.Flags().Bool("verify-only", false, "read back and compare without writing")
	cmd.Flags().Bool("skip-unchanged", false, "skip writes whose stored value already matches")
	cmd.Flags().Bool("fail-on-mismatch", true, "exit non-zero when any verification mismatches")
	cmd.Flags().Int("max-retries", 0, "retry attempts for failed reads (reverts are never retried)")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("report", "", "append observation records to this JSONL file")
	cmd.Flags().String("pg-dsn", "", "Postgres DSN for run history")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
