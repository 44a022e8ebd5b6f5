package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"registrySync/internal/chain"
	"registrySync/internal/config"
	"registrySync/internal/dataset"
	"registrySync/internal/tokens"
)

func runTokens(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadTokens(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	table, err := tokenTable(dataset.DefaultSources())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	checks, err := tokens.CheckAll(ctx, chainClient, table, logger)
	if err != nil {
		return err
	}

	failed := 0
	for _, c := range checks {
		if !c.OK() {
			failed++
			logger.Error("token check failed", zap.String("token", c.Name), zap.String("address", c.Address), zap.String("error", c.Err))
		} else if !c.SymbolMatches {
			logger.Warn("token symbol differs", zap.String("token", c.Name), zap.String("symbol", c.Symbol))
		}
	}
	if err := printChecks(os.Stdout, checks, cfg.Format); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tokens failed the check", failed, len(checks))
	}
	return nil
}

func tokenTable(src dataset.Sources) (map[string]common.Address, error) {
	table := make(map[string]common.Address, len(src.Tokens))
	for name, hex := range src.Tokens {
		addr, err := chain.ParseAddress(hex)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", name, err)
		}
		table[name] = addr
	}
	return table, nil
}

func printChecks(w io.Writer, checks []tokens.Check, format string) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(checks)
	}
	for _, c := range checks {
		status := "ok"
		if !c.OK() {
			status = "failed: " + c.Err
		}
		if _, err := fmt.Fprintf(w, "%s %s symbol=%s decimals=%d %s\n", c.Name, c.Address, c.Symbol, c.Decimals, status); err != nil {
			return err
		}
	}
	return nil
}
