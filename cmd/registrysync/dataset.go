package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"registrySync/internal/config"
	"registrySync/internal/dataset"
	"registrySync/internal/model"
)

func runDataset(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDataset(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	table, err := buildTable(cfg.Pools)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dataset.Render(&buf, table, cfg.Format); err != nil {
		return err
	}

	if cfg.Out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := writeFileAtomic(cfg.Out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("dataset written",
		zap.String("out", cfg.Out),
		zap.String("format", cfg.Format),
		zap.Int("deposit_pools", len(table.DepositPools)),
		zap.Int("swap_pools", len(table.SwapPools)),
	)
	return nil
}

// buildTable builds both tables and keeps the named pools from either of them.
func buildTable(names []string) (model.SyncTable, error) {
	table, err := dataset.Build(dataset.DefaultSources(), dataset.DepositLayouts(), dataset.SwapLayouts())
	if err != nil || len(names) == 0 {
		return table, err
	}

	known := make(map[string]bool)
	for _, p := range table.DepositPools {
		known[p.Name] = true
	}
	var depositNames, swapNames []string
	for _, name := range names {
		if known[name] {
			depositNames = append(depositNames, name)
		} else {
			swapNames = append(swapNames, name)
		}
	}

	var filtered model.SyncTable
	if len(depositNames) > 0 {
		if filtered.DepositPools, err = dataset.FilterDepositPools(table.DepositPools, depositNames); err != nil {
			return model.SyncTable{}, err
		}
	}
	if len(swapNames) > 0 {
		if filtered.SwapPools, err = dataset.FilterSwapPools(table.SwapPools, swapNames); err != nil {
			return model.SyncTable{}, err
		}
	}
	return filtered, nil
}

func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write output tmp: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
