package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"registrySync/internal/chain"
	"registrySync/internal/config"
	"registrySync/internal/dataset"
	"registrySync/internal/metrics"
	"registrySync/internal/model"
	"registrySync/internal/registry"
	"registrySync/internal/storage"
	"registrySync/internal/storage/postgres"
	"registrySync/internal/syncer"
)

func syncCommand(kind model.RunKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runSync(ctx, kind, cfg, logger)
	}
}

func runSync(ctx context.Context, kind model.RunKind, cfg config.SyncConfig, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	registryAddr, err := chain.ParseAddress(cfg.Registry)
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	// The whole table is resolved before the chain is touched.
	entries, err := buildEntries(kind, cfg.Pools)
	if err != nil {
		return err
	}

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	chainID, err := chainClient.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsUint64() {
		return fmt.Errorf("chain id does not fit in uint64: %s", chainID)
	}

	code, err := chainClient.CodeAt(ctx, registryAddr)
	if err != nil {
		return fmt.Errorf("registry code: %w", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("no contract deployed at registry %s", registryAddr.Hex())
	}

	if !cfg.VerifyOnly {
		key, err := chain.ParsePrivateKey(cfg.PrivateKey)
		if err != nil {
			return err
		}
		if err := chainClient.SetSigner(ctx, key); err != nil {
			return fmt.Errorf("set signer: %w", err)
		}
	}

	contract, err := registry.NewContract(registryAddr, chainClient, logger)
	if err != nil {
		return err
	}

	sink, closeSink, err := openStorage(ctx, cfg, kind, registryAddr.Hex(), logger)
	if err != nil {
		return err
	}
	defer closeSink()

	recorder := metrics.NewRecorder()
	runID := uuid.NewString()

	logger.Info("sync start",
		zap.String("run_id", runID),
		zap.String("kind", string(kind)),
		zap.String("rpc", cfg.RPCURL),
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.String("registry", contract.Address().Hex()),
		zap.String("from", chainClient.From().Hex()),
		zap.Int("entries", len(entries)),
		zap.Bool("verify_only", cfg.VerifyOnly),
		zap.String("report", cfg.Report),
	)

	runner := syncer.NewRunner(syncer.Config{
		RunID:         runID,
		Kind:          kind,
		Registry:      contract.Address().Hex(),
		ChainID:       chainID.Uint64(),
		VerifyOnly:    cfg.VerifyOnly,
		SkipUnchanged: cfg.SkipUnchanged,
		MaxRetries:    cfg.MaxRetries,
		RetryBackoff:  cfg.RetryBackoff,
	}, contract, sink, logger, syncer.WithOutput(os.Stdout), syncer.WithMetrics(recorder))

	result, runErr := runner.Run(ctx, entries)

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("write metrics", zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	if cfg.FailOnMismatch && result.Summary.Mismatches > 0 {
		return fmt.Errorf("%d of %d verifications failed: %w", result.Summary.Mismatches, result.Summary.Observations, syncer.ErrMismatch)
	}
	return nil
}

func buildEntries(kind model.RunKind, names []string) ([]syncer.Entry, error) {
	src := dataset.DefaultSources()
	switch kind {
	case model.RunDepositPools:
		pools, err := dataset.BuildDepositPools(src, dataset.DepositLayouts())
		if err != nil {
			return nil, err
		}
		pools, err = dataset.FilterDepositPools(pools, names)
		if err != nil {
			return nil, err
		}
		return syncer.DepositEntries(pools), nil
	case model.RunSwapPools:
		pools, err := dataset.BuildSwapPools(src, dataset.SwapLayouts())
		if err != nil {
			return nil, err
		}
		pools, err = dataset.FilterSwapPools(pools, names)
		if err != nil {
			return nil, err
		}
		return syncer.SwapEntries(pools), nil
	default:
		return nil, fmt.Errorf("unknown run kind %q", kind)
	}
}

func openStorage(ctx context.Context, cfg config.SyncConfig, kind model.RunKind, registryHex string, logger *zap.Logger) (storage.Storage, func(), error) {
	var sinks storage.Multi
	closeFn := func() {}

	if cfg.Report != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Report))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		previous, ok, err := store.LatestRun(ctx, kind, registryHex)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		if ok {
			logger.Info("previous run",
				zap.String("run_id", previous.RunID),
				zap.String("status", previous.Status()),
				zap.Time("started_at", previous.StartedAt),
				zap.Int("mismatches", previous.Mismatches),
			)
		}
		sinks = append(sinks, store)
		closeFn = store.Close
	}
	return sinks, closeFn, nil
}
