package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"registrySync/internal/model"
	"registrySync/internal/registry"
	"registrySync/internal/storage"
)

// ObservedValueReverted is recorded when a read-back call reverts.
const ObservedValueReverted = "reverted"

// Config holds runtime settings for one synchronization run.
type Config struct {
	RunID    string
	Kind     model.RunKind
	Registry string
	ChainID  uint64

	// VerifyOnly skips every write and only reads back and compares.
	VerifyOnly bool
	// SkipUnchanged reads each key first and leaves it alone when it already matches.
	SkipUnchanged bool

	MaxRetries   int
	RetryBackoff time.Duration
}

// Metrics receives per-write, per-observation and per-run events.
type Metrics interface {
	ObserveWrite(run model.RunKind, kind model.ObservationKind, elapsed time.Duration, err error)
	ObserveObservation(run model.RunKind, obs model.Observation)
	ObserveRun(summary model.RunSummary)
}

// Result is what a run produced, also on failure.
type Result struct {
	Summary      model.RunSummary
	Observations []model.Observation
}

// Runner drives the registry to match a list of entries and verifies every key it wrote.
type Runner struct {
	cfg     Config
	ledger  registry.Ledger
	storage storage.Storage
	metrics Metrics
	out     io.Writer
	logger  *zap.Logger
	now     func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

// WithMetrics reports run events to m.
func WithMetrics(m Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithOutput prints one operator line per observation to w.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg Config, ledger registry.Ledger, sink storage.Storage, logger *zap.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = storage.Discard{}
	}
	r := &Runner{
		cfg:     cfg,
		ledger:  ledger,
		storage: sink,
		out:     io.Discard,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes entries in order. Mismatches are recorded and the run continues;
// a write failure or an unusable read stops it. Observations emitted before
// the failure are still returned and stored.
func (r *Runner) Run(ctx context.Context, entries []Entry) (Result, error) {
	if r.ledger == nil {
		return Result{}, fmt.Errorf("ledger is nil")
	}

	result := Result{Summary: model.RunSummary{
		RunID:     r.cfg.RunID,
		Kind:      r.cfg.Kind,
		Registry:  r.cfg.Registry,
		ChainID:   r.cfg.ChainID,
		StartedAt: r.now().UTC(),
	}}
	r.logger.Info("run started",
		zap.String("run_id", r.cfg.RunID),
		zap.String("kind", string(r.cfg.Kind)),
		zap.String("registry", r.cfg.Registry),
		zap.Int("entries", len(entries)),
		zap.Bool("verify_only", r.cfg.VerifyOnly),
		zap.Bool("skip_unchanged", r.cfg.SkipUnchanged),
	)

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return r.finish(ctx, result, ctx.Err())
		default:
		}

		observations, err := r.syncEntry(ctx, entry, &result.Summary)
		result.Observations = append(result.Observations, observations...)
		if err != nil {
			return r.finish(ctx, result, err)
		}
		result.Summary.Entries++
	}

	return r.finish(ctx, result, nil)
}

type stepState struct {
	skipped bool
	txHash  string
}

func (r *Runner) syncEntry(ctx context.Context, entry Entry, summary *model.RunSummary) ([]model.Observation, error) {
	logger := r.logger.With(zap.String("entry", entry.Name), zap.String("pool", entry.Pool.Hex()))
	states := make([]stepState, len(entry.Steps))

	for i, step := range entry.Steps {
		if r.cfg.VerifyOnly {
			states[i].skipped = true
			summary.SkippedWrites++
			continue
		}
		if r.cfg.SkipUnchanged {
			current, err := r.read(ctx, step)
			if err != nil && !registry.IsReverted(err) {
				return nil, &ReadError{Entry: entry.Name, Kind: step.Kind, Err: err}
			}
			if err == nil && current == step.Expected {
				logger.Debug("write skipped, value unchanged", zap.String("kind", string(step.Kind)))
				states[i].skipped = true
				summary.SkippedWrites++
				continue
			}
		}

		started := r.now()
		conf, err := step.Write(ctx, r.ledger)
		if r.metrics != nil {
			r.metrics.ObserveWrite(r.cfg.Kind, step.Kind, r.now().Sub(started), err)
		}
		if err != nil {
			logger.Error("write failed", zap.String("kind", string(step.Kind)), zap.Error(err))
			return nil, &WriteError{Entry: entry.Name, Kind: step.Kind, Err: err}
		}
		summary.Writes++
		states[i].txHash = conf.TxHash.Hex()
		logger.Info("write confirmed",
			zap.String("kind", string(step.Kind)),
			zap.String("tx", conf.TxHash.Hex()),
			zap.Uint64("block", conf.BlockNumber),
			zap.Uint64("gas_used", conf.GasUsed),
		)
	}

	observations := make([]model.Observation, 0, len(entry.Steps))
	records := make([]model.ObservationRecord, 0, len(entry.Steps))
	var stopErr error
	for i, step := range entry.Steps {
		observed, err := r.read(ctx, step)
		if err != nil {
			if !registry.IsReverted(err) {
				logger.Error("read failed", zap.String("kind", string(step.Kind)), zap.Error(err))
				stopErr = &ReadError{Entry: entry.Name, Kind: step.Kind, Err: err}
				break
			}
			logger.Warn("read reverted", zap.String("kind", string(step.Kind)), zap.Error(err))
			observed = ObservedValueReverted
		}

		obs := model.Observation{
			Entry:    entry.Name,
			Pool:     entry.Pool.Hex(),
			Kind:     step.Kind,
			Expected: step.Expected,
			Observed: observed,
			Matched:  observed == step.Expected,
		}
		observations = append(observations, obs)
		records = append(records, r.record(obs, states[i]))

		summary.Observations++
		if !obs.Matched {
			summary.Mismatches++
			logger.Warn("verification mismatch",
				zap.String("kind", string(step.Kind)),
				zap.String("expected", obs.Expected),
				zap.String("observed", obs.Observed),
			)
		}
		if r.metrics != nil {
			r.metrics.ObserveObservation(r.cfg.Kind, obs)
		}
		if _, err := fmt.Fprintln(r.out, obs.String()); err != nil {
			stopErr = fmt.Errorf("print observation: %w", err)
			break
		}
	}

	// Everything already printed and counted is stored, also when the entry stopped early.
	if err := r.storage.PutObservations(context.WithoutCancel(ctx), records); err != nil {
		if stopErr != nil {
			logger.Error("store observations", zap.Error(err))
			return observations, stopErr
		}
		return observations, fmt.Errorf("store observations: %w", err)
	}
	return observations, stopErr
}

func (r *Runner) read(ctx context.Context, step Step) (string, error) {
	var value string
	err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, isTransient, func(ctx context.Context) error {
		v, err := step.Read(ctx, r.ledger)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}

func isTransient(err error) bool {
	return !registry.IsReverted(err) && !isContextError(err)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (r *Runner) record(obs model.Observation, state stepState) model.ObservationRecord {
	rec := model.ObservationRecord{
		Observation:  obs,
		RunID:        r.cfg.RunID,
		RunKind:      r.cfg.Kind,
		Registry:     r.cfg.Registry,
		WriteSkipped: state.skipped,
		RecordedAt:   r.now().UTC().Format(time.RFC3339Nano),
	}
	if state.txHash != "" {
		rec.TxHashes = []string{state.txHash}
	}
	return rec
}

func (r *Runner) finish(ctx context.Context, result Result, runErr error) (Result, error) {
	result.Summary.FinishedAt = r.now().UTC()
	if runErr != nil {
		result.Summary.Err = runErr.Error()
	}
	if r.metrics != nil {
		r.metrics.ObserveRun(result.Summary)
	}
	// The summary is stored even when the run context was canceled.
	if err := r.storage.PutRun(context.WithoutCancel(ctx), result.Summary); err != nil {
		r.logger.Error("store run summary", zap.Error(err))
		if runErr == nil {
			runErr = fmt.Errorf("store run summary: %w", err)
			result.Summary.Err = runErr.Error()
		}
	}

	s := result.Summary
	r.logger.Info("run finished",
		zap.String("run_id", s.RunID),
		zap.String("status", s.Status()),
		zap.Int("entries", s.Entries),
		zap.Int("writes", s.Writes),
		zap.Int("skipped_writes", s.SkippedWrites),
		zap.Int("observations", s.Observations),
		zap.Int("mismatches", s.Mismatches),
		zap.Duration("elapsed", s.FinishedAt.Sub(s.StartedAt)),
	)
	return result, runErr
}
