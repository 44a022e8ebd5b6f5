package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registrySync/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS sync_runs (
	run_id          TEXT PRIMARY KEY,
	run_kind        TEXT NOT NULL,
	registry        TEXT NOT NULL,
	chain_id        BIGINT NOT NULL,
	status          TEXT NOT NULL,
	started_at      TIMESTAMPTZ NOT NULL,
	finished_at     TIMESTAMPTZ NOT NULL,
	entries         INTEGER NOT NULL,
	writes          INTEGER NOT NULL,
	skipped_writes  INTEGER NOT NULL,
	observations    INTEGER NOT NULL,
	mismatches      INTEGER NOT NULL,
	error           TEXT NOT NULL DEFAULT '',
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS sync_runs_kind_started_idx ON sync_runs (run_kind, started_at DESC);
CREATE TABLE IF NOT EXISTS sync_observations (
	run_id          TEXT NOT NULL,
	entry           TEXT NOT NULL,
	kind            TEXT NOT NULL,
	pool_address    TEXT NOT NULL,
	expected        TEXT NOT NULL,
	observed        TEXT NOT NULL,
	matched         BOOLEAN NOT NULL,
	write_skipped   BOOLEAN NOT NULL,
	tx_hashes       TEXT[] NOT NULL DEFAULT '{}',
	recorded_at     TEXT NOT NULL,
	PRIMARY KEY (run_id, entry, kind)
);
`

// Store provides Postgres persistence for synchronization history.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the history tables when they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PutObservations inserts or updates observation rows of a run.
func (s *Store) PutObservations(ctx context.Context, records []model.ObservationRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range records {
		txHashes := r.TxHashes
		if txHashes == nil {
			txHashes = []string{}
		}
		batch.Queue(`
			INSERT INTO sync_observations (
				run_id, entry, kind, pool_address, expected, observed, matched, write_skipped, tx_hashes, recorded_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (run_id, entry, kind)
			DO UPDATE SET
				pool_address = EXCLUDED.pool_address,
				expected = EXCLUDED.expected,
				observed = EXCLUDED.observed,
				matched = EXCLUDED.matched,
				write_skipped = EXCLUDED.write_skipped,
				tx_hashes = EXCLUDED.tx_hashes,
				recorded_at = EXCLUDED.recorded_at
		`,
			r.RunID,
			r.Entry,
			string(r.Kind),
			r.Pool,
			r.Expected,
			r.Observed,
			r.Matched,
			r.WriteSkipped,
			txHashes,
			r.RecordedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert observation: %w", err)
		}
	}
	return nil
}

// PutRun upserts the summary row of a run.
func (s *Store) PutRun(ctx context.Context, summary model.RunSummary) error {
	if summary.RunID == "" {
		return fmt.Errorf("run id required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sync_runs (
			run_id, run_kind, registry, chain_id, status, started_at, finished_at,
			entries, writes, skipped_writes, observations, mismatches, error, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now())
		ON CONFLICT (run_id) DO UPDATE SET
			status = EXCLUDED.status,
			finished_at = EXCLUDED.finished_at,
			entries = EXCLUDED.entries,
			writes = EXCLUDED.writes,
			skipped_writes = EXCLUDED.skipped_writes,
			observations = EXCLUDED.observations,
			mismatches = EXCLUDED.mismatches,
			error = EXCLUDED.error,
			updated_at = now()
	`,
		summary.RunID,
		string(summary.Kind),
		summary.Registry,
		int64(summary.ChainID),
		summary.Status(),
		summary.StartedAt,
		summary.FinishedAt,
		summary.Entries,
		summary.Writes,
		summary.SkippedWrites,
		summary.Observations,
		summary.Mismatches,
		summary.Err,
	)
	if err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}
	return nil
}

// LatestRun returns the most recent run of a kind against a registry.
func (s *Store) LatestRun(ctx context.Context, kind model.RunKind, registry string) (model.RunSummary, bool, error) {
	var (
		summary    model.RunSummary
		chainID    int64
		runKind    string
		startedAt  time.Time
		finishedAt time.Time
	)
	row := s.pool.QueryRow(ctx, `
		SELECT run_id, run_kind, registry, chain_id, started_at, finished_at,
			entries, writes, skipped_writes, observations, mismatches, error
		FROM sync_runs
		WHERE run_kind = $1 AND registry = $2
		ORDER BY started_at DESC
		LIMIT 1
	`, string(kind), registry)
	err := row.Scan(
		&summary.RunID, &runKind, &summary.Registry, &chainID, &startedAt, &finishedAt,
		&summary.Entries, &summary.Writes, &summary.SkippedWrites, &summary.Observations, &summary.Mismatches, &summary.Err,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RunSummary{}, false, nil
		}
		return model.RunSummary{}, false, fmt.Errorf("load latest run: %w", err)
	}
	summary.Kind = model.RunKind(runKind)
	summary.ChainID = uint64(chainID)
	summary.StartedAt = startedAt
	summary.FinishedAt = finishedAt
	return summary, true, nil
}
