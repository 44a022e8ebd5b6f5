package syncer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"registrySync/internal/dataset"
	"registrySync/internal/model"
	"registrySync/internal/registry"
)

var (
	daiAddr  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	usdcAddr = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

func depositPools(t *testing.T, names ...string) []model.DepositPool {
	t.Helper()
	pools, err := dataset.BuildDepositPools(dataset.DefaultSources(), dataset.DepositLayouts())
	require.NoError(t, err)
	if len(names) == 0 {
		return pools
	}
	pools, err = dataset.FilterDepositPools(pools, names)
	require.NoError(t, err)
	return pools
}

func swapPools(t *testing.T, names ...string) []model.SwapPool {
	t.Helper()
	pools, err := dataset.BuildSwapPools(dataset.DefaultSources(), dataset.SwapLayouts())
	require.NoError(t, err)
	if len(names) == 0 {
		return pools
	}
	pools, err = dataset.FilterSwapPools(pools, names)
	require.NoError(t, err)
	return pools
}

type memSink struct {
	mu      sync.Mutex
	records []model.ObservationRecord
	runs    []model.RunSummary
	err     error
}

func (s *memSink) PutObservations(_ context.Context, records []model.ObservationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, records...)
	return nil
}

func (s *memSink) PutRun(_ context.Context, summary model.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, summary)
	return nil
}

type countingMetrics struct {
	writes       int
	failedWrites int
	observations int
	runs         []model.RunSummary
}

func (m *countingMetrics) ObserveWrite(_ model.RunKind, _ model.ObservationKind, _ time.Duration, err error) {
	if err != nil {
		m.failedWrites++
		return
	}
	m.writes++
}

func (m *countingMetrics) ObserveObservation(model.RunKind, model.Observation) {
	m.observations++
}

func (m *countingMetrics) ObserveRun(summary model.RunSummary) {
	m.runs = append(m.runs, summary)
}

// flakyLedger fails gauge reads with a transport error a fixed number of times.
type flakyLedger struct {
	*registry.MemoryLedger
	failures int
	calls    int
}

func (f *flakyLedger) Gauge(ctx context.Context, pool common.Address) (common.Address, error) {
	f.calls++
	if f.calls <= f.failures {
		return common.Address{}, errors.New("connection reset by peer")
	}
	return f.MemoryLedger.Gauge(ctx, pool)
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestRunCompoundDepositPool(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	sink := &memSink{}
	metrics := &countingMetrics{}
	var out bytes.Buffer

	runner := NewRunner(Config{RunID: "run-1", Kind: model.RunDepositPools, Registry: "0xregistry"}, ledger, sink, zap.NewNop(),
		WithOutput(&out), WithMetrics(metrics))
	result, err := runner.Run(context.Background(), DepositEntries(depositPools(t, "COMPOUND_DEPOSIT_POOL")))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"COMPOUND_DEPOSIT_POOL underlyingTokens assertion result is true",
		"COMPOUND_DEPOSIT_POOL gauge assertion result is true",
	}, lines(&out))

	pool := depositPools(t, "COMPOUND_DEPOSIT_POOL")[0]
	last, err := ledger.UnderlyingTokenAt(context.Background(), pool.Address, 1)
	require.NoError(t, err)
	assert.Equal(t, usdcAddr, last)
	first, err := ledger.UnderlyingTokenAt(context.Background(), pool.Address, 0)
	require.NoError(t, err)
	assert.Equal(t, daiAddr, first)
	gauge, err := ledger.Gauge(context.Background(), pool.Address)
	require.NoError(t, err)
	assert.Equal(t, *pool.Gauge, gauge)

	writes := ledger.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, "setUnderlyingTokens", writes[0].Method)
	assert.Equal(t, "setGauge", writes[1].Method)

	s := result.Summary
	assert.True(t, s.OK())
	assert.Equal(t, 1, s.Entries)
	assert.Equal(t, 2, s.Writes)
	assert.Equal(t, 2, s.Observations)
	assert.Equal(t, "run-1", s.RunID)

	require.Len(t, sink.records, 2)
	assert.Equal(t, "run-1", sink.records[0].RunID)
	assert.Len(t, sink.records[0].TxHashes, 1)
	assert.False(t, sink.records[0].WriteSkipped)
	require.Len(t, sink.runs, 1)
	assert.Equal(t, "ok", sink.runs[0].Status())

	assert.Equal(t, 2, metrics.writes)
	assert.Equal(t, 2, metrics.observations)
	require.Len(t, metrics.runs, 1)
}

func TestRunPoolWithoutGaugeWritesOnlyUnderlying(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	var out bytes.Buffer

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil, WithOutput(&out)).
		Run(context.Background(), DepositEntries(depositPools(t, "LINKUSD_DEPOSIT_POOL")))
	require.NoError(t, err)

	assert.Equal(t, []string{"LINKUSD_DEPOSIT_POOL underlyingTokens assertion result is true"}, lines(&out))
	assert.Len(t, ledger.Writes(), 1)
	assert.Equal(t, 1, result.Summary.Observations)
}

func TestRunFullTablesMatch(t *testing.T) {
	ledger := registry.NewMemoryLedger()

	deposit, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil).
		Run(context.Background(), DepositEntries(depositPools(t)))
	require.NoError(t, err)
	assert.Zero(t, deposit.Summary.Mismatches)
	assert.Equal(t, len(dataset.DepositLayouts()), deposit.Summary.Entries)

	swap, err := NewRunner(Config{Kind: model.RunSwapPools}, ledger, nil, nil).
		Run(context.Background(), SwapEntries(swapPools(t)))
	require.NoError(t, err)
	assert.Zero(t, swap.Summary.Mismatches)
	assert.Equal(t, 3*len(dataset.SwapLayouts()), swap.Summary.Observations)
}

func TestRunSwapPoolWritesEveryKey(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	var out bytes.Buffer

	_, err := NewRunner(Config{Kind: model.RunSwapPools}, ledger, nil, nil, WithOutput(&out)).
		Run(context.Background(), SwapEntries(swapPools(t, "THREE_SWAP_POOL")))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"THREE_SWAP_POOL lpToken assertion result is true",
		"THREE_SWAP_POOL underlyingTokens assertion result is true",
		"THREE_SWAP_POOL hasRemoveLiquidityOneCoin assertion result is true",
	}, lines(&out))

	pool := swapPools(t, "THREE_SWAP_POOL")[0]
	ok, err := ledger.SwapPoolHasRemoveLiquidityOneCoin(context.Background(), pool.Address)
	require.NoError(t, err)
	assert.True(t, ok)
	lp, err := ledger.SwapPoolLPToken(context.Background(), pool.Address)
	require.NoError(t, err)
	assert.Equal(t, pool.LPToken, lp)
}

func TestRunIsIdempotent(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	entries := DepositEntries(depositPools(t))

	first, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil).Run(context.Background(), entries)
	require.NoError(t, err)
	second, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil).Run(context.Background(), entries)
	require.NoError(t, err)

	assert.Equal(t, first.Observations, second.Observations)
	assert.Equal(t, 2*first.Summary.Writes, len(ledger.Writes()))
}

func TestRunWriteRevertStopsRun(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	pools := depositPools(t)
	require.GreaterOrEqual(t, len(pools), 3)
	ledger.Reject(pools[1].Address)
	sink := &memSink{}
	var out bytes.Buffer

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, sink, nil, WithOutput(&out)).
		Run(context.Background(), DepositEntries(pools))
	require.Error(t, err)

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, pools[1].Name, writeErr.Entry)
	assert.Equal(t, model.KindUnderlyingTokens, writeErr.Kind)
	assert.True(t, errors.Is(err, registry.ErrReverted))

	for _, obs := range result.Observations {
		assert.Equal(t, pools[0].Name, obs.Entry)
	}
	assert.NotEmpty(t, result.Observations)
	assert.Equal(t, 1, result.Summary.Entries)
	assert.Equal(t, "failed", result.Summary.Status())
	for _, w := range ledger.Writes() {
		assert.NotEqual(t, pools[2].Address, w.Pool, "no write after the failure")
	}
	require.Len(t, sink.runs, 1)
	assert.NotEmpty(t, sink.runs[0].Err)
	assert.NotContains(t, out.String(), pools[1].Name)
}

func TestRunRecordsMismatchAndContinues(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	pools := depositPools(t, "COMPOUND_DEPOSIT_POOL", "USDT_DEPOSIT_POOL")
	ledger.Ignore(pools[0].Address)
	var out bytes.Buffer

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil, WithOutput(&out)).
		Run(context.Background(), DepositEntries(pools))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.Entries)
	assert.Equal(t, 2, result.Summary.Mismatches)
	assert.Equal(t, "mismatch", result.Summary.Status())
	assert.False(t, result.Summary.OK())

	require.GreaterOrEqual(t, len(result.Observations), 3)
	underlying := result.Observations[0]
	assert.Equal(t, ObservedValueReverted, underlying.Observed)
	assert.False(t, underlying.Matched)
	gauge := result.Observations[1]
	assert.Equal(t, common.Address{}.Hex(), gauge.Observed)
	assert.False(t, gauge.Matched)

	assert.Contains(t, out.String(), "COMPOUND_DEPOSIT_POOL gauge assertion result is false")
	assert.Contains(t, out.String(), "USDT_DEPOSIT_POOL underlyingTokens assertion result is true")
}

func TestRunDetectsWrongOrder(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	pool := depositPools(t, "COMPOUND_DEPOSIT_POOL")[0]
	_, err := ledger.SetUnderlyingTokens(context.Background(), pool.Address, []common.Address{usdcAddr, daiAddr})
	require.NoError(t, err)

	result, err := NewRunner(Config{Kind: model.RunDepositPools, VerifyOnly: true}, ledger, nil, nil).
		Run(context.Background(), DepositEntries([]model.DepositPool{pool}))
	require.NoError(t, err)
	require.NotEmpty(t, result.Observations)
	assert.False(t, result.Observations[0].Matched)
	assert.Equal(t, "["+usdcAddr.Hex()+","+daiAddr.Hex()+"]", result.Observations[0].Observed)
}

func TestRunVerifyOnlyDoesNotWrite(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	sink := &memSink{}
	entries := DepositEntries(depositPools(t, "COMPOUND_DEPOSIT_POOL"))

	result, err := NewRunner(Config{Kind: model.RunDepositPools, VerifyOnly: true}, ledger, sink, nil).
		Run(context.Background(), entries)
	require.NoError(t, err)

	assert.Empty(t, ledger.Writes())
	assert.Equal(t, 0, result.Summary.Writes)
	assert.Equal(t, 2, result.Summary.SkippedWrites)
	assert.Equal(t, 2, result.Summary.Mismatches)
	for _, rec := range sink.records {
		assert.True(t, rec.WriteSkipped)
		assert.Empty(t, rec.TxHashes)
	}
}

func TestRunSkipUnchanged(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	pool := depositPools(t, "COMPOUND_DEPOSIT_POOL")[0]
	_, err := ledger.SetUnderlyingTokens(context.Background(), pool.Address, pool.Underlying)
	require.NoError(t, err)
	before := len(ledger.Writes())

	result, err := NewRunner(Config{Kind: model.RunDepositPools, SkipUnchanged: true}, ledger, nil, nil).
		Run(context.Background(), DepositEntries([]model.DepositPool{pool}))
	require.NoError(t, err)

	writes := ledger.Writes()[before:]
	require.Len(t, writes, 1)
	assert.Equal(t, "setGauge", writes[0].Method)
	assert.Equal(t, 1, result.Summary.Writes)
	assert.Equal(t, 1, result.Summary.SkippedWrites)
	assert.True(t, result.Summary.OK())
}

func TestRunTransportReadErrorIsFatal(t *testing.T) {
	ledger := &flakyLedger{MemoryLedger: registry.NewMemoryLedger(), failures: 10}
	sink := &memSink{}
	var out bytes.Buffer

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, sink, nil, WithOutput(&out)).
		Run(context.Background(), DepositEntries(depositPools(t, "COMPOUND_DEPOSIT_POOL", "USDT_DEPOSIT_POOL")))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, model.KindGauge, readErr.Kind)
	assert.Equal(t, "COMPOUND_DEPOSIT_POOL", readErr.Entry)
	assert.Equal(t, 1, ledger.calls)

	// The underlying tokens check finished before the gauge read failed; every
	// output agrees on it.
	assert.Equal(t, []string{"COMPOUND_DEPOSIT_POOL underlyingTokens assertion result is true"}, lines(&out))
	require.Len(t, result.Observations, 1)
	assert.Equal(t, model.KindUnderlyingTokens, result.Observations[0].Kind)
	require.Len(t, sink.records, 1)
	assert.Equal(t, result.Observations[0], sink.records[0].Observation)
	assert.Equal(t, 1, result.Summary.Observations)
	assert.Equal(t, 0, result.Summary.Entries)
	require.Len(t, sink.runs, 1)
	assert.Equal(t, 1, sink.runs[0].Observations)
	assert.Equal(t, "failed", sink.runs[0].Status())
}

func TestRunRetriesTransportReads(t *testing.T) {
	ledger := &flakyLedger{MemoryLedger: registry.NewMemoryLedger(), failures: 2}

	result, err := NewRunner(Config{Kind: model.RunDepositPools, MaxRetries: 2, RetryBackoff: time.Millisecond}, ledger, nil, nil).
		Run(context.Background(), DepositEntries(depositPools(t, "COMPOUND_DEPOSIT_POOL")))
	require.NoError(t, err)
	assert.Equal(t, 3, ledger.calls)
	assert.True(t, result.Summary.OK())
}

func TestRunStorageFailureStopsRun(t *testing.T) {
	sink := &memSink{err: errors.New("disk full")}

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, registry.NewMemoryLedger(), sink, nil).
		Run(context.Background(), DepositEntries(depositPools(t)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store observations")
	require.Len(t, sink.runs, 1)
	assert.Equal(t, 0, sink.runs[0].Entries)
	assert.Len(t, result.Observations, sink.runs[0].Observations)
}

func TestRunCanceledContext(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewRunner(Config{Kind: model.RunDepositPools}, ledger, nil, nil).
		Run(ctx, DepositEntries(depositPools(t)))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ledger.Writes())
	assert.Equal(t, "failed", result.Summary.Status())
}

func TestRunRejectsNilLedger(t *testing.T) {
	_, err := NewRunner(Config{}, nil, nil, nil).Run(context.Background(), nil)
	require.Error(t, err)
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")
	err := withRetry(context.Background(), 5, time.Millisecond, func(err error) bool { return err != permanent }, func(context.Context) error {
		calls++
		return permanent
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
