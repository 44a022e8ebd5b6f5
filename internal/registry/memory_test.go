package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestMemoryLedgerOverwrites(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	if _, err := ledger.SetUnderlyingTokens(ctx, testPool, []common.Address{testDAI, testUSDC, testGauge}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := ledger.SetUnderlyingTokens(ctx, testPool, []common.Address{testUSDC, testDAI}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := ledger.UnderlyingTokenAt(ctx, testPool, 0)
	if err != nil || got != testUSDC {
		t.Fatalf("index 0 mismatch: %s %v", got.Hex(), err)
	}
	if _, err := ledger.UnderlyingTokenAt(ctx, testPool, 2); !errors.Is(err, ErrReverted) {
		t.Fatalf("out of range read should revert, got %v", err)
	}
	if len(ledger.Writes()) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(ledger.Writes()))
	}
}

func TestMemoryLedgerZeroValues(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	gauge, err := ledger.Gauge(ctx, testPool)
	if err != nil || gauge != (common.Address{}) {
		t.Fatalf("unset gauge should be zero: %s %v", gauge.Hex(), err)
	}
	oneCoin, err := ledger.SwapPoolHasRemoveLiquidityOneCoin(ctx, testPool)
	if err != nil || oneCoin {
		t.Fatalf("unset flag should be false")
	}
}

func TestMemoryLedgerRejectAndIgnore(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")

	ledger.Reject(testPool)
	if _, err := ledger.SetGauge(ctx, testPool, testGauge); !errors.Is(err, ErrReverted) {
		t.Fatalf("rejected write should revert, got %v", err)
	}
	if len(ledger.Writes()) != 0 {
		t.Fatalf("rejected write should not be recorded")
	}

	ledger.Ignore(other)
	conf, err := ledger.SetGauge(ctx, other, testGauge)
	if err != nil {
		t.Fatalf("ignored write should confirm: %v", err)
	}
	if conf.TxHash == (common.Hash{}) || conf.BlockNumber != 1 {
		t.Fatalf("confirmation mismatch: %+v", conf)
	}
	if gauge, _ := ledger.Gauge(ctx, other); gauge != (common.Address{}) {
		t.Fatalf("ignored write should not be stored")
	}
}

func TestMemoryLedgerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger := NewMemoryLedger()
	if _, err := ledger.SetGauge(ctx, testPool, testGauge); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
