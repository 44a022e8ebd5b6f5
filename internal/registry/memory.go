package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Write records one setter call accepted by a MemoryLedger.
type Write struct {
	Method string
	Pool   common.Address
}

// MemoryLedger is an in-process Ledger with contract-like semantics: setters
// overwrite, out-of-range index reads revert and unset keys read as zero values.
type MemoryLedger struct {
	mu sync.RWMutex

	underlying     map[common.Address][]common.Address
	gauges         map[common.Address]common.Address
	swapLPTokens   map[common.Address]common.Address
	swapUnderlying map[common.Address][]common.Address
	swapOneCoin    map[common.Address]bool

	rejected map[common.Address]bool
	ignored  map[common.Address]bool
	writes   []Write
	block    uint64
}

var _ Ledger = (*MemoryLedger)(nil)

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		underlying:     make(map[common.Address][]common.Address),
		gauges:         make(map[common.Address]common.Address),
		swapLPTokens:   make(map[common.Address]common.Address),
		swapUnderlying: make(map[common.Address][]common.Address),
		swapOneCoin:    make(map[common.Address]bool),
		rejected:       make(map[common.Address]bool),
		ignored:        make(map[common.Address]bool),
	}
}

// Reject makes every write for pool revert.
func (m *MemoryLedger) Reject(pool common.Address) {
	m.mu.Lock()
	m.rejected[pool] = true
	m.mu.Unlock()
}

// Ignore confirms writes for pool without storing them.
func (m *MemoryLedger) Ignore(pool common.Address) {
	m.mu.Lock()
	m.ignored[pool] = true
	m.mu.Unlock()
}

// Writes returns the accepted setter calls in order.
func (m *MemoryLedger) Writes() []Write {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Write(nil), m.writes...)
}

func (m *MemoryLedger) SetUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error) {
	return m.write(ctx, methodSetUnderlyingTokens, pool, func() {
		m.underlying[pool] = append([]common.Address(nil), tokens...)
	})
}

func (m *MemoryLedger) UnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error) {
	return m.readIndex(ctx, methodGetUnderlyingTokenAt, m.underlying, pool, index)
}

func (m *MemoryLedger) SetGauge(ctx context.Context, pool, gauge common.Address) (Confirmation, error) {
	return m.write(ctx, methodSetGauge, pool, func() {
		m.gauges[pool] = gauge
	})
}

func (m *MemoryLedger) Gauge(ctx context.Context, pool common.Address) (common.Address, error) {
	return m.readAddress(ctx, m.gauges, pool)
}

func (m *MemoryLedger) SetSwapPoolLPToken(ctx context.Context, pool, lpToken common.Address) (Confirmation, error) {
	return m.write(ctx, methodSetSwapPoolLiquidityPoolToken, pool, func() {
		m.swapLPTokens[pool] = lpToken
	})
}

func (m *MemoryLedger) SwapPoolLPToken(ctx context.Context, pool common.Address) (common.Address, error) {
	return m.readAddress(ctx, m.swapLPTokens, pool)
}

func (m *MemoryLedger) SetSwapPoolUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error) {
	return m.write(ctx, methodSetSwapPoolUnderlyingTokens, pool, func() {
		m.swapUnderlying[pool] = append([]common.Address(nil), tokens...)
	})
}

func (m *MemoryLedger) SwapPoolUnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error) {
	return m.readIndex(ctx, methodGetSwapPoolUnderlyingTokenAt, m.swapUnderlying, pool, index)
}

func (m *MemoryLedger) SetSwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address, enabled bool) (Confirmation, error) {
	return m.write(ctx, methodSetSwapPoolHasRemoveLiquidityOneCoin, pool, func() {
		m.swapOneCoin[pool] = enabled
	})
}

func (m *MemoryLedger) SwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.swapOneCoin[pool], nil
}

func (m *MemoryLedger) write(ctx context.Context, method string, pool common.Address, apply func()) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rejected[pool] {
		return Confirmation{}, fmt.Errorf("%s %s: %w", method, pool.Hex(), ErrReverted)
	}

	m.block++
	if !m.ignored[pool] {
		apply()
	}
	m.writes = append(m.writes, Write{Method: method, Pool: pool})

	return Confirmation{
		TxHash:      crypto.Keccak256Hash([]byte(fmt.Sprintf("%d:%s:%s", m.block, method, pool.Hex()))),
		BlockNumber: m.block,
		GasUsed:     21000,
	}, nil
}

func (m *MemoryLedger) readAddress(ctx context.Context, table map[common.Address]common.Address, pool common.Address) (common.Address, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return table[pool], nil
}

func (m *MemoryLedger) readIndex(ctx context.Context, method string, table map[common.Address][]common.Address, pool common.Address, index int) (common.Address, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := table[pool]
	if index < 0 || index >= len(tokens) {
		return common.Address{}, fmt.Errorf("%s %s[%d]: %w", method, pool.Hex(), index, ErrReverted)
	}
	return tokens[index], nil
}
