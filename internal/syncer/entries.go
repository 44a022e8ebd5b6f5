package syncer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"registrySync/internal/model"
	"registrySync/internal/registry"
)

// Step is one registry key of an entry: how to write it and how to read it back.
// Expected and the value returned by Read use the same rendering.
type Step struct {
	Kind     model.ObservationKind
	Expected string
	Write    func(ctx context.Context, ledger registry.Ledger) (registry.Confirmation, error)
	Read     func(ctx context.Context, ledger registry.Ledger) (string, error)
}

// Entry is one pool of the sync table with the keys written for it, in write order.
type Entry struct {
	Name  string
	Pool  common.Address
	Steps []Step
}

// DepositEntries maps deposit pools to entries: underlying tokens, then the gauge when present.
func DepositEntries(pools []model.DepositPool) []Entry {
	entries := make([]Entry, 0, len(pools))
	for _, pool := range pools {
		pool := pool
		tokens := append([]common.Address(nil), pool.Underlying...)
		steps := []Step{{
			Kind:     model.KindUnderlyingTokens,
			Expected: formatAddresses(tokens),
			Write: func(ctx context.Context, l registry.Ledger) (registry.Confirmation, error) {
				return l.SetUnderlyingTokens(ctx, pool.Address, tokens)
			},
			Read: func(ctx context.Context, l registry.Ledger) (string, error) {
				return readAddresses(ctx, len(tokens), func(ctx context.Context, i int) (common.Address, error) {
					return l.UnderlyingTokenAt(ctx, pool.Address, i)
				})
			},
		}}
		if pool.HasGauge() {
			gauge := *pool.Gauge
			steps = append(steps, Step{
				Kind:     model.KindGauge,
				Expected: gauge.Hex(),
				Write: func(ctx context.Context, l registry.Ledger) (registry.Confirmation, error) {
					return l.SetGauge(ctx, pool.Address, gauge)
				},
				Read: func(ctx context.Context, l registry.Ledger) (string, error) {
					got, err := l.Gauge(ctx, pool.Address)
					return got.Hex(), err
				},
			})
		}
		entries = append(entries, Entry{Name: pool.Name, Pool: pool.Address, Steps: steps})
	}
	return entries
}

// SwapEntries maps swap pools to entries: LP token, underlying tokens, then the
// remove_liquidity_one_coin flag.
func SwapEntries(pools []model.SwapPool) []Entry {
	entries := make([]Entry, 0, len(pools))
	for _, pool := range pools {
		pool := pool
		tokens := append([]common.Address(nil), pool.Underlying...)
		steps := []Step{
			{
				Kind:     model.KindLPToken,
				Expected: pool.LPToken.Hex(),
				Write: func(ctx context.Context, l registry.Ledger) (registry.Confirmation, error) {
					return l.SetSwapPoolLPToken(ctx, pool.Address, pool.LPToken)
				},
				Read: func(ctx context.Context, l registry.Ledger) (string, error) {
					got, err := l.SwapPoolLPToken(ctx, pool.Address)
					return got.Hex(), err
				},
			},
			{
				Kind:     model.KindUnderlyingTokens,
				Expected: formatAddresses(tokens),
				Write: func(ctx context.Context, l registry.Ledger) (registry.Confirmation, error) {
					return l.SetSwapPoolUnderlyingTokens(ctx, pool.Address, tokens)
				},
				Read: func(ctx context.Context, l registry.Ledger) (string, error) {
					return readAddresses(ctx, len(tokens), func(ctx context.Context, i int) (common.Address, error) {
						return l.SwapPoolUnderlyingTokenAt(ctx, pool.Address, i)
					})
				},
			},
			{
				Kind:     model.KindHasRemoveLiquidityOneCoin,
				Expected: strconv.FormatBool(pool.HasRemoveLiquidityOneCoin),
				Write: func(ctx context.Context, l registry.Ledger) (registry.Confirmation, error) {
					return l.SetSwapPoolHasRemoveLiquidityOneCoin(ctx, pool.Address, pool.HasRemoveLiquidityOneCoin)
				},
				Read: func(ctx context.Context, l registry.Ledger) (string, error) {
					got, err := l.SwapPoolHasRemoveLiquidityOneCoin(ctx, pool.Address)
					return strconv.FormatBool(got), err
				},
			},
		}
		entries = append(entries, Entry{Name: pool.Name, Pool: pool.Address, Steps: steps})
	}
	return entries
}

// readAddresses reads indexes 0..n-1 so both order and length are checked.
func readAddresses(ctx context.Context, n int, at func(context.Context, int) (common.Address, error)) (string, error) {
	got := make([]common.Address, 0, n)
	for i := 0; i < n; i++ {
		addr, err := at(ctx, i)
		if err != nil {
			return "", fmt.Errorf("index %d: %w", i, err)
		}
		got = append(got, addr)
	}
	return formatAddresses(got), nil
}

func formatAddresses(addrs []common.Address) string {
	parts := make([]string, len(addrs))
	for i, addr := range addrs {
		parts[i] = addr.Hex()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
