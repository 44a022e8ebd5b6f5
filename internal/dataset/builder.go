package dataset

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"registrySync/internal/model"
)

const (
	minUnderlying = 2
	maxUnderlying = 4
)

// ConfigError lists every lookup miss or malformed entry found while building a table.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dataset configuration: %s", strings.Join(e.Problems, "; "))
}

// Build resolves both layouts against src. Nothing is returned unless every entry resolves.
func Build(src Sources, deposit []DepositLayout, swap []SwapLayout) (model.SyncTable, error) {
	r := &resolver{src: src}
	table := model.SyncTable{
		DepositPools: r.depositPools(deposit),
		SwapPools:    r.swapPools(swap),
	}
	if err := r.err(); err != nil {
		return model.SyncTable{}, err
	}
	return table, nil
}

// BuildDepositPools resolves the deposit pool layouts against src.
func BuildDepositPools(src Sources, layouts []DepositLayout) ([]model.DepositPool, error) {
	r := &resolver{src: src}
	pools := r.depositPools(layouts)
	if err := r.err(); err != nil {
		return nil, err
	}
	return pools, nil
}

// BuildSwapPools resolves the swap pool layouts against src.
func BuildSwapPools(src Sources, layouts []SwapLayout) ([]model.SwapPool, error) {
	r := &resolver{src: src}
	pools := r.swapPools(layouts)
	if err := r.err(); err != nil {
		return nil, err
	}
	return pools, nil
}

// FilterDepositPools keeps the named pools in table order. An empty name list keeps everything.
func FilterDepositPools(pools []model.DepositPool, names []string) ([]model.DepositPool, error) {
	return filterByName(pools, func(p model.DepositPool) string { return p.Name }, names)
}

// FilterSwapPools keeps the named pools in table order. An empty name list keeps everything.
func FilterSwapPools(pools []model.SwapPool, names []string) ([]model.SwapPool, error) {
	return filterByName(pools, func(p model.SwapPool) string { return p.Name }, names)
}

func filterByName[T any](items []T, name func(T) string, names []string) ([]T, error) {
	if len(names) == 0 {
		return items, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = false
	}

	out := make([]T, 0, len(names))
	for _, item := range items {
		if _, ok := wanted[name(item)]; ok {
			wanted[name(item)] = true
			out = append(out, item)
		}
	}

	var problems []string
	for _, n := range names {
		if !wanted[n] {
			problems = append(problems, fmt.Sprintf("unknown pool %q", n))
		}
	}
	if len(problems) > 0 {
		return nil, &ConfigError{Problems: problems}
	}
	return out, nil
}

type resolver struct {
	src      Sources
	problems []string
}

func (r *resolver) err() error {
	if len(r.problems) == 0 {
		return nil
	}
	return &ConfigError{Problems: r.problems}
}

func (r *resolver) fail(format string, args ...interface{}) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func (r *resolver) lookup(table map[string]string, kind, name string) (common.Address, bool) {
	raw, ok := table[name]
	if !ok || strings.TrimSpace(raw) == "" {
		r.fail("%s %q not found", kind, name)
		return common.Address{}, false
	}
	if !common.IsHexAddress(raw) {
		r.fail("%s %q has invalid address %q", kind, name, raw)
		return common.Address{}, false
	}
	addr := common.HexToAddress(raw)
	if addr == (common.Address{}) {
		r.fail("%s %q resolves to the zero address", kind, name)
		return common.Address{}, false
	}
	return addr, true
}

func (r *resolver) tokens(pool string, symbols []string) []common.Address {
	if len(symbols) < minUnderlying || len(symbols) > maxUnderlying {
		r.fail("pool %q has %d underlying tokens, want %d-%d", pool, len(symbols), minUnderlying, maxUnderlying)
	}
	out := make([]common.Address, 0, len(symbols))
	for _, symbol := range symbols {
		if addr, ok := r.lookup(r.src.Tokens, "token", symbol); ok {
			out = append(out, addr)
		}
	}
	return out
}

func (r *resolver) unique(seen map[string]struct{}, name string) {
	if _, ok := seen[name]; ok {
		r.fail("pool %q listed more than once", name)
	}
	seen[name] = struct{}{}
}

func (r *resolver) depositPools(layouts []DepositLayout) []model.DepositPool {
	seen := make(map[string]struct{}, len(layouts))
	pools := make([]model.DepositPool, 0, len(layouts))
	for _, layout := range layouts {
		r.unique(seen, layout.Pool)
		addr, _ := r.lookup(r.src.DepositPools, "deposit pool", layout.Pool)
		pool := model.DepositPool{
			Name:       layout.Pool,
			Address:    addr,
			Underlying: r.tokens(layout.Pool, layout.Underlying),
		}
		if layout.Gauge != "" {
			if gauge, ok := r.lookup(r.src.Gauges, "gauge", layout.Gauge); ok {
				pool.Gauge = &gauge
			}
		}
		pools = append(pools, pool)
	}
	return pools
}

func (r *resolver) swapPools(layouts []SwapLayout) []model.SwapPool {
	seen := make(map[string]struct{}, len(layouts))
	pools := make([]model.SwapPool, 0, len(layouts))
	for _, layout := range layouts {
		r.unique(seen, layout.Pool)
		addr, _ := r.lookup(r.src.SwapPools, "swap pool", layout.Pool)
		lpToken, _ := r.lookup(r.src.SwapPoolLPTokens, "lp token for swap pool", layout.Pool)
		pools = append(pools, model.SwapPool{
			Name:                      layout.Pool,
			Address:                   addr,
			LPToken:                   lpToken,
			Underlying:                r.tokens(layout.Pool, layout.Underlying),
			HasRemoveLiquidityOneCoin: layout.HasRemoveLiquidityOneCoin,
		})
	}
	return pools
}
