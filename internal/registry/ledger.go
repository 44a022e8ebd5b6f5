package registry

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrReverted marks a registry call the contract rejected.
var ErrReverted = errors.New("execution reverted")

// Confirmation describes a write that reached a mined block.
type Confirmation struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// Ledger is the remote pool registry. Setters block until the write is confirmed
// and fail if it was not applied; getters read the current stored value.
type Ledger interface {
	SetUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error)
	UnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error)
	SetGauge(ctx context.Context, pool, gauge common.Address) (Confirmation, error)
	Gauge(ctx context.Context, pool common.Address) (common.Address, error)

	SetSwapPoolLPToken(ctx context.Context, pool, lpToken common.Address) (Confirmation, error)
	SwapPoolLPToken(ctx context.Context, pool common.Address) (common.Address, error)
	SetSwapPoolUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error)
	SwapPoolUnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error)
	SetSwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address, enabled bool) (Confirmation, error)
	SwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address) (bool, error)
}
