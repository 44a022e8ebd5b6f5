package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// geth reports reverted eth_call and gas estimation with this JSON-RPC error code.
const revertErrorCode = 3

// Backend is the chain access the contract adapter needs.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Transact(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Contract implements Ledger against a deployed registry contract.
type Contract struct {
	address common.Address
	backend Backend
	abi     abi.ABI
	logger  *zap.Logger
}

var _ Ledger = (*Contract)(nil)

// NewContract binds the registry ABI to address.
func NewContract(address common.Address, backend Backend, logger *zap.Logger) (*Contract, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is nil")
	}
	if address == (common.Address{}) {
		return nil, fmt.Errorf("registry address is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := PoolRegistryABI()
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}

	return &Contract{
		address: address,
		backend: backend,
		abi:     parsed,
		logger:  logger.With(zap.String("registry", address.Hex())),
	}, nil
}

// Address returns the registry contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) SetUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error) {
	return c.transact(ctx, methodSetUnderlyingTokens, pool, tokens)
}

func (c *Contract) UnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error) {
	return c.callAddress(ctx, methodGetUnderlyingTokenAt, pool, big.NewInt(int64(index)))
}

func (c *Contract) SetGauge(ctx context.Context, pool, gauge common.Address) (Confirmation, error) {
	return c.transact(ctx, methodSetGauge, pool, gauge)
}

func (c *Contract) Gauge(ctx context.Context, pool common.Address) (common.Address, error) {
	return c.callAddress(ctx, methodGetGauge, pool)
}

func (c *Contract) SetSwapPoolLPToken(ctx context.Context, pool, lpToken common.Address) (Confirmation, error) {
	return c.transact(ctx, methodSetSwapPoolLiquidityPoolToken, pool, lpToken)
}

func (c *Contract) SwapPoolLPToken(ctx context.Context, pool common.Address) (common.Address, error) {
	return c.callAddress(ctx, methodGetSwapPoolLiquidityPoolToken, pool)
}

func (c *Contract) SetSwapPoolUnderlyingTokens(ctx context.Context, pool common.Address, tokens []common.Address) (Confirmation, error) {
	return c.transact(ctx, methodSetSwapPoolUnderlyingTokens, pool, tokens)
}

func (c *Contract) SwapPoolUnderlyingTokenAt(ctx context.Context, pool common.Address, index int) (common.Address, error) {
	return c.callAddress(ctx, methodGetSwapPoolUnderlyingTokenAt, pool, big.NewInt(int64(index)))
}

func (c *Contract) SetSwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address, enabled bool) (Confirmation, error) {
	return c.transact(ctx, methodSetSwapPoolHasRemoveLiquidityOneCoin, pool, enabled)
}

func (c *Contract) SwapPoolHasRemoveLiquidityOneCoin(ctx context.Context, pool common.Address) (bool, error) {
	values, err := c.call(ctx, methodGetSwapPoolHasRemoveLiquidityOneCoin, pool)
	if err != nil {
		return false, err
	}
	return asBool(values[0])
}

func (c *Contract) transact(ctx context.Context, method string, args ...interface{}) (Confirmation, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return Confirmation{}, fmt.Errorf("pack %s: %w", method, err)
	}

	tx, err := c.backend.Transact(ctx, c.address, data)
	if err != nil {
		if IsReverted(err) {
			return Confirmation{}, fmt.Errorf("send %s: %w (%w)", method, ErrReverted, err)
		}
		return Confirmation{}, fmt.Errorf("send %s: %w", method, err)
	}
	c.logger.Debug("registry tx sent", zap.String("method", method), zap.String("tx", tx.Hash().Hex()))

	receipt, err := c.backend.WaitMined(ctx, tx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("wait %s tx %s: %w", method, tx.Hash().Hex(), err)
	}

	conf := Confirmation{TxHash: receipt.TxHash, GasUsed: receipt.GasUsed}
	if receipt.BlockNumber != nil {
		conf.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return conf, fmt.Errorf("%s tx %s: %w", method, receipt.TxHash.Hex(), ErrReverted)
	}

	c.logger.Debug("registry tx mined",
		zap.String("method", method),
		zap.String("tx", receipt.TxHash.Hex()),
		zap.Uint64("block", conf.BlockNumber),
		zap.Uint64("gas_used", conf.GasUsed),
	)
	return conf, nil
}

func (c *Contract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &c.address, Data: data}
	resp, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		if IsReverted(err) {
			return nil, fmt.Errorf("call %s: %w (%w)", method, ErrReverted, err)
		}
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	values, err := c.abi.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("unpack %s: empty result", method)
	}
	return values, nil
}

func (c *Contract) callAddress(ctx context.Context, method string, args ...interface{}) (common.Address, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := asAddress(values[0])
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %w", method, err)
	}
	return addr, nil
}

// IsReverted reports whether err is a contract revert rather than a transport failure.
func IsReverted(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrReverted) {
		return true
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}
	// Nodes only attach error data to a JSON-RPC error when the EVM reverted.
	var dataErr rpc.DataError
	return errors.As(err, &dataErr) && dataErr.ErrorData() != nil
}

func asAddress(value interface{}) (common.Address, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		return *v, nil
	default:
		return common.Address{}, fmt.Errorf("unsupported address type %T", value)
	}
}

func asBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case *bool:
		return *v, nil
	default:
		return false, fmt.Errorf("unsupported bool type %T", value)
	}
}
