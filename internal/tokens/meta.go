package tokens

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Backend is the read-only chain access needed to inspect tokens.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
}

// Meta is the on-chain ERC20 metadata of a dataset token.
type Meta struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Check is the preflight result for one dataset token.
type Check struct {
	Meta
	HasCode       bool   `json:"has_code"`
	SymbolMatches bool   `json:"symbol_matches"`
	Err           string `json:"error,omitempty"`
}

// OK reports whether the token is a deployed contract answering decimals().
func (c Check) OK() bool {
	return c.HasCode && c.Err == ""
}

// FetchMeta loads decimals and symbol of token. A failing decimals() call is an
// error; symbol falls back to the bytes32 variant and is left empty if both fail.
func FetchMeta(ctx context.Context, backend Backend, token common.Address, logger *zap.Logger) (Meta, error) {
	meta := Meta{Address: token.Hex()}
	if backend == nil {
		return meta, fmt.Errorf("backend is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	strABI, err := stringABI()
	if err != nil {
		return meta, fmt.Errorf("parse erc20 string abi: %w", err)
	}
	b32ABI, err := bytes32ABI()
	if err != nil {
		return meta, fmt.Errorf("parse erc20 bytes32 abi: %w", err)
	}

	call := func(method string, parsed abi.ABI) ([]interface{}, error) {
		data, err := parsed.Pack(method)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", method, err)
		}
		resp, err := backend.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
		if err != nil {
			return nil, fmt.Errorf("call %s: %w", method, err)
		}
		values, err := parsed.Unpack(method, resp)
		if err != nil {
			return nil, fmt.Errorf("unpack %s: %w", method, err)
		}
		return values, nil
	}

	values, err := call("decimals", strABI)
	if err != nil {
		return meta, err
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return meta, fmt.Errorf("unsupported decimals type %T", values[0])
	}
	meta.Decimals = decimals

	if values, err := call("symbol", strABI); err == nil {
		if symbol, ok := values[0].(string); ok {
			meta.Symbol = symbol
		}
	} else if values, err := call("symbol", b32ABI); err == nil {
		if symbol, ok := bytes32ToString(values[0]); ok {
			meta.Symbol = symbol
		}
	} else {
		logger.Debug("symbol call failed", zap.String("token", token.Hex()), zap.Error(err))
	}

	return meta, nil
}

// CheckAll inspects every token of the symbol table in name order. Per-token
// problems are reported in the checks; only a context error aborts.
func CheckAll(ctx context.Context, backend Backend, table map[string]common.Address, logger *zap.Logger) ([]Check, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make([]Check, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return checks, err
		}
		addr := table[name]
		check := Check{Meta: Meta{Name: name, Address: addr.Hex()}}

		code, err := backend.CodeAt(ctx, addr)
		if err != nil {
			check.Err = fmt.Sprintf("code: %v", err)
			checks = append(checks, check)
			continue
		}
		check.HasCode = len(code) > 0
		if !check.HasCode {
			check.Err = "no contract code"
			checks = append(checks, check)
			continue
		}

		meta, err := FetchMeta(ctx, backend, addr, logger)
		if err != nil {
			check.Err = err.Error()
			checks = append(checks, check)
			continue
		}
		meta.Name = name
		check.Meta = meta
		check.SymbolMatches = strings.EqualFold(meta.Symbol, name)
		checks = append(checks, check)
	}
	return checks, nil
}

func bytes32ToString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case [32]byte:
		return string(bytes.TrimRight(v[:], "\x00")), true
	case []byte:
		return string(bytes.TrimRight(v, "\x00")), true
	default:
		return "", false
	}
}
