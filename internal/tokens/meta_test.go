package tokens

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type fakeToken struct {
	decimals      uint8
	symbol        string
	bytes32Symbol bool
	noDecimals    bool
}

type fakeBackend struct {
	tokens map[common.Address]fakeToken
}

func (b *fakeBackend) CodeAt(_ context.Context, address common.Address) ([]byte, error) {
	if _, ok := b.tokens[address]; ok {
		return []byte{0x60, 0x80}, nil
	}
	return nil, nil
}

func (b *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	tok, ok := b.tokens[*msg.To]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	strABI, _ := stringABI()
	method, err := strABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "decimals":
		if tok.noDecimals {
			return nil, errors.New("execution reverted")
		}
		return method.Outputs.Pack(tok.decimals)
	case "symbol":
		if tok.bytes32Symbol {
			var out [32]byte
			copy(out[:], tok.symbol)
			return abi.Arguments{{Type: mustType("bytes32")}}.Pack(out)
		}
		return method.Outputs.Pack(tok.symbol)
	}
	return nil, errors.New("unexpected method")
}

func mustType(name string) abi.Type {
	typ, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

var (
	daiAddr = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	saiAddr = common.HexToAddress("0x89d24A6b4CcB1B6fAA2625fE562bDD9a23260359")
	badAddr = common.HexToAddress("0x0000000000000000000000000000000000000bad")
	eoaAddr = common.HexToAddress("0x00000000000000000000000000000000000000e0")
)

func TestFetchMetaStringAndBytes32Symbols(t *testing.T) {
	backend := &fakeBackend{tokens: map[common.Address]fakeToken{
		daiAddr: {decimals: 18, symbol: "DAI"},
		saiAddr: {decimals: 18, symbol: "SAI", bytes32Symbol: true},
	}}

	meta, err := FetchMeta(context.Background(), backend, daiAddr, nil)
	if err != nil {
		t.Fatalf("fetch dai: %v", err)
	}
	if meta.Symbol != "DAI" || meta.Decimals != 18 {
		t.Fatalf("unexpected dai meta: %+v", meta)
	}

	meta, err = FetchMeta(context.Background(), backend, saiAddr, nil)
	if err != nil {
		t.Fatalf("fetch sai: %v", err)
	}
	if meta.Symbol != "SAI" {
		t.Fatalf("bytes32 symbol not decoded: %q", meta.Symbol)
	}
}

func TestFetchMetaRequiresDecimals(t *testing.T) {
	backend := &fakeBackend{tokens: map[common.Address]fakeToken{badAddr: {noDecimals: true}}}
	if _, err := FetchMeta(context.Background(), backend, badAddr, nil); err == nil {
		t.Fatalf("expected error when decimals reverts")
	}
	if _, err := FetchMeta(context.Background(), nil, badAddr, nil); err == nil {
		t.Fatalf("expected error for nil backend")
	}
}

func TestCheckAll(t *testing.T) {
	backend := &fakeBackend{tokens: map[common.Address]fakeToken{
		daiAddr: {decimals: 18, symbol: "Dai"},
		saiAddr: {decimals: 18, symbol: "SAI", bytes32Symbol: true},
		badAddr: {noDecimals: true},
	}}
	table := map[string]common.Address{
		"DAI":  daiAddr,
		"SAI":  saiAddr,
		"USDX": badAddr,
		"EOA":  eoaAddr,
	}

	checks, err := CheckAll(context.Background(), backend, table, nil)
	if err != nil {
		t.Fatalf("check all: %v", err)
	}
	if len(checks) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(checks))
	}
	byName := make(map[string]Check)
	for _, c := range checks {
		byName[c.Name] = c
	}
	if checks[0].Name != "DAI" || checks[1].Name != "EOA" {
		t.Fatalf("checks not sorted by name: %s %s", checks[0].Name, checks[1].Name)
	}
	if c := byName["DAI"]; !c.OK() || !c.SymbolMatches {
		t.Fatalf("unexpected DAI check: %+v", c)
	}
	if c := byName["EOA"]; c.OK() || c.HasCode {
		t.Fatalf("EOA should fail: %+v", c)
	}
	if c := byName["USDX"]; c.OK() || !c.HasCode {
		t.Fatalf("USDX should fail on decimals: %+v", c)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CheckAll(ctx, backend, table, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
