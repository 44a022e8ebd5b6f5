package chain

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0x6B175474E89094C44Da98b954EedeAC495271d0F ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F") {
		t.Fatalf("address mismatch: %s", addr.Hex())
	}

	for _, input := range []string{"", "0x1234", "not-an-address", "0x0000000000000000000000000000000000000000"} {
		if _, err := ParseAddress(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestParsePrivateKey(t *testing.T) {
	const hexKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	want := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")

	for _, input := range []string{hexKey, "0x" + hexKey} {
		key, err := ParsePrivateKey(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := crypto.PubkeyToAddress(key.PublicKey); got != want {
			t.Fatalf("address mismatch: %s != %s", got.Hex(), want.Hex())
		}
	}

	if _, err := ParsePrivateKey(""); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, err := ParsePrivateKey("zz"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestClientWithoutSignerRefusesToTransact(t *testing.T) {
	c := &Client{}
	if _, err := c.Transact(context.Background(), common.Address{}, nil); err == nil {
		t.Fatalf("expected error without signer")
	}
	if c.From() != (common.Address{}) {
		t.Fatalf("from should be zero without signer")
	}
}
