package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Extra gas on top of the node's estimate, in percent.
const gasHeadroomPercent = 20

// Client wraps go-ethereum RPC and signs registry transactions with a single key.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client

	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

// NewClient creates a new chain client from the RPC URL.
func NewClient(ctx context.Context, rpcURL string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// GetChainID returns the chain ID.
func (c *Client) GetChainID(ctx context.Context) (*big.Int, error) {
	return c.ethClient.ChainID(ctx)
}

// CodeAt returns the deployed bytecode at address on the latest block.
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	return c.ethClient.CodeAt(ctx, address, nil)
}

// CallContract performs an eth_call for a contract method.
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.ethClient.CallContract(ctx, msg, blockNumber)
}

// SetSigner loads the signing key and the chain ID used for replay protection.
func (c *Client) SetSigner(ctx context.Context, key *ecdsa.PrivateKey) error {
	if key == nil {
		return fmt.Errorf("signing key is nil")
	}
	chainID, err := c.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	c.key = key
	c.from = crypto.PubkeyToAddress(key.PublicKey)
	c.chainID = chainID
	return nil
}

// From returns the signing account, or the zero address when no signer is set.
func (c *Client) From() common.Address {
	return c.from
}

// Transact signs and sends a call to `to` carrying data. Gas estimation failures
// are returned as-is so reverting writes surface before anything is broadcast.
func (c *Client) Transact(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error) {
	if c.key == nil {
		return nil, fmt.Errorf("no signer configured")
	}

	nonce, err := c.ethClient.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}

	gas, err := c.ethClient.EstimateGas(ctx, ethereum.CallMsg{From: c.from, To: &to, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * gasHeadroomPercent / 100

	head, err := c.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("latest header: %w", err)
	}

	var txData types.TxData
	if head.BaseFee != nil {
		tip, err := c.ethClient.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas tip: %w", err)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		txData = &types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &to,
			Data:      data,
		}
	} else {
		gasPrice, err := c.ethClient.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
		txData = &types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &to,
			Data:     data,
		}
	}

	signed, err := types.SignNewTx(c.key, types.LatestSignerForChainID(c.chainID), txData)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	if err := c.ethClient.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send tx: %w", err)
	}
	return signed, nil
}

// WaitMined blocks until tx is included in a block and returns its receipt.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, c.ethClient, tx)
}
