package registry

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodSetUnderlyingTokens                  = "setUnderlyingTokens"
	methodGetUnderlyingTokenAt                 = "getUnderlyingTokenAt"
	methodSetGauge                             = "setGauge"
	methodGetGauge                             = "getGauge"
	methodSetSwapPoolLiquidityPoolToken        = "setSwapPoolLiquidityPoolToken"
	methodGetSwapPoolLiquidityPoolToken        = "getSwapPoolLiquidityPoolToken"
	methodSetSwapPoolUnderlyingTokens          = "setSwapPoolUnderlyingTokens"
	methodGetSwapPoolUnderlyingTokenAt         = "getSwapPoolUnderlyingTokenAt"
	methodSetSwapPoolHasRemoveLiquidityOneCoin = "setSwapPoolHasRemoveLiquidityOneCoin"
	methodGetSwapPoolHasRemoveLiquidityOneCoin = "getSwapPoolHasRemoveLiquidityOneCoin"
)

const poolRegistryABIJSON = `[
  {
    "inputs": [
      {"internalType": "address", "name": "_pool", "type": "address"},
      {"internalType": "address[]", "name": "_tokens", "type": "address[]"}
    ],
    "name": "setUnderlyingTokens",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_pool", "type": "address"},
      {"internalType": "uint256", "name": "_index", "type": "uint256"}
    ],
    "name": "getUnderlyingTokenAt",
    "outputs": [{"internalType": "address", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_pool", "type": "address"},
      {"internalType": "address", "name": "_gauge", "type": "address"}
    ],
    "name": "setGauge",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "address", "name": "_pool", "type": "address"}],
    "name": "getGauge",
    "outputs": [{"internalType": "address", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_swapPool", "type": "address"},
      {"internalType": "address", "name": "_lpToken", "type": "address"}
    ],
    "name": "setSwapPoolLiquidityPoolToken",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "address", "name": "_swapPool", "type": "address"}],
    "name": "getSwapPoolLiquidityPoolToken",
    "outputs": [{"internalType": "address", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_swapPool", "type": "address"},
      {"internalType": "address[]", "name": "_tokens", "type": "address[]"}
    ],
    "name": "setSwapPoolUnderlyingTokens",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_swapPool", "type": "address"},
      {"internalType": "uint256", "name": "_index", "type": "uint256"}
    ],
    "name": "getSwapPoolUnderlyingTokenAt",
    "outputs": [{"internalType": "address", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "_swapPool", "type": "address"},
      {"internalType": "bool", "name": "_hasRemoveLiquidityOneCoin", "type": "bool"}
    ],
    "name": "setSwapPoolHasRemoveLiquidityOneCoin",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "address", "name": "_swapPool", "type": "address"}],
    "name": "getSwapPoolHasRemoveLiquidityOneCoin",
    "outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
    "stateMutability": "view",
    "type": "function"
  }
]`

var (
	poolRegistryABI     abi.ABI
	poolRegistryABIOnce sync.Once
	poolRegistryABIErr  error
)

// PoolRegistryABI returns the parsed registry ABI.
func PoolRegistryABI() (abi.ABI, error) {
	poolRegistryABIOnce.Do(func() {
		poolRegistryABI, poolRegistryABIErr = abi.JSON(strings.NewReader(poolRegistryABIJSON))
	})
	return poolRegistryABI, poolRegistryABIErr
}
