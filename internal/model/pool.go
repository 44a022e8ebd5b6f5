package model

import "github.com/ethereum/go-ethereum/common"

// DepositPool pairs a deposit pool with its ordered underlying tokens and optional gauge.
type DepositPool struct {
	Name       string
	Address    common.Address
	Underlying []common.Address
	Gauge      *common.Address
}

// HasGauge reports whether the pool has an associated staking gauge.
func (p DepositPool) HasGauge() bool {
	return p.Gauge != nil
}

// SwapPool describes a swap pool's LP token, coins and withdrawal capability.
type SwapPool struct {
	Name                      string
	Address                   common.Address
	LPToken                   common.Address
	Underlying                []common.Address
	HasRemoveLiquidityOneCoin bool
}

// SyncTable is the ordered set of registry entries for one run.
type SyncTable struct {
	DepositPools []DepositPool
	SwapPools    []SwapPool
}
