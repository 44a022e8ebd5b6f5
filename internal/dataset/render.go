package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"registrySync/internal/model"
)

// TableView is the printable form of a SyncTable with addresses as checksummed hex.
type TableView struct {
	DepositPools []DepositPoolView `json:"deposit_pools" yaml:"deposit_pools"`
	SwapPools    []SwapPoolView    `json:"swap_pools" yaml:"swap_pools"`
}

type DepositPoolView struct {
	Name       string   `json:"name" yaml:"name"`
	Address    string   `json:"address" yaml:"address"`
	Underlying []string `json:"underlying" yaml:"underlying"`
	Gauge      string   `json:"gauge,omitempty" yaml:"gauge,omitempty"`
}

type SwapPoolView struct {
	Name                      string   `json:"name" yaml:"name"`
	Address                   string   `json:"address" yaml:"address"`
	LPToken                   string   `json:"lp_token" yaml:"lp_token"`
	Underlying                []string `json:"underlying" yaml:"underlying"`
	HasRemoveLiquidityOneCoin bool     `json:"has_remove_liquidity_one_coin" yaml:"has_remove_liquidity_one_coin"`
}

// View converts the table for printing.
func View(table model.SyncTable) TableView {
	view := TableView{
		DepositPools: make([]DepositPoolView, 0, len(table.DepositPools)),
		SwapPools:    make([]SwapPoolView, 0, len(table.SwapPools)),
	}
	for _, p := range table.DepositPools {
		v := DepositPoolView{Name: p.Name, Address: p.Address.Hex(), Underlying: hexes(p.Underlying)}
		if p.HasGauge() {
			v.Gauge = p.Gauge.Hex()
		}
		view.DepositPools = append(view.DepositPools, v)
	}
	for _, p := range table.SwapPools {
		view.SwapPools = append(view.SwapPools, SwapPoolView{
			Name:                      p.Name,
			Address:                   p.Address.Hex(),
			LPToken:                   p.LPToken.Hex(),
			Underlying:                hexes(p.Underlying),
			HasRemoveLiquidityOneCoin: p.HasRemoveLiquidityOneCoin,
		})
	}
	return view
}

// Render writes the table to w as "text", "json" or "yaml".
func Render(w io.Writer, table model.SyncTable, format string) error {
	view := View(table)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		var b strings.Builder
		for _, p := range view.DepositPools {
			fmt.Fprintf(&b, "%s %s underlying=[%s]", p.Name, p.Address, strings.Join(p.Underlying, ","))
			if p.Gauge != "" {
				fmt.Fprintf(&b, " gauge=%s", p.Gauge)
			}
			b.WriteByte('\n')
		}
		for _, p := range view.SwapPools {
			fmt.Fprintf(&b, "%s %s lp=%s underlying=[%s] removeLiquidityOneCoin=%s\n",
				p.Name, p.Address, p.LPToken, strings.Join(p.Underlying, ","), strconv.FormatBool(p.HasRemoveLiquidityOneCoin))
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func hexes(addrs []common.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out
}
