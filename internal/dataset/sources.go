package dataset

// Sources holds the static lookup tables the dataset is built from. Addresses are
// hex strings so malformed entries surface as configuration errors during Build.
type Sources struct {
	Tokens           map[string]string
	DepositPools     map[string]string
	Gauges           map[string]string
	SwapPools        map[string]string
	SwapPoolLPTokens map[string]string
}

// DepositLayout describes one deposit pool entry by name.
type DepositLayout struct {
	Pool       string   `yaml:"pool"`
	Underlying []string `yaml:"underlying"`
	Gauge      string   `yaml:"gauge,omitempty"`
}

// SwapLayout describes one swap pool entry by name. The LP token is looked up by pool name.
type SwapLayout struct {
	Pool                      string   `yaml:"pool"`
	Underlying                []string `yaml:"underlying"`
	HasRemoveLiquidityOneCoin bool     `yaml:"has_remove_liquidity_one_coin"`
}

// DefaultSources returns a copy of the mainnet tables.
func DefaultSources() Sources {
	return Sources{
		Tokens:           copyTable(mainnetTokens),
		DepositPools:     copyTable(mainnetDepositPools),
		Gauges:           copyTable(mainnetGauges),
		SwapPools:        copyTable(mainnetSwapPools),
		SwapPoolLPTokens: copyTable(mainnetSwapPoolLPTokens),
	}
}

// DepositLayouts returns the fixed deposit pool enumeration in sync order.
func DepositLayouts() []DepositLayout {
	out := make([]DepositLayout, len(mainnetDepositLayouts))
	for i, layout := range mainnetDepositLayouts {
		layout.Underlying = append([]string(nil), layout.Underlying...)
		out[i] = layout
	}
	return out
}

// SwapLayouts returns the fixed swap pool enumeration in sync order.
func SwapLayouts() []SwapLayout {
	out := make([]SwapLayout, len(mainnetSwapLayouts))
	for i, layout := range mainnetSwapLayouts {
		layout.Underlying = append([]string(nil), layout.Underlying...)
		out[i] = layout
	}
	return out
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
