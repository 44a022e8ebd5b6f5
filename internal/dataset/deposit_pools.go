package dataset

// Curve deposit (zap) contracts.
var mainnetDepositPools = map[string]string{
	"COMPOUND_DEPOSIT_POOL": "0xeB21209ae4C2c9FF2a86ACA31E123764A3B6Bc06",
	"USDT_DEPOSIT_POOL":     "0xac795D2c97e60DF6a99ff1c814727302fD747a80",
	"PAX_DEPOSIT_POOL":      "0xA50cCc70b6a011CffDdf45057E39679379187287",
	"Y_DEPOSIT_POOL":        "0xbBC81d23Ea2c3ec7e56D39296F0cbB648873a5d3",
	"BUSD_DEPOSIT_POOL":     "0xb6c057591E073249F2D9D88Ba59a46CFC9B59EdB",
	"SUSD_DEPOSIT_POOL":     "0xFCBa3E75865d2d561BE8D220616520c171F12851",
	"GUSD_DEPOSIT_POOL":     "0x64448B78561690B70E17CBE8029a3e5c1bB7136e",
	"HUSD_DEPOSIT_POOL":     "0x09672362833d8f703D5395ef3252D4Bfa51c15ca",
	"USDK_DEPOSIT_POOL":     "0xF1f85a74AD6c64315F85af52d3d46bF715236ADc",
	"USDN_DEPOSIT_POOL":     "0x094d12e5b541784701FD8d65F11fc0598FBC6332",
	"LINKUSD_DEPOSIT_POOL":  "0x1de7f0866e2c4adAC7b457c58Cc25c8688CDa1f2",
	"MUSD_DEPOSIT_POOL":     "0x803A2B40c5a9BB2B86DD630B274Fa2A9202874C2",
	"RSV_DEPOSIT_POOL":      "0xBE175115BF33E12348ff77CcfEE4726866A0Fbd5",
	"TBTC_DEPOSIT_POOL":     "0xaa82ca713D94bBA7A89CEAB55314F9EfFEdDc78c",
	"DUSD_DEPOSIT_POOL":     "0x61E10659fe3aa93d036d099405224E4Ac24996d0",
}

// Liquidity gauges, keyed by the deposit pool name plus a _GAUGE suffix.
var mainnetGauges = map[string]string{
	"COMPOUND_DEPOSIT_POOL_GAUGE": "0x7ca5b0a2910B33e9759DC7dDB0413949071D7575",
	"USDT_DEPOSIT_POOL_GAUGE":     "0xBC89cd85491d81C6AD2954E6d0362Ee29fCa8F53",
	"PAX_DEPOSIT_POOL_GAUGE":      "0x64E3C23bfc40722d3B649844055F1D51c1ac041d",
	"Y_DEPOSIT_POOL_GAUGE":        "0xFA712EE4788C042e2B7BB55E6cb8ec569C4530c1",
	"BUSD_DEPOSIT_POOL_GAUGE":     "0x69Fb7c45726cfE2baDeE8317005d3F94bE838840",
	"SUSD_DEPOSIT_POOL_GAUGE":     "0xA90996896660DEcC6E997655E065b23788857849",
	"GUSD_DEPOSIT_POOL_GAUGE":     "0xC5cfaDA84E902aD92DD40194f0883ad49639b023",
	"HUSD_DEPOSIT_POOL_GAUGE":     "0x2db0E83599a91b508Ac268a6197b8B14F5e72840",
	"USDK_DEPOSIT_POOL_GAUGE":     "0xC2b1DF84112619D190193E48148000e3990Bf627",
	"USDN_DEPOSIT_POOL_GAUGE":     "0xF98450B5602fa59CC66e1379DFfB6FDDc724CfC4",
	"MUSD_DEPOSIT_POOL_GAUGE":     "0x5f626c30EC1215f4EdCc9982265E8b1F411D1352",
	"RSV_DEPOSIT_POOL_GAUGE":      "0x4dC4A289a8E33600D8bD4cf5F6313E43a37adec7",
	"TBTC_DEPOSIT_POOL_GAUGE":     "0x6828bcF74279eE32f2723eC536c22c51Eed383C6",
	"DUSD_DEPOSIT_POOL_GAUGE":     "0xAEA6c312f4b3E04D752946d329693F7293bC2e6D",
}

// mainnetDepositLayouts is the fixed enumeration of deposit pools in sync order.
// Underlying order follows the coin index order of each pool.
var mainnetDepositLayouts = []DepositLayout{
	{Pool: "COMPOUND_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC"}, Gauge: "COMPOUND_DEPOSIT_POOL_GAUGE"},
	{Pool: "USDT_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC", "USDT"}, Gauge: "USDT_DEPOSIT_POOL_GAUGE"},
	{Pool: "PAX_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC", "USDT", "PAX"}, Gauge: "PAX_DEPOSIT_POOL_GAUGE"},
	{Pool: "Y_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC", "USDT", "TUSD"}, Gauge: "Y_DEPOSIT_POOL_GAUGE"},
	{Pool: "BUSD_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC", "USDT", "BUSD"}, Gauge: "BUSD_DEPOSIT_POOL_GAUGE"},
	{Pool: "SUSD_DEPOSIT_POOL", Underlying: []string{"DAI", "USDC", "USDT", "SUSD"}, Gauge: "SUSD_DEPOSIT_POOL_GAUGE"},
	{Pool: "GUSD_DEPOSIT_POOL", Underlying: []string{"GUSD", "DAI", "USDC", "USDT"}, Gauge: "GUSD_DEPOSIT_POOL_GAUGE"},
	{Pool: "HUSD_DEPOSIT_POOL", Underlying: []string{"HUSD", "DAI", "USDC", "USDT"}, Gauge: "HUSD_DEPOSIT_POOL_GAUGE"},
	{Pool: "USDK_DEPOSIT_POOL", Underlying: []string{"USDK", "DAI", "USDC", "USDT"}, Gauge: "USDK_DEPOSIT_POOL_GAUGE"},
	{Pool: "USDN_DEPOSIT_POOL", Underlying: []string{"USDN", "DAI", "USDC", "USDT"}, Gauge: "USDN_DEPOSIT_POOL_GAUGE"},
	{Pool: "LINKUSD_DEPOSIT_POOL", Underlying: []string{"LINKUSD", "DAI", "USDC", "USDT"}},
	{Pool: "MUSD_DEPOSIT_POOL", Underlying: []string{"MUSD", "DAI", "USDC", "USDT"}, Gauge: "MUSD_DEPOSIT_POOL_GAUGE"},
	{Pool: "RSV_DEPOSIT_POOL", Underlying: []string{"RSV", "DAI", "USDC", "USDT"}, Gauge: "RSV_DEPOSIT_POOL_GAUGE"},
	{Pool: "TBTC_DEPOSIT_POOL", Underlying: []string{"TBTC", "RENBTC", "WBTC", "SBTC"}, Gauge: "TBTC_DEPOSIT_POOL_GAUGE"},
	{Pool: "DUSD_DEPOSIT_POOL", Underlying: []string{"DUSD", "DAI", "USDC", "USDT"}, Gauge: "DUSD_DEPOSIT_POOL_GAUGE"},
}
