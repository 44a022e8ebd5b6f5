package dataset

// Curve StableSwap contracts.
var mainnetSwapPools = map[string]string{
	"COMPOUND_SWAP_POOL": "0xA2B47E3D5c44877cca798226B7B8118F9BFb7A56",
	"USDT_SWAP_POOL":     "0x52EA46506B9CC5Ef470C5bf89f17Dc28bB35D85C",
	"PAX_SWAP_POOL":      "0x06364f10B501e868329afBc005b3492902d6C763",
	"Y_SWAP_POOL":        "0x45F783CCE6B7FF23B2ab2D70e416cdb7D6055f51",
	"BUSD_SWAP_POOL":     "0x79a8C46DeA5aDa233ABaFFD40F3A0A2B1e5A4F27",
	"SUSD_SWAP_POOL":     "0xA5407eAE9Ba41422680e2e00537571bcC53efBfD",
	"REN_SWAP_POOL":      "0x93054188d876f558f4a66B2EF1d97d16eDf0895B",
	"SBTC_SWAP_POOL":     "0x7fC77b5c7614E1533320Ea6DDc2Eb61fa00A9714",
	"HBTC_SWAP_POOL":     "0x4CA9b3063Ec5866A4B82E437059D2C43d1be596F",
	"THREE_SWAP_POOL":    "0xbEbc44782C7dB0a1A60Cb6fe97d0b483032FF1C7",
}

// LP tokens minted by each swap pool, keyed by swap pool name.
var mainnetSwapPoolLPTokens = map[string]string{
	"COMPOUND_SWAP_POOL": "0x845838DF265Dcd2c412A1Dc9e959c7d08537f8a2",
	"USDT_SWAP_POOL":     "0x9fC689CCaDa600B6DF723D9E47D84d76664a1F23",
	"PAX_SWAP_POOL":      "0xD905e2eaeBe188fc92179b6350807D8bd91Db0D8",
	"Y_SWAP_POOL":        "0xdF5e0e81Dff6FAF3A7e52BA697820c5e32D806A8",
	"BUSD_SWAP_POOL":     "0x3B3Ac5386837Dc563660FB6a0937DFAa5924333B",
	"SUSD_SWAP_POOL":     "0xC25a3A3b969415c80451098fa907EC722572917F",
	"REN_SWAP_POOL":      "0x49849C98ae39Fff122806C06791Fa73784FB3675",
	"SBTC_SWAP_POOL":     "0x075b1bb99792c9E1041bA13afEf80C91a1e70fB3",
	"HBTC_SWAP_POOL":     "0xb19059ebb43466C323583928285a49f558E572Fd",
	"THREE_SWAP_POOL":    "0x6c3F90f043a72FA612cbac8115EE7e52BDe6E490",
}

// mainnetSwapLayouts is the fixed enumeration of swap pools in sync order.
// Pools built before remove_liquidity_one_coin existed only expose it through their deposit zap.
var mainnetSwapLayouts = []SwapLayout{
	{Pool: "COMPOUND_SWAP_POOL", Underlying: []string{"CDAI", "CUSDC"}},
	{Pool: "USDT_SWAP_POOL", Underlying: []string{"CDAI", "CUSDC", "USDT"}},
	{Pool: "PAX_SWAP_POOL", Underlying: []string{"YCDAI", "YCUSDC", "YCUSDT", "PAX"}},
	{Pool: "Y_SWAP_POOL", Underlying: []string{"YDAI", "YUSDC", "YUSDT", "YTUSD"}},
	{Pool: "BUSD_SWAP_POOL", Underlying: []string{"YDAI", "YUSDC", "YUSDT", "YBUSD"}},
	{Pool: "SUSD_SWAP_POOL", Underlying: []string{"DAI", "USDC", "USDT", "SUSD"}},
	{Pool: "REN_SWAP_POOL", Underlying: []string{"RENBTC", "WBTC"}, HasRemoveLiquidityOneCoin: true},
	{Pool: "SBTC_SWAP_POOL", Underlying: []string{"RENBTC", "WBTC", "SBTC"}, HasRemoveLiquidityOneCoin: true},
	{Pool: "HBTC_SWAP_POOL", Underlying: []string{"HBTC", "WBTC"}, HasRemoveLiquidityOneCoin: true},
	{Pool: "THREE_SWAP_POOL", Underlying: []string{"DAI", "USDC", "USDT"}, HasRemoveLiquidityOneCoin: true},
}
