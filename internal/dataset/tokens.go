package dataset

// mainnetTokens maps token symbols to their Ethereum mainnet addresses.
var mainnetTokens = map[string]string{
	"DAI":     "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	"USDC":    "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	"USDT":    "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	"PAX":     "0x8E870D67F660D95d5be530380D0eC0bd388289E1",
	"TUSD":    "0x0000000000085d4780B73119b644AE5ecd22b376",
	"BUSD":    "0x4Fabb145d64652a948d72533023f6E7A623C7C53",
	"SUSD":    "0x57Ab1ec28D129707052df4dF418D58a2D46d5f51",
	"GUSD":    "0x056Fd409E1d7A124BD7017459dFEa2F387b6d5Cd",
	"HUSD":    "0xdF574c24545E5FfEcb9a659c229253D4111d87e1",
	"USDK":    "0x1c48f86ae57291F7686349F12601910BD8D470bb",
	"USDN":    "0x674C6Ad92Fd080e4004b2312b45f796a192D27a0",
	"LINKUSD": "0x0E2EC54fC0B509F445631Bf4b91AB8168230C752",
	"MUSD":    "0xe2f2a5C287993345a840Db3B0845fbC70f5935a5",
	"RSV":     "0x196f4727526eA7FB1e17b2071B3d8eAA38486988",
	"DUSD":    "0x5BC25f649fc4e26069dDF4cF4010F9f706c23831",
	"TBTC":    "0x8dAEBADE922dF735c38C80C7eBD708Af50815fAa",
	"WBTC":    "0x2260FAC5E5542a773Aa44fBCfEDf7C193bc2C599",
	"RENBTC":  "0xEB4C2781e4ebA804CE9a9803C67d0893436bB27D",
	"SBTC":    "0xfE18be6b3Bd88A2D2A7f928d00292E7a9963CfC6",
	"HBTC":    "0x0316EB71485b0Ab14103307bf65a021042c6d380",
	"CDAI":    "0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643",
	"CUSDC":   "0x39AA39c021dfbaE8faC545936693aC917d5E7563",
	"YCDAI":   "0x99d1Fa417f94dcD62BfE781a1213c092a47041Bc",
	"YCUSDC":  "0x9777d7E2b60bB01759D0E2f8be2095df444cb07E",
	"YCUSDT":  "0x1bE5d71F2dA660BFdee8012dDc58D024448A0A59",
	"YDAI":    "0x16de59092dAE5CcF4A1E6439D611fd0653f0Bd01",
	"YUSDC":   "0xd6aD7a6750A7593E092a9B218d66C0A814a3436e",
	"YUSDT":   "0x83f798e925BcD4017Eb265844FDDAbb448f1707D",
	"YTUSD":   "0x73a052500105205d34Daf004eAb301916DA8190f",
	"YBUSD":   "0x04bC0Ab673d88aE9dbC9DA2380cB6B79C4BCa9aE",
}
