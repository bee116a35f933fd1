package dexscreener

// Token identifies one side of a trading pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Txns counts buys and sells over a window.
type Txns struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Liquidity is the pool depth in USD and both legs.
type Liquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// Pair is one DEX trading pair. PriceUSD arrives as a string in the
// wire format and is kept that way; callers parse on demand.
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	URL         string `json:"url"`
	PairAddress string `json:"pairAddress"`
	BaseToken   Token  `json:"baseToken"`
	QuoteToken  Token  `json:"quoteToken"`
	PriceNative string `json:"priceNative"`
	PriceUSD    string `json:"priceUsd"`
	Txns        struct {
		H1  Txns `json:"h1"`
		H6  Txns `json:"h6"`
		H24 Txns `json:"h24"`
	} `json:"txns"`
	Volume struct {
		H1  float64 `json:"h1"`
		H6  float64 `json:"h6"`
		H24 float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H1  float64 `json:"h1"`
		H6  float64 `json:"h6"`
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
	Liquidity Liquidity `json:"liquidity"`
	FDV       float64   `json:"fdv"`
	MarketCap float64   `json:"marketCap"`
}

// PairsResponse is the payload shared by the search and token
// endpoints.
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}
