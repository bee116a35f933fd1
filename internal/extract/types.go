package extract

// TransferParams holds a fully extracted wallet transfer request.
// It is all-or-nothing: either every field is populated or the parse
// failed and callers must show usage help. A partially filled transfer
// is never returned, so downstream code cannot build a transaction
// from incomplete input.
type TransferParams struct {
	Amount    string // decimal string, kept verbatim from the message
	Token     string // ticker symbol after mint-address normalization
	Recipient string // destination address, >= 32 alphanumeric chars
}

// SwapParams holds a fully extracted swap request. Same all-or-nothing
// contract as TransferParams.
type SwapParams struct {
	Amount    string
	FromToken string
	ToToken   string
}

// TokenAmount is a validated amount/token pair for buy, sell and quote
// style commands.
type TokenAmount struct {
	Amount float64
	Token  string
}

// SwapPair is a two-sided amount/token extraction for quote display,
// requiring a literal "to" between the source and destination tokens.
type SwapPair struct {
	Amount    float64
	FromToken string
	ToToken   string
}
