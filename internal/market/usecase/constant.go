package usecase

// Log prefixes
const (
	LogPrefixPrice    = "internal.market.Price"
	LogPrefixAnalyze  = "internal.market.Analyze"
	LogPrefixBuy      = "internal.market.Buy"
	LogPrefixSell     = "internal.market.Sell"
	LogPrefixSwapInfo = "internal.market.SwapInfo"
)

const (
	msgAskToken = "Which token? Try a ticker like SOL, a $SYMBOL, or a mint address."

	msgUsageBuy      = "Usage: /buy <amount> <token>, e.g. /buy 1.5 SOL"
	msgUsageSell     = "Usage: /sell <amount> <token>, e.g. /sell 100 BONK"
	msgUsageSwapInfo = "Usage: /swapinfo <amount> <from> to <to>, e.g. /swapinfo 1 SOL to USDC"

	msgInvalidAmount = "The amount must be a positive number."

	msgNoPairs = "No trading pairs found for %s."

	msgGenericHelp = "I can help with weather, pet adoption, token prices and wallet operations. Try /help for the full command list."
)
