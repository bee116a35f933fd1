package usecase

// Log prefixes
const (
	LogPrefixSend    = "internal.wallet.Send"
	LogPrefixSwap    = "internal.wallet.Swap"
	LogPrefixBalance = "internal.wallet.Balance"
	LogPrefixHistory = "internal.wallet.History"
)

const (
	msgUsageSend = "Usage: /send <amount> <token> to <address>, e.g. /send 1 SOL to 5YNmS1R9nNSCDzb5a7mMJ1dwK9uHeAAF4CmPEwKgVWr8"
	msgUsageSwap = "Usage: /swap <amount> <from> to <to>, e.g. /swap 1 SOL to USDC"

	msgInvalidAmount     = "The amount must be a positive number."
	msgInsufficientFunds = "Not enough %s: you hold %g and tried to move %g."
	msgUnknownToken      = "You do not hold any %s."
	msgNoRate            = "Could not price %s right now, the swap was not executed."
	msgNoHistory         = "No transfers yet. Try /send to make one."
)
