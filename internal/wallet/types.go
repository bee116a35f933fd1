package wallet

// QueryInput carries the user's wording. Send and Swap expect the whole
// message text so the verb-anchored extraction can see the command word.
type QueryInput struct {
	Text string
}

// Reply is the formatted answer to send back to the chat.
type Reply struct {
	Text string
}
