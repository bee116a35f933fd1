package pets

// SearchInput carries the user's wording, either /pets parameters or a
// routed free-text message.
type SearchInput struct {
	Text string
}

// Reply is the formatted answer to send back to the chat.
type Reply struct {
	Text string
}
