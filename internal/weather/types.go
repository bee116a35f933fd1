package weather

// QueryInput carries the user's wording, either the text after a slash
// command or a whole routed free-text message.
type QueryInput struct {
	Text string
}

// Reply is the formatted answer to send back to the chat.
type Reply struct {
	Text string
}
