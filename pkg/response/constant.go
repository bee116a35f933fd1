package response

// Shared response constants.
const (
	MessageSuccess = "success"
)
