package relay

import "fmt"

// User-facing messages
const (
	MsgNotConfigured = "The answering service isn’t configured yet. Please ask an administrator to set it up."
	MsgUnreachable   = "The brain is unreachable right now. Please try again shortly."
	MsgHandlerError  = "Sorry, something went wrong while handling your message."
	MsgEmptyAnswer   = "(empty answer from the service)"
	MsgRateLimited   = "You’re sending messages too quickly. Please wait a moment and try again."
)

// MsgHTTPError is the reply for a non-2xx answer from the service.
func MsgHTTPError(status int) string {
	return fmt.Sprintf("I couldn't reach the service (HTTP %d).", status)
}
