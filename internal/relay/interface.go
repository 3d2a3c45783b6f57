package relay

import "context"

// UseCase is the message relay pipeline.
type UseCase interface {
	// HandleTurn produces exactly one reply for the turn. It never fails:
	// every error path resolves to a user-facing message.
	HandleTurn(ctx context.Context, turn IncomingTurn) OutgoingReply

	// Welcome returns the greeting for a user who just joined the conversation.
	Welcome(ctx context.Context) OutgoingReply
}
