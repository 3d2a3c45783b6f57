package relay

// ReplySource tells where a reply came from.
type ReplySource string

const (
	SourceIntent   ReplySource = "intent"   // canned reply from the keyword router
	SourceBrain    ReplySource = "brain"    // text produced by the answering service
	SourceFallback ReplySource = "fallback" // fixed message standing in for a failure
)

// IncomingTurn is one text turn received from a chat transport.
type IncomingTurn struct {
	Text   string
	ChatID string
	UserID string
	TurnID string
}

// OutgoingReply is the single reply sent back for an IncomingTurn.
// Text is never empty.
type OutgoingReply struct {
	Text   string
	Source ReplySource
}
