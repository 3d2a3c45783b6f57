package usecase

import (
	"context"
	"strings"
	"time"

	"mcw-copilot/internal/relay"
)

// HandleTurn routes the turn through the keyword router and, when nothing
// matches, through the answering service.
func (uc *implUseCase) HandleTurn(ctx context.Context, turn relay.IncomingTurn) (reply relay.OutgoingReply) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "relay.HandleTurn: recovered from panic: %v", r)
			reply = relay.OutgoingReply{Text: relay.MsgHandlerError, Source: relay.SourceFallback}
		}
		uc.metrics.ObserveTurn(string(reply.Source))
	}()

	text := strings.TrimSpace(turn.Text)
	uc.l.Infof(ctx, "relay.HandleTurn: chat=%s turn=%s text=%q", turn.ChatID, turn.TurnID, text)

	if m, ok := uc.router.Route(text); ok {
		uc.l.Debugf(ctx, "relay.HandleTurn: matched intent %s", m.Intent)
		return relay.OutgoingReply{Text: m.Reply, Source: relay.SourceIntent}
	}

	start := time.Now()
	res := uc.brain.Ask(ctx, text)
	uc.metrics.ObserveBrainCall(outcome(res), time.Since(start))

	return toReply(res)
}

// Welcome returns the greeting for a user who just joined the conversation.
func (uc *implUseCase) Welcome(ctx context.Context) relay.OutgoingReply {
	m := uc.router.Welcome()
	uc.metrics.ObserveTurn(string(relay.SourceIntent))
	return relay.OutgoingReply{Text: m.Reply, Source: relay.SourceIntent}
}
