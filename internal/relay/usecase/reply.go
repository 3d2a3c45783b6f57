package usecase

import (
	"errors"
	"strings"

	"mcw-copilot/internal/relay"
	"mcw-copilot/pkg/brain"
)

// Brain call outcomes, used as metric labels.
const (
	outcomeAnswer        = "answer"
	outcomeRawText       = "raw_text"
	outcomeNotConfigured = "not_configured"
	outcomeHTTPError     = "http_error"
	outcomeNetworkError  = "network_error"
)

// toReply maps every Result variant to exactly one non-empty reply.
func toReply(res brain.Result) relay.OutgoingReply {
	switch res.Kind {
	case brain.KindAnswer, brain.KindRawText:
		if strings.TrimSpace(res.Text) == "" {
			return relay.OutgoingReply{Text: relay.MsgEmptyAnswer, Source: relay.SourceFallback}
		}
		return relay.OutgoingReply{Text: res.Text, Source: relay.SourceBrain}
	}

	var httpErr *brain.HTTPError
	switch {
	case errors.Is(res.Err, brain.ErrNotConfigured):
		return relay.OutgoingReply{Text: relay.MsgNotConfigured, Source: relay.SourceFallback}
	case errors.As(res.Err, &httpErr):
		return relay.OutgoingReply{Text: relay.MsgHTTPError(httpErr.StatusCode), Source: relay.SourceFallback}
	default:
		return relay.OutgoingReply{Text: relay.MsgUnreachable, Source: relay.SourceFallback}
	}
}

func outcome(res brain.Result) string {
	switch res.Kind {
	case brain.KindAnswer:
		return outcomeAnswer
	case brain.KindRawText:
		return outcomeRawText
	}

	var httpErr *brain.HTTPError
	switch {
	case errors.Is(res.Err, brain.ErrNotConfigured):
		return outcomeNotConfigured
	case errors.As(res.Err, &httpErr):
		return outcomeHTTPError
	default:
		return outcomeNetworkError
	}
}
