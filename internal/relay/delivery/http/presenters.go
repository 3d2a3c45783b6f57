package http

import (
	"strings"

	"mcw-copilot/internal/relay"
)

const (
	activityMessage            = "message"
	activityConversationUpdate = "conversationUpdate"
)

// --- Request DTOs ---

type channelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type conversationAccount struct {
	ID string `json:"id"`
}

type activityReq struct {
	Type         string              `json:"type"`
	ID           string              `json:"id"`
	Text         string              `json:"text"`
	From         channelAccount      `json:"from"`
	Recipient    channelAccount      `json:"recipient"`
	Conversation conversationAccount `json:"conversation"`
	MembersAdded []channelAccount    `json:"membersAdded"`
}

func (r activityReq) validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return errMissingType
	}
	return nil
}

func (r activityReq) toTurn() relay.IncomingTurn {
	return relay.IncomingTurn{
		Text:   r.Text,
		ChatID: r.Conversation.ID,
		UserID: r.From.ID,
		TurnID: r.ID,
	}
}

// joinedMembers returns the added members other than the bot itself.
func (r activityReq) joinedMembers() []channelAccount {
	var out []channelAccount
	for _, m := range r.MembersAdded {
		if m.ID != r.Recipient.ID {
			out = append(out, m)
		}
	}
	return out
}

// --- Response DTOs ---

type replyActivity struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

type activityResp struct {
	Replies []replyActivity `json:"replies"`
}

func newReplyActivity(reply relay.OutgoingReply) replyActivity {
	return replyActivity{
		Type:   activityMessage,
		Text:   reply.Text,
		Source: string(reply.Source),
	}
}

func newActivityResp(replies ...relay.OutgoingReply) activityResp {
	resp := activityResp{Replies: make([]replyActivity, 0, len(replies))}
	for _, r := range replies {
		resp.Replies = append(resp.Replies, newReplyActivity(r))
	}
	return resp
}
