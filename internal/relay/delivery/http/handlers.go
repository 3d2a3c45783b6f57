package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mcw-copilot/internal/relay"
	"mcw-copilot/pkg/response"
)

// Messages godoc
// @Summary     Send a chat activity
// @Description A "message" activity gets exactly one reply. A "conversationUpdate" gets one
// @Description welcome per joined member. Other activity types get no reply. A throttled
// @Description caller still gets one reply, telling them to slow down.
// @Tags        Relay
// @Accept      json
// @Produce     json
// @Param       body body activityReq true "Activity"
// @Success     200 {object} activityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/messages [POST]
func (h *handler) Messages(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processActivityReq(c)
	if err != nil {
		h.l.Warnf(ctx, "relay.delivery.http.Messages: %v", err)
		response.Error(c, err, nil)
		return
	}

	switch req.Type {
	case activityMessage:
		if err := h.allow(c); err != nil {
			h.l.Warnf(ctx, "relay.delivery.http.Messages: %v", err)
			c.JSON(http.StatusOK, newActivityResp(relay.OutgoingReply{Text: relay.MsgRateLimited, Source: relay.SourceFallback}))
			return
		}
		c.JSON(http.StatusOK, newActivityResp(h.uc.HandleTurn(ctx, req.toTurn())))

	case activityConversationUpdate:
		joined := req.joinedMembers()
		replies := make([]relay.OutgoingReply, 0, len(joined))
		for range joined {
			replies = append(replies, h.uc.Welcome(ctx))
		}
		c.JSON(http.StatusOK, newActivityResp(replies...))

	default:
		h.l.Debugf(ctx, "relay.delivery.http.Messages: ignoring activity type %q", req.Type)
		c.JSON(http.StatusOK, newActivityResp())
	}
}
