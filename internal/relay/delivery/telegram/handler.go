package telegram

import (
	"context"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mcw-copilot/internal/relay"
	"mcw-copilot/pkg/guard"
	pkgLog "mcw-copilot/pkg/log"
	pkgResponse "mcw-copilot/pkg/response"
	pkgTelegram "mcw-copilot/pkg/telegram"
)

type handler struct {
	l       pkgLog.Logger
	uc      relay.UseCase
	bot     *pkgTelegram.Bot
	limiter *guard.RateLimiter
	deduper *guard.Deduper

	inflight sync.WaitGroup
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and answers the message in a background
// goroutine: the answering service may take up to its full timeout, longer than
// Telegram is willing to wait for the webhook.
// @Summary Telegram webhook
// @Description Receives a Telegram update and replies to the chat asynchronously
// @Tags Relay
// @Accept json
// @Produce json
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Secret registered with setWebhook"
// @Success 200 {object} response.Resp "accepted, ignored or duplicate"
// @Failure 400 {object} response.Resp "malformed update"
// @Failure 401 {object} response.Resp "bad secret token"
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if update.Message.Chat == nil {
		h.l.Warnf(ctx, "telegram handler: update %d: %v", update.UpdateID, errMissingChat)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if h.deduper != nil && !h.deduper.FirstSeen(update.UpdateID) {
		h.l.Infof(ctx, "telegram handler: duplicate update %d dropped", update.UpdateID)
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	updateID := update.UpdateID
	traceID := pkgLog.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithTraceID(context.Background(), traceID)
		h.processMessage(bgCtx, updateID, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage sends exactly one reply for msg.
func (h *handler) processMessage(ctx context.Context, updateID int64, msg *pkgTelegram.Message) {
	chatID := msg.Chat.ID

	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "telegram handler: panic while handling update %d: %v", updateID, r)
			h.send(ctx, chatID, relay.MsgHandlerError)
		}
	}()

	chatKey := strconv.FormatInt(chatID, 10)
	if h.limiter != nil {
		if err := h.limiter.Allow(chatKey); err != nil {
			h.l.Warnf(ctx, "telegram handler: %v", err)
			h.send(ctx, chatID, relay.MsgRateLimited)
			return
		}
	}

	turn := relay.IncomingTurn{
		Text:   msg.Text,
		ChatID: chatKey,
		TurnID: strconv.FormatInt(updateID, 10),
	}
	if msg.From != nil {
		turn.UserID = strconv.FormatInt(msg.From.ID, 10)
	}

	reply := h.uc.HandleTurn(ctx, turn)
	h.send(ctx, chatID, reply.Text)
}

func (h *handler) send(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(ctx, chatID, text); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to send reply to chat %d: %v", chatID, err)
	}
}

// Wait blocks until all background turns are done. The update is already
// acknowledged, so Telegram will not redeliver a turn dropped at shutdown.
func (h *handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
