package test

import (
	"net/http"
	"strings"

	"mcw-copilot/internal/router"
	"mcw-copilot/pkg/brain"
	pkgLog "mcw-copilot/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
	brain  brain.IBrain
}

// HandleRoute shows how a message would be routed without calling the brain
// @Summary Preview message routing
// @Description Classify a message with the keyword router. Nothing is sent to the answering service.
// @Tags test
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Test message"
// @Success 200 {object} RouteResponse
// @Router /test/route [post]
func (h *handler) HandleRoute(c *gin.Context) {
	ctx := c.Request.Context()

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp := RouteResponse{
		Text:            req.Text,
		BrainConfigured: h.brain.Configured(),
	}
	if m, ok := h.router.Route(req.Text); ok {
		resp.Intent = string(m.Intent)
		resp.Reply = m.Reply
	} else {
		resp.Delegated = true
		resp.Question = strings.TrimSpace(req.Text)
	}

	h.l.Infof(ctx, "internal.test.HandleRoute: text=%q intent=%s delegated=%t", req.Text, resp.Intent, resp.Delegated)

	c.JSON(http.StatusOK, resp)
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
