package http

import (
	"github.com/gin-gonic/gin"
)

// processActivityReq binds and validates the activity request body.
func (h *handler) processActivityReq(c *gin.Context) (activityReq, error) {
	var req activityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// allow applies the per-IP limit to a message turn.
func (h *handler) allow(c *gin.Context) error {
	if h.limiter == nil {
		return nil
	}
	return h.limiter.Allow(c.ClientIP())
}
