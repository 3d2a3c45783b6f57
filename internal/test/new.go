package test

import (
	"mcw-copilot/internal/router"
	"mcw-copilot/pkg/brain"
	pkgLog "mcw-copilot/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleRoute(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	brain brain.IBrain,
) Handler {
	return &handler{
		l:      l,
		router: router,
		brain:  brain,
	}
}
