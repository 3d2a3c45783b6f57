package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the activity endpoint under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/messages", h.Messages)
}
