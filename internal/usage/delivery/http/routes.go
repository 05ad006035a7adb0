package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// RegisterRoutes maps usage reporting routes.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := api.Group("/ai")
	{
		ai.GET("/usage/stats", mw.Auth(), h.Stats)
	}
}
