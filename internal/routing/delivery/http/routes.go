package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// RegisterRoutes maps message routing routes. The key test endpoint lives
// under the credential path but routes a real request, so it belongs to
// this handler.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := api.Group("/ai")
	{
		ai.POST("/respond", mw.Auth(), h.Respond)
		ai.GET("/gemini-keys/:id/test", mw.Auth(), h.TestKey)
	}
}
