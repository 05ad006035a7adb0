package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// RegisterRoutes maps prompt configuration routes. The conflict dry-run
// endpoint historically lives outside the /ai prefix, so this takes the
// api root group.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := api.Group("/ai")
	{
		ai.GET("/prompts", mw.Auth(), h.GetPrompts)
		ai.PUT("/prompts", mw.Auth(), h.UpdatePrompts)
		ai.GET("/priority-settings", mw.Auth(), h.GetSettings)
		ai.PUT("/priority-settings", mw.Auth(), h.UpdateSettings)
	}

	api.POST("/priority-settings/test-conflict", mw.Auth(), h.TestConflict)
}
