package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// RegisterRoutes maps credential administration routes.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := api.Group("/ai")
	{
		ai.POST("/gemini-keys", mw.Auth(), h.Create)
		ai.GET("/gemini-keys", mw.Auth(), h.List)
		ai.PUT("/gemini-keys/:id/toggle", mw.Auth(), h.Toggle)
		ai.PUT("/gemini-keys/:id/model", mw.Auth(), h.SetModel)
		ai.PUT("/gemini-keys/:id/models/:model/toggle", mw.Auth(), h.ToggleModel)
		ai.DELETE("/gemini-keys/:id", mw.Auth(), h.Delete)
		ai.GET("/available-models", mw.Auth(), h.AvailableModels)
	}
}
