package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// GetPrompts godoc
// @Summary     Get prompts
// @Description Returns the tenant's stored personality and response prompts.
// @Tags        Prompts
// @Produce     json
// @Success     200 {object} promptsResp
// @Router      /api/v1/ai/prompts [GET]
func (h *handler) GetPrompts(c *gin.Context) {
	ctx := c.Request.Context()

	ps, err := h.uc.GetPrompts(ctx, middleware.CompanyID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPrompts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPromptsResp(ps))
}

// UpdatePrompts godoc
// @Summary     Update prompts
// @Description Overwrites the tenant's personality and response prompts.
// @Tags        Prompts
// @Accept      json
// @Produce     json
// @Param       body body updatePromptsReq true "Prompt texts"
// @Success     200 {object} promptsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/prompts [PUT]
func (h *handler) UpdatePrompts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdatePromptsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ps, err := h.uc.UpdatePrompts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdatePrompts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPromptsResp(ps))
}

// GetSettings godoc
// @Summary     Get priority settings
// @Description Returns the tenant's conflict resolution settings (defaults when never saved).
// @Tags        Prompts
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/v1/ai/priority-settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.GetSettings(ctx, middleware.CompanyID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSettingsResp(s))
}

// UpdateSettings godoc
// @Summary     Update priority settings
// @Description Writes the full conflict resolution settings for the tenant.
// @Tags        Prompts
// @Accept      json
// @Produce     json
// @Param       body body settingsReq true "Full settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/priority-settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSettingsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.UpdateSettings(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSettingsResp(s))
}

// TestConflict godoc
// @Summary     Dry-run conflict detection
// @Description Runs the conflict resolver against a supplied prompt and patterns without saving anything.
// @Tags        Prompts
// @Accept      json
// @Produce     json
// @Param       body body testConflictReq true "Prompt and patterns to test"
// @Success     200 {object} testConflictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/priority-settings/test-conflict [POST]
func (h *handler) TestConflict(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTestConflictReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.uc.TestConflict(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TestConflict: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTestConflictResp(report))
}
