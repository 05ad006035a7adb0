package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// processUpdatePromptsReq binds the prompt update body and stamps the
// authenticated tenant.
func (h *handler) processUpdatePromptsReq(c *gin.Context) (updatePromptsReq, error) {
	var req updatePromptsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CompanyID = middleware.CompanyID(c)
	return req, nil
}

// processSettingsReq binds the full priority settings body.
func (h *handler) processSettingsReq(c *gin.Context) (settingsReq, error) {
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CompanyID = middleware.CompanyID(c)
	return req, nil
}

// processTestConflictReq binds the dry-run conflict body.
func (h *handler) processTestConflictReq(c *gin.Context) (testConflictReq, error) {
	var req testConflictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CompanyID = middleware.CompanyID(c)
	return req, nil
}
