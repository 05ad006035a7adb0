package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// processRespondReq binds the message body and stamps the authenticated
// tenant.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CompanyID = middleware.CompanyID(c)
	return req, nil
}
