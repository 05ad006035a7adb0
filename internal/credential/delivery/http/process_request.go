package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
)

// processCreateReq binds the key registration body and stamps the
// authenticated tenant.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.CompanyID = middleware.CompanyID(c)
	return req, nil
}

// processSetModelReq binds the model reassignment body.
func (h *handler) processSetModelReq(c *gin.Context) (setModelReq, error) {
	var req setModelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
