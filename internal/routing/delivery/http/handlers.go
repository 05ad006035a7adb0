package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// Respond godoc
// @Summary     Route a message
// @Description Answers one end-user message through the credential failover chain.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "Message"
// @Success     200 {object} respondResp
// @Failure     503 {object} response.Resp "All providers exhausted"
// @Router      /api/v1/ai/respond [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRespondReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Route(ctx, req.CompanyID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRespondResp(out))
}

// TestKey godoc
// @Summary     Test API key
// @Description Sends a canned message through one key only; reports reachability.
// @Tags        Credentials
// @Produce     json
// @Param       id path string true "Credential ID"
// @Success     200 {object} testResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/gemini-keys/{id}/test [GET]
func (h *handler) TestKey(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.TestCredential(ctx, middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			response.Error(c, h.mapError(err))
			return
		}
		// Exhaustion is an expected test verdict, not a transport error.
		if errors.Is(err, routing.ErrAllProvidersExhausted) {
			response.OK(c, testResp{OK: false, Error: unavailableMessage})
			return
		}
		h.l.Errorf(ctx, "uc.TestCredential: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, testResp{OK: true, Model: out.ModelID, Response: out.Reply})
}
