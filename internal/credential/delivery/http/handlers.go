package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// Create godoc
// @Summary     Register API key
// @Description Registers a provider API key and auto-populates the full model catalog for it.
// @Tags        Credentials
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Key registration"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/gemini-keys [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, createResp{
		Credential:    newCredentialResp(out.Credential),
		ModelsCreated: out.ModelsCreated,
	})
}

// List godoc
// @Summary     List API keys
// @Description Lists the tenant's keys with masked secrets and per-model quota state.
// @Tags        Credentials
// @Produce     json
// @Success     200 {array} listItemResp
// @Router      /api/v1/ai/gemini-keys [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.List(ctx, middleware.CompanyID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(items))
}

// Toggle godoc
// @Summary     Toggle API key
// @Description Flips the key's enabled flag.
// @Tags        Credentials
// @Produce     json
// @Param       id path string true "Credential ID"
// @Success     200 {object} credentialResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/gemini-keys/{id}/toggle [PUT]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	cred, err := h.uc.ToggleCredential(ctx, middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCredential: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCredentialResp(cred))
}

// Delete godoc
// @Summary     Delete API key
// @Description Removes the key and its model rows.
// @Tags        Credentials
// @Produce     json
// @Param       id path string true "Credential ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/gemini-keys/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.CompanyID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SetModel godoc
// @Summary     Set key model
// @Description Enables exactly the named model on the key and disables the rest.
// @Tags        Credentials
// @Accept      json
// @Produce     json
// @Param       id path string true "Credential ID"
// @Param       body body setModelReq true "Model assignment"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/gemini-keys/{id}/model [PUT]
func (h *handler) SetModel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetModelReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetModel(ctx, middleware.CompanyID(c), c.Param("id"), req.Model); err != nil {
		h.l.Errorf(ctx, "uc.SetModel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ToggleModel godoc
// @Summary     Toggle key model
// @Description Flips one model's enabled flag on the key.
// @Tags        Credentials
// @Produce     json
// @Param       id path string true "Credential ID"
// @Param       model path string true "Model ID"
// @Success     200 {object} modelResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/gemini-keys/{id}/models/{model}/toggle [PUT]
func (h *handler) ToggleModel(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.ToggleModel(ctx, middleware.CompanyID(c), c.Param("id"), c.Param("model"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleModel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newModelResp(m))
}

// AvailableModels godoc
// @Summary     Available models
// @Description Returns the static supported model catalog.
// @Tags        Credentials
// @Produce     json
// @Success     200 {object} availableModelsResp
// @Router      /api/v1/ai/available-models [GET]
func (h *handler) AvailableModels(c *gin.Context) {
	response.OK(c, newAvailableModelsResp(h.uc.AvailableModels()))
}
