package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	pkgErrors "github.com/elhenawym124-ops/chatai-sub002/pkg/errors"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// Stats godoc
// @Summary     Usage stats
// @Description Aggregates the tenant's routing outcomes over a period (day, week or month).
// @Tags        Usage
// @Produce     json
// @Param       period query string false "day|week|month" default(day)
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/usage/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx, middleware.CompanyID(c), usage.Period(c.Query("period")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(stats))
}

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case usage.ErrInvalidPeriod:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
