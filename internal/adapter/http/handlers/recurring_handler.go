package handlers

import (
	"net/http"
	"strings"

	response "payment_gateway_client/internal/adapter/http/dto/response"
	"payment_gateway_client/internal/gateway"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecurringHandler exposes the stored details of a shopper.
type RecurringHandler struct {
	gateway gateway.IGateway
	logger  *zap.Logger
}

func NewRecurringHandler(gw gateway.IGateway, logger *zap.Logger) *RecurringHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecurringHandler{gateway: gw, logger: logger}
}

// ListStoredDetails godoc
// @Summary      List stored payment details of a shopper
// @Tags         recurring
// @Produce      json
// @Param        shopper_reference  path      string  true  "Shopper reference"
// @Success      200                {object}  response.StoredDetailsResponse
// @Router       /recurring/{shopper_reference}/details [get]
func (h *RecurringHandler) ListStoredDetails(c *gin.Context) {
	shopperRef := strings.TrimSpace(c.Param("shopper_reference"))
	log := h.logger.With(zap.String("shopper_reference", shopperRef))
	log.Info("[recurring][handler] list start")

	details, err := h.gateway.ListStoredDetails(c.Request.Context(), shopperRef)
	if err != nil {
		appErr := mapGatewayError(err)
		log.Warn("[recurring][handler] list failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[recurring][handler] list done", zap.Int("count", len(details)))

	c.JSON(http.StatusOK, response.FromStoredDetails(shopperRef, details))
}

// DisableStoredDetails godoc
// @Summary      Disable one stored detail, or all of them when detail_reference is absent
// @Tags         recurring
// @Produce      json
// @Param        shopper_reference  path      string  true   "Shopper reference"
// @Param        detail_reference   query     string  false  "Stored detail reference"
// @Success      200                {object}  response.DisableResponse
// @Router       /recurring/{shopper_reference}/details [delete]
func (h *RecurringHandler) DisableStoredDetails(c *gin.Context) {
	shopperRef := strings.TrimSpace(c.Param("shopper_reference"))

	var detailRef *string
	if v, ok := c.GetQuery("detail_reference"); ok {
		detailRef = &v
	}

	log := h.logger.With(zap.String("shopper_reference", shopperRef), zap.Bool("all_details", detailRef == nil))
	log.Info("[recurring][handler] disable start")

	res, err := h.gateway.DisableStoredDetails(c.Request.Context(), shopperRef, detailRef)
	if err != nil {
		appErr := mapGatewayError(err)
		log.Warn("[recurring][handler] disable failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[recurring][handler] disable done", zap.String("response", res.Response))

	c.JSON(http.StatusOK, response.FromDisable(res))
}
