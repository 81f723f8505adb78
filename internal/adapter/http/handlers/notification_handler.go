package handlers

import (
	"errors"
	"net/http"

	response "payment_gateway_client/internal/adapter/http/dto/response"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/soap"
	"payment_gateway_client/internal/usecase"
	"payment_gateway_client/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxNotificationBytes = 1 << 20

var errInvalidNotification = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification document", http.StatusBadRequest)

// NotificationHandler receives the gateway's pushed notifications.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	logger  *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{usecase: uc, logger: logger}
}

// Receive godoc
// @Summary      Gateway notification endpoint (SOAP sendNotification)
// @Tags         notifications
// @Accept       xml
// @Produce      xml
// @Success      200  {string}  string  "[accepted]"
// @Router       /notifications [post]
func (h *NotificationHandler) Receive(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 || len(raw) > maxNotificationBytes {
		c.JSON(errInvalidNotification.HTTPStatus, errInvalidNotification.ToHTTPError())
		return
	}

	items, err := h.usecase.Receive(c.Request.Context(), raw)
	if err != nil {
		appErr := mapGatewayError(err)
		if errors.Is(err, entities.ErrParse) {
			appErr = errInvalidNotification
		}
		h.logger.Warn("[notification][handler] receive failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[notification][handler] received", zap.Int("items", len(items)))

	c.Data(http.StatusOK, "text/xml; charset=utf-8", soap.EncodeNotificationAck())
}

// ListByPSPReference godoc
// @Summary      List notifications recorded for a PSP reference
// @Tags         notifications
// @Produce      json
// @Param        psp_reference  path      string  true  "PSP reference"
// @Success      200            {array}   response.NotificationResponse
// @Router       /notifications/{psp_reference} [get]
func (h *NotificationHandler) ListByPSPReference(c *gin.Context) {
	pspRef := c.Param("psp_reference")

	items, err := h.usecase.ListByPSPReference(c.Request.Context(), pspRef)
	if err != nil {
		appErr := mapGatewayError(err)
		h.logger.Warn("[notification][handler] list failed", zap.String("psp_reference", pspRef), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}
