package handlers

import (
	"context"
	"net/http"
	"strings"

	request "payment_gateway_client/internal/adapter/http/dto/request"
	response "payment_gateway_client/internal/adapter/http/dto/response"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/gateway"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes authorisations and modifications over HTTP.
type PaymentHandler struct {
	gateway gateway.IGateway
	logger  *zap.Logger
}

func NewPaymentHandler(gw gateway.IGateway, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{gateway: gw, logger: logger}
}

// Authorise godoc
// @Summary      Authorise a payment
// @Description  Card details, or a stored detail under a recurring contract. Both at once is rejected.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AuthoriseRequest  true  "Authorisation"
// @Success      200      {object}  response.AuthorisationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/authorise [post]
func (h *PaymentHandler) Authorise(c *gin.Context) {
	var payload request.AuthoriseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	h.authorise(c, payload.Reference, func(ctx context.Context) (entities.AuthorisationResult, error) {
		return h.gateway.AuthoriseRequest(ctx, payload.ToEntity())
	})
}

// AuthoriseRecurring godoc
// @Summary      Charge a stored detail without the shopper present
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AuthoriseStoredRequest  true  "Recurring authorisation"
// @Success      200      {object}  response.AuthorisationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payments/authorise-recurring [post]
func (h *PaymentHandler) AuthoriseRecurring(c *gin.Context) {
	var payload request.AuthoriseStoredRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	h.authorise(c, payload.Reference, func(ctx context.Context) (entities.AuthorisationResult, error) {
		return h.gateway.AuthoriseRecurring(ctx, strings.TrimSpace(payload.Reference), payload.Amount.AmountOrZero(),
			payload.Shopper.ToEntity(), payload.SelectedRecurringDetailReference)
	})
}

// AuthoriseOneClick godoc
// @Summary      Charge a stored detail with the shopper re-entering the CVC
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AuthoriseStoredRequest  true  "One-click authorisation"
// @Success      200      {object}  response.AuthorisationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payments/authorise-oneclick [post]
func (h *PaymentHandler) AuthoriseOneClick(c *gin.Context) {
	var payload request.AuthoriseStoredRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	h.authorise(c, payload.Reference, func(ctx context.Context) (entities.AuthorisationResult, error) {
		return h.gateway.AuthoriseOneClick(ctx, strings.TrimSpace(payload.Reference), payload.Amount.AmountOrZero(),
			payload.Shopper.ToEntity(), payload.CVC, payload.SelectedRecurringDetailReference)
	})
}

func (h *PaymentHandler) authorise(c *gin.Context, reference string, call func(ctx context.Context) (entities.AuthorisationResult, error)) {
	log := h.logger.With(zap.String("reference", reference))
	log.Info("[payment][handler] authorise start", zap.String("route", c.FullPath()))

	res, err := call(c.Request.Context())
	if err != nil {
		appErr := mapGatewayError(err)
		log.Warn("[payment][handler] authorise failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] authorise done", zap.String("psp_reference", res.PSPReference), zap.String("result_code", res.ResultCode))

	c.JSON(http.StatusOK, response.FromAuthorisation(res))
}

// Capture godoc
// @Summary      Capture an authorised payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ModificationRequest  true  "Capture"
// @Success      200      {object}  response.ModificationResponse
// @Router       /payments/capture [post]
func (h *PaymentHandler) Capture(c *gin.Context) {
	h.modify(c, entities.ModificationCapture, func(ctx context.Context, p request.ModificationRequest) (entities.ModificationResult, error) {
		return h.gateway.Capture(ctx, p.PSPReference, p.Amount.AmountOrZero())
	})
}

// Refund godoc
// @Summary      Refund a captured payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ModificationRequest  true  "Refund"
// @Success      200      {object}  response.ModificationResponse
// @Router       /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	h.modify(c, entities.ModificationRefund, func(ctx context.Context, p request.ModificationRequest) (entities.ModificationResult, error) {
		return h.gateway.Refund(ctx, p.PSPReference, p.Amount.AmountOrZero())
	})
}

// Cancel godoc
// @Summary      Cancel an uncaptured authorisation
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ModificationRequest  true  "Cancel"
// @Success      200      {object}  response.ModificationResponse
// @Router       /payments/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.modify(c, entities.ModificationCancel, func(ctx context.Context, p request.ModificationRequest) (entities.ModificationResult, error) {
		return h.gateway.Cancel(ctx, p.PSPReference)
	})
}

// CancelOrRefund godoc
// @Summary      Cancel or refund, whichever the payment state allows
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ModificationRequest  true  "Cancel or refund"
// @Success      200      {object}  response.ModificationResponse
// @Router       /payments/cancel-or-refund [post]
func (h *PaymentHandler) CancelOrRefund(c *gin.Context) {
	h.modify(c, entities.ModificationCancelOrRefund, func(ctx context.Context, p request.ModificationRequest) (entities.ModificationResult, error) {
		return h.gateway.CancelOrRefund(ctx, p.PSPReference)
	})
}

func (h *PaymentHandler) modify(
	c *gin.Context,
	m entities.Modification,
	call func(ctx context.Context, p request.ModificationRequest) (entities.ModificationResult, error),
) {
	var payload request.ModificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}
	payload.PSPReference = strings.TrimSpace(payload.PSPReference)

	log := h.logger.With(zap.String("modification", string(m)), zap.String("psp_reference", payload.PSPReference))
	log.Info("[payment][handler] modification start")

	res, err := call(c.Request.Context(), payload)
	if err != nil {
		appErr := mapGatewayError(err)
		log.Warn("[payment][handler] modification failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] modification done", zap.String("response", res.Response))

	// Acknowledged only; the outcome arrives later as a notification.
	c.JSON(http.StatusAccepted, response.FromModification(res))
}
