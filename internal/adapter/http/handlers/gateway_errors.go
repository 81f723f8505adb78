package handlers

import (
	"errors"
	"net/http"

	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/usecase"
	"payment_gateway_client/pkg"
)

var (
	errInvalidJSON = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapGatewayError converts facade and usecase errors into API errors. The
// gateway's fault code is surfaced because callers branch on it.
func mapGatewayError(err error) *pkg.AppError {
	var (
		validation *entities.ValidationError
		fault      *entities.FaultError
		transport  *entities.TransportError
		config     *entities.ConfigurationError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", validation.Reason, err, http.StatusBadRequest).WithFields(validation.Fields...)
	case errors.Is(err, usecase.ErrInvalidPSPReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid psp_reference", http.StatusBadRequest).WithFields("psp_reference")
	case errors.As(err, &config):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway client is not configured", err, http.StatusInternalServerError).WithFields(config.Missing...)
	case errors.Is(err, entities.ErrAuthentication):
		return pkg.NewDomainError("GATEWAY_UNAUTHORIZED", "Payment gateway rejected the credentials", err, http.StatusUnauthorized)
	case errors.As(err, &fault):
		return pkg.NewDomainError("GATEWAY_FAULT_"+fault.Code, fault.Message, err, http.StatusBadGateway)
	case errors.As(err, &transport) && transport.Kind == entities.TransportTimeout:
		return pkg.NewDomainError("GATEWAY_TIMEOUT", "Payment gateway did not answer in time", err, http.StatusGatewayTimeout)
	case errors.Is(err, entities.ErrTransport):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrParse):
		return pkg.NewDomainError("GATEWAY_INVALID_REPLY", "Payment gateway sent an invalid reply", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotificationRepoNotConfigured):
		return pkg.NewDomainError("NOTIFICATIONS_NOT_CONFIGURED", "Notification store is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
