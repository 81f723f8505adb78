// Package gateway is the caller-facing entry point of the payment gateway
// client. Each method maps one business operation to one gateway call.
package gateway

import (
	"context"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/transport"
	"payment_gateway_client/internal/usecase"

	"go.uber.org/zap"
)

// IGateway is the full operation surface.
//
// A nil storedDetailReference selects the latest stored detail; a nil
// detailReference in DisableStoredDetails disables all of them.
type IGateway interface {
	Authorise(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, card entities.Card, enableRecurring bool) (entities.AuthorisationResult, error)
	AuthoriseRecurring(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, storedDetailReference *string) (entities.AuthorisationResult, error)
	AuthoriseOneClick(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, cvc string, storedDetailReference *string) (entities.AuthorisationResult, error)
	AuthoriseRequest(ctx context.Context, req entities.AuthoriseRequest) (entities.AuthorisationResult, error)

	Capture(ctx context.Context, pspReference string, amount entities.Amount) (entities.ModificationResult, error)
	Refund(ctx context.Context, pspReference string, amount entities.Amount) (entities.ModificationResult, error)
	Cancel(ctx context.Context, pspReference string) (entities.ModificationResult, error)
	CancelOrRefund(ctx context.Context, pspReference string) (entities.ModificationResult, error)

	ListStoredDetails(ctx context.Context, shopperReference string) ([]entities.StoredDetail, error)
	DisableStoredDetails(ctx context.Context, shopperReference string, detailReference *string) (entities.DisableResult, error)
}

// Client is safe for concurrent use once its Config is populated.
type Client struct {
	payments  usecase.IPaymentUseCase
	recurring usecase.IRecurringUseCase
}

var _ IGateway = (*Client)(nil)

func New(payments usecase.IPaymentUseCase, recurring usecase.IRecurringUseCase) *Client {
	return &Client{payments: payments, recurring: recurring}
}

// NewFromConfig wires the HTTP transport and both action families to cfg.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	tr := transport.NewHTTPTransport(nil, logger)
	return New(
		usecase.NewPaymentUseCase(cfg, tr, logger),
		usecase.NewRecurringUseCase(cfg, tr, logger),
	)
}

func (c *Client) Authorise(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, card entities.Card, enableRecurring bool) (entities.AuthorisationResult, error) {
	return c.payments.Authorise(ctx, entities.AuthoriseRequest{
		Reference: reference,
		Amount:    &amount,
		Shopper:   shopper,
		Method:    entities.PaymentMethodInput{Card: &card, EnableRecurring: enableRecurring},
	})
}

// AuthoriseRecurring charges a stored detail without the shopper present.
// The result is provisional until the matching notification arrives.
func (c *Client) AuthoriseRecurring(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, storedDetailReference *string) (entities.AuthorisationResult, error) {
	return c.payments.Authorise(ctx, entities.AuthoriseRequest{
		Reference: reference,
		Amount:    &amount,
		Shopper:   shopper,
		Method: entities.PaymentMethodInput{
			Contract:              entities.ContractRecurring,
			StoredDetailReference: storedDetailReference,
		},
	})
}

func (c *Client) AuthoriseOneClick(ctx context.Context, reference string, amount entities.Amount, shopper entities.Shopper, cvc string, storedDetailReference *string) (entities.AuthorisationResult, error) {
	return c.payments.Authorise(ctx, entities.AuthoriseRequest{
		Reference: reference,
		Amount:    &amount,
		Shopper:   shopper,
		Method: entities.PaymentMethodInput{
			Contract:              entities.ContractOneClick,
			StoredDetailReference: storedDetailReference,
			CVC:                   cvc,
		},
	})
}

// AuthoriseRequest takes a fully shaped request, including an explicit
// merchant account.
func (c *Client) AuthoriseRequest(ctx context.Context, req entities.AuthoriseRequest) (entities.AuthorisationResult, error) {
	return c.payments.Authorise(ctx, req)
}

func (c *Client) Capture(ctx context.Context, pspReference string, amount entities.Amount) (entities.ModificationResult, error) {
	return c.payments.Capture(ctx, entities.ModificationRequest{PSPReference: pspReference, Amount: &amount})
}

func (c *Client) Refund(ctx context.Context, pspReference string, amount entities.Amount) (entities.ModificationResult, error) {
	return c.payments.Refund(ctx, entities.ModificationRequest{PSPReference: pspReference, Amount: &amount})
}

func (c *Client) Cancel(ctx context.Context, pspReference string) (entities.ModificationResult, error) {
	return c.payments.Cancel(ctx, entities.ModificationRequest{PSPReference: pspReference})
}

func (c *Client) CancelOrRefund(ctx context.Context, pspReference string) (entities.ModificationResult, error) {
	return c.payments.CancelOrRefund(ctx, entities.ModificationRequest{PSPReference: pspReference})
}

func (c *Client) ListStoredDetails(ctx context.Context, shopperReference string) ([]entities.StoredDetail, error) {
	return c.recurring.ListStoredDetails(ctx, entities.ListStoredDetailsRequest{ShopperReference: shopperReference})
}

func (c *Client) DisableStoredDetails(ctx context.Context, shopperReference string, detailReference *string) (entities.DisableResult, error) {
	return c.recurring.DisableStoredDetails(ctx, entities.DisableStoredDetailsRequest{
		ShopperReference: shopperReference,
		DetailReference:  detailReference,
	})
}
