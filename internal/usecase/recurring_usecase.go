package usecase

import (
	"context"
	"fmt"
	"time"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/soap"
	"payment_gateway_client/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRecurringUseCase manages the stored payment details of shoppers.
type IRecurringUseCase interface {
	ListStoredDetails(ctx context.Context, req entities.ListStoredDetailsRequest) ([]entities.StoredDetail, error)
	DisableStoredDetails(ctx context.Context, req entities.DisableStoredDetailsRequest) (entities.DisableResult, error)
}

type RecurringUseCase struct {
	gatewayCaller
}

var _ IRecurringUseCase = (*RecurringUseCase)(nil)

func NewRecurringUseCase(cfg *config.Config, transport interfaces.IGatewayTransport, logger *zap.Logger) *RecurringUseCase {
	return &RecurringUseCase{gatewayCaller: newGatewayCaller(cfg, transport, logger)}
}

// ListStoredDetails returns an empty, non-nil slice when the shopper has no
// stored details.
func (u *RecurringUseCase) ListStoredDetails(ctx context.Context, req entities.ListStoredDetailsRequest) ([]entities.StoredDetail, error) {
	log := u.callLogger(soap.ActionListRecurringDetails).With(zap.String("shopper_reference", req.ShopperReference))
	log.Info("[recurring][usecase] list start")

	merchant := u.merchantAccount(req.MerchantAccount)
	var missing []string
	missing = requireText(missing, "merchantAccount", merchant)
	missing = requireText(missing, "shopperReference", req.ShopperReference)
	if err := missingFields(missing); err != nil {
		log.Info("[recurring][usecase] list rejected", zap.Error(err))
		return nil, err
	}

	reply, err := u.call(ctx, log, soap.ActionListRecurringDetails, u.cfg.RecurringEndpoint(),
		soap.Str("merchantAccount", merchant),
		recurringContract(entities.ContractRecurring),
		soap.Str("shopperReference", req.ShopperReference),
	)
	if err != nil {
		return nil, err
	}

	details := []entities.StoredDetail{}
	list := reply.Field("details")
	if list == nil {
		log.Info("[recurring][usecase] list done", zap.Int("count", 0))
		return details, nil
	}
	for _, item := range list.Children {
		if !item.Present() {
			continue
		}
		d, err := storedDetailFrom(item)
		if err != nil {
			return nil, &entities.ParseError{Action: string(reply.Action), Err: err}
		}
		details = append(details, d)
	}

	log.Info("[recurring][usecase] list done", zap.Int("count", len(details)))
	return details, nil
}

func storedDetailFrom(item *soap.Node) (entities.StoredDetail, error) {
	var d entities.StoredDetail
	ref, ok := item.Value("recurringDetailReference")
	if !ok || ref == "" {
		return d, fmt.Errorf("stored detail without recurringDetailReference")
	}
	d.Reference = ref
	d.Variant, _ = item.Value("variant")

	if v, ok := item.Value("creationDate"); ok && v != "" {
		created, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return d, fmt.Errorf("invalid creationDate %q: %w", v, err)
		}
		d.CreatedAt = created
	}

	if card := item.Child("card"); card.Present() {
		summary := &entities.CardSummary{}
		summary.HolderName, _ = card.Value("holderName")
		summary.Number, _ = card.Value("number")
		summary.ExpiryMonth, _ = card.Value("expiryMonth")
		summary.ExpiryYear, _ = card.Value("expiryYear")
		d.Card = summary
	}
	return d, nil
}

// DisableStoredDetails disables one stored detail, or all of them when
// req.DetailReference is nil.
func (u *RecurringUseCase) DisableStoredDetails(ctx context.Context, req entities.DisableStoredDetailsRequest) (entities.DisableResult, error) {
	log := u.callLogger(soap.ActionDisable).With(
		zap.String("shopper_reference", req.ShopperReference),
		zap.Bool("all_details", req.DetailReference == nil),
	)
	log.Info("[recurring][usecase] disable start")

	merchant := u.merchantAccount(req.MerchantAccount)
	var missing []string
	missing = requireText(missing, "merchantAccount", merchant)
	missing = requireText(missing, "shopperReference", req.ShopperReference)
	if err := missingFields(missing); err != nil {
		log.Info("[recurring][usecase] disable rejected", zap.Error(err))
		return entities.DisableResult{}, err
	}

	fields := []*soap.Node{
		soap.Str("merchantAccount", merchant),
		soap.Str("shopperReference", req.ShopperReference),
	}
	if req.DetailReference != nil {
		fields = append(fields, soap.Str("recurringDetailReference", *req.DetailReference))
	}

	reply, err := u.call(ctx, log, soap.ActionDisable, u.cfg.RecurringEndpoint(), fields...)
	if err != nil {
		return entities.DisableResult{}, err
	}

	var res entities.DisableResult
	res.Response, _ = reply.Text("response")
	log.Info("[recurring][usecase] disable done", zap.String("response", res.Response))
	return res, nil
}
