package usecase

import (
	"context"
	"fmt"
	"strconv"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/soap"
	"payment_gateway_client/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPaymentUseCase is the payment action family.
//
// Capture, refund, cancel and cancel-or-refund results only confirm the
// gateway accepted the request; the outcome arrives later as a notification.
type IPaymentUseCase interface {
	Authorise(ctx context.Context, req entities.AuthoriseRequest) (entities.AuthorisationResult, error)
	Capture(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error)
	Refund(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error)
	Cancel(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error)
	CancelOrRefund(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error)
}

type PaymentUseCase struct {
	gatewayCaller
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(cfg *config.Config, transport interfaces.IGatewayTransport, logger *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{gatewayCaller: newGatewayCaller(cfg, transport, logger)}
}

func (u *PaymentUseCase) Authorise(ctx context.Context, req entities.AuthoriseRequest) (entities.AuthorisationResult, error) {
	log := u.callLogger(soap.ActionAuthorise).With(zap.String("reference", req.Reference))
	log.Info("[payment][usecase] authorise start")

	fields, err := u.authoriseFields(req)
	if err != nil {
		log.Info("[payment][usecase] authorise rejected", zap.Error(err))
		return entities.AuthorisationResult{}, err
	}

	reply, err := u.call(ctx, log, soap.ActionAuthorise, u.cfg.PaymentEndpoint(), fields...)
	if err != nil {
		return entities.AuthorisationResult{}, err
	}

	res, err := interpretAuthorisation(reply)
	if err != nil {
		log.Warn("[payment][usecase] authorise reply invalid", zap.Error(err))
		return entities.AuthorisationResult{}, err
	}
	log.Info("[payment][usecase] authorise done",
		zap.String("psp_reference", res.PSPReference),
		zap.String("result_code", res.ResultCode),
	)
	return res, nil
}

func (u *PaymentUseCase) authoriseFields(req entities.AuthoriseRequest) ([]*soap.Node, error) {
	merchant := u.merchantAccount(req.MerchantAccount)

	var missing []string
	missing = requireText(missing, "merchantAccount", merchant)
	missing = requireText(missing, "reference", req.Reference)
	if req.Amount == nil {
		missing = append(missing, "amount")
	}
	if req.Method.Contract != entities.ContractNone || req.Method.EnableRecurring || req.Method.StoredDetailReference != nil {
		missing = requireText(missing, "shopper.reference", req.Shopper.Reference)
	} else if req.Shopper.Reference == "" && req.Shopper.Email == "" {
		missing = append(missing, "shopper")
	}
	if err := missingFields(missing); err != nil {
		return nil, err
	}
	if err := req.Amount.Validate("amount"); err != nil {
		return nil, err
	}

	method, err := req.Method.Resolve()
	if err != nil {
		return nil, err
	}

	fields := []*soap.Node{
		soap.AmountNode("amount", *req.Amount),
		soap.Str("merchantAccount", merchant),
		soap.Str("reference", req.Reference),
		soap.OptStr("shopperEmail", req.Shopper.Email),
		soap.OptStr("shopperIP", req.Shopper.IP),
		soap.OptStr("shopperReference", req.Shopper.Reference),
		soap.OptStr("shopperStatement", req.Shopper.Statement),
	}

	switch m := method.(type) {
	case entities.CardPayment:
		fields = append(fields,
			soap.Group("card",
				soap.OptStr("cvc", m.Card.CVC),
				soap.Str("expiryMonth", m.Card.ExpiryMonth),
				soap.Str("expiryYear", m.Card.ExpiryYear),
				soap.Str("holderName", m.Card.HolderName),
				soap.Str("number", m.Card.Number),
			),
			soap.Str("shopperInteraction", entities.ShopperInteractionEcommerce),
		)
		if m.EnableRecurring {
			fields = append(fields, recurringContract(entities.ContractRecurring))
		}
	case entities.RecurringPayment:
		fields = append(fields,
			recurringContract(entities.ContractRecurring),
			soap.Str("selectedRecurringDetailReference", m.DetailReference),
			soap.Str("shopperInteraction", entities.ShopperInteractionContAuth),
		)
	case entities.OneClickPayment:
		fields = append(fields,
			soap.Group("card", soap.Str("cvc", m.CVC)),
			recurringContract(entities.ContractOneClick),
			soap.Str("selectedRecurringDetailReference", m.DetailReference),
			soap.Str("shopperInteraction", entities.ShopperInteractionEcommerce),
		)
	default:
		return nil, fmt.Errorf("unsupported payment method %T", method)
	}
	return fields, nil
}

func recurringContract(c entities.Contract) *soap.Node {
	return soap.Group("recurring", soap.Str("contract", string(c)))
}

func interpretAuthorisation(reply *soap.Reply) (entities.AuthorisationResult, error) {
	var res entities.AuthorisationResult
	res.PSPReference, _ = reply.Text("pspReference")
	res.ResultCode, _ = reply.Text("resultCode")

	if v, ok := reply.Text("authCode"); ok {
		res.AuthCode = &v
	}
	if v, ok := reply.Text("refusalReason"); ok {
		res.RefusalReason = &v
	}
	if fraud := reply.Field("fraudResult"); fraud != nil {
		if v, ok := fraud.Value("accountScore"); ok {
			score, err := strconv.Atoi(v)
			if err != nil {
				return res, &entities.ParseError{Action: string(reply.Action), Err: fmt.Errorf("invalid accountScore %q", v)}
			}
			res.FraudScore = &score
		}
	}
	if dcc := reply.Field("dccAmount"); dcc != nil {
		amount, err := soap.ParseAmountNode(dcc)
		if err != nil {
			return res, &entities.ParseError{Action: string(reply.Action), Err: err}
		}
		res.DCCAmount = &amount
	}
	res.AdditionalData = additionalData(reply)
	return res, nil
}

// additionalData flattens <entry><key/><value/></entry> pairs.
func additionalData(reply *soap.Reply) map[string]string {
	data := reply.Field("additionalData")
	if data == nil || len(data.Children) == 0 {
		return nil
	}
	out := make(map[string]string, len(data.Children))
	for _, entry := range data.Children {
		key, ok := entry.Value("key")
		if !ok {
			continue
		}
		value, _ := entry.Value("value")
		out[key] = value
	}
	return out
}

func (u *PaymentUseCase) Capture(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error) {
	return u.modify(ctx, entities.ModificationCapture, req)
}

func (u *PaymentUseCase) Refund(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error) {
	return u.modify(ctx, entities.ModificationRefund, req)
}

func (u *PaymentUseCase) Cancel(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error) {
	return u.modify(ctx, entities.ModificationCancel, req)
}

func (u *PaymentUseCase) CancelOrRefund(ctx context.Context, req entities.ModificationRequest) (entities.ModificationResult, error) {
	return u.modify(ctx, entities.ModificationCancelOrRefund, req)
}

func (u *PaymentUseCase) modify(ctx context.Context, m entities.Modification, req entities.ModificationRequest) (entities.ModificationResult, error) {
	action := soap.Action(m)
	log := u.callLogger(action).With(zap.String("original_reference", req.PSPReference))
	log.Info("[payment][usecase] modification start")

	merchant := u.merchantAccount(req.MerchantAccount)
	var missing []string
	missing = requireText(missing, "merchantAccount", merchant)
	missing = requireText(missing, "originalReference", req.PSPReference)
	if m.RequiresAmount() && req.Amount == nil {
		missing = append(missing, "modificationAmount")
	}
	if err := missingFields(missing); err != nil {
		log.Info("[payment][usecase] modification rejected", zap.Error(err))
		return entities.ModificationResult{}, err
	}

	fields := []*soap.Node{
		soap.Str("merchantAccount", merchant),
		soap.Str("originalReference", req.PSPReference),
	}
	if m.RequiresAmount() {
		if err := req.Amount.Validate("modificationAmount"); err != nil {
			return entities.ModificationResult{}, err
		}
		fields = append(fields, soap.AmountNode("modificationAmount", *req.Amount))
	}

	reply, err := u.call(ctx, log, action, u.cfg.PaymentEndpoint(), fields...)
	if err != nil {
		return entities.ModificationResult{}, err
	}

	res := entities.ModificationResult{Modification: m}
	res.PSPReference, _ = reply.Text("pspReference")
	res.Response, _ = reply.Text("response")
	log.Info("[payment][usecase] modification done",
		zap.String("psp_reference", res.PSPReference),
		zap.String("response", res.Response),
	)
	return res, nil
}
