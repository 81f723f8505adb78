package response

import (
	"payment_gateway_client/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AmountResponse struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
	Display  string `json:"display"`
}

type AuthorisationResponse struct {
	PSPReference   string            `json:"psp_reference"`
	ResultCode     string            `json:"result_code"`
	Authorised     bool              `json:"authorised"`
	AuthCode       *string           `json:"auth_code,omitempty"`
	RefusalReason  *string           `json:"refusal_reason,omitempty"`
	FraudScore     *int              `json:"fraud_score,omitempty"`
	DCCAmount      *AmountResponse   `json:"dcc_amount,omitempty"`
	AdditionalData map[string]string `json:"additional_data,omitempty"`
}

type ModificationResponse struct {
	Modification string `json:"modification"`
	PSPReference string `json:"psp_reference"`
	Response     string `json:"response"`
	Received     bool   `json:"received"`
}

func FromAmount(a *entities.Amount) *AmountResponse {
	if a == nil {
		return nil
	}
	exp := entities.MinorUnits(a.Currency)
	return &AmountResponse{
		Currency: a.Currency,
		Value:    a.Value,
		Display:  decimal.New(a.Value, -exp).StringFixed(exp),
	}
}

func FromAuthorisation(r entities.AuthorisationResult) AuthorisationResponse {
	return AuthorisationResponse{
		PSPReference:   r.PSPReference,
		ResultCode:     r.ResultCode,
		Authorised:     r.Authorised(),
		AuthCode:       r.AuthCode,
		RefusalReason:  r.RefusalReason,
		FraudScore:     r.FraudScore,
		DCCAmount:      FromAmount(r.DCCAmount),
		AdditionalData: r.AdditionalData,
	}
}

func FromModification(r entities.ModificationResult) ModificationResponse {
	return ModificationResponse{
		Modification: string(r.Modification),
		PSPReference: r.PSPReference,
		Response:     r.Response,
		Received:     r.Received(),
	}
}
