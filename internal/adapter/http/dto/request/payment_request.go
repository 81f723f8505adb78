package request

import (
	"strings"

	"payment_gateway_client/internal/domain/entities"
)

// AmountRequest carries money in minor units, e.g. 1050 EUR is 10.50 EUR.
type AmountRequest struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

type ShopperRequest struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
	IP        string `json:"ip"`
	Statement string `json:"statement"`
}

type CardRequest struct {
	HolderName  string `json:"holder_name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
}

// AuthoriseRequest is the general authorisation payload. Card details and
// selected_recurring_detail_reference are mutually exclusive.
type AuthoriseRequest struct {
	MerchantAccount                  string          `json:"merchant_account"`
	Reference                        string          `json:"reference"`
	Amount                           *AmountRequest  `json:"amount"`
	Shopper                          *ShopperRequest `json:"shopper"`
	Card                             *CardRequest    `json:"card"`
	EnableRecurring                  bool            `json:"enable_recurring"`
	Contract                         string          `json:"contract"`
	SelectedRecurringDetailReference *string         `json:"selected_recurring_detail_reference"`
	CVC                              string          `json:"cvc"`
}

// AuthoriseStoredRequest charges a stored detail. A missing
// selected_recurring_detail_reference means the latest one.
type AuthoriseStoredRequest struct {
	Reference                        string          `json:"reference"`
	Amount                           *AmountRequest  `json:"amount"`
	Shopper                          *ShopperRequest `json:"shopper"`
	SelectedRecurringDetailReference *string         `json:"selected_recurring_detail_reference"`
	CVC                              string          `json:"cvc"`
}

type ModificationRequest struct {
	PSPReference string         `json:"psp_reference"`
	Amount       *AmountRequest `json:"amount"`
}

func (a *AmountRequest) ToEntity() *entities.Amount {
	if a == nil {
		return nil
	}
	amount := entities.NewAmount(a.Currency, a.Value)
	return &amount
}

// AmountOrZero is used where the facade takes the amount by value; an absent
// amount becomes an empty currency and fails validation downstream.
func (a *AmountRequest) AmountOrZero() entities.Amount {
	if a == nil {
		return entities.Amount{}
	}
	return entities.NewAmount(a.Currency, a.Value)
}

func (s *ShopperRequest) ToEntity() entities.Shopper {
	if s == nil {
		return entities.Shopper{}
	}
	return entities.Shopper{
		Reference: strings.TrimSpace(s.Reference),
		Email:     strings.TrimSpace(s.Email),
		IP:        strings.TrimSpace(s.IP),
		Statement: s.Statement,
	}
}

func (c *CardRequest) ToEntity() *entities.Card {
	if c == nil {
		return nil
	}
	return &entities.Card{
		HolderName:  c.HolderName,
		Number:      strings.ReplaceAll(c.Number, " ", ""),
		ExpiryMonth: c.ExpiryMonth,
		ExpiryYear:  c.ExpiryYear,
		CVC:         c.CVC,
	}
}

func (r AuthoriseRequest) ToEntity() entities.AuthoriseRequest {
	return entities.AuthoriseRequest{
		MerchantAccount: strings.TrimSpace(r.MerchantAccount),
		Reference:       strings.TrimSpace(r.Reference),
		Amount:          r.Amount.ToEntity(),
		Shopper:         r.Shopper.ToEntity(),
		Method: entities.PaymentMethodInput{
			Contract:              entities.Contract(strings.ToUpper(strings.TrimSpace(r.Contract))),
			Card:                  r.Card.ToEntity(),
			EnableRecurring:       r.EnableRecurring,
			StoredDetailReference: r.SelectedRecurringDetailReference,
			CVC:                   r.CVC,
		},
	}
}
