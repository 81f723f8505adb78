package response

import (
	"time"

	"payment_gateway_client/internal/domain/entities"
)

type StoredDetailResponse struct {
	Reference string                `json:"reference"`
	Variant   string                `json:"variant"`
	Card      *entities.CardSummary `json:"card,omitempty"`
	CreatedAt *time.Time            `json:"created_at,omitempty"`
}

type StoredDetailsResponse struct {
	ShopperReference string                 `json:"shopper_reference"`
	Details          []StoredDetailResponse `json:"details"`
}

type DisableResponse struct {
	Response string `json:"response"`
	Disabled bool   `json:"disabled"`
}

func FromStoredDetails(shopperReference string, details []entities.StoredDetail) StoredDetailsResponse {
	out := StoredDetailsResponse{ShopperReference: shopperReference, Details: make([]StoredDetailResponse, 0, len(details))}
	for _, d := range details {
		item := StoredDetailResponse{Reference: d.Reference, Variant: d.Variant, Card: d.Card}
		if !d.CreatedAt.IsZero() {
			created := d.CreatedAt
			item.CreatedAt = &created
		}
		out.Details = append(out.Details, item)
	}
	return out
}

func FromDisable(r entities.DisableResult) DisableResponse {
	return DisableResponse{Response: r.Response, Disabled: r.Disabled()}
}
