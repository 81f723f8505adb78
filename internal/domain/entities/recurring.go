package entities

import "time"

// Disable acknowledgement tokens.
const (
	DetailDisabledToken     = "[detail-successfully-disabled]"
	AllDetailsDisabledToken = "[all-details-successfully-disabled]"
)

// CardSummary is the non-sensitive part of a stored card.
type CardSummary struct {
	HolderName  string `json:"holder_name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

// StoredDetail is one tokenized payment instrument of a shopper.
type StoredDetail struct {
	Reference string       `json:"reference"`
	Variant   string       `json:"variant"`
	Card      *CardSummary `json:"card,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// ListStoredDetailsRequest lists every stored detail of a shopper.
type ListStoredDetailsRequest struct {
	MerchantAccount  string
	ShopperReference string
}

// DisableStoredDetailsRequest disables stored details.
//
// A nil DetailReference targets ALL stored details of the shopper. A non-nil
// reference, even an empty one, is sent as-is.
type DisableStoredDetailsRequest struct {
	MerchantAccount  string
	ShopperReference string
	DetailReference  *string
}

// DisableResult is the gateway acknowledgement of a disable request.
type DisableResult struct {
	Response string `json:"response"`
}

func (r DisableResult) Disabled() bool {
	return r.Response == DetailDisabledToken || r.Response == AllDetailsDisabledToken
}
