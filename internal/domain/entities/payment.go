package entities

import "strings"

// Gateway literals. Comparisons are case-sensitive.
const (
	ResultCodeAuthorised = "Authorised"
	ResultCodeRefused    = "Refused"
	ResultCodePending    = "Pending"

	// LatestDetailReference selects the most recently stored detail.
	LatestDetailReference = "LATEST"

	ShopperInteractionEcommerce = "Ecommerce"
	ShopperInteractionContAuth  = "ContAuth"
)

// Contract is the recurring contract a stored detail is used under.
type Contract string

const (
	ContractNone      Contract = ""
	ContractRecurring Contract = "RECURRING"
	ContractOneClick  Contract = "ONECLICK"
)

// Shopper identifies the person paying.
type Shopper struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
	IP        string `json:"ip"`
	Statement string `json:"statement"`
}

// Card holds full card details. Never logged.
type Card struct {
	HolderName  string `json:"holder_name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
}

func (c Card) validate() error {
	var missing []string
	if strings.TrimSpace(c.HolderName) == "" {
		missing = append(missing, "card.holderName")
	}
	if strings.TrimSpace(c.Number) == "" {
		missing = append(missing, "card.number")
	}
	if strings.TrimSpace(c.ExpiryMonth) == "" {
		missing = append(missing, "card.expiryMonth")
	}
	if strings.TrimSpace(c.ExpiryYear) == "" {
		missing = append(missing, "card.expiryYear")
	}
	if len(missing) > 0 {
		return NewValidationError("required field missing", missing...)
	}
	return nil
}

// PaymentMethod is the resolved payment instrument of an authorisation.
// Exactly one of CardPayment, RecurringPayment and OneClickPayment.
type PaymentMethod interface {
	paymentMethod()
}

// CardPayment pays with full card details, optionally storing them for
// later recurring use.
type CardPayment struct {
	Card            Card
	EnableRecurring bool
}

// RecurringPayment charges a stored detail without shopper interaction.
type RecurringPayment struct {
	DetailReference string
}

// OneClickPayment charges a stored detail with the shopper re-entering the CVC.
type OneClickPayment struct {
	DetailReference string
	CVC             string
}

func (CardPayment) paymentMethod()      {}
func (RecurringPayment) paymentMethod() {}
func (OneClickPayment) paymentMethod()  {}

// PaymentMethodInput is the caller-facing shape of the instrument choice.
// Resolve is the single place where invalid combinations are rejected.
//
// A nil StoredDetailReference means "the latest stored detail"; card details
// and a stored-detail reference are mutually exclusive. Without a contract the
// shape follows what is present: card details give a card payment, a stored
// reference gives a recurring payment, or one-click when a CVC comes with it.
type PaymentMethodInput struct {
	Contract              Contract
	Card                  *Card
	EnableRecurring       bool
	StoredDetailReference *string
	CVC                   string
}

func (in PaymentMethodInput) Resolve() (PaymentMethod, error) {
	if in.Card != nil && in.StoredDetailReference != nil {
		return nil, NewValidationError("card details and stored detail reference are mutually exclusive",
			"card", "selectedRecurringDetailReference")
	}

	switch in.Contract {
	case ContractNone:
		if in.Card == nil && in.StoredDetailReference != nil {
			if strings.TrimSpace(in.CVC) != "" {
				return OneClickPayment{DetailReference: *in.StoredDetailReference, CVC: in.CVC}, nil
			}
			return RecurringPayment{DetailReference: *in.StoredDetailReference}, nil
		}
		if in.Card == nil {
			return nil, NewValidationError("either card details or a stored detail reference is required",
				"card", "selectedRecurringDetailReference")
		}
		if err := in.Card.validate(); err != nil {
			return nil, err
		}
		return CardPayment{Card: *in.Card, EnableRecurring: in.EnableRecurring}, nil
	case ContractRecurring:
		if in.Card != nil {
			return nil, NewValidationError("recurring payments do not accept card details", "card")
		}
		return RecurringPayment{DetailReference: in.detailReference()}, nil
	case ContractOneClick:
		if in.Card != nil {
			return nil, NewValidationError("one-click payments accept only the card CVC", "card")
		}
		if strings.TrimSpace(in.CVC) == "" {
			return nil, MissingField("card.cvc")
		}
		return OneClickPayment{DetailReference: in.detailReference(), CVC: in.CVC}, nil
	default:
		return nil, NewValidationError("unknown recurring contract "+string(in.Contract), "recurring.contract")
	}
}

func (in PaymentMethodInput) detailReference() string {
	if in.StoredDetailReference == nil {
		return LatestDetailReference
	}
	return *in.StoredDetailReference
}

// AuthoriseRequest carries everything an authorisation needs before the
// payment method is resolved. MerchantAccount falls back to the configured
// default when empty.
type AuthoriseRequest struct {
	MerchantAccount string
	Reference       string
	Amount          *Amount
	Shopper         Shopper
	Method          PaymentMethodInput
}

// AuthorisationResult is the determinate outcome of an authorisation.
//
// A refusal is a valid result, not an error. Optional reply fields are nil
// when the gateway did not send them, so "absent" differs from "zero".
// Results of recurring authorisations are provisional until the matching
// notification arrives.
type AuthorisationResult struct {
	PSPReference   string            `json:"psp_reference"`
	ResultCode     string            `json:"result_code"`
	AuthCode       *string           `json:"auth_code,omitempty"`
	RefusalReason  *string           `json:"refusal_reason,omitempty"`
	FraudScore     *int              `json:"fraud_score,omitempty"`
	DCCAmount      *Amount           `json:"dcc_amount,omitempty"`
	AdditionalData map[string]string `json:"additional_data,omitempty"`
}

// Authorised is true only for the exact "Authorised" result code.
func (r AuthorisationResult) Authorised() bool { return r.ResultCode == ResultCodeAuthorised }

func (r AuthorisationResult) Refused() bool { return r.ResultCode == ResultCodeRefused }

func (r AuthorisationResult) Pending() bool { return r.ResultCode == ResultCodePending }

// Modification names a follow-up action on an existing payment.
type Modification string

const (
	ModificationCapture        Modification = "capture"
	ModificationRefund         Modification = "refund"
	ModificationCancel         Modification = "cancel"
	ModificationCancelOrRefund Modification = "cancelOrRefund"
)

// ReceivedToken is the gateway literal acknowledging the modification.
func (m Modification) ReceivedToken() string {
	return "[" + string(m) + "-received]"
}

// RequiresAmount reports whether the modification carries an amount.
func (m Modification) RequiresAmount() bool {
	return m == ModificationCapture || m == ModificationRefund
}

// ModificationRequest targets a previous payment by its PSP reference.
type ModificationRequest struct {
	MerchantAccount string
	PSPReference    string
	Amount          *Amount
}

// ModificationResult only confirms that the gateway accepted the request
// for asynchronous processing. The actual outcome is delivered later
// through a notification, never through this value.
type ModificationResult struct {
	Modification Modification `json:"modification"`
	PSPReference string       `json:"psp_reference"`
	Response     string       `json:"response"`
}

// Received reports whether the gateway acknowledged the request.
func (r ModificationResult) Received() bool {
	return r.Response == r.Modification.ReceivedToken()
}
