package soap

import "fmt"

// Namespaces of the two action families and their shared types.
const (
	NamespaceEnvelope  = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespacePayment   = "http://payment.services.adyen.com"
	NamespaceRecurring = "http://recurring.services.adyen.com"
	NamespaceCommon    = "http://common.services.adyen.com"
	NamespaceXSD       = "http://www.w3.org/2001/XMLSchema"
	NamespaceXSI       = "http://www.w3.org/2001/XMLSchema-instance"
)

// Action is a gateway operation name as it appears in the envelope body.
type Action string

const (
	ActionAuthorise            Action = "authorise"
	ActionCapture              Action = "capture"
	ActionRefund               Action = "refund"
	ActionCancel               Action = "cancel"
	ActionCancelOrRefund       Action = "cancelOrRefund"
	ActionListRecurringDetails Action = "listRecurringDetails"
	ActionDisable              Action = "disable"
)

// Schema describes one action on the wire: the element names, the order the
// gateway expects request children in, and which reply fields it returns.
type Schema struct {
	Namespace      string
	RequestElement string
	RequestOrder   []string
	ResultElement  string
	Required       []string
	Optional       []string
}

func (s Schema) ResponseElement(a Action) string {
	return string(a) + "Response"
}

func (s Schema) knows(field string) bool {
	for _, f := range s.Required {
		if f == field {
			return true
		}
	}
	for _, f := range s.Optional {
		if f == field {
			return true
		}
	}
	return false
}

func (s Schema) position(field string) int {
	for i, f := range s.RequestOrder {
		if f == field {
			return i
		}
	}
	return -1
}

var (
	paymentRequestOrder = []string{
		"amount", "card", "merchantAccount", "recurring", "reference",
		"selectedRecurringDetailReference", "shopperEmail", "shopperIP",
		"shopperInteraction", "shopperReference", "shopperStatement",
	}
	modificationRequestOrder = []string{"merchantAccount", "modificationAmount", "originalReference"}
	modificationReply        = []string{"pspReference", "response"}
)

var schemas = map[Action]Schema{
	ActionAuthorise: {
		Namespace:      NamespacePayment,
		RequestElement: "paymentRequest",
		RequestOrder:   paymentRequestOrder,
		ResultElement:  "paymentResult",
		Required:       []string{"pspReference", "resultCode"},
		Optional:       []string{"additionalData", "authCode", "dccAmount", "fraudResult", "refusalReason"},
	},
	ActionCapture:        modificationSchema("captureResult"),
	ActionRefund:         modificationSchema("refundResult"),
	ActionCancel:         modificationSchema("cancelResult"),
	ActionCancelOrRefund: modificationSchema("cancelOrRefundResult"),
	ActionListRecurringDetails: {
		Namespace:      NamespaceRecurring,
		RequestElement: "request",
		RequestOrder:   []string{"merchantAccount", "recurring", "shopperReference"},
		ResultElement:  "result",
		Optional:       []string{"creationDate", "details", "lastKnownShopperEmail", "shopperReference"},
	},
	ActionDisable: {
		Namespace:      NamespaceRecurring,
		RequestElement: "request",
		RequestOrder:   []string{"merchantAccount", "recurringDetailReference", "shopperReference"},
		ResultElement:  "result",
		Required:       []string{"response"},
	},
}

func modificationSchema(result string) Schema {
	return Schema{
		Namespace:      NamespacePayment,
		RequestElement: "modificationRequest",
		RequestOrder:   modificationRequestOrder,
		ResultElement:  result,
		Required:       modificationReply,
		Optional:       []string{"additionalData"},
	}
}

// SchemaFor returns the wire schema of an action.
func SchemaFor(a Action) (Schema, error) {
	s, ok := schemas[a]
	if !ok {
		return Schema{}, fmt.Errorf("soap: unknown action %q", a)
	}
	return s, nil
}
