package entities

import "time"

// Notification is an asynchronous outcome pushed by the gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (psp_reference-index): psp_reference
//
// Capture, refund, cancel and recurring authorisation outcomes are final
// only once recorded here.
type Notification struct {
	ID                string    `json:"id"`
	EventCode         string    `json:"event_code"`
	PSPReference      string    `json:"psp_reference"`
	OriginalReference string    `json:"original_reference,omitempty"`
	MerchantReference string    `json:"merchant_reference,omitempty"`
	MerchantAccount   string    `json:"merchant_account"`
	Amount            *Amount   `json:"amount,omitempty"`
	Success           bool      `json:"success"`
	Reason            string    `json:"reason,omitempty"`
	PaymentMethod     string    `json:"payment_method,omitempty"`
	Live              bool      `json:"live"`
	EventDate         time.Time `json:"event_date"`
	ReceivedAt        time.Time `json:"received_at"`
}

// NotificationAcceptedToken must be echoed back for the gateway to stop
// redelivering a batch.
const NotificationAcceptedToken = "[accepted]"
