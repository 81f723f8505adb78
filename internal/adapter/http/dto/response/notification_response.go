package response

import (
	"time"

	"payment_gateway_client/internal/domain/entities"
)

type NotificationResponse struct {
	ID                string          `json:"id"`
	EventCode         string          `json:"event_code"`
	PSPReference      string          `json:"psp_reference"`
	OriginalReference string          `json:"original_reference,omitempty"`
	MerchantReference string          `json:"merchant_reference,omitempty"`
	MerchantAccount   string          `json:"merchant_account,omitempty"`
	Amount            *AmountResponse `json:"amount,omitempty"`
	Success           bool            `json:"success"`
	Reason            string          `json:"reason,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	Live              bool            `json:"live"`
	EventDate         time.Time       `json:"event_date"`
	ReceivedAt        time.Time       `json:"received_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		EventCode:         n.EventCode,
		PSPReference:      n.PSPReference,
		OriginalReference: n.OriginalReference,
		MerchantReference: n.MerchantReference,
		MerchantAccount:   n.MerchantAccount,
		Amount:            FromAmount(n.Amount),
		Success:           n.Success,
		Reason:            n.Reason,
		PaymentMethod:     n.PaymentMethod,
		Live:              n.Live,
		EventDate:         n.EventDate,
		ReceivedAt:        n.ReceivedAt,
	}
}

func FromNotifications(items []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}
