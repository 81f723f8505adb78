package interfaces

import (
	"context"

	"payment_gateway_client/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for gateway
// notifications.
//
// Notifications are append-only; the gateway may deliver the same event more
// than once and every delivery is kept.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByPSPReference(ctx context.Context, pspReference string) ([]entities.Notification, error)
}
