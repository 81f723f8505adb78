package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/soap"
	"payment_gateway_client/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPSPReference           = errors.New("invalid psp_reference")
	ErrNotificationRepoNotConfigured = errors.New("notification repository not configured")
)

// INotificationUseCase records the asynchronous outcomes the gateway pushes
// after authorisations and modifications.
type INotificationUseCase interface {
	Receive(ctx context.Context, document []byte) ([]entities.Notification, error)
	ListByPSPReference(ctx context.Context, pspReference string) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, logger *zap.Logger) *NotificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationUseCase{repo: repo, logger: logger, now: time.Now}
}

// Receive decodes a sendNotification document and stores every item. The
// gateway redelivers until it gets the acceptance token, so nothing is
// acknowledged unless all items were stored.
func (u *NotificationUseCase) Receive(ctx context.Context, document []byte) ([]entities.Notification, error) {
	if u.repo == nil {
		return nil, ErrNotificationRepoNotConfigured
	}

	items, err := soap.DecodeNotifications(document)
	if err != nil {
		u.logger.Warn("[notification][usecase] rejected document", zap.Error(err))
		return nil, err
	}

	received := u.now().UTC()
	stored := make([]entities.Notification, 0, len(items))
	for _, n := range items {
		n.ID = uuid.NewString()
		n.ReceivedAt = received
		saved, err := u.repo.Create(ctx, n)
		if err != nil {
			u.logger.Error("[notification][usecase] store failed",
				zap.String("psp_reference", n.PSPReference),
				zap.String("event_code", n.EventCode),
				zap.Error(err),
			)
			return nil, err
		}
		u.logger.Info("[notification][usecase] stored",
			zap.String("id", saved.ID),
			zap.String("psp_reference", saved.PSPReference),
			zap.String("event_code", saved.EventCode),
			zap.Bool("success", saved.Success),
		)
		stored = append(stored, saved)
	}
	return stored, nil
}

func (u *NotificationUseCase) ListByPSPReference(ctx context.Context, pspReference string) ([]entities.Notification, error) {
	pspReference = strings.TrimSpace(pspReference)
	if pspReference == "" {
		return nil, ErrInvalidPSPReference
	}
	if u.repo == nil {
		return nil, ErrNotificationRepoNotConfigured
	}
	return u.repo.ListByPSPReference(ctx, pspReference)
}
