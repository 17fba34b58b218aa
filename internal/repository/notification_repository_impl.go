package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

type notificationRepository struct {
	data *dataset.Dataset
}

func NewNotificationRepository(data *dataset.Dataset) domainRepo.NotificationRepository {
	return &notificationRepository{data: data}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	r.data.Notifications = append(r.data.Notifications, notification)
	return nil
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	matched := make([]*entity.Notification, 0)
	for _, notification := range r.data.Notifications {
		if notification.UserID == userID {
			matched = append(matched, notification)
		}
	}
	return matched, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, notification := range r.data.Notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}
