package converter

import (
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to its view model
func NotificationToResponse(notification *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
