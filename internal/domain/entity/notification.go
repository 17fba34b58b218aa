package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what a notification is about
type NotificationType string

const (
	NotificationTypeAppointment  NotificationType = "appointment"
	NotificationTypePrescription NotificationType = "prescription"
	NotificationTypeReview       NotificationType = "review"
	NotificationTypeSystem       NotificationType = "system"
)

// Notification is an in-app message for a single user
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}
