package dto

import "time"

type NotificationResponse struct {
	Title     string
	Message   string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}
