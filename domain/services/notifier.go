package services

import (
	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

// Notifier delivers toasts to whatever clients are attached to a session
type Notifier interface {
	Notify(sessionID uuid.UUID, n models.Notification)
}
