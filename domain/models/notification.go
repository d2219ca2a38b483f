package models

import "time"

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a toast pushed to the session's connected clients
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	Timestamp   time.Time           `json:"timestamp"`
}

func NewNotification(title, description string) Notification {
	return Notification{
		Title:       title,
		Description: description,
		Variant:     NotificationDefault,
		Timestamp:   time.Now(),
	}
}

func NewErrorNotification(description string) Notification {
	return Notification{
		Title:       "Error",
		Description: description,
		Variant:     NotificationDestructive,
		Timestamp:   time.Now(),
	}
}
