package models

import "time"

// Notification types.
const (
	NotificationLike               = "like"
	NotificationComment            = "comment"
	NotificationConnectionAccepted = "connection_accepted"
)

// Notification records an event addressed to a user. PostID is empty for
// connection notifications.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	ActorID     string    `json:"actorId"`
	Type        string    `json:"type"`
	PostID      string    `json:"postId,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
