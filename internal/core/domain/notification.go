package domain

import "time"

// NotificationType tags in-app notifications. Only the subset produced
// by this API is listed; the mobile app defines many more.
type NotificationType string

const (
	NotificationPropertyRemoved NotificationType = "PROPERTY_REMOVED"
	NotificationPriceDrop       NotificationType = "PRICE_DROP"
	NotificationSystem          NotificationType = "SYSTEM"
)

// Notification is an in-app message delivered to a platform user.
type Notification struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	UserID     string           `json:"user_id" bson:"user_id"`
	Title      string           `json:"title" bson:"title"`
	Message    string           `json:"message" bson:"message"`
	Type       NotificationType `json:"type" bson:"type"`
	Link       string           `json:"link,omitempty" bson:"link,omitempty"`
	IsRead     bool             `json:"is_read" bson:"is_read"`
	PropertyID string           `json:"property_id,omitempty" bson:"property_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
}

// Favorite marks a property saved by a user. Unique per (user, property).
type Favorite struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	PropertyID string    `json:"property_id" bson:"property_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
