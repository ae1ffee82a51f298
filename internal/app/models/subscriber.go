package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriber is a row of the 'newsletter_subscribers' table.
// Email is stored lowercased and trimmed, and is unique.
type NewsletterSubscriber struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Email string    `json:"email" db:"email"`
	Tracking
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}
