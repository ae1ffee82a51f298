package dto

import (
	"strings"

	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
	"github.com/initi8now/waitlist/internal/pkg/validation"
)

// SubscribeRequest is the newsletter signup payload
type SubscribeRequest struct {
	Email string `json:"email"`
	tracking.Data
}

// Validate checks the subscriber email
func (r *SubscribeRequest) Validate() *validation.ValidationError {
	return validation.First(
		validation.Email("email", r.Email, "Please enter a valid email address."),
		validation.MaxLen("email", r.Email, 255, "Email must be less than 255 characters"),
	)
}

// ToSubscriber builds the normalized subscriber row: email lowercased and
// trimmed, blank tracking fields filled from the derived navigation context.
func (r *SubscribeRequest) ToSubscriber(derived tracking.Data) *models.NewsletterSubscriber {
	t := tracking.Merge(r.Data, derived)
	return &models.NewsletterSubscriber{
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
		Tracking: models.Tracking{
			UTMSource:   t.UTMSource,
			UTMMedium:   t.UTMMedium,
			UTMCampaign: t.UTMCampaign,
			Referrer:    t.Referrer,
			LandingPage: t.LandingPage,
		},
	}
}
