package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
)

// User-facing newsletter messages
const (
	MsgNewsletterCreated   = "Thanks for subscribing! You'll hear from us soon."
	MsgNewsletterDuplicate = "This email is already on our newsletter list."
)

// NewsletterStore persists newsletter subscribers
type NewsletterStore interface {
	Insert(ctx context.Context, sub *models.NewsletterSubscriber) error
}

// NewsletterService handles newsletter subscription operations
type NewsletterService struct {
	store  NewsletterStore
	logger zerolog.Logger
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(store NewsletterStore, logger zerolog.Logger) *NewsletterService {
	return &NewsletterService{store: store, logger: logger}
}

// Subscribe validates and persists a newsletter signup. Emails are stored
// lowercased, so resubmitting the same address in a different case is still
// reported as already subscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, req *dto.SubscribeRequest, derived tracking.Data) (*dto.SubmissionResponse, error) {
	if verr := req.Validate(); verr != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, verr.Message)
	}

	sub := req.ToSubscriber(derived)

	err := s.store.Insert(ctx, sub)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			s.logger.Info().Str("email", sub.Email).Msg("Email already subscribed to newsletter")
			return &dto.SubmissionResponse{
				Status:  dto.StatusAlreadyRegistered,
				Message: MsgNewsletterDuplicate,
			}, nil
		}
		s.logger.Error().Err(err).Str("email", sub.Email).Msg("Failed to insert newsletter subscriber")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info().Str("id", sub.ID.String()).Str("email", sub.Email).Msg("Newsletter subscriber added")

	return &dto.SubmissionResponse{
		Status:  dto.StatusCreated,
		Message: MsgNewsletterCreated,
	}, nil
}
