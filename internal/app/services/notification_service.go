package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/email"
)

// NotificationService dispatches the two signup emails: a confirmation to
// the submitter and an alert to the operator mailbox.
type NotificationService struct {
	sender email.Sender
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(sender email.Sender, logger zerolog.Logger) *NotificationService {
	return &NotificationService{sender: sender, logger: logger}
}

// Dispatch sends both signup emails. The operator alert is attempted even
// when the confirmation fails, so an unreachable submitter mailbox does not
// silence the internal signal. The first failure is returned.
func (s *NotificationService) Dispatch(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error) {
	userEmail, confirmErr := s.sender.SendConfirmation(ctx, req.Name, req.Email, req.UserType, req.Company)
	if confirmErr != nil {
		s.logger.Error().Err(confirmErr).
			Str("email", req.Email).
			Str("userType", req.UserType).
			Msg("Confirmation email failed")
	}

	adminEmail, alertErr := s.sender.SendOperatorAlert(ctx, req.Name, req.Email, req.UserType, req.Company)
	if alertErr != nil {
		s.logger.Error().Err(alertErr).
			Str("email", req.Email).
			Str("userType", req.UserType).
			Msg("Operator alert email failed")
	}

	if confirmErr != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNotification, confirmErr)
	}
	if alertErr != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNotification, alertErr)
	}

	return &dto.NotificationResponse{
		Success:    true,
		UserEmail:  userEmail,
		AdminEmail: adminEmail,
	}, nil
}
