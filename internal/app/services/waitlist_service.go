package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
)

// User-facing submission messages
const (
	MsgStudentCreated   = "You've been added to the waitlist. Check your email for confirmation."
	MsgStudentDuplicate = "This email is already on our waitlist. We'll keep you updated!"

	MsgRecruiterCreated   = "You've been added to the waitlist. Check your email for confirmation."
	MsgRecruiterDuplicate = "This email is already on our waitlist. We'll keep you updated!"
)

// notifyTimeout bounds the post-commit email dispatch. The submission
// response never waits on it.
const notifyTimeout = 15 * time.Second

// StudentStore persists student waitlist entries
type StudentStore interface {
	Insert(ctx context.Context, entry *models.StudentEntry) error
}

// RecruiterStore persists recruiter waitlist entries
type RecruiterStore interface {
	Insert(ctx context.Context, entry *models.RecruiterEntry) error
}

// Notifier dispatches signup emails after a committed insert
type Notifier interface {
	Dispatch(ctx context.Context, req *dto.NotificationRequest) (*dto.NotificationResponse, error)
}

// WaitlistService handles waitlist submission operations
type WaitlistService struct {
	studentStore   StudentStore
	recruiterStore RecruiterStore
	notifier       Notifier
	logger         zerolog.Logger
}

// NewWaitlistService creates a new WaitlistService
func NewWaitlistService(studentStore StudentStore, recruiterStore RecruiterStore, notifier Notifier, logger zerolog.Logger) *WaitlistService {
	return &WaitlistService{
		studentStore:   studentStore,
		recruiterStore: recruiterStore,
		notifier:       notifier,
		logger:         logger,
	}
}

// SubmitStudent validates and persists a student submission. A duplicate
// email is reported as an already-registered outcome, not an error.
func (s *WaitlistService) SubmitStudent(ctx context.Context, req *dto.StudentSubmissionRequest, derived tracking.Data) (*dto.SubmissionResponse, error) {
	if verr := req.Validate(); verr != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, verr.Message)
	}

	entry := req.ToEntry(derived)

	err := s.studentStore.Insert(ctx, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			s.logger.Info().Str("email", entry.Email).Msg("Student already on waitlist")
			return &dto.SubmissionResponse{
				Status:  dto.StatusAlreadyRegistered,
				Message: MsgStudentDuplicate,
			}, nil
		}
		s.logger.Error().Err(err).Str("email", entry.Email).Msg("Failed to insert student entry")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info().Str("id", entry.ID.String()).Str("email", entry.Email).Msg("Student added to waitlist")

	s.notifyAsync(&dto.NotificationRequest{
		Name:     entry.FullName,
		Email:    entry.Email,
		UserType: string(models.UserTypeStudent),
	})

	return &dto.SubmissionResponse{
		Status:  dto.StatusCreated,
		Message: MsgStudentCreated,
	}, nil
}

// SubmitRecruiter validates and persists a recruiter submission
func (s *WaitlistService) SubmitRecruiter(ctx context.Context, req *dto.RecruiterSubmissionRequest, derived tracking.Data) (*dto.SubmissionResponse, error) {
	if verr := req.Validate(); verr != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, verr.Message)
	}

	entry := req.ToEntry(derived)

	err := s.recruiterStore.Insert(ctx, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			s.logger.Info().Str("email", entry.WorkEmail).Msg("Recruiter already on waitlist")
			return &dto.SubmissionResponse{
				Status:  dto.StatusAlreadyRegistered,
				Message: MsgRecruiterDuplicate,
			}, nil
		}
		s.logger.Error().Err(err).Str("email", entry.WorkEmail).Msg("Failed to insert recruiter entry")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info().Str("id", entry.ID.String()).Str("email", entry.WorkEmail).Msg("Recruiter added to waitlist")

	s.notifyAsync(&dto.NotificationRequest{
		Name:     entry.ContactPersonName,
		Email:    entry.WorkEmail,
		UserType: string(models.UserTypeRecruiter),
		Company:  entry.CompanyName,
	})

	return &dto.SubmissionResponse{
		Status:  dto.StatusCreated,
		Message: MsgRecruiterCreated,
	}, nil
}

// notifyAsync fires the signup emails without blocking the submission
// response. A dispatch failure is logged and otherwise ignored: the row is
// already committed and stays valid.
func (s *WaitlistService) notifyAsync(req *dto.NotificationRequest) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if _, err := s.notifier.Dispatch(ctx, req); err != nil {
			s.logger.Warn().Err(err).
				Str("email", req.Email).
				Str("userType", req.UserType).
				Msg("Signup notification failed")
		}
	}()
}
