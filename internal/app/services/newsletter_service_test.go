package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
)

type fakeNewsletterStore struct {
	insertErr error
	inserted  *models.NewsletterSubscriber
}

func (f *fakeNewsletterStore) Insert(ctx context.Context, sub *models.NewsletterSubscriber) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = sub
	return nil
}

func TestSubscribeCreated(t *testing.T) {
	store := &fakeNewsletterStore{}
	svc := NewNewsletterService(store, zerolog.Nop())

	resp, err := svc.Subscribe(context.Background(),
		&dto.SubscribeRequest{Email: "Jo@Example.com"}, tracking.Data{LandingPage: "/"})
	if err != nil {
		t.Fatal(err)
	}

	if resp.Status != dto.StatusCreated {
		t.Errorf("expected created, got %q", resp.Status)
	}
	if store.inserted.Email != "jo@example.com" {
		t.Errorf("expected normalized email, got %q", store.inserted.Email)
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	store := &fakeNewsletterStore{insertErr: apperrors.ErrDuplicateEntry}
	svc := NewNewsletterService(store, zerolog.Nop())

	resp, err := svc.Subscribe(context.Background(),
		&dto.SubscribeRequest{Email: "jo@example.com"}, tracking.Data{})
	if err != nil {
		t.Fatalf("duplicate must not be an error, got %v", err)
	}

	if resp.Status != dto.StatusAlreadyRegistered {
		t.Errorf("expected already_registered, got %q", resp.Status)
	}
	if resp.Message != MsgNewsletterDuplicate {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	svc := NewNewsletterService(&fakeNewsletterStore{}, zerolog.Nop())

	_, err := svc.Subscribe(context.Background(),
		&dto.SubscribeRequest{Email: "nope"}, tracking.Data{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestSubscribeStoreFailure(t *testing.T) {
	store := &fakeNewsletterStore{insertErr: errors.New("timeout")}
	svc := NewNewsletterService(store, zerolog.Nop())

	_, err := svc.Subscribe(context.Background(),
		&dto.SubscribeRequest{Email: "jo@example.com"}, tracking.Data{})
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}
