package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/dberrors"
)

// NewsletterRepository handles database operations for newsletter subscribers
type NewsletterRepository struct {
	db *pgxpool.Pool
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{
		db: db,
	}
}

// Insert subscribes an email address. A unique violation is returned as
// apperrors.ErrDuplicateEntry ("already subscribed").
func (r *NewsletterRepository) Insert(ctx context.Context, sub *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (
			email, utm_source, utm_medium, utm_campaign, referrer, landing_page
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, subscribed_at
	`

	err := r.db.QueryRow(ctx, query,
		sub.Email,
		sub.UTMSource,
		sub.UTMMedium,
		sub.UTMCampaign,
		sub.Referrer,
		sub.LandingPage,
	).Scan(&sub.ID, &sub.SubscribedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("error inserting newsletter subscriber: %w", err)
	}

	return nil
}

// GetAll retrieves all subscribers, newest first
func (r *NewsletterRepository) GetAll(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, utm_source, utm_medium, utm_campaign, referrer,
			landing_page, subscribed_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving newsletter subscribers: %w", err)
	}
	defer rows.Close()

	var subs []models.NewsletterSubscriber
	for rows.Next() {
		var sub models.NewsletterSubscriber
		if err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.UTMSource,
			&sub.UTMMedium,
			&sub.UTMCampaign,
			&sub.Referrer,
			&sub.LandingPage,
			&sub.SubscribedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning newsletter subscriber: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// Count returns the number of subscribers
func (r *NewsletterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting newsletter subscribers: %w", err)
	}
	return count, nil
}
