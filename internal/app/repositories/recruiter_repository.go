package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/dberrors"
)

// RecruiterRepository handles database operations for the recruiter waitlist
type RecruiterRepository struct {
	db *pgxpool.Pool
}

// NewRecruiterRepository creates a new recruiter repository
func NewRecruiterRepository(db *pgxpool.Pool) *RecruiterRepository {
	return &RecruiterRepository{
		db: db,
	}
}

// Insert performs the single insert attempt of a submission. A unique
// violation on work_email is returned as apperrors.ErrDuplicateEntry.
func (r *RecruiterRepository) Insert(ctx context.Context, entry *models.RecruiterEntry) error {
	query := `
		INSERT INTO recruiters_waitlist (
			company_name, work_email, contact_person_name, hiring_for,
			hiring_interest, number_of_roles, requirement_details,
			universities_locations, contact_phone, quick_note,
			utm_source, utm_medium, utm_campaign, referrer, landing_page, user_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.CompanyName,
		entry.WorkEmail,
		entry.ContactPersonName,
		entry.HiringFor,
		entry.HiringInterest,
		entry.NumberOfRoles,
		entry.RequirementDetails,
		entry.UniversitiesLocations,
		entry.ContactPhone,
		entry.QuickNote,
		entry.UTMSource,
		entry.UTMMedium,
		entry.UTMCampaign,
		entry.Referrer,
		entry.LandingPage,
		entry.UserType,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("error inserting recruiter entry: %w", err)
	}

	return nil
}

// GetAll retrieves all recruiter entries, newest first
func (r *RecruiterRepository) GetAll(ctx context.Context) ([]models.RecruiterEntry, error) {
	query := `
		SELECT id, company_name, work_email, contact_person_name, hiring_for,
			hiring_interest, number_of_roles, requirement_details,
			universities_locations, contact_phone, quick_note,
			utm_source, utm_medium, utm_campaign, referrer, landing_page,
			user_type, created_at
		FROM recruiters_waitlist
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recruiter entries: %w", err)
	}
	defer rows.Close()

	var entries []models.RecruiterEntry
	for rows.Next() {
		var entry models.RecruiterEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.CompanyName,
			&entry.WorkEmail,
			&entry.ContactPersonName,
			&entry.HiringFor,
			&entry.HiringInterest,
			&entry.NumberOfRoles,
			&entry.RequirementDetails,
			&entry.UniversitiesLocations,
			&entry.ContactPhone,
			&entry.QuickNote,
			&entry.UTMSource,
			&entry.UTMMedium,
			&entry.UTMCampaign,
			&entry.Referrer,
			&entry.LandingPage,
			&entry.UserType,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning recruiter entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the number of recruiter entries
func (r *RecruiterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recruiters_waitlist`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting recruiter entries: %w", err)
	}
	return count, nil
}
