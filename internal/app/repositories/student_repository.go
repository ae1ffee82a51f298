package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/dberrors"
)

// StudentRepository handles database operations for the student waitlist
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Insert performs the single insert attempt of a submission. A unique
// violation on the email column is returned as apperrors.ErrDuplicateEntry
// so callers can treat it as an "already registered" outcome.
func (r *StudentRepository) Insert(ctx context.Context, entry *models.StudentEntry) error {
	query := `
		INSERT INTO students_waitlist (
			full_name, email, area_of_interest, college, mobile_number,
			student_role, preferred_industries, linkedin_url, other_work_links,
			utm_source, utm_medium, utm_campaign, referrer, landing_page, user_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.FullName,
		entry.Email,
		entry.AreaOfInterest,
		entry.College,
		entry.MobileNumber,
		entry.StudentRole,
		entry.PreferredIndustries,
		entry.LinkedinURL,
		entry.OtherWorkLinks,
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
		return fmt.Errorf("error inserting student entry: %w", err)
	}

	return nil
}

// GetAll retrieves all student entries, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.StudentEntry, error) {
	query := `
		SELECT id, full_name, email, area_of_interest, college, mobile_number,
			student_role, preferred_industries, linkedin_url, other_work_links,
			utm_source, utm_medium, utm_campaign, referrer, landing_page,
			user_type, created_at
		FROM students_waitlist
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student entries: %w", err)
	}
	defer rows.Close()

	var entries []models.StudentEntry
	for rows.Next() {
		var entry models.StudentEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.FullName,
			&entry.Email,
			&entry.AreaOfInterest,
			&entry.College,
			&entry.MobileNumber,
			&entry.StudentRole,
			&entry.PreferredIndustries,
			&entry.LinkedinURL,
			&entry.OtherWorkLinks,
			&entry.UTMSource,
			&entry.UTMMedium,
			&entry.UTMCampaign,
			&entry.Referrer,
			&entry.LandingPage,
			&entry.UserType,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the number of student entries
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students_waitlist`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting student entries: %w", err)
	}
	return count, nil
}
