package services

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/csvutil"
)

// Export collection identifiers, as used in the export route path
const (
	ExportStudents   = "students"
	ExportRecruiters = "recruiters"
	ExportNewsletter = "newsletter"
)

const statsCacheKey = "admin:stats"

// Export is a rendered CSV document ready to stream to the client
type Export struct {
	Filename string
	Content  []byte
	Rows     int
}

// StudentReader reads the student waitlist collection
type StudentReader interface {
	GetAll(ctx context.Context) ([]models.StudentEntry, error)
	Count(ctx context.Context) (int64, error)
}

// RecruiterReader reads the recruiter waitlist collection
type RecruiterReader interface {
	GetAll(ctx context.Context) ([]models.RecruiterEntry, error)
	Count(ctx context.Context) (int64, error)
}

// NewsletterReader reads the newsletter subscriber collection
type NewsletterReader interface {
	GetAll(ctx context.Context) ([]models.NewsletterSubscriber, error)
	Count(ctx context.Context) (int64, error)
}

// AdminService serves the dashboard: collection listings, aggregate stats
// and CSV export. Stats are cached briefly since the dashboard polls them.
type AdminService struct {
	students   StudentReader
	recruiters RecruiterReader
	newsletter NewsletterReader
	statsCache *cache.Cache
	logger     zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(students StudentReader, recruiters RecruiterReader, newsletter NewsletterReader, logger zerolog.Logger) *AdminService {
	return &AdminService{
		students:   students,
		recruiters: recruiters,
		newsletter: newsletter,
		statsCache: cache.New(time.Minute, 5*time.Minute),
		logger:     logger,
	}
}

// ListStudents returns all student entries, newest first
func (s *AdminService) ListStudents(ctx context.Context) ([]models.StudentEntry, error) {
	entries, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return entries, nil
}

// ListRecruiters returns all recruiter entries, newest first
func (s *AdminService) ListRecruiters(ctx context.Context) ([]models.RecruiterEntry, error) {
	entries, err := s.recruiters.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recruiters: %w", err)
	}
	return entries, nil
}

// ListSubscribers returns all newsletter subscribers, newest first
func (s *AdminService) ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	subs, err := s.newsletter.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subscribers: %w", err)
	}
	return subs, nil
}

// Stats returns per-collection totals. Results are cached for a minute.
func (s *AdminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	if cached, found := s.statsCache.Get(statsCacheKey); found {
		if stats, ok := cached.(*dto.StatsResponse); ok {
			return stats, nil
		}
	}

	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	recruiters, err := s.recruiters.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting recruiters: %w", err)
	}
	newsletter, err := s.newsletter.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting subscribers: %w", err)
	}

	stats := &dto.StatsResponse{
		Students:   students,
		Recruiters: recruiters,
		Newsletter: newsletter,
	}
	s.statsCache.Set(statsCacheKey, stats, cache.DefaultExpiration)

	return stats, nil
}

// ExportCollection renders a collection as CSV. An unknown collection name
// returns ErrResourceNotFound; a known but empty collection returns an
// Export with zero rows.
func (s *AdminService) ExportCollection(ctx context.Context, collection string) (*Export, error) {
	switch collection {
	case ExportStudents:
		return s.exportStudents(ctx)
	case ExportRecruiters:
		return s.exportRecruiters(ctx)
	case ExportNewsletter:
		return s.exportNewsletter(ctx)
	default:
		return nil, apperrors.ErrResourceNotFound
	}
}

func (s *AdminService) exportStudents(ctx context.Context) (*Export, error) {
	entries, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error exporting students: %w", err)
	}

	headers := []string{
		"id", "full_name", "email", "area_of_interest", "college",
		"mobile_number", "student_role", "preferred_industries",
		"linkedin_url", "other_work_links", "utm_source", "utm_medium",
		"utm_campaign", "referrer", "landing_page", "created_at",
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID.String(), e.FullName, e.Email, e.AreaOfInterest, e.College,
			e.MobileNumber, e.StudentRole, e.PreferredIndustries,
			e.LinkedinURL, e.OtherWorkLinks, e.UTMSource, e.UTMMedium,
			e.UTMCampaign, e.Referrer, e.LandingPage,
			e.CreatedAt.Format(time.RFC3339),
		})
	}

	content, err := csvutil.Marshal(headers, rows)
	if err != nil {
		return nil, fmt.Errorf("error rendering students CSV: %w", err)
	}

	return &Export{Filename: "students-waitlist.csv", Content: content, Rows: len(rows)}, nil
}

func (s *AdminService) exportRecruiters(ctx context.Context) (*Export, error) {
	entries, err := s.recruiters.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error exporting recruiters: %w", err)
	}

	headers := []string{
		"id", "company_name", "work_email", "contact_person_name",
		"hiring_for", "hiring_interest", "number_of_roles",
		"requirement_details", "universities_locations", "contact_phone",
		"quick_note", "utm_source", "utm_medium", "utm_campaign",
		"referrer", "landing_page", "created_at",
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID.String(), e.CompanyName, e.WorkEmail, e.ContactPersonName,
			e.HiringFor, e.HiringInterest, e.NumberOfRoles,
			e.RequirementDetails, e.UniversitiesLocations, e.ContactPhone,
			e.QuickNote, e.UTMSource, e.UTMMedium, e.UTMCampaign,
			e.Referrer, e.LandingPage,
			e.CreatedAt.Format(time.RFC3339),
		})
	}

	content, err := csvutil.Marshal(headers, rows)
	if err != nil {
		return nil, fmt.Errorf("error rendering recruiters CSV: %w", err)
	}

	return &Export{Filename: "recruiters-waitlist.csv", Content: content, Rows: len(rows)}, nil
}

func (s *AdminService) exportNewsletter(ctx context.Context) (*Export, error) {
	subs, err := s.newsletter.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error exporting subscribers: %w", err)
	}

	headers := []string{
		"id", "email", "utm_source", "utm_medium", "utm_campaign",
		"referrer", "landing_page", "subscribed_at",
	}
	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, []string{
			sub.ID.String(), sub.Email, sub.UTMSource, sub.UTMMedium,
			sub.UTMCampaign, sub.Referrer, sub.LandingPage,
			sub.SubscribedAt.Format(time.RFC3339),
		})
	}

	content, err := csvutil.Marshal(headers, rows)
	if err != nil {
		return nil, fmt.Errorf("error rendering newsletter CSV: %w", err)
	}

	return &Export{Filename: "newsletter-subscribers.csv", Content: content, Rows: len(rows)}, nil
}
