package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType identifies the submitter segment of a waitlist entry
type UserType string

const (
	UserTypeStudent   UserType = "student"
	UserTypeRecruiter UserType = "recruiter"
)

// AreaOfInterestOptions is the fixed enumeration for the student
// area_of_interest field
var AreaOfInterestOptions = []string{
	"Internship",
	"Part-time",
	"Project",
	"Learning",
	"Open to all",
}

// HiringInterestOptions is the fixed enumeration for recruiter hiring
// interest selections
var HiringInterestOptions = []string{
	"Internships",
	"Part-time",
	"Projects",
	"Gigs",
}

// Tracking holds acquisition-attribution metadata captured at submission
// time. All fields are optional.
type Tracking struct {
	UTMSource   string `json:"utm_source" db:"utm_source"`
	UTMMedium   string `json:"utm_medium" db:"utm_medium"`
	UTMCampaign string `json:"utm_campaign" db:"utm_campaign"`
	Referrer    string `json:"referrer" db:"referrer"`
	LandingPage string `json:"landing_page" db:"landing_page"`
}

// StudentEntry is a row of the 'students_waitlist' table. Rows are
// insert-only; email is unique across the collection.
type StudentEntry struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	FullName            string    `json:"full_name" db:"full_name"`
	Email               string    `json:"email" db:"email"`
	AreaOfInterest      string    `json:"area_of_interest" db:"area_of_interest"`
	College             string    `json:"college" db:"college"`
	MobileNumber        string    `json:"mobile_number" db:"mobile_number"`
	StudentRole         string    `json:"student_role" db:"student_role"`
	PreferredIndustries string    `json:"preferred_industries" db:"preferred_industries"`
	LinkedinURL         string    `json:"linkedin_url" db:"linkedin_url"`
	OtherWorkLinks      string    `json:"other_work_links" db:"other_work_links"`
	Tracking
	UserType  UserType  `json:"user_type" db:"user_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecruiterEntry is a row of the 'recruiters_waitlist' table. Rows are
// insert-only; work_email is unique across the collection. HiringInterest
// holds the selected options joined with ", ".
type RecruiterEntry struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	CompanyName           string    `json:"company_name" db:"company_name"`
	WorkEmail             string    `json:"work_email" db:"work_email"`
	ContactPersonName     string    `json:"contact_person_name" db:"contact_person_name"`
	HiringFor             string    `json:"hiring_for" db:"hiring_for"`
	HiringInterest        string    `json:"hiring_interest" db:"hiring_interest"`
	NumberOfRoles         string    `json:"number_of_roles" db:"number_of_roles"`
	RequirementDetails    string    `json:"requirement_details" db:"requirement_details"`
	UniversitiesLocations string    `json:"universities_locations" db:"universities_locations"`
	ContactPhone          string    `json:"contact_phone" db:"contact_phone"`
	QuickNote             string    `json:"quick_note" db:"quick_note"`
	Tracking
	UserType  UserType  `json:"user_type" db:"user_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
