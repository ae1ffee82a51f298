package dto

import (
	"strings"

	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
	"github.com/initi8now/waitlist/internal/pkg/validation"
)

// SubmissionStatus classifies the outcome of a waitlist or newsletter
// submission reported back to the caller.
type SubmissionStatus string

const (
	// StatusCreated: a fresh row was inserted.
	StatusCreated SubmissionStatus = "created"
	// StatusAlreadyRegistered: the store's uniqueness constraint rejected the
	// insert. A soft outcome, not an error.
	StatusAlreadyRegistered SubmissionStatus = "already_registered"
)

// SubmissionResponse is the user-facing result of a submission attempt
type SubmissionResponse struct {
	Status  SubmissionStatus `json:"status" example:"created"`
	Message string           `json:"message" example:"You've been added to the waitlist. Check your email for confirmation."`
}

// StudentSubmissionRequest is the student waitlist form payload. Field names
// match the persisted collection, so a captured form maps straight through.
type StudentSubmissionRequest struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	AreaOfInterest      string `json:"area_of_interest"`
	College             string `json:"college"`
	MobileNumber        string `json:"mobile_number"`
	StudentRole         string `json:"student_role"`
	PreferredIndustries string `json:"preferred_industries"`
	LinkedinURL         string `json:"linkedin_url"`
	OtherWorkLinks      string `json:"other_work_links"`
	tracking.Data
}

// Validate checks the schema rules in declaration order and returns the
// first violation. Empty optional fields validate as absent.
func (r *StudentSubmissionRequest) Validate() *validation.ValidationError {
	return validation.First(
		validation.Required("full_name", r.FullName, "Name is required"),
		validation.MaxLen("full_name", r.FullName, 100, "Name must be less than 100 characters"),
		validation.Email("email", r.Email, "Invalid email address"),
		validation.MaxLen("email", r.Email, 255, "Email must be less than 255 characters"),
		validation.Required("area_of_interest", r.AreaOfInterest, "This field is required"),
		validation.OneOf("area_of_interest", r.AreaOfInterest, models.AreaOfInterestOptions, "Select a valid option"),
		validation.MaxLen("college", r.College, 200, "College must be less than 200 characters"),
		validation.Phone("mobile_number", r.MobileNumber),
		validation.MaxLen("mobile_number", r.MobileNumber, 20, "Phone number must be less than 20 characters"),
		validation.MaxLen("student_role", r.StudentRole, 100, "Role must be less than 100 characters"),
		validation.MaxLen("preferred_industries", r.PreferredIndustries, 200, "Industries must be less than 200 characters"),
		validation.AbsoluteURL("linkedin_url", r.LinkedinURL),
		validation.MaxLen("linkedin_url", r.LinkedinURL, 500, "URL must be less than 500 characters"),
		validation.MaxLen("other_work_links", r.OtherWorkLinks, 1000, "Work links must be less than 1000 characters"),
	)
}

// ToEntry builds the normalized entry, filling blank tracking fields from
// the server-derived navigation context.
func (r *StudentSubmissionRequest) ToEntry(derived tracking.Data) *models.StudentEntry {
	t := tracking.Merge(r.Data, derived)
	return &models.StudentEntry{
		FullName:            strings.TrimSpace(r.FullName),
		Email:               strings.TrimSpace(r.Email),
		AreaOfInterest:      r.AreaOfInterest,
		College:             r.College,
		MobileNumber:        r.MobileNumber,
		StudentRole:         r.StudentRole,
		PreferredIndustries: r.PreferredIndustries,
		LinkedinURL:         r.LinkedinURL,
		OtherWorkLinks:      r.OtherWorkLinks,
		Tracking: models.Tracking{
			UTMSource:   t.UTMSource,
			UTMMedium:   t.UTMMedium,
			UTMCampaign: t.UTMCampaign,
			Referrer:    t.Referrer,
			LandingPage: t.LandingPage,
		},
		UserType: models.UserTypeStudent,
	}
}

// RecruiterSubmissionRequest is the recruiter waitlist form payload.
// HiringInterest carries the independent checkbox state as an array; it is
// merged into the record and joined for storage.
type RecruiterSubmissionRequest struct {
	CompanyName           string   `json:"company_name"`
	WorkEmail             string   `json:"work_email"`
	ContactPersonName     string   `json:"contact_person_name"`
	HiringFor             string   `json:"hiring_for"`
	HiringInterest        []string `json:"hiring_interest"`
	NumberOfRoles         string   `json:"number_of_roles"`
	RequirementDetails    string   `json:"requirement_details"`
	UniversitiesLocations string   `json:"universities_locations"`
	ContactPhone          string   `json:"contact_phone"`
	QuickNote             string   `json:"quick_note"`
	tracking.Data
}

// Validate checks the schema rules in declaration order and returns the
// first violation.
func (r *RecruiterSubmissionRequest) Validate() *validation.ValidationError {
	return validation.First(
		validation.Required("company_name", r.CompanyName, "Company name is required"),
		validation.MaxLen("company_name", r.CompanyName, 200, "Company name must be less than 200 characters"),
		validation.Email("work_email", r.WorkEmail, "Invalid email address"),
		validation.MaxLen("work_email", r.WorkEmail, 255, "Email must be less than 255 characters"),
		validation.Required("contact_person_name", r.ContactPersonName, "Contact person name is required"),
		validation.MaxLen("contact_person_name", r.ContactPersonName, 100, "Name must be less than 100 characters"),
		validation.Required("hiring_for", r.HiringFor, "This field is required"),
		validation.MaxLen("hiring_for", r.HiringFor, 200, "Hiring role must be less than 200 characters"),
		validation.MinItems("hiring_interest", r.HiringInterest, 1, "Select at least one option"),
		validation.EachOneOf("hiring_interest", r.HiringInterest, models.HiringInterestOptions, "Select a valid option"),
		validation.MaxLen("number_of_roles", r.NumberOfRoles, 50, "Openings must be less than 50 characters"),
		validation.MaxLen("requirement_details", r.RequirementDetails, 500, "Requirement must be less than 500 characters"),
		validation.MaxLen("universities_locations", r.UniversitiesLocations, 300, "Locations must be less than 300 characters"),
		validation.Phone("contact_phone", r.ContactPhone),
		validation.MaxLen("contact_phone", r.ContactPhone, 20, "Phone number must be less than 20 characters"),
		validation.MaxLen("quick_note", r.QuickNote, 1000, "Notes must be less than 1000 characters"),
	)
}

// ToEntry builds the normalized entry. The hiring interest selection is
// stored comma-joined.
func (r *RecruiterSubmissionRequest) ToEntry(derived tracking.Data) *models.RecruiterEntry {
	t := tracking.Merge(r.Data, derived)
	return &models.RecruiterEntry{
		CompanyName:           strings.TrimSpace(r.CompanyName),
		WorkEmail:             strings.TrimSpace(r.WorkEmail),
		ContactPersonName:     strings.TrimSpace(r.ContactPersonName),
		HiringFor:             strings.TrimSpace(r.HiringFor),
		HiringInterest:        strings.Join(r.HiringInterest, ", "),
		NumberOfRoles:         r.NumberOfRoles,
		RequirementDetails:    r.RequirementDetails,
		UniversitiesLocations: r.UniversitiesLocations,
		ContactPhone:          r.ContactPhone,
		QuickNote:             r.QuickNote,
		Tracking: models.Tracking{
			UTMSource:   t.UTMSource,
			UTMMedium:   t.UTMMedium,
			UTMCampaign: t.UTMCampaign,
			Referrer:    t.Referrer,
			LandingPage: t.LandingPage,
		},
		UserType: models.UserTypeRecruiter,
	}
}
