package dto

import (
	"strings"
	"testing"

	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
)

func validStudentRequest() *StudentSubmissionRequest {
	return &StudentSubmissionRequest{
		FullName:       "Jo Student",
		Email:          "jo@example.com",
		AreaOfInterest: "Internship",
	}
}

func validRecruiterRequest() *RecruiterSubmissionRequest {
	return &RecruiterSubmissionRequest{
		CompanyName:       "Acme",
		WorkEmail:         "hr@acme.com",
		ContactPersonName: "Jo Recruiter",
		HiringFor:         "Backend Intern",
		HiringInterest:    []string{"Internships"},
	}
}

func TestStudentValidateMinimalRequest(t *testing.T) {
	if err := validStudentRequest().Validate(); err != nil {
		t.Errorf("minimal valid request rejected: %v", err)
	}
}

func TestStudentValidateMultibyteName(t *testing.T) {
	req := validStudentRequest()
	// 41 characters but 113 bytes; limits count characters, so this fits
	req.FullName = strings.TrimSpace(strings.Repeat("आदित्य ", 6))
	req.College = "भारतीय प्रौद्योगिकी संस्थान"
	if err := req.Validate(); err != nil {
		t.Errorf("multibyte name rejected: %v", err)
	}
}

func TestStudentValidateFirstErrorWins(t *testing.T) {
	// Every required field is broken; the name rule is declared first
	req := &StudentSubmissionRequest{}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Message != "Name is required" {
		t.Errorf("expected first declared rule to win, got %q", err.Message)
	}
}

func TestStudentValidateMessages(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*StudentSubmissionRequest)
		message string
	}{
		{"bad email", func(r *StudentSubmissionRequest) { r.Email = "not-an-email" }, "Invalid email address"},
		{"missing area", func(r *StudentSubmissionRequest) { r.AreaOfInterest = "" }, "This field is required"},
		{"unknown area", func(r *StudentSubmissionRequest) { r.AreaOfInterest = "Freelance" }, "Select a valid option"},
		{"bad phone", func(r *StudentSubmissionRequest) { r.MobileNumber = "call me" }, "Invalid phone number"},
		{"bad url", func(r *StudentSubmissionRequest) { r.LinkedinURL = "linkedin.com/in/jo" }, "Invalid URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validStudentRequest()
			tc.mutate(req)
			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Message != tc.message {
				t.Errorf("expected %q, got %q", tc.message, err.Message)
			}
		})
	}
}

func TestStudentValidateOptionalFieldsEmpty(t *testing.T) {
	req := validStudentRequest()
	req.College = ""
	req.MobileNumber = ""
	req.LinkedinURL = ""
	if err := req.Validate(); err != nil {
		t.Errorf("empty optional fields should validate, got %v", err)
	}
}

func TestStudentToEntry(t *testing.T) {
	req := validStudentRequest()
	req.FullName = "  Jo Student  "
	req.Data = tracking.Data{UTMSource: "newsletter"}

	entry := req.ToEntry(tracking.Data{UTMSource: "derived", Referrer: "https://x.test"})

	if entry.FullName != "Jo Student" {
		t.Errorf("expected trimmed name, got %q", entry.FullName)
	}
	if entry.UserType != models.UserTypeStudent {
		t.Errorf("expected student user type, got %q", entry.UserType)
	}
	if entry.UTMSource != "newsletter" {
		t.Errorf("body tracking should win, got %q", entry.UTMSource)
	}
	if entry.Referrer != "https://x.test" {
		t.Errorf("blank fields should fill from derived, got %q", entry.Referrer)
	}
}

func TestRecruiterValidateMinimalRequest(t *testing.T) {
	if err := validRecruiterRequest().Validate(); err != nil {
		t.Errorf("minimal valid request rejected: %v", err)
	}
}

func TestRecruiterValidateMessages(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RecruiterSubmissionRequest)
		message string
	}{
		{"missing company", func(r *RecruiterSubmissionRequest) { r.CompanyName = "" }, "Company name is required"},
		{"bad email", func(r *RecruiterSubmissionRequest) { r.WorkEmail = "hr@" }, "Invalid email address"},
		{"missing contact", func(r *RecruiterSubmissionRequest) { r.ContactPersonName = " " }, "Contact person name is required"},
		{"no interest", func(r *RecruiterSubmissionRequest) { r.HiringInterest = nil }, "Select at least one option"},
		{"unknown interest", func(r *RecruiterSubmissionRequest) { r.HiringInterest = []string{"Volunteering"} }, "Select a valid option"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRecruiterRequest()
			tc.mutate(req)
			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Message != tc.message {
				t.Errorf("expected %q, got %q", tc.message, err.Message)
			}
		})
	}
}

func TestRecruiterToEntryJoinsHiringInterest(t *testing.T) {
	req := validRecruiterRequest()
	req.HiringInterest = []string{"Internships", "Gigs"}

	entry := req.ToEntry(tracking.Data{})

	if entry.HiringInterest != "Internships, Gigs" {
		t.Errorf("expected comma-joined interest, got %q", entry.HiringInterest)
	}
	if entry.UserType != models.UserTypeRecruiter {
		t.Errorf("expected recruiter user type, got %q", entry.UserType)
	}
}

func TestSubscribeValidate(t *testing.T) {
	req := &SubscribeRequest{Email: "jo@example.com"}
	if err := req.Validate(); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}

	req = &SubscribeRequest{Email: "nope"}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Message != "Please enter a valid email address." {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestSubscribeToSubscriberNormalizesEmail(t *testing.T) {
	req := &SubscribeRequest{Email: "  Jo@Example.COM  "}
	sub := req.ToSubscriber(tracking.Data{LandingPage: "/"})

	if sub.Email != "jo@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", sub.Email)
	}
	if sub.LandingPage != "/" {
		t.Errorf("expected merged landing page, got %q", sub.LandingPage)
	}
}
