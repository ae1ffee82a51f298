package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/app/services"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
)

type stubStudentStore struct {
	err      error
	inserted *models.StudentEntry
}

func (s *stubStudentStore) Insert(ctx context.Context, entry *models.StudentEntry) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = entry
	return nil
}

type stubRecruiterStore struct {
	err error
}

func (s *stubRecruiterStore) Insert(ctx context.Context, entry *models.RecruiterEntry) error {
	return s.err
}

func newWaitlistRouter(studentStore services.StudentStore, recruiterStore services.RecruiterStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewWaitlistService(studentStore, recruiterStore, nil, zerolog.Nop())
	ctrl := NewWaitlistController(svc, zerolog.Nop())

	router := gin.New()
	router.POST("/api/v1/waitlist/students", ctrl.SubmitStudent)
	router.POST("/api/v1/waitlist/recruiters", ctrl.SubmitRecruiter)
	return router
}

func TestSubmitStudentEndpointCreated(t *testing.T) {
	store := &stubStudentStore{}
	router := newWaitlistRouter(store, &stubRecruiterStore{})

	body := `{"full_name":"Jo","email":"jo@example.com","area_of_interest":"Internship"}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/students?utm_source=linkedin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != dto.StatusCreated {
		t.Errorf("expected created status, got %q", resp.Status)
	}
	if resp.Message != "You've been added to the waitlist. Check your email for confirmation." {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	if store.inserted == nil {
		t.Fatal("entry was not inserted")
	}
	if store.inserted.UTMSource != "linkedin" {
		t.Errorf("expected UTM source derived from the request, got %q", store.inserted.UTMSource)
	}
	if store.inserted.LandingPage != "" {
		t.Errorf("a body without landing_page must store it blank, got %q", store.inserted.LandingPage)
	}
}

func TestSubmitStudentEndpointKeepsClientLandingPage(t *testing.T) {
	store := &stubStudentStore{}
	router := newWaitlistRouter(store, &stubRecruiterStore{})

	body := `{"full_name":"Jo","email":"jo@example.com","area_of_interest":"Internship","landing_page":"https://initi8now.com/?utm_source=linkedin"}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if store.inserted == nil {
		t.Fatal("entry was not inserted")
	}
	if store.inserted.LandingPage != "https://initi8now.com/?utm_source=linkedin" {
		t.Errorf("client-captured landing page must be stored as sent, got %q", store.inserted.LandingPage)
	}
}

func TestSubmitStudentEndpointDuplicate(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{err: apperrors.ErrDuplicateEntry}, &stubRecruiterStore{})

	body := `{"full_name":"Jo","email":"jo@example.com","area_of_interest":"Internship"}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for duplicate, got %d", w.Code)
	}

	var resp dto.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != dto.StatusAlreadyRegistered {
		t.Errorf("expected already_registered, got %q", resp.Status)
	}
	if resp.Message != "This email is already on our waitlist. We'll keep you updated!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestSubmitStudentEndpointValidation(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{}, &stubRecruiterStore{})

	body := `{"full_name":"Jo","email":"not-an-email","area_of_interest":"Internship"}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected VAL_001, got %+v", resp.Error)
	}
	if resp.Error.Message != "Invalid email address" {
		t.Errorf("expected field-specific message, got %q", resp.Error.Message)
	}
}

func TestSubmitStudentEndpointMalformedBody(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{}, &stubRecruiterStore{})

	req := httptest.NewRequest("POST", "/api/v1/waitlist/students", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitRecruiterEndpointCreated(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{}, &stubRecruiterStore{})

	body := `{
		"company_name":"Acme",
		"work_email":"hr@acme.com",
		"contact_person_name":"Jo",
		"hiring_for":"Backend Intern",
		"hiring_interest":["Internships","Gigs"]
	}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/recruiters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitRecruiterEndpointMissingInterest(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{}, &stubRecruiterStore{})

	body := `{
		"company_name":"Acme",
		"work_email":"hr@acme.com",
		"contact_person_name":"Jo",
		"hiring_for":"Backend Intern",
		"hiring_interest":[]
	}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/recruiters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Message != "Select at least one option" {
		t.Errorf("unexpected error: %+v", resp.Error)
	}
}

func TestSubmitStudentEndpointStoreFailure(t *testing.T) {
	router := newWaitlistRouter(&stubStudentStore{err: context.DeadlineExceeded}, &stubRecruiterStore{})

	body := `{"full_name":"Jo","email":"jo@example.com","area_of_interest":"Internship"}`
	req := httptest.NewRequest("POST", "/api/v1/waitlist/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "deadline") {
		t.Error("internal error detail must not leak to the caller")
	}
}
