package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/services"
)

type stubStudentReader struct {
	entries []models.StudentEntry
}

func (s *stubStudentReader) GetAll(ctx context.Context) ([]models.StudentEntry, error) {
	return s.entries, nil
}

func (s *stubStudentReader) Count(ctx context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}

type stubRecruiterReader struct {
	entries []models.RecruiterEntry
}

func (s *stubRecruiterReader) GetAll(ctx context.Context) ([]models.RecruiterEntry, error) {
	return s.entries, nil
}

func (s *stubRecruiterReader) Count(ctx context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}

type stubNewsletterReader struct {
	subs []models.NewsletterSubscriber
}

func (s *stubNewsletterReader) GetAll(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	return s.subs, nil
}

func (s *stubNewsletterReader) Count(ctx context.Context) (int64, error) {
	return int64(len(s.subs)), nil
}

func newAdminRouter(students *stubStudentReader, recruiters *stubRecruiterReader, newsletter *stubNewsletterReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewAdminService(students, recruiters, newsletter, zerolog.Nop())
	ctrl := NewAdminController(svc, zerolog.Nop())

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	admin.GET("/students", ctrl.ListStudents)
	admin.GET("/stats", ctrl.Stats)
	admin.GET("/export/:collection", ctrl.Export)
	return router
}

func TestListStudentsEndpoint(t *testing.T) {
	students := &stubStudentReader{entries: []models.StudentEntry{
		{
			ID:             uuid.New(),
			FullName:       "Priya Sharma",
			Email:          "priya@college.edu",
			AreaOfInterest: "Internship",
			UserType:       models.UserTypeStudent,
			CreatedAt:      time.Now(),
		},
	}}
	router := newAdminRouter(students, &stubRecruiterReader{}, &stubNewsletterReader{})

	req := httptest.NewRequest("GET", "/api/v1/admin/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []models.StudentEntry `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Email != "priya@college.edu" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestStatsEndpoint(t *testing.T) {
	students := &stubStudentReader{entries: make([]models.StudentEntry, 3)}
	recruiters := &stubRecruiterReader{entries: make([]models.RecruiterEntry, 2)}
	newsletter := &stubNewsletterReader{subs: make([]models.NewsletterSubscriber, 5)}
	router := newAdminRouter(students, recruiters, newsletter)

	req := httptest.NewRequest("GET", "/api/v1/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Students   int64 `json:"students"`
			Recruiters int64 `json:"recruiters"`
			Newsletter int64 `json:"newsletter"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Students != 3 || resp.Data.Recruiters != 2 || resp.Data.Newsletter != 5 {
		t.Errorf("unexpected totals: %+v", resp.Data)
	}
}

func TestExportEndpoint(t *testing.T) {
	students := &stubStudentReader{entries: []models.StudentEntry{
		{
			ID:        uuid.New(),
			FullName:  "Priya Sharma",
			Email:     "priya@college.edu",
			UserType:  models.UserTypeStudent,
			CreatedAt: time.Now(),
		},
	}}
	router := newAdminRouter(students, &stubRecruiterReader{}, &stubNewsletterReader{})

	req := httptest.NewRequest("GET", "/api/v1/admin/export/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="students-waitlist.csv"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "priya@college.edu") {
		t.Errorf("CSV body missing entry: %s", w.Body.String())
	}
}

func TestExportEndpointEmptyCollection(t *testing.T) {
	router := newAdminRouter(&stubStudentReader{}, &stubRecruiterReader{}, &stubNewsletterReader{})

	req := httptest.NewRequest("GET", "/api/v1/admin/export/newsletter", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for empty collection, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestExportEndpointUnknownCollection(t *testing.T) {
	router := newAdminRouter(&stubStudentReader{}, &stubRecruiterReader{}, &stubNewsletterReader{})

	req := httptest.NewRequest("GET", "/api/v1/admin/export/invoices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown collection, got %d", w.Code)
	}
}
