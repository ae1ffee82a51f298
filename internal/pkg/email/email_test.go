package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestResendClientSend(t *testing.T) {
	var gotAuth string
	var gotMsg Message

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotMsg); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	client := NewResendClient("re_test_key", srv.URL)
	payload, err := client.Send(context.Background(), Message{
		From:    "Initi8now <hello@initi8now.com>",
		To:      []string{"jo@example.com"},
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if gotMsg.To[0] != "jo@example.com" || gotMsg.Subject != "Welcome" {
		t.Errorf("unexpected message: %+v", gotMsg)
	}
	if !strings.Contains(string(payload), "email_123") {
		t.Errorf("expected provider payload to pass through, got %s", payload)
	}
}

func TestResendClientSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := NewResendClient("re_test_key", srv.URL)
	_, err := client.Send(context.Background(), Message{To: []string{"jo@example.com"}})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestSendConfirmationSkipsWithoutAPIKey(t *testing.T) {
	svc := NewService(Config{}, NewResendClient("", "http://unreachable.invalid"), zerolog.Nop())

	payload, err := svc.SendConfirmation(context.Background(), "Jo", "jo@example.com", "student", "")
	if err != nil {
		t.Fatalf("expected dev-mode skip, got %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload in dev mode, got %s", payload)
	}
}

func TestConfirmationBodyEscapesUserInput(t *testing.T) {
	body := confirmationBody(`<script>alert(1)</script>`, "recruiter", `Acme & "Sons"`)

	if strings.Contains(body, "<script>") {
		t.Error("name must be HTML-escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected escaped name in body")
	}
	if !strings.Contains(body, "Acme &amp; &#34;Sons&#34;") {
		t.Error("expected escaped company in body")
	}
}

func TestConfirmationBodySegments(t *testing.T) {
	student := confirmationBody("Jo", "student", "")
	if !strings.Contains(student, "student member") {
		t.Error("expected student segment")
	}

	recruiter := confirmationBody("Jo", "recruiter", "Acme")
	if !strings.Contains(recruiter, "recruiter from Acme") {
		t.Error("expected recruiter segment with company")
	}

	recruiterNoCompany := confirmationBody("Jo", "recruiter", "")
	if !strings.Contains(recruiterNoCompany, "recruiter from your organization") {
		t.Error("expected placeholder organization when company is blank")
	}
}

func TestOperatorAlertBody(t *testing.T) {
	body := operatorAlertBody("Jo", "hr@acme.com", "recruiter", "Acme")
	if !strings.Contains(body, "RECRUITER") {
		t.Error("expected uppercased user type")
	}
	if !strings.Contains(body, "hr@acme.com") {
		t.Error("expected submitter email in body")
	}
	if !strings.Contains(body, "<p><strong>Company:</strong> Acme</p>") {
		t.Error("expected company line")
	}

	noCompany := operatorAlertBody("Jo", "jo@example.com", "student", "")
	if strings.Contains(noCompany, "Company:") {
		t.Error("company line should be omitted when blank")
	}
}

func TestServiceSendsBothDirections(t *testing.T) {
	var subjects []string
	var recipients []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg Message
		json.NewDecoder(r.Body).Decode(&msg)
		subjects = append(subjects, msg.Subject)
		recipients = append(recipients, msg.To[0])
		w.Write([]byte(`{"id":"ok"}`))
	}))
	defer srv.Close()

	svc := NewService(Config{
		APIKey:        "re_test_key",
		FromAddress:   "Initi8now <hello@initi8now.com>",
		AlertFrom:     "Initi8now Alerts <alerts@initi8now.com>",
		OperatorEmail: "team@initi8now.com",
	}, NewResendClient("re_test_key", srv.URL), zerolog.Nop())

	if _, err := svc.SendConfirmation(context.Background(), "Jo", "jo@example.com", "student", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SendOperatorAlert(context.Background(), "Jo", "jo@example.com", "student", ""); err != nil {
		t.Fatal(err)
	}

	if len(recipients) != 2 || recipients[0] != "jo@example.com" || recipients[1] != "team@initi8now.com" {
		t.Errorf("unexpected recipients: %v", recipients)
	}
	if !strings.Contains(subjects[1], "student joined the waitlist") {
		t.Errorf("unexpected alert subject: %q", subjects[1])
	}
}
