package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "students_waitlist_email_key"}
	if !IsUniqueViolation(uniqueErr) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)) {
		t.Error("expected wrapped 23505 to be detected")
	}

	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("plain error is not a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "refresh_tokens_token_key"}
	if !IsUniqueViolationOn(err, "refresh_tokens_token_key") {
		t.Error("expected constraint name to match")
	}
	if IsUniqueViolationOn(err, "users_email_key") {
		t.Error("different constraint should not match")
	}
}
