package validation

import (
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	if err := Required("name", "Jo", "Name is required"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("name", "   ", "Name is required"); err == nil {
		t.Error("expected error for whitespace-only value")
	} else if err.Message != "Name is required" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestMaxLen(t *testing.T) {
	if err := MaxLen("name", strings.Repeat("a", 100), 100, "too long"); err != nil {
		t.Errorf("expected value at the limit to pass, got %v", err)
	}
	if err := MaxLen("name", strings.Repeat("a", 101), 100, "too long"); err == nil {
		t.Error("expected error for value over the limit")
	}
	if err := MaxLen("name", "", 100, "too long"); err != nil {
		t.Errorf("empty value should pass, got %v", err)
	}
}

func TestMaxLenCountsCharactersNotBytes(t *testing.T) {
	// 60 Devanagari characters occupy 180 bytes
	name := strings.Repeat("अ", 60)
	if err := MaxLen("name", name, 100, "too long"); err != nil {
		t.Errorf("60-character name must fit a 100-character limit, got %v", err)
	}
	if err := MaxLen("name", strings.Repeat("अ", 101), 100, "too long"); err == nil {
		t.Error("expected error for 101 characters regardless of encoding")
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"jane.doe+tag@example.com",
		"X_y%z@sub.domain.io",
	}
	for _, v := range valid {
		if err := Email("email", v, "Invalid email address"); err != nil {
			t.Errorf("expected %q to be valid, got %v", v, err)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-at.com",
		"a@b",
		"a@b.c",
	}
	for _, v := range invalid {
		if err := Email("email", v, "Invalid email address"); err == nil {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestEmailTrimsBeforeMatching(t *testing.T) {
	if err := Email("email", "  a@b.co  ", "Invalid email address"); err != nil {
		t.Errorf("expected surrounding whitespace to be tolerated, got %v", err)
	}
}

func TestPhoneEmptyIsValid(t *testing.T) {
	if err := Phone("phone", ""); err != nil {
		t.Errorf("empty phone should be valid, got %v", err)
	}
}

func TestPhone(t *testing.T) {
	for _, v := range []string{"+90 (555) 123-4567", "05551234567", "555 123"} {
		if err := Phone("phone", v); err != nil {
			t.Errorf("expected %q to be valid, got %v", v, err)
		}
	}
	for _, v := range []string{"call me", "555x123", "1234!"} {
		if err := Phone("phone", v); err == nil {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	if err := AbsoluteURL("linkedin_url", ""); err != nil {
		t.Errorf("empty URL should be valid, got %v", err)
	}
	if err := AbsoluteURL("linkedin_url", "https://linkedin.com/in/jo"); err != nil {
		t.Errorf("expected valid URL, got %v", err)
	}
	for _, v := range []string{"linkedin.com/in/jo", "/in/jo", "://bad"} {
		if err := AbsoluteURL("linkedin_url", v); err == nil {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"Internship", "Part-time"}
	if err := OneOf("area", "Internship", allowed, "Select a valid option"); err != nil {
		t.Errorf("expected member to pass, got %v", err)
	}
	if err := OneOf("area", "internship", allowed, "Select a valid option"); err == nil {
		t.Error("membership should be case-sensitive")
	}
}

func TestMinItems(t *testing.T) {
	if err := MinItems("hiring_interest", nil, 1, "Select at least one option"); err == nil {
		t.Error("expected error for empty selection")
	}
	if err := MinItems("hiring_interest", []string{"Gigs"}, 1, "Select at least one option"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestEachOneOf(t *testing.T) {
	allowed := []string{"Internships", "Gigs"}
	if err := EachOneOf("hiring_interest", []string{"Gigs", "Internships"}, allowed, "Select a valid option"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := EachOneOf("hiring_interest", []string{"Gigs", "Volunteering"}, allowed, "Select a valid option"); err == nil {
		t.Error("expected error for unknown entry")
	}
}

func TestFirstReturnsEarliestFailure(t *testing.T) {
	got := First(
		nil,
		newError("a", "first failure"),
		newError("b", "second failure"),
	)
	if got == nil || got.Message != "first failure" {
		t.Errorf("expected first failure, got %v", got)
	}

	if err := First(nil, nil); err != nil {
		t.Errorf("expected nil for all-pass, got %v", err)
	}
}
