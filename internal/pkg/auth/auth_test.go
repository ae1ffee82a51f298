package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "initi8now.com",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	userID := uuid.New()

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(userID, "admin@initi8now.com")
	if err != nil {
		t.Fatal(err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}
	if refreshToken == "" {
		t.Error("expected non-empty refresh token")
	}
	if _, err := uuid.Parse(refreshToken); err != nil {
		t.Errorf("refresh token should be a UUID: %v", err)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "admin@initi8now.com" {
		t.Errorf("unexpected email claim: %q", claims.Email)
	}
	if claims.Issuer != "initi8now.com" {
		t.Errorf("unexpected issuer: %q", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	accessToken, _, _, err := svc.GenerateTokenPair(uuid.New(), "a@b.co")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ValidateToken(accessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	accessToken, _, _, err := testService(time.Hour).GenerateTokenPair(uuid.New(), "a@b.co")
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("expected token, got %q, %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("abc.def.ghi"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat without Bearer prefix, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic dXNlcjpwYXNz"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for Basic scheme, got %v", err)
	}
}

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Error("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected mismatched password to fail")
	}
}
