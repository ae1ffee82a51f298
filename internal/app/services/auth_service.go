package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/auth"
)

// User-facing auth messages
const (
	MsgEmailTaken         = "This email is already registered. Please login instead."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
)

// UserStore persists accounts and their profiles
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

// TokenStore persists refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID uuid.UUID, expiryDate time.Time) error
	GetTokenUser(ctx context.Context, token string) (uuid.UUID, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// RoleStore persists user role assignments
type RoleStore interface {
	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// AuthService handles authentication and token lifecycle operations
type AuthService struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, tokenStore TokenStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account with its profile and issues a token pair. A
// fresh account carries no role: admin capability is assigned out of band.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	normEmail := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    normEmail,
		Password: hashed,
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewConflictError(MsgEmailTaken)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	profile := &models.Profile{
		UserID:   user.ID,
		Email:    normEmail,
		FullName: strings.TrimSpace(req.FullName),
	}
	if err := s.userStore.CreateProfile(ctx, profile); err != nil {
		// The account exists; a missing profile row is recoverable
		s.logger.Error().Err(err).Str("userID", user.ID.String()).Msg("Failed to create profile")
	}

	s.logger.Info().Str("userID", user.ID.String()).Str("email", normEmail).Msg("User registered")

	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same response.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	normEmail := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userStore.GetByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	s.logger.Info().Str("userID", user.ID.String()).Msg("User logged in")

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is revoked and
// a fresh pair is issued. Presenting an already revoked token counts as
// reuse and kills every token of that user.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenStore.GetTokenUser(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) && userID != uuid.Nil {
			s.logger.Warn().Str("userID", userID.String()).Msg("Revoked refresh token reused, revoking all user tokens")
			if revokeErr := s.tokenStore.RevokeAllForUser(ctx, userID); revokeErr != nil {
				s.logger.Error().Err(revokeErr).Str("userID", userID.String()).Msg("Failed to revoke user tokens")
			}
		}
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenStore.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	}, nil
}
