package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/initi8now/waitlist/internal/app/models"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/app/services"
	"github.com/initi8now/waitlist/internal/pkg/auth"
	"github.com/initi8now/waitlist/internal/pkg/logger"
)

// MsgAdminRequired is shown when an authenticated user without the admin
// role reaches a dashboard route.
const MsgAdminRequired = "You need admin privileges to access this page."

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	roleStore  services.RoleStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, roleStore services.RoleStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		roleStore:  roleStore,
	}
}

// JWTAuth validates the bearer token and stores the caller identity on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			message := "Authentication failed"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				message = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// AdminRequired gates dashboard routes. The admin role is read from the
// store on every request rather than trusted from the token, so a revoked
// role takes effect immediately. The check runs before any data is fetched.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		isAdmin, err := m.roleStore.HasRole(c.Request.Context(), userID, models.RoleAdmin)
		if err != nil {
			logger.Error().Err(err).Str("userID", userID.String()).Msg("Role lookup failed")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An internal error occurred")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		if !isAdmin {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, MsgAdminRequired)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
