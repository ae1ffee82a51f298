package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrNoIdentity is returned when the request context carries no
// authenticated user.
var ErrNoIdentity = errors.New("no authenticated user in context")

// GetUserID reads the authenticated user ID set by JWTAuth
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, ErrNoIdentity
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	return userID, nil
}

// GetUserEmail reads the authenticated email set by JWTAuth
func GetUserEmail(c *gin.Context) (string, error) {
	value, exists := c.Get("email")
	if !exists {
		return "", ErrNoIdentity
	}

	email, ok := value.(string)
	if !ok {
		return "", ErrNoIdentity
	}

	return email, nil
}
