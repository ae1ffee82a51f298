package dto

// RegisterRequest is the admin-account signup payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@initi8now.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	FullName string `json:"fullName" binding:"required,min=2,max=100" example:"Jane Doe"`
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@initi8now.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RefreshTokenRequest carries the opaque refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
}
