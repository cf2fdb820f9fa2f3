package model

import "github.com/golang-jwt/jwt/v5"

// TokenResponse is the refresh-token record stored under refreshTokens/{uid}.
type TokenResponse struct {
	UserID       string `json:"userId"`
	RefreshToken string `json:"refreshToken"` // bcrypt hash, never the raw token
	CreatedAt    int64  `json:"createdAt"`    // creation time in seconds
	Revoked      bool   `json:"revoked"`
	ExpiresIn    int64  `json:"expiresIn"` // expiration in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AccessRefresh struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
