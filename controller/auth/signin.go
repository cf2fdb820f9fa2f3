package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/dto"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func SignInController(router *gin.Engine, db store.TreeStore) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, db)
	})
}

func Signin(c *gin.Context, db store.TreeStore) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	user, err := services.GetUserByEmail(ctx, db, request.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	// The client routes on role: admin dashboard or member screens.
	role := "user"
	if user.Role == "admin" {
		role = user.Role
	}

	accessToken, err := services.CreateAccessToken(user.UID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	refreshTokenData := model.TokenResponse{
		UserID:       user.UID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if err := db.Set(ctx, "refreshTokens/"+user.UID, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SigninResponse{
		Message:      "Login Successfully",
		UserID:       user.UID,
		Role:         role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
