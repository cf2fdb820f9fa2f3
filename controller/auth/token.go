package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/middleware"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func TokenController(router *gin.Engine, db store.TreeStore) {
	router.POST("/auth/token", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, db)
	})
}

// RefreshAccessToken issues a new access token after checking the presented
// refresh token against the stored hash.
func RefreshAccessToken(c *gin.Context, db store.TreeStore) {
	userID := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	var stored model.TokenResponse
	if err := db.Get(ctx, "refreshTokens/"+userID, &stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load refresh token"})
		return
	}

	if stored.UserID == "" || stored.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is revoked or unknown"})
		return
	}

	if !services.VerifyRefreshToken(refreshToken, stored.RefreshToken) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token mismatch"})
		return
	}

	role, err := services.GetUserRole(ctx, db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user role"})
		return
	}

	accessToken, err := services.CreateAccessToken(userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}
