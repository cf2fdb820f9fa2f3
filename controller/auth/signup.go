package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/dto"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func SignUpController(router *gin.Engine, db store.TreeStore) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, db)
	})
}

func Signup(c *gin.Context, db store.TreeStore) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Password != request.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password confirmation does not match"})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExist(ctx, db, request.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to check existing email"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	uid := uuid.New().String()

	newUser := model.User{
		UID:       uid,
		Nama:      request.Nama,
		Email:     request.Email,
		Password:  string(hashedPassword),
		Role:      "user",
		CreatedAt: time.Now(),
	}

	if err := db.Set(ctx, "users/"+uid, newUser); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(201, gin.H{
		"message": "User registered successfully",
		"uid":     uid,
	})
}
