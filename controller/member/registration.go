package member

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/dto"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/middleware"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func RegistrationController(router *gin.Engine, db store.TreeStore) {
	router.POST("/anggota", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SubmitRegistration(c, db)
	})
}

func SubmitRegistration(c *gin.Context, db store.TreeStore) {
	userID := c.MustGet("userId").(string)

	var request dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg := model.Registration{
		Nama:      request.Nama,
		Alamat:    request.Alamat,
		Telpon:    request.Telpon,
		NIK:       request.NIK,
		Pekerjaan: request.Pekerjaan,
		Foto:      request.Foto,
	}

	recordID, err := services.SubmitRegistration(context.Background(), db, userID, reg)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteForm) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to save registration"})
		return
	}

	c.JSON(201, gin.H{
		"message":  "Registration submitted",
		"recordId": recordID,
	})
}
