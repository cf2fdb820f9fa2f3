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

func FeedbackController(router *gin.Engine, db store.TreeStore) {
	routes := router.Group("/saran", middleware.AccessTokenMiddleware())
	{
		routes.GET("/prefill", func(c *gin.Context) {
			FeedbackPrefill(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			SubmitFeedback(c, db)
		})
	}
}

func FeedbackPrefill(c *gin.Context, db store.TreeStore) {
	userID := c.MustGet("userId").(string)

	nama, idAnggota, err := services.FeedbackPrefill(context.Background(), db, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load member data"})
		return
	}

	c.JSON(http.StatusOK, dto.FeedbackPrefillResponse{
		NamaAnggota: nama,
		IDAnggota:   idAnggota,
	})
}

func SubmitFeedback(c *gin.Context, db store.TreeStore) {
	userID := c.MustGet("userId").(string)

	var request dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb := model.Feedback{
		NamaAnggota: request.NamaAnggota,
		IDAnggota:   request.IDAnggota,
		Masukan:     request.Masukan,
	}

	key, err := services.SubmitFeedback(context.Background(), db, userID, fb)
	if err != nil {
		if errors.Is(err, services.ErrEmptyFeedback) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to send feedback"})
		return
	}

	c.JSON(201, gin.H{
		"message": "Feedback sent",
		"key":     key,
	})
}
