package member

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/dto"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/middleware"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func CardController(router *gin.Engine, db store.TreeStore) {
	router.GET("/anggota/card", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ResolveCard(c, db)
	})
}

// ResolveCard returns the member's card data when an approved record exists.
// "No approved record" is a normal failed result with status 200; the client
// renders it as a negative outcome and offers a reload.
func ResolveCard(c *gin.Context, db store.TreeStore) {
	userID := c.MustGet("userId").(string)

	result, err := services.ResolveCard(context.Background(), db, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load registration data"})
		return
	}

	if !result.Found {
		c.JSON(http.StatusOK, dto.CardResponse{Status: "failed"})
		return
	}

	rec := result.Registration
	c.JSON(http.StatusOK, dto.CardResponse{
		Status:    "success",
		UID:       result.UID,
		RecordID:  result.RecordID,
		Nama:      rec.Nama,
		Alamat:    rec.Alamat,
		Telpon:    rec.Telpon,
		NIK:       rec.NIK,
		Pekerjaan: rec.Pekerjaan,
		Foto:      rec.Foto,
		Berlaku:   result.Berlaku,
		FrontFile: result.FrontFile,
		BackFile:  result.BackFile,
	})
}
