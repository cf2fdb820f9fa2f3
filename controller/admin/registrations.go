package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/dto"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/middleware"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func RegistrationsController(router *gin.Engine, db store.TreeStore) {
	routes := router.Group("/admin/anggota", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListRegistrations(c, db)
		})
		routes.GET("/stream", func(c *gin.Context) {
			StreamRegistrations(c, db)
		})
		routes.PUT("/:uid/:id/approve", func(c *gin.Context) {
			ApproveRegistration(c, db)
		})
		routes.PUT("/:uid/:id/reject", func(c *gin.Context) {
			RejectRegistration(c, db)
		})
		routes.PUT("/:uid/:id", func(c *gin.Context) {
			EditRegistration(c, db)
		})
		routes.DELETE("/:uid/:id", func(c *gin.Context) {
			DeleteRegistration(c, db)
		})
	}
}

// ListRegistrations serves the dashboard table: the flattened rows, filtered
// by the search query, plus summary counts over the unfiltered list.
func ListRegistrations(c *gin.Context, db store.TreeStore) {
	rows, err := fetchRegistrationRows(context.Background(), db)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load registrations"})
		return
	}

	summary := summarize(rows)
	filtered := services.FilterRegistrations(rows, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"rows":    filtered,
		"summary": summary,
	})
}

func ApproveRegistration(c *gin.Context, db store.TreeStore) {
	if err := services.ApproveRegistration(context.Background(), db, c.Param("uid"), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to approve registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration approved"})
}

func RejectRegistration(c *gin.Context, db store.TreeStore) {
	if err := services.RejectRegistration(context.Background(), db, c.Param("uid"), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to reject registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration rejected"})
}

func EditRegistration(c *gin.Context, db store.TreeStore) {
	var request dto.EditRegistrationRequest
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
	}

	if err := services.EditRegistration(context.Background(), db, c.Param("uid"), c.Param("id"), reg); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration updated"})
}

func DeleteRegistration(c *gin.Context, db store.TreeStore) {
	if err := services.DeleteRegistration(context.Background(), db, c.Param("uid"), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration deleted"})
}

func fetchRegistrationRows(ctx context.Context, db store.TreeStore) ([]model.RegistrationRow, error) {
	var users map[string]model.UserNode
	if err := db.Get(ctx, "users", &users); err != nil {
		return nil, err
	}
	return services.FlattenRegistrations(users), nil
}

func summarize(rows []model.RegistrationRow) dto.RegistrationSummary {
	summary := dto.RegistrationSummary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case model.StatusApproved:
			summary.Disetujui++
		case model.StatusRejected:
			summary.Ditolak++
		default:
			summary.BelumDitanggapi++
		}
	}
	return summary
}
