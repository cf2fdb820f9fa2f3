package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/middleware"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func FeedbackController(router *gin.Engine, db store.TreeStore) {
	routes := router.Group("/admin/saran", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListFeedback(c, db)
		})
		routes.GET("/stream", func(c *gin.Context) {
			StreamFeedback(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteFeedback(c, db)
		})
	}
}

func ListFeedback(c *gin.Context, db store.TreeStore) {
	rows, err := services.ListFeedback(context.Background(), db)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load feedback"})
		return
	}

	filtered := services.FilterFeedback(rows, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"rows": filtered})
}

func DeleteFeedback(c *gin.Context, db store.TreeStore) {
	if err := services.DeleteFeedback(context.Background(), db, c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}
