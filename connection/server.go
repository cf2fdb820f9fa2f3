package connection

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/controller/admin"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/controller/auth"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/controller/member"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func StartServer() {
	client, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}

	router := SetupRouter(store.NewFirebaseStore(client))
	router.Run()
}

// SetupRouter wires every controller onto a fresh engine. Tests call this
// directly with an in-memory store.
func SetupRouter(db store.TreeStore) *gin.Engine {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.SignInController(router, db)
	auth.SignUpController(router, db)
	auth.TokenController(router, db)

	member.RegistrationController(router, db)
	member.CardController(router, db)
	member.FeedbackController(router, db)

	admin.RegistrationsController(router, db)
	admin.FeedbackController(router, db)

	return router
}
