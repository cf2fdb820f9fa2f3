package main

import (
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/connection"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
