package handlers

import (
	"net/http"

	"lovelink/database"

	"github.com/gin-gonic/gin"
)

// Greeting is the body of GET /. Existing clients match it byte for byte.
const Greeting = "Your Pertner On the Server"

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, Greeting)
}

// NewHealthHandler reports whether the database answers a ping.
func NewHealthHandler(p database.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := database.CheckHealth(c.Request.Context(), p)
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
