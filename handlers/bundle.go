package handlers

import (
	"lovelink/middleware"
	"lovelink/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Guards
	Tokens      middleware.TokenVerifier
	UserService user.UserService

	// Token endpoints
	IssueTokenHandler gin.HandlerFunc

	// User endpoints
	GetAllUsersHandler    gin.HandlerFunc
	GetAdminStatusHandler gin.HandlerFunc
	RegisterUserHandler   gin.HandlerFunc
	PromoteToAdminHandler gin.HandlerFunc
	DeleteUserHandler     gin.HandlerFunc

	// Document collections
	Biodata         *ResourceHandler
	SuccessStories  *ResourceHandler
	Favourites      *ResourceHandler
	ContactRequests *ResourceHandler

	// Misc
	HealthHandler gin.HandlerFunc
	RootHandler   gin.HandlerFunc
}
