package routes

import (
	"time"

	"lovelink/handlers"
	"lovelink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authenticate := middleware.Authenticate(hb.Tokens)
	requireAdmin := middleware.RequireAdmin(hb.UserService)

	api := r.Group("/users")
	{
		api.POST("", hb.RegisterUserHandler)
		api.DELETE("/:id", hb.DeleteUserHandler)

		// Protected routes (Require Authentication)
		api.GET("/admin/:email", authenticate, middleware.RequireSelf("email"), hb.GetAdminStatusHandler)

		// Admin routes: authenticate first, the role check reads its claims.
		api.GET("", authenticate, requireAdmin, hb.GetAllUsersHandler)
		api.PATCH("/admin/:id", authenticate, requireAdmin, hb.PromoteToAdminHandler)
	}
}

// RegisterResourceRoutes registers list/get/create/delete for a collection
// under path. Reads are filtered by owner email when byOwner is set.
func RegisterResourceRoutes(r *gin.Engine, path string, h *handlers.ResourceHandler, byOwner bool) {
	api := r.Group(path)
	{
		if byOwner {
			api.GET("", h.ListByOwnerHandler)
		} else {
			api.GET("", h.ListHandler)
			api.GET("/:id", h.GetByIDHandler)
		}
		api.POST("", h.CreateHandler)
		api.DELETE("/:id", h.DeleteHandler)
	}
}

// RegisterStoryRoutes registers the read-only success story endpoints.
func RegisterStoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/success", hb.SuccessStories.ListHandler)
	r.GET("/story", hb.SuccessStories.ListHandler)
}

// RegisterHealthRoute registers the greeting and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/jwt", hb.IssueTokenHandler)
	RegisterUserRoutes(r, hb)
	RegisterResourceRoutes(r, "/bio", hb.Biodata, false)
	RegisterResourceRoutes(r, "/favourits", hb.Favourites, true)
	RegisterResourceRoutes(r, "/request", hb.ContactRequests, true)
	RegisterStoryRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
