package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MonirMohammed1995/matrimony-management-server/database"
	"github.com/MonirMohammed1995/matrimony-management-server/handlers"
	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
)

// SetupRouter wires every route. Public reads stay open, everything
// else sits behind the JWT middleware, and admin routes additionally
// re-check the role against the users collection.
func SetupRouter(h *handlers.Handler, store *database.Store, jwtSecret string) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(60, time.Minute)
	public := router.Group("/", middleware.RateLimit(limiter))

	// Public routes
	public.POST("/jwt", h.IssueToken)
	public.POST("/users", h.UpsertUser)
	public.GET("/biodatas", h.ListBiodatas)
	public.GET("/biodatas/:id", h.GetBiodata)
	public.GET("/success-stories", h.ListSuccessStories)

	// Authenticated routes
	auth := router.Group("/")
	auth.Use(middleware.JWTAuth(jwtSecret))

	auth.GET("/users/:email", h.GetUser)

	auth.POST("/biodatas", h.CreateBiodata)
	auth.PUT("/biodatas/:id", h.UpdateBiodata)
	auth.DELETE("/biodatas/:id", h.DeleteBiodata)
	auth.POST("/biodatas/upload-photo", h.UploadPhoto)

	auth.POST("/create-payment-intent", h.CreatePaymentIntent)
	auth.POST("/payments", h.CreatePayment)

	auth.GET("/contact-requests", h.ListContactRequests)
	auth.DELETE("/contact-requests/:id", h.DeleteContactRequest)

	auth.POST("/premium-requests", h.CreatePremiumRequest)

	auth.POST("/favourites", h.AddFavourite)
	auth.DELETE("/favourites/:biodataId", h.RemoveFavourite)
	auth.GET("/favourites", h.ListFavourites)

	auth.POST("/success-stories", h.CreateSuccessStory)

	// Admin routes
	admin := router.Group("/")
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.AdminOnly(store))

	admin.GET("/users", h.ListUsers)
	admin.PATCH("/users/:id/make-admin", h.MakeAdmin)
	admin.PATCH("/users/:id/make-premium", h.MakePremium)
	admin.PATCH("/contact-requests/:id/approve", h.ApproveContactRequest)
	admin.GET("/premium-requests", h.ListPremiumRequests)
	admin.PATCH("/premium-requests/:id/approve", h.ApprovePremiumRequest)
	admin.GET("/admin/stats", h.AdminStats)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
