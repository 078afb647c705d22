package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
	"github.com/inmobiliaria-ica/api-go/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires the API surface: reads are public, writes sit behind the
// auth middleware, a handful of actions carry their own checks.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	geoController := controllers.NewGeoController(db)
	catalogController := controllers.NewCatalogController(db)
	userController := controllers.NewUserController(db)
	propertyController := controllers.NewPropertyController(db)
	featureController := controllers.NewPropertyFeatureController(db)
	engagementController := controllers.NewEngagementController(db)
	conversationController := controllers.NewConversationController(db)
	listingController := controllers.NewListingController(db)

	public := r.Group("/api")
	public.Use(middleware.OptionalAuth())

	protected := r.Group("/api")
	protected.Use(middleware.RequireAuth())

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// Public listing shape for the frontend, approved properties only.
	public.GET("/casas", listingController.List)

	SetupGeoRoutes(public, protected, geoController)
	SetupCatalogRoutes(public, protected, catalogController)
	SetupUserRoutes(public, protected, userController)
	SetupPropertyRoutes(public, protected, propertyController, featureController)
	SetupEngagementRoutes(public, protected, engagementController)
	SetupConversationRoutes(public, protected, conversationController)
}
