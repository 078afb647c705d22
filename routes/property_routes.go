package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupPropertyRoutes(public, protected *gin.RouterGroup,
	propertyController *controllers.PropertyController,
	featureController *controllers.PropertyFeatureController) {

	public.GET("/inmuebles", propertyController.List)
	public.GET("/inmuebles/search", propertyController.Search)
	public.GET("/inmuebles/:id", propertyController.Get)
	protected.POST("/inmuebles", propertyController.Create)
	protected.PUT("/inmuebles/:id", propertyController.Update)
	protected.DELETE("/inmuebles/:id", propertyController.Delete)
	protected.POST("/inmuebles/:id/moderate", propertyController.Moderate)
	protected.POST("/inmuebles/:id/schedule-visit", propertyController.ScheduleVisit)

	public.GET("/inmueble-caracteristicas", featureController.List)
	public.GET("/inmueble-caracteristicas/:id", featureController.Get)
	protected.POST("/inmueble-caracteristicas", featureController.Create)
	protected.PUT("/inmueble-caracteristicas/:id", featureController.Update)
	protected.DELETE("/inmueble-caracteristicas/:id", featureController.Delete)
}
