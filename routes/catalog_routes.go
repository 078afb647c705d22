package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupCatalogRoutes(public, protected *gin.RouterGroup, catalogController *controllers.CatalogController) {
	public.GET("/tipos-inmueble", catalogController.ListPropertyTypes)
	public.GET("/tipos-inmueble/:id", catalogController.GetPropertyType)
	protected.POST("/tipos-inmueble", catalogController.CreatePropertyType)
	protected.PUT("/tipos-inmueble/:id", catalogController.UpdatePropertyType)
	protected.DELETE("/tipos-inmueble/:id", catalogController.DeletePropertyType)

	public.GET("/caracteristicas", catalogController.ListFeatures)
	public.GET("/caracteristicas/:id", catalogController.GetFeature)
	protected.POST("/caracteristicas", catalogController.CreateFeature)
	protected.PUT("/caracteristicas/:id", catalogController.UpdateFeature)
	protected.DELETE("/caracteristicas/:id", catalogController.DeleteFeature)
}
