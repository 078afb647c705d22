package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupGeoRoutes(public, protected *gin.RouterGroup, geoController *controllers.GeoController) {
	public.GET("/estados", geoController.ListStates)
	public.GET("/estados/:id", geoController.GetState)
	protected.POST("/estados", geoController.CreateState)
	protected.PUT("/estados/:id", geoController.UpdateState)
	protected.DELETE("/estados/:id", geoController.DeleteState)

	public.GET("/ciudades", geoController.ListCities)
	public.GET("/ciudades/:id", geoController.GetCity)
	protected.POST("/ciudades", geoController.CreateCity)
	protected.PUT("/ciudades/:id", geoController.UpdateCity)
	protected.DELETE("/ciudades/:id", geoController.DeleteCity)

	public.GET("/municipios", geoController.ListMunicipalities)
	public.GET("/municipios/:id", geoController.GetMunicipality)
	protected.POST("/municipios", geoController.CreateMunicipality)
	protected.PUT("/municipios/:id", geoController.UpdateMunicipality)
	protected.DELETE("/municipios/:id", geoController.DeleteMunicipality)
}
