package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupEngagementRoutes(public, protected *gin.RouterGroup, engagementController *controllers.EngagementController) {
	public.GET("/operaciones", engagementController.ListOperations)
	public.GET("/operaciones/:id", engagementController.GetOperation)
	protected.POST("/operaciones", engagementController.CreateOperation)
	protected.PUT("/operaciones/:id", engagementController.UpdateOperation)
	protected.DELETE("/operaciones/:id", engagementController.DeleteOperation)

	public.GET("/citas", engagementController.ListAppointments)
	public.GET("/citas/:id", engagementController.GetAppointment)
	protected.POST("/citas", engagementController.CreateAppointment)
	protected.PUT("/citas/:id", engagementController.UpdateAppointment)
	protected.DELETE("/citas/:id", engagementController.DeleteAppointment)
}
