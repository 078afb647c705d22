package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupUserRoutes(public, protected *gin.RouterGroup, userController *controllers.UserController) {
	public.GET("/roles", userController.ListRoles)
	public.GET("/roles/:id", userController.GetRole)
	protected.POST("/roles", userController.CreateRole)
	protected.PUT("/roles/:id", userController.UpdateRole)
	protected.DELETE("/roles/:id", userController.DeleteRole)

	public.GET("/usuarios", userController.ListUsers)
	public.GET("/usuarios/:id", userController.GetUser)
	protected.POST("/usuarios", userController.CreateUser)
	protected.PUT("/usuarios/:id", userController.UpdateUser)
	protected.DELETE("/usuarios/:id", userController.DeleteUser)
}
