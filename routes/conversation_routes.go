package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/controllers"
)

func SetupConversationRoutes(public, protected *gin.RouterGroup, conversationController *controllers.ConversationController) {
	public.GET("/conversaciones", conversationController.ListConversations)
	public.GET("/conversaciones/:id", conversationController.GetConversation)
	protected.POST("/conversaciones", conversationController.CreateConversation)
	protected.DELETE("/conversaciones/:id", conversationController.DeleteConversation)

	public.GET("/mensajes", conversationController.ListMessages)
	public.GET("/mensajes/:id", conversationController.GetMessage)
	protected.POST("/mensajes", conversationController.CreateMessage)
	protected.PUT("/mensajes/:id", conversationController.UpdateMessage)
	protected.DELETE("/mensajes/:id", conversationController.DeleteMessage)
}
