package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

type ConversationController struct {
	DB *gorm.DB
}

func NewConversationController(db *gorm.DB) *ConversationController {
	return &ConversationController{DB: db}
}

// Conversations

func (cc *ConversationController) ListConversations(c *gin.Context) {
	user := utils.GetUser(c)
	query := cc.DB.Model(&models.Conversation{}).Preload("Property")
	if user != nil {
		query = query.Where("interested_id = ? OR counterpart_id = ?", user.UserID, user.UserID)
	}

	var conversations []models.Conversation
	response, err := utils.Paginate(c, query, &conversations)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (cc *ConversationController) GetConversation(c *gin.Context) {
	var conversation models.Conversation
	err := cc.DB.Preload("Property").Preload("Messages").
		First(&conversation, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conversation)
}

// CreateConversation opens a thread; the unique (property, interested,
// counterpart) constraint rejects a second thread for the same triple.
func (cc *ConversationController) CreateConversation(c *gin.Context) {
	var input struct {
		PropertyID    uint `json:"inmueble_id" binding:"required"`
		InterestedID  uint `json:"usuario_interesado_id" binding:"required"`
		CounterpartID uint `json:"usuario_vendedor_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := cc.DB.First(&property, input.PropertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	conversation := models.Conversation{
		PropertyID:    input.PropertyID,
		InterestedID:  input.InterestedID,
		CounterpartID: input.CounterpartID,
	}
	if err := cc.DB.Create(&conversation).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Conversation already exists for this property and users"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conversation)
}

// DeleteConversation removes the thread and the messages it owns.
func (cc *ConversationController) DeleteConversation(c *gin.Context) {
	var conversation models.Conversation
	if err := cc.DB.First(&conversation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", conversation.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&conversation).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Messages

func (cc *ConversationController) ListMessages(c *gin.Context) {
	query := cc.DB.Model(&models.Message{}).Order("sent_at")
	if conversationID := c.Query("conversacion"); conversationID != "" {
		query = query.Where("conversation_id = ?", conversationID)
	}

	var messages []models.Message
	response, err := utils.Paginate(c, query, &messages)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (cc *ConversationController) GetMessage(c *gin.Context) {
	var message models.Message
	if err := cc.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, message)
}

func (cc *ConversationController) CreateMessage(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		ConversationID uint   `json:"conversacion_id" binding:"required"`
		Body           string `json:"contenido_mensaje" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var conversation models.Conversation
	if err := cc.DB.First(&conversation, input.ConversationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	message := models.Message{
		ConversationID: input.ConversationID,
		SenderID:       user.UserID,
		Body:           input.Body,
	}
	if err := cc.DB.Create(&message).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// UpdateMessage only toggles the read flag; message bodies are immutable.
func (cc *ConversationController) UpdateMessage(c *gin.Context) {
	var message models.Message
	if err := cc.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	var input struct {
		Read *bool `json:"leido" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.DB.Model(&message).Update("read", *input.Read).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (cc *ConversationController) DeleteMessage(c *gin.Context) {
	var message models.Message
	if err := cc.DB.First(&message, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err := cc.DB.Delete(&message).Error; err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
