package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"gorm.io/gorm"
)

// isDuplicate detects unique-constraint violations. TranslateError handles
// the common drivers; the string checks cover drivers that don't translate.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// internalError logs the cause server-side and answers with an opaque body.
func internalError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// deletePropertyTree removes a property and everything it strongly owns:
// feature rows, conversations with their messages, then the row itself.
// Appointments and operations keep a nulled property reference.
func deletePropertyTree(tx *gorm.DB, propertyID uint) error {
	var conversationIDs []uint
	if err := tx.Model(&models.Conversation{}).Where("property_id = ?", propertyID).
		Pluck("id", &conversationIDs).Error; err != nil {
		return err
	}
	if len(conversationIDs) > 0 {
		if err := tx.Where("conversation_id IN ?", conversationIDs).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", conversationIDs).Delete(&models.Conversation{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyFeature{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Appointment{}).Where("property_id = ?", propertyID).
		Update("property_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Operation{}).Where("property_id = ?", propertyID).
		Update("property_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Property{}, propertyID).Error
}
