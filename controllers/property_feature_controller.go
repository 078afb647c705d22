package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

// PropertyFeatureController writes the property<->feature join rows. The
// property representation exposes them read-only; this is the write path.
type PropertyFeatureController struct {
	DB *gorm.DB
}

func NewPropertyFeatureController(db *gorm.DB) *PropertyFeatureController {
	return &PropertyFeatureController{DB: db}
}

func (fc *PropertyFeatureController) List(c *gin.Context) {
	query := fc.DB.Model(&models.PropertyFeature{}).Preload("Feature")
	if propertyID := c.Query("inmueble"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	var associations []models.PropertyFeature
	response, err := utils.Paginate(c, query, &associations)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (fc *PropertyFeatureController) Get(c *gin.Context) {
	var association models.PropertyFeature
	if err := fc.DB.Preload("Feature").First(&association, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		return
	}
	c.JSON(http.StatusOK, association)
}

func (fc *PropertyFeatureController) Create(c *gin.Context) {
	var input struct {
		PropertyID uint   `json:"inmueble_id" binding:"required"`
		FeatureID  uint   `json:"caracteristica_id" binding:"required"`
		Value      string `json:"valor"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := fc.DB.First(&property, input.PropertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	var feature models.Feature
	if err := fc.DB.First(&feature, input.FeatureID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature not found"})
		return
	}

	association := models.PropertyFeature{
		PropertyID: input.PropertyID,
		FeatureID:  input.FeatureID,
		Value:      input.Value,
	}
	if err := fc.DB.Create(&association).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Property already has that feature"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, association)
}

func (fc *PropertyFeatureController) Update(c *gin.Context) {
	var association models.PropertyFeature
	if err := fc.DB.First(&association, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		return
	}

	var input struct {
		Value string `json:"valor"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := fc.DB.Model(&association).Update("value", input.Value).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, association)
}

func (fc *PropertyFeatureController) Delete(c *gin.Context) {
	var association models.PropertyFeature
	if err := fc.DB.First(&association, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		return
	}

	if err := fc.DB.Delete(&association).Error; err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
