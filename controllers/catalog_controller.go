package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

// CatalogController serves the property-type and feature vocabularies.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// Property types

func (cc *CatalogController) ListPropertyTypes(c *gin.Context) {
	var propertyTypes []models.PropertyType
	response, err := utils.Paginate(c, cc.DB.Model(&models.PropertyType{}).Order("name"), &propertyTypes)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (cc *CatalogController) GetPropertyType(c *gin.Context) {
	var propertyType models.PropertyType
	if err := cc.DB.First(&propertyType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property type not found"})
		return
	}
	c.JSON(http.StatusOK, propertyType)
}

func (cc *CatalogController) CreatePropertyType(c *gin.Context) {
	var input struct {
		Name        string `json:"nombre_tipo" binding:"required"`
		Description string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	propertyType := models.PropertyType{Name: input.Name, Description: input.Description}
	if err := cc.DB.Create(&propertyType).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Property type already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, propertyType)
}

func (cc *CatalogController) UpdatePropertyType(c *gin.Context) {
	var propertyType models.PropertyType
	if err := cc.DB.First(&propertyType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property type not found"})
		return
	}

	var input struct {
		Name        *string `json:"nombre_tipo"`
		Description *string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	if err := cc.DB.Model(&propertyType).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Property type already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, propertyType)
}

// DeletePropertyType nulls out the classification on affected properties.
func (cc *CatalogController) DeletePropertyType(c *gin.Context) {
	var propertyType models.PropertyType
	if err := cc.DB.First(&propertyType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property type not found"})
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Property{}).Where("property_type_id = ?", propertyType.ID).
			Update("property_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&propertyType).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Features

func (cc *CatalogController) ListFeatures(c *gin.Context) {
	var features []models.Feature
	response, err := utils.Paginate(c, cc.DB.Model(&models.Feature{}).Order("name"), &features)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (cc *CatalogController) GetFeature(c *gin.Context) {
	var feature models.Feature
	if err := cc.DB.First(&feature, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature not found"})
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (cc *CatalogController) CreateFeature(c *gin.Context) {
	var input struct {
		Name string `json:"nombre_caracteristica" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature := models.Feature{Name: input.Name}
	if err := cc.DB.Create(&feature).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Feature already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feature)
}

func (cc *CatalogController) UpdateFeature(c *gin.Context) {
	var feature models.Feature
	if err := cc.DB.First(&feature, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature not found"})
		return
	}

	var input struct {
		Name string `json:"nombre_caracteristica" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.DB.Model(&feature).Update("name", input.Name).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Feature already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (cc *CatalogController) DeleteFeature(c *gin.Context) {
	var feature models.Feature
	if err := cc.DB.First(&feature, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature not found"})
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_id = ?", feature.ID).Delete(&models.PropertyFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&feature).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
