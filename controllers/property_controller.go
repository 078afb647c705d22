package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

// SearchQuery holds the AND-combined listing filters. Absent parameters
// impose no constraint.
type SearchQuery struct {
	PropertyType string   `form:"tipo_inmueble"`
	City         string   `form:"ciudad"`
	PriceMin     *float64 `form:"precio_min"`
	PriceMax     *float64 `form:"precio_max"`
	Bedrooms     *int     `form:"habitaciones"`
	Bathrooms    *int     `form:"banos"`
}

// List returns the full property representation, newest first. An optional
// ?search= term matches case-insensitively against title, description,
// reference code, municipality name and city name.
func (pc *PropertyController) List(c *gin.Context) {
	query := pc.DB.Model(&models.Property{}).
		Preload("PropertyType").
		Preload("Municipality.City").
		Preload("Features.Feature").
		Order("properties.published_at DESC")

	if term := c.Query("search"); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.
			Select("properties.*").
			Joins("LEFT JOIN municipalities ON municipalities.id = properties.municipality_id").
			Joins("LEFT JOIN cities ON cities.id = municipalities.city_id").
			Where(`LOWER(properties.title) LIKE ? OR LOWER(properties.description) LIKE ?
				OR LOWER(properties.reference_code) LIKE ?
				OR LOWER(municipalities.name) LIKE ? OR LOWER(cities.name) LIKE ?`,
				pattern, pattern, pattern, pattern, pattern)
	}

	var properties []models.Property
	response, err := utils.Paginate(c, query, &properties)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (pc *PropertyController) Get(c *gin.Context) {
	var property models.Property
	err := pc.DB.
		Preload("PropertyType").
		Preload("Municipality.City.State").
		Preload("Features.Feature").
		Preload("Owner").
		First(&property, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// Create registers a new listing for the authenticated caller. Moderation
// fields are not accepted from the payload: every property starts Pendiente.
func (pc *PropertyController) Create(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		ReferenceCode    string   `json:"codigo_referencia"`
		Title            string   `json:"titulo_publicacion" binding:"required"`
		Description      string   `json:"descripcion_publica"`
		PropertyTypeID   *uint    `json:"tipo_inmueble_id"`
		MunicipalityID   *uint    `json:"municipio_id"`
		Address          string   `json:"direccion_exacta" binding:"required"`
		Price            *float64 `json:"precio" binding:"required"`
		LandArea         *float64 `json:"superficie_terreno"`
		BuiltArea        float64  `json:"superficie_construccion"`
		Bedrooms         int      `json:"habitaciones"`
		Bathrooms        int      `json:"banos"`
		ParkingSpots     int      `json:"puestos_estacionamiento"`
		ConstructionYear *int     `json:"ano_construccion"`
		SaleStatus       string   `json:"estatus_venta" binding:"omitempty,oneof=Disponible Vendido Alquilado Reservado"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	referenceCode := input.ReferenceCode
	if referenceCode == "" {
		referenceCode = generateReferenceCode()
	}
	saleStatus := input.SaleStatus
	if saleStatus == "" {
		saleStatus = models.SaleAvailable
	}

	ownerID := user.UserID
	property := models.Property{
		ReferenceCode:    referenceCode,
		Title:            input.Title,
		Description:      input.Description,
		PropertyTypeID:   input.PropertyTypeID,
		MunicipalityID:   input.MunicipalityID,
		Address:          input.Address,
		Price:            *input.Price,
		LandArea:         input.LandArea,
		BuiltArea:        input.BuiltArea,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		ParkingSpots:     input.ParkingSpots,
		ConstructionYear: input.ConstructionYear,
		SaleStatus:       saleStatus,
		ModerationStatus: models.ModerationPending,
		OwnerID:          &ownerID,
	}

	if err := pc.DB.Create(&property).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reference code already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// Update is restricted to the property's owner or a moderator. Moderation
// fields are never writable here; Moderate is the only path that sets them.
func (pc *PropertyController) Update(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canMutateProperty(user, &property) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner or a moderator may modify this property"})
		return
	}

	var input struct {
		ReferenceCode    *string  `json:"codigo_referencia"`
		Title            *string  `json:"titulo_publicacion"`
		Description      *string  `json:"descripcion_publica"`
		PropertyTypeID   *uint    `json:"tipo_inmueble_id"`
		MunicipalityID   *uint    `json:"municipio_id"`
		Address          *string  `json:"direccion_exacta"`
		Price            *float64 `json:"precio"`
		LandArea         *float64 `json:"superficie_terreno"`
		BuiltArea        *float64 `json:"superficie_construccion"`
		Bedrooms         *int     `json:"habitaciones"`
		Bathrooms        *int     `json:"banos"`
		ParkingSpots     *int     `json:"puestos_estacionamiento"`
		ConstructionYear *int     `json:"ano_construccion"`
		SaleStatus       *string  `json:"estatus_venta" binding:"omitempty,oneof=Disponible Vendido Alquilado Reservado"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.ReferenceCode != nil {
		updates["reference_code"] = *input.ReferenceCode
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PropertyTypeID != nil {
		updates["property_type_id"] = *input.PropertyTypeID
	}
	if input.MunicipalityID != nil {
		updates["municipality_id"] = *input.MunicipalityID
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.LandArea != nil {
		updates["land_area"] = *input.LandArea
	}
	if input.BuiltArea != nil {
		updates["built_area"] = *input.BuiltArea
	}
	if input.Bedrooms != nil {
		updates["bedrooms"] = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		updates["bathrooms"] = *input.Bathrooms
	}
	if input.ParkingSpots != nil {
		updates["parking_spots"] = *input.ParkingSpots
	}
	if input.ConstructionYear != nil {
		updates["construction_year"] = *input.ConstructionYear
	}
	if input.SaleStatus != nil {
		updates["sale_status"] = *input.SaleStatus
	}

	if err := pc.DB.Model(&property).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reference code already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) Delete(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if !canMutateProperty(user, &property) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner or a moderator may delete this property"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		return deletePropertyTree(tx, property.ID)
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Moderate approves or rejects a listing, stamping the moderator identity
// and timestamp in the same update.
func (pc *PropertyController) Moderate(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	if !user.IsModerator() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Moderator role required"})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	var input struct {
		Status string `json:"estatus_moderacion" binding:"required,oneof=Aprobado Rechazado"`
		Reason string `json:"motivo_rechazo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status == models.ModerationRejected && input.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "motivo_rechazo is required when rejecting"})
		return
	}

	reason := ""
	if input.Status == models.ModerationRejected {
		reason = input.Reason
	}

	now := time.Now()
	updates := map[string]interface{}{
		"moderation_status": input.Status,
		"moderator_id":      user.UserID,
		"moderated_at":      now,
		"rejection_reason":  reason,
	}
	if err := pc.DB.Model(&property).Updates(updates).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// Search applies the public listing filters and returns Shape B results for
// approved properties only.
func (pc *PropertyController) Search(c *gin.Context) {
	var params SearchQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := pc.DB.Model(&models.Property{}).
		Select("properties.*").
		Joins("LEFT JOIN municipalities ON municipalities.id = properties.municipality_id").
		Joins("LEFT JOIN cities ON cities.id = municipalities.city_id").
		Where("properties.moderation_status = ?", models.ModerationApproved).
		Preload("Municipality.City").
		Preload("Features.Feature").
		Order("properties.published_at DESC")

	if params.PropertyType != "" {
		query = query.Where("properties.property_type_id = ?", params.PropertyType)
	}
	if params.City != "" {
		query = query.Where("LOWER(cities.name) LIKE ?", "%"+strings.ToLower(params.City)+"%")
	}
	if params.PriceMin != nil {
		query = query.Where("properties.price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("properties.price <= ?", *params.PriceMax)
	}
	if params.Bedrooms != nil {
		query = query.Where("properties.bedrooms >= ?", *params.Bedrooms)
	}
	if params.Bathrooms != nil {
		query = query.Where("properties.bathrooms >= ?", *params.Bathrooms)
	}

	var properties []models.Property
	response, err := utils.Paginate(c, query, &properties)
	if err != nil {
		internalError(c, err)
		return
	}

	response["results"] = toPublicListings(properties)
	c.JSON(http.StatusOK, response)
}

// ScheduleVisit books a visit for the authenticated caller. The property's
// current owner is copied onto the appointment; later ownership changes do
// not touch existing appointments. Overlapping visits are allowed.
func (pc *PropertyController) ScheduleVisit(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	var input struct {
		DateTime     time.Time `json:"fecha_hora_cita" binding:"required"`
		Observations string    `json:"observaciones"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interestedID := user.UserID
	propertyID := property.ID
	appointment := models.Appointment{
		PropertyID:   &propertyID,
		InterestedID: &interestedID,
		OwnerID:      property.OwnerID,
		DateTime:     input.DateTime,
		Status:       models.AppointmentScheduled,
		Observations: input.Observations,
	}
	if err := pc.DB.Create(&appointment).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func canMutateProperty(user *utils.UserClaims, property *models.Property) bool {
	if user.IsModerator() {
		return true
	}
	return property.OwnerID != nil && *property.OwnerID == user.UserID
}

func generateReferenceCode() string {
	return fmt.Sprintf("ICA-%s", strings.ToUpper(uuid.New().String()[:8]))
}
