package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

// EngagementController covers the transactional records around a listing:
// closed operations (sales/rentals) and appointments.
type EngagementController struct {
	DB *gorm.DB
}

func NewEngagementController(db *gorm.DB) *EngagementController {
	return &EngagementController{DB: db}
}

// Operations

func (ec *EngagementController) ListOperations(c *gin.Context) {
	var operations []models.Operation
	response, err := utils.Paginate(c, ec.DB.Model(&models.Operation{}).Preload("Property"), &operations)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (ec *EngagementController) GetOperation(c *gin.Context) {
	var operation models.Operation
	if err := ec.DB.Preload("Property").First(&operation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		return
	}
	c.JSON(http.StatusOK, operation)
}

func (ec *EngagementController) CreateOperation(c *gin.Context) {
	var input struct {
		PropertyID  *uint     `json:"inmueble_id"`
		SellerID    *uint     `json:"usuario_vendedor_id"`
		BuyerID     *uint     `json:"usuario_comprador_id"`
		Type        string    `json:"tipo_operacion" binding:"required,oneof=Venta Alquiler"`
		Date        time.Time `json:"fecha_operacion" binding:"required"`
		FinalAmount *float64  `json:"monto_final" binding:"required"`
		Currency    string    `json:"moneda_cierre" binding:"omitempty,oneof=USD EUR BS"`
		Notes       string    `json:"notas"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}

	operation := models.Operation{
		PropertyID:  input.PropertyID,
		SellerID:    input.SellerID,
		BuyerID:     input.BuyerID,
		Type:        input.Type,
		Date:        input.Date,
		FinalAmount: *input.FinalAmount,
		Currency:    currency,
		Notes:       input.Notes,
	}
	if err := ec.DB.Create(&operation).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, operation)
}

func (ec *EngagementController) UpdateOperation(c *gin.Context) {
	var operation models.Operation
	if err := ec.DB.First(&operation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		return
	}

	var input struct {
		Type        *string    `json:"tipo_operacion" binding:"omitempty,oneof=Venta Alquiler"`
		Date        *time.Time `json:"fecha_operacion"`
		FinalAmount *float64   `json:"monto_final"`
		Currency    *string    `json:"moneda_cierre" binding:"omitempty,oneof=USD EUR BS"`
		Notes       *string    `json:"notas"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.FinalAmount != nil {
		updates["final_amount"] = *input.FinalAmount
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if err := ec.DB.Model(&operation).Updates(updates).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, operation)
}

func (ec *EngagementController) DeleteOperation(c *gin.Context) {
	var operation models.Operation
	if err := ec.DB.First(&operation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		return
	}
	if err := ec.DB.Delete(&operation).Error; err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Appointments

func (ec *EngagementController) ListAppointments(c *gin.Context) {
	query := ec.DB.Model(&models.Appointment{}).Preload("Property")
	if propertyID := c.Query("inmueble"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	var appointments []models.Appointment
	response, err := utils.Paginate(c, query, &appointments)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (ec *EngagementController) GetAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := ec.DB.Preload("Property").First(&appointment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (ec *EngagementController) CreateAppointment(c *gin.Context) {
	var input struct {
		PropertyID   *uint     `json:"inmueble_id"`
		InterestedID *uint     `json:"usuario_interesado_id"`
		OwnerID      *uint     `json:"usuario_propietario_id"`
		DateTime     time.Time `json:"fecha_hora_cita" binding:"required"`
		Status       string    `json:"estatus_cita" binding:"omitempty,oneof=Programada Completada Cancelada"`
		Observations string    `json:"observaciones"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.AppointmentScheduled
	}

	appointment := models.Appointment{
		PropertyID:   input.PropertyID,
		InterestedID: input.InterestedID,
		OwnerID:      input.OwnerID,
		DateTime:     input.DateTime,
		Status:       status,
		Observations: input.Observations,
	}
	if err := ec.DB.Create(&appointment).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (ec *EngagementController) UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := ec.DB.First(&appointment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	var input struct {
		DateTime     *time.Time `json:"fecha_hora_cita"`
		Status       *string    `json:"estatus_cita" binding:"omitempty,oneof=Programada Completada Cancelada"`
		Observations *string    `json:"observaciones"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.DateTime != nil {
		updates["date_time"] = *input.DateTime
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Observations != nil {
		updates["observations"] = *input.Observations
	}

	if err := ec.DB.Model(&appointment).Updates(updates).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (ec *EngagementController) DeleteAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := ec.DB.First(&appointment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err := ec.DB.Delete(&appointment).Error; err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
