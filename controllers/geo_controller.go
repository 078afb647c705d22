package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

// GeoController serves the state -> city -> municipality hierarchy.
type GeoController struct {
	DB *gorm.DB
}

func NewGeoController(db *gorm.DB) *GeoController {
	return &GeoController{DB: db}
}

// States

func (gc *GeoController) ListStates(c *gin.Context) {
	var states []models.State
	query := gc.DB.Model(&models.State{}).Order("name")
	response, err := utils.Paginate(c, query, &states)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (gc *GeoController) GetState(c *gin.Context) {
	var state models.State
	if err := gc.DB.Preload("Cities").First(&state, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GeoController) CreateState(c *gin.Context) {
	var input struct {
		Name string `json:"nombre_estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := models.State{Name: input.Name}
	if err := gc.DB.Create(&state).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "State already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (gc *GeoController) UpdateState(c *gin.Context) {
	var state models.State
	if err := gc.DB.First(&state, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	var input struct {
		Name string `json:"nombre_estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.DB.Model(&state).Update("name", input.Name).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "State already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteState detaches its cities rather than deleting them.
func (gc *GeoController) DeleteState(c *gin.Context) {
	var state models.State
	if err := gc.DB.First(&state, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.City{}).Where("state_id = ?", state.ID).
			Update("state_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&state).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cities

func (gc *GeoController) ListCities(c *gin.Context) {
	query := gc.DB.Model(&models.City{}).Preload("State").Order("name")
	if stateID := c.Query("estado"); stateID != "" {
		query = query.Where("state_id = ?", stateID)
	}

	var cities []models.City
	response, err := utils.Paginate(c, query, &cities)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (gc *GeoController) GetCity(c *gin.Context) {
	var city models.City
	if err := gc.DB.Preload("State").First(&city, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	c.JSON(http.StatusOK, city)
}

func (gc *GeoController) CreateCity(c *gin.Context) {
	var input struct {
		Name    string `json:"nombre_ciudad" binding:"required"`
		StateID *uint  `json:"estado_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city := models.City{Name: input.Name, StateID: input.StateID}
	if err := gc.DB.Create(&city).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "City already exists in that state"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (gc *GeoController) UpdateCity(c *gin.Context) {
	var city models.City
	if err := gc.DB.First(&city, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	var input struct {
		Name    *string `json:"nombre_ciudad"`
		StateID *uint   `json:"estado_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.StateID != nil {
		updates["state_id"] = *input.StateID
	}

	if err := gc.DB.Model(&city).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "City already exists in that state"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (gc *GeoController) DeleteCity(c *gin.Context) {
	var city models.City
	if err := gc.DB.First(&city, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Municipality{}).Where("city_id = ?", city.ID).
			Update("city_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&city).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Municipalities

func (gc *GeoController) ListMunicipalities(c *gin.Context) {
	query := gc.DB.Model(&models.Municipality{}).Preload("City.State").Order("name")
	if cityID := c.Query("ciudad"); cityID != "" {
		query = query.Where("city_id = ?", cityID)
	}

	var municipalities []models.Municipality
	response, err := utils.Paginate(c, query, &municipalities)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (gc *GeoController) GetMunicipality(c *gin.Context) {
	var municipality models.Municipality
	if err := gc.DB.Preload("City.State").First(&municipality, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Municipality not found"})
		return
	}
	c.JSON(http.StatusOK, municipality)
}

func (gc *GeoController) CreateMunicipality(c *gin.Context) {
	var input struct {
		Name   string `json:"nombre_municipio" binding:"required"`
		CityID *uint  `json:"ciudad_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	municipality := models.Municipality{Name: input.Name, CityID: input.CityID}
	if err := gc.DB.Create(&municipality).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Municipality already exists in that city"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, municipality)
}

func (gc *GeoController) UpdateMunicipality(c *gin.Context) {
	var municipality models.Municipality
	if err := gc.DB.First(&municipality, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Municipality not found"})
		return
	}

	var input struct {
		Name   *string `json:"nombre_municipio"`
		CityID *uint   `json:"ciudad_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.CityID != nil {
		updates["city_id"] = *input.CityID
	}

	if err := gc.DB.Model(&municipality).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Municipality already exists in that city"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, municipality)
}

// DeleteMunicipality detaches properties so listings survive as
// orphan-location records.
func (gc *GeoController) DeleteMunicipality(c *gin.Context) {
	var municipality models.Municipality
	if err := gc.DB.First(&municipality, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Municipality not found"})
		return
	}

	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Property{}).Where("municipality_id = ?", municipality.ID).
			Update("municipality_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&municipality).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
