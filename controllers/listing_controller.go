package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"gorm.io/gorm"
)

// ListingController serves the public listing shape consumed by the
// frontend. It is the only read surface restricted by a business rule:
// properties appear here once approved, never before.
type ListingController struct {
	DB *gorm.DB
}

func NewListingController(db *gorm.DB) *ListingController {
	return &ListingController{DB: db}
}

// PublicListing is the external listing contract, decoupled from the
// internal schema.
type PublicListing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Size         float64  `json:"size"`
	Image        string   `json:"image"`
	Features     []string `json:"features"`
	YearBuilt    int      `json:"yearBuilt"`
	EnergyRating string   `json:"energyRating"`
}

// List answers GET /api/casas with approved properties, newest first.
func (lc *ListingController) List(c *gin.Context) {
	query := lc.DB.Model(&models.Property{}).
		Where("moderation_status = ?", models.ModerationApproved).
		Preload("Municipality.City").
		Preload("Features.Feature").
		Order("published_at DESC")

	var properties []models.Property
	response, err := utils.Paginate(c, query, &properties)
	if err != nil {
		internalError(c, err)
		return
	}

	response["results"] = toPublicListings(properties)
	c.JSON(http.StatusOK, response)
}

func toPublicListings(properties []models.Property) []PublicListing {
	listings := make([]PublicListing, 0, len(properties))
	for i := range properties {
		listings = append(listings, NewPublicListing(&properties[i]))
	}
	return listings
}

func NewPublicListing(p *models.Property) PublicListing {
	description := p.Description
	if description == "" {
		description = p.Title
	}

	city, municipality := "N/A", "N/A"
	if p.Municipality != nil {
		if p.Municipality.Name != "" {
			municipality = p.Municipality.Name
		}
		if p.Municipality.City != nil && p.Municipality.City.Name != "" {
			city = p.Municipality.City.Name
		}
	}

	features := make([]string, 0, len(p.Features))
	for _, pf := range p.Features {
		if pf.Feature != nil {
			features = append(features, pf.Feature.Name)
		}
	}

	yearBuilt := 0
	if p.ConstructionYear != nil {
		yearBuilt = *p.ConstructionYear
	}

	return PublicListing{
		ID:           strconv.FormatUint(uint64(p.ID), 10),
		Title:        p.Title,
		Description:  description,
		Price:        p.Price,
		Location:     city + ", " + municipality,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Size:         p.BuiltArea,
		Image:        config.PropertyImage(p.ReferenceCode),
		Features:     features,
		YearBuilt:    yearBuilt,
		// No energy certification source exists yet; the frontend contract
		// pins this field.
		EnergyRating: "A",
	}
}
