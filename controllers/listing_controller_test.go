package controllers_test

import (
	"net/http"
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/stretchr/testify/assert"
)

func TestPublicListingOnlyApproved(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	createProperty(t, db, owner, nil, "ICA-PUB-1", 150000, 3, 2, models.ModerationApproved)
	createProperty(t, db, owner, nil, "ICA-PUB-2", 150000, 3, 2, models.ModerationPending)
	createProperty(t, db, owner, nil, "ICA-PUB-3", 150000, 3, 2, models.ModerationRejected)

	w := perform(r, http.MethodGet, "/api/casas", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	list := results(t, w)
	assert.Len(t, list, 1)

	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"])
}

func TestPublicListingShape(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	naguanagua := createMunicipality(t, db, "Carabobo", "Valencia", "Naguanagua")

	year := 2015
	property := models.Property{
		ReferenceCode:    "ICA-001-VAL",
		Title:            "Casa en El Parral",
		Description:      "Amplia casa familiar",
		Address:          "Calle 5",
		Price:            185000,
		BuiltArea:        220,
		Bedrooms:         4,
		Bathrooms:        3,
		ConstructionYear: &year,
		SaleStatus:       models.SaleAvailable,
		ModerationStatus: models.ModerationApproved,
		OwnerID:          &owner.ID,
		MunicipalityID:   &naguanagua.ID,
	}
	assert.NoError(t, db.Create(&property).Error)

	feature := models.Feature{Name: "Piscina"}
	assert.NoError(t, db.Create(&feature).Error)
	assert.NoError(t, db.Create(&models.PropertyFeature{
		PropertyID: property.ID,
		FeatureID:  feature.ID,
		Value:      "Si",
	}).Error)

	w := perform(r, http.MethodGet, "/api/casas", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	list := results(t, w)
	assert.Len(t, list, 1)

	listing := list[0].(map[string]interface{})
	assert.IsType(t, "", listing["id"], "id is serialized as a string")
	assert.Equal(t, "Casa en El Parral", listing["title"])
	assert.Equal(t, "Amplia casa familiar", listing["description"])
	assert.Equal(t, 185000.0, listing["price"])
	assert.Equal(t, "Valencia, Naguanagua", listing["location"])
	assert.Equal(t, float64(4), listing["bedrooms"])
	assert.Equal(t, float64(3), listing["bathrooms"])
	assert.Equal(t, 220.0, listing["size"])
	assert.Equal(t, "/images/casa-valencia-1.jpg", listing["image"])
	assert.Equal(t, []interface{}{"Piscina"}, listing["features"])
	assert.Equal(t, float64(2015), listing["yearBuilt"])
	assert.Equal(t, "A", listing["energyRating"])
}

func TestPublicListingDefaults(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)

	// No description, no municipality, no manifest entry, no year.
	createProperty(t, db, owner, nil, "ICA-UNKNOWN", 90000, 2, 1, models.ModerationApproved)

	w := perform(r, http.MethodGet, "/api/casas", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	list := results(t, w)
	assert.Len(t, list, 1)

	listing := list[0].(map[string]interface{})
	assert.Equal(t, listing["title"], listing["description"], "description falls back to the title")
	assert.Equal(t, "N/A, N/A", listing["location"])
	assert.Equal(t, "/images/placeholder.jpg", listing["image"])
	assert.Equal(t, []interface{}{}, listing["features"])
	assert.Equal(t, float64(0), listing["yearBuilt"])
}
