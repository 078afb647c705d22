package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/routes"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func perform(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func results(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	body := decode(t, w)
	list, ok := body["results"].([]interface{})
	assert.True(t, ok, "expected paginated results, got %s", w.Body.String())
	return list
}

func countOf(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var count int64
	assert.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func makeToken(t *testing.T, userID uint, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(config.JWTSecret())
	assert.NoError(t, err)
	return signed
}

func createUser(t *testing.T, db *gorm.DB, email, roleName string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := models.User{
		FirstNames:   "Test",
		LastNames:    "User",
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if roleName != "" {
		role := models.Role{Name: roleName}
		assert.NoError(t, db.Where("name = ?", roleName).FirstOrCreate(&role).Error)
		user.RoleID = &role.ID
	}
	assert.NoError(t, db.Create(&user).Error)
	return &user
}

// createMunicipality builds the full state -> city -> municipality chain.
func createMunicipality(t *testing.T, db *gorm.DB, stateName, cityName, municipalityName string) *models.Municipality {
	state := models.State{Name: stateName}
	assert.NoError(t, db.Where("name = ?", stateName).FirstOrCreate(&state).Error)

	city := models.City{Name: cityName, StateID: &state.ID}
	assert.NoError(t, db.Where("name = ? AND state_id = ?", cityName, state.ID).FirstOrCreate(&city).Error)

	municipality := models.Municipality{Name: municipalityName, CityID: &city.ID}
	assert.NoError(t, db.Where("name = ? AND city_id = ?", municipalityName, city.ID).FirstOrCreate(&municipality).Error)
	return &municipality
}

func createProperty(t *testing.T, db *gorm.DB, owner *models.User, municipality *models.Municipality, code string, price float64, bedrooms, bathrooms int, moderation string) *models.Property {
	property := models.Property{
		ReferenceCode:    code,
		Title:            "Casa " + code,
		Address:          "Av. Principal",
		Price:            price,
		BuiltArea:        120,
		Bedrooms:         bedrooms,
		Bathrooms:        bathrooms,
		SaleStatus:       models.SaleAvailable,
		ModerationStatus: moderation,
		OwnerID:          &owner.ID,
	}
	if municipality != nil {
		property.MunicipalityID = &municipality.ID
	}
	assert.NoError(t, db.Create(&property).Error)
	return &property
}
