package seed

import (
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
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

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var count int64
	assert.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestInitDataIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, InitData(db))
	states := countRows(t, db, &models.State{})
	cities := countRows(t, db, &models.City{})
	roles := countRows(t, db, &models.Role{})
	types := countRows(t, db, &models.PropertyType{})
	features := countRows(t, db, &models.Feature{})
	users := countRows(t, db, &models.User{})
	assert.Greater(t, states, int64(0))
	assert.Greater(t, roles, int64(0))

	assert.NoError(t, InitData(db))
	assert.Equal(t, states, countRows(t, db, &models.State{}))
	assert.Equal(t, cities, countRows(t, db, &models.City{}))
	assert.Equal(t, roles, countRows(t, db, &models.Role{}))
	assert.Equal(t, types, countRows(t, db, &models.PropertyType{}))
	assert.Equal(t, features, countRows(t, db, &models.Feature{}))
	assert.Equal(t, users, countRows(t, db, &models.User{}))
}

func TestInitDataAdminCredentials(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, InitData(db))

	var admin models.User
	assert.NoError(t, db.Preload("Role").Where("email = ?", "admin@ica.com").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
	assert.NotNil(t, admin.Role)
	assert.Equal(t, models.RoleAdmin, admin.Role.Name)
}

func TestInitVenezuelaIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, InitVenezuela(db))
	states := countRows(t, db, &models.State{})
	cities := countRows(t, db, &models.City{})
	municipalities := countRows(t, db, &models.Municipality{})
	assert.Equal(t, int64(24), states)
	assert.Equal(t, cities, municipalities, "every city carries a same-named municipality")

	assert.NoError(t, InitVenezuela(db))
	assert.Equal(t, states, countRows(t, db, &models.State{}))
	assert.Equal(t, cities, countRows(t, db, &models.City{}))
	assert.Equal(t, municipalities, countRows(t, db, &models.Municipality{}))
}
