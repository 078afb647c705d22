package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/stretchr/testify/assert"
)

func writeFixture(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "casas.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validFixture = `[
	"--- casas de valencia ---",
	{"id": 1, "tipo": "Casa", "municipio": "Valencia", "zona": "El Parral",
	 "direccion": "Calle 5", "descripcion": "Casa amplia", "precio": 185000,
	 "habitaciones": 4, "banos": 3, "metros_cuadrados": 220},
	{"id": 2, "tipo": "Apartamento", "municipio": "Naguanagua",
	 "descripcion": "Apartamento moderno", "precio": 95000,
	 "habitaciones": 2, "banos": 2, "metros_cuadrados": 85},
	{"id": 3, "municipio": "San Diego", "precio": 120000,
	 "habitaciones": 3, "banos": 2, "metros_cuadrados": 140}
]`

func TestImportCasas(t *testing.T) {
	db := setupTestDB(t)
	path := writeFixture(t, validFixture)

	created, err := ImportCasas(db, path)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, int64(3), countRows(t, db, &models.Property{}))

	var property models.Property
	assert.NoError(t, db.Where("reference_code = ?", "ICA-001-VAL").First(&property).Error)
	assert.Equal(t, 185000.0, property.Price)
	assert.Equal(t, models.ModerationApproved, property.ModerationStatus)
	assert.NotNil(t, property.LandArea)
	assert.InDelta(t, 264.0, *property.LandArea, 0.001)
	assert.NotNil(t, property.OwnerID)

	var owner models.User
	assert.NoError(t, db.Where("email = ?", "propietario@ica.com").First(&owner).Error)
	assert.Equal(t, *property.OwnerID, owner.ID)
}

func TestImportCasasSkipsExisting(t *testing.T) {
	db := setupTestDB(t)
	path := writeFixture(t, validFixture)

	created, err := ImportCasas(db, path)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = ImportCasas(db, path)
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, int64(3), countRows(t, db, &models.Property{}))
}

func TestImportCasasRollsBackOnMissingPrice(t *testing.T) {
	db := setupTestDB(t)
	path := writeFixture(t, `[
		{"id": 1, "municipio": "Valencia", "precio": 185000,
		 "habitaciones": 4, "banos": 3, "metros_cuadrados": 220},
		{"id": 2, "municipio": "Naguanagua",
		 "habitaciones": 2, "banos": 2, "metros_cuadrados": 85}
	]`)

	created, err := ImportCasas(db, path)
	assert.Error(t, err)
	assert.Equal(t, 0, created)

	// Nothing from the run survives, not even the valid first entry.
	assert.Equal(t, int64(0), countRows(t, db, &models.Property{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.User{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.State{}))
}

func TestImportCasasMissingFile(t *testing.T) {
	db := setupTestDB(t)
	_, err := ImportCasas(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFixtureReferenceCode(t *testing.T) {
	assert.Equal(t, "ICA-001-VAL", fixtureReferenceCode(1, "Valencia"))
	assert.Equal(t, "ICA-012-NAG", fixtureReferenceCode(12, "Naguanagua"))
	assert.Equal(t, "ICA-005-SAN", fixtureReferenceCode(5, "San Diego"))
	// Short names are used whole.
	assert.Equal(t, "ICA-007-CUA", fixtureReferenceCode(7, "Cua"))
}
