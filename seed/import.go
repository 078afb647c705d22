package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/inmobiliaria-ica/api-go/models"
	"gorm.io/gorm"
)

// CasaFixture is one entry of the casas.json fixture.
type CasaFixture struct {
	ID           int      `json:"id"`
	Type         string   `json:"tipo"`
	Municipality string   `json:"municipio"`
	Zone         string   `json:"zona"`
	Address      string   `json:"direccion"`
	Description  string   `json:"descripcion"`
	Price        *float64 `json:"precio"`
	Bedrooms     int      `json:"habitaciones"`
	Bathrooms    int      `json:"banos"`
	SquareMeters float64  `json:"metros_cuadrados"`
}

// ImportCasas loads the casas.json fixture into the database. The fixture
// mixes property objects with free-form comment strings; non-object entries
// are ignored. Entries whose reference code already exists are skipped, so
// re-running the import creates no duplicates. A malformed entry (missing
// price) aborts the run and rolls back everything created by it.
func ImportCasas(db *gorm.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read fixture: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("parse fixture: %w", err)
	}

	var casas []CasaFixture
	for _, entry := range entries {
		var casa CasaFixture
		if err := json.Unmarshal(entry, &casa); err != nil || casa.ID == 0 {
			continue
		}
		casas = append(casas, casa)
	}

	log.Printf("Processing %d properties...", len(casas))

	created := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		state, err := getOrCreateState(tx, "Carabobo")
		if err != nil {
			return err
		}
		ownerRole, err := getOrCreateRole(tx, models.RoleOwner)
		if err != nil {
			return err
		}
		owner, err := getOrCreateUser(tx, "propietario@ica.com", "Propietario", "Default", "default_password", ownerRole.ID)
		if err != nil {
			return err
		}

		for _, casa := range casas {
			if casa.Price == nil {
				return fmt.Errorf("entry %d is missing a price", casa.ID)
			}

			municipalityName := casa.Municipality
			if municipalityName == "" {
				municipalityName = "Valencia"
			}
			typeName := casa.Type
			if typeName == "" {
				typeName = "Casa"
			}

			referenceCode := fixtureReferenceCode(casa.ID, municipalityName)
			var count int64
			if err := tx.Model(&models.Property{}).
				Where("reference_code = ?", referenceCode).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Printf("Property %s already exists, skipping", referenceCode)
				continue
			}

			propertyType, err := getOrCreatePropertyType(tx, typeName, "Inmueble tipo "+typeName)
			if err != nil {
				return err
			}
			// The fixture has no city level; the municipality doubles as one.
			city, err := getOrCreateCity(tx, municipalityName, state.ID)
			if err != nil {
				return err
			}
			municipality, err := getOrCreateMunicipality(tx, municipalityName, city.ID)
			if err != nil {
				return err
			}

			title := casa.Description
			if title == "" {
				title = "Propiedad en " + municipalityName
			}
			address := casa.Address
			if address == "" {
				address = "Dirección no especificada"
			}

			landArea := casa.SquareMeters * 1.2
			year := 2020
			property := models.Property{
				ReferenceCode:    referenceCode,
				Title:            title,
				Description:      casa.Description,
				PropertyTypeID:   &propertyType.ID,
				MunicipalityID:   &municipality.ID,
				Address:          address,
				Price:            *casa.Price,
				LandArea:         &landArea,
				BuiltArea:        casa.SquareMeters,
				Bedrooms:         casa.Bedrooms,
				Bathrooms:        casa.Bathrooms,
				ParkingSpots:     1,
				ConstructionYear: &year,
				SaleStatus:       models.SaleAvailable,
				ModerationStatus: models.ModerationApproved,
				OwnerID:          &owner.ID,
			}
			if err := tx.Create(&property).Error; err != nil {
				return err
			}

			created++
			log.Printf("Created property %s", referenceCode)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Import complete: %d properties created", created)
	return created, nil
}

func fixtureReferenceCode(id int, municipality string) string {
	prefix := []rune(strings.ToUpper(municipality))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("ICA-%03d-%s", id, string(prefix))
}
