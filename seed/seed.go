package seed

import (
	"log"

	"github.com/inmobiliaria-ica/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitData loads the base reference data and the admin account. The whole
// run is one transaction and every row uses get-or-create, so re-running it
// creates nothing new.
func InitData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		log.Println("Initializing base data...")

		states := []string{"Carabobo", "Distrito Capital", "Miranda", "Zulia"}
		for _, name := range states {
			if _, err := getOrCreateState(tx, name); err != nil {
				return err
			}
		}

		cities := map[string]string{
			"Valencia":       "Carabobo",
			"Puerto Cabello": "Carabobo",
			"Mariara":        "Carabobo",
			"Caracas":        "Distrito Capital",
		}
		for cityName, stateName := range cities {
			state, err := getOrCreateState(tx, stateName)
			if err != nil {
				return err
			}
			if _, err := getOrCreateCity(tx, cityName, state.ID); err != nil {
				return err
			}
		}

		municipalities := map[string]string{
			"Naguanagua":     "Valencia",
			"Los Guayos":     "Valencia",
			"San Joaquín":    "Valencia",
			"Puerto Cabello": "Puerto Cabello",
			"Mariara":        "Mariara",
			"Chacao":         "Caracas",
			"Baruta":         "Caracas",
		}
		for municipalityName, cityName := range municipalities {
			var city models.City
			if err := tx.Where("name = ?", cityName).First(&city).Error; err != nil {
				return err
			}
			if _, err := getOrCreateMunicipality(tx, municipalityName, city.ID); err != nil {
				return err
			}
		}

		for _, name := range []string{models.RoleClient, models.RoleAgent, models.RoleAdmin} {
			if _, err := getOrCreateRole(tx, name); err != nil {
				return err
			}
		}

		propertyTypes := map[string]string{
			"Casa":        "Vivienda unifamiliar",
			"Apartamento": "Vivienda en edificio",
			"Townhouse":   "Casa adosada",
			"Penthouse":   "Ático de lujo",
		}
		for name, description := range propertyTypes {
			if _, err := getOrCreatePropertyType(tx, name, description); err != nil {
				return err
			}
		}

		features := []string{
			"Piscina", "Jardín", "Garaje", "Seguridad 24h",
			"Domótica", "Terraza", "Balcón", "Ascensor",
		}
		for _, name := range features {
			if _, err := getOrCreateFeature(tx, name); err != nil {
				return err
			}
		}

		adminRole, err := getOrCreateRole(tx, models.RoleAdmin)
		if err != nil {
			return err
		}
		if _, err := getOrCreateUser(tx, "admin@ica.com", "Admin", "ICA", "admin123", adminRole.ID); err != nil {
			return err
		}

		log.Println("Base data ready")
		return nil
	})
}

func getOrCreateState(tx *gorm.DB, name string) (*models.State, error) {
	state := models.State{Name: name}
	result := tx.Where("name = ?", name).FirstOrCreate(&state)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created state: %s", name)
	}
	return &state, nil
}

func getOrCreateCity(tx *gorm.DB, name string, stateID uint) (*models.City, error) {
	city := models.City{Name: name, StateID: &stateID}
	result := tx.Where("name = ? AND state_id = ?", name, stateID).FirstOrCreate(&city)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created city: %s", name)
	}
	return &city, nil
}

func getOrCreateMunicipality(tx *gorm.DB, name string, cityID uint) (*models.Municipality, error) {
	municipality := models.Municipality{Name: name, CityID: &cityID}
	result := tx.Where("name = ? AND city_id = ?", name, cityID).FirstOrCreate(&municipality)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created municipality: %s", name)
	}
	return &municipality, nil
}

func getOrCreateRole(tx *gorm.DB, name string) (*models.Role, error) {
	role := models.Role{Name: name}
	result := tx.Where("name = ?", name).FirstOrCreate(&role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created role: %s", name)
	}
	return &role, nil
}

func getOrCreatePropertyType(tx *gorm.DB, name, description string) (*models.PropertyType, error) {
	propertyType := models.PropertyType{Name: name, Description: description}
	result := tx.Where("name = ?", name).FirstOrCreate(&propertyType)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created property type: %s", name)
	}
	return &propertyType, nil
}

func getOrCreateFeature(tx *gorm.DB, name string) (*models.Feature, error) {
	feature := models.Feature{Name: name}
	result := tx.Where("name = ?", name).FirstOrCreate(&feature)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created feature: %s", name)
	}
	return &feature, nil
}

func getOrCreateUser(tx *gorm.DB, email, firstNames, lastNames, password string, roleID uint) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = models.User{
		FirstNames:   firstNames,
		LastNames:    lastNames,
		Email:        email,
		PasswordHash: string(hashedPassword),
		RoleID:       &roleID,
		Active:       true,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("Created user: %s", email)
	return &user, nil
}
