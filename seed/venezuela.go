package seed

import (
	"log"

	"gorm.io/gorm"
)

var venezuelanStates = []string{
	"Amazonas", "Anzoátegui", "Apure", "Aragua", "Barinas", "Bolívar",
	"Carabobo", "Cojedes", "Delta Amacuro", "Falcón", "Guárico", "Lara",
	"Mérida", "Miranda", "Monagas", "Nueva Esparta", "Portuguesa", "Sucre",
	"Táchira", "Trujillo", "Vargas", "Yaracuy", "Zulia", "Distrito Capital",
}

var venezuelanCities = map[string][]string{
	"Carabobo":         {"Valencia", "Naguanagua", "San Diego", "Guacara", "Puerto Cabello", "Los Guayos", "Libertador", "Diego Ibarra", "San Joaquín"},
	"Distrito Capital": {"Caracas"},
	"Miranda":          {"Los Teques", "Guatire", "Guarenas", "Santa Teresa del Tuy", "Cúa", "Ocumare del Tuy"},
	"Zulia":            {"Maracaibo", "Cabimas", "Ciudad Ojeda", "San Francisco", "La Concepción"},
	"Lara":             {"Barquisimeto", "Cabudare", "Duaca", "El Tocuyo", "Quíbor"},
	"Aragua":           {"Maracay", "Turmero", "La Victoria", "Villa de Cura", "Cagua"},
	"Anzoátegui":       {"Barcelona", "Puerto La Cruz", "Lechería", "El Tigre", "Anaco"},
	"Bolívar":          {"Ciudad Guayana", "Ciudad Bolívar", "Upata", "El Callao", "Tumeremo"},
	"Táchira":          {"San Cristóbal", "Táriba", "Rubio", "La Fría", "Colón"},
	"Mérida":           {"Mérida", "El Vigía", "Tovar", "Ejido", "Mucuchíes"},
	"Monagas":          {"Maturín", "Punta de Mata", "Caripito", "Temblador", "Aragua de Maturín"},
	"Sucre":            {"Cumaná", "Carúpano", "Güiria", "Cariaco", "Tunapuy"},
	"Falcón":           {"Coro", "Punto Fijo", "La Vela de Coro", "Dabajuro", "Churuguara"},
	"Portuguesa":       {"Guanare", "Acarigua", "Araure", "Turen", "Guanarito"},
	"Yaracuy":          {"San Felipe", "Yaritagua", "Chivacoa", "Nirgua", "Aroa"},
	"Cojedes":          {"San Carlos", "Tinaquillo", "El Baúl", "El Pao", "Tinaco"},
	"Guárico":          {"San Juan de los Morros", "Valle de la Pascua", "Calabozo", "Zaraza", "El Sombrero"},
	"Barinas":          {"Barinas", "Socopó", "Santa Bárbara", "Sabaneta", "Barinitas"},
	"Apure":            {"San Fernando de Apure", "Guasdualito", "Achaguas", "Biruaca", "Elorza"},
	"Amazonas":         {"Puerto Ayacucho", "San Carlos de Río Negro", "Maroa", "San Juan de Manapiare"},
	"Delta Amacuro":    {"Tucupita", "Pedernales", "Curiapo", "Sierra Imataca"},
	"Nueva Esparta":    {"La Asunción", "Porlamar", "Pampatar", "Juan Griego", "Santa Ana"},
	"Vargas":           {"La Guaira", "Catia La Mar", "Macuto", "Caraballeda", "Naiguatá"},
	"Trujillo":         {"Trujillo", "Valera", "Boconó", "La Puerta", "Betijoque"},
}

// InitVenezuela loads the full national geography: every state, its
// principal cities, and a same-named municipality per city so property forms
// always have a selectable leaf. Idempotent, all-or-nothing.
func InitVenezuela(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		log.Println("Initializing Venezuela geography...")

		for _, stateName := range venezuelanStates {
			if _, err := getOrCreateState(tx, stateName); err != nil {
				return err
			}
		}

		for stateName, cities := range venezuelanCities {
			state, err := getOrCreateState(tx, stateName)
			if err != nil {
				return err
			}
			for _, cityName := range cities {
				city, err := getOrCreateCity(tx, cityName, state.ID)
				if err != nil {
					return err
				}
				if _, err := getOrCreateMunicipality(tx, cityName, city.ID); err != nil {
					return err
				}
			}
		}

		log.Println("Venezuela geography ready")
		return nil
	})
}
