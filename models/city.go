package models

type City struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"size:100;not null;uniqueIndex:idx_cities_name_state" json:"nombre_ciudad"`
	StateID        *uint          `gorm:"uniqueIndex:idx_cities_name_state" json:"estado_id"`
	State          *State         `gorm:"foreignKey:StateID;constraint:OnDelete:SET NULL" json:"estado,omitempty"`
	Municipalities []Municipality `gorm:"foreignKey:CityID" json:"municipios,omitempty"`
}
