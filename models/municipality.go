package models

type Municipality struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:150;not null;uniqueIndex:idx_municipalities_name_city" json:"nombre_municipio"`
	CityID *uint  `gorm:"uniqueIndex:idx_municipalities_name_city" json:"ciudad_id"`
	City   *City  `gorm:"foreignKey:CityID;constraint:OnDelete:SET NULL" json:"ciudad,omitempty"`
}
