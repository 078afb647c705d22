package models

type PropertyType struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"nombre_tipo"`
	Description string `gorm:"type:text" json:"descripcion"`
}
