package models

type Feature struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:150;uniqueIndex;not null" json:"nombre_caracteristica"`
}
