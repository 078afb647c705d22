package models

// State is the top level of the geographic hierarchy.
type State struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:100;uniqueIndex;not null" json:"nombre_estado"`
	Cities []City `gorm:"foreignKey:StateID" json:"ciudades,omitempty"`
}
