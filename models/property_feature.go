package models

// PropertyFeature links a property to a feature with an optional free-text
// value, e.g. "Garaje" -> "2 puestos techados".
type PropertyFeature struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint     `gorm:"not null;uniqueIndex:idx_property_feature" json:"inmueble_id"`
	FeatureID  uint     `gorm:"not null;uniqueIndex:idx_property_feature" json:"caracteristica_id"`
	Feature    *Feature `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE" json:"caracteristica,omitempty"`
	Value      string   `gorm:"size:255" json:"valor"`
}
